package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"wmcgroup/payroll-processor/models"
	"wmcgroup/payroll-processor/payroll"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAggregateByStoreAccumulates(t *testing.T) {
	rows := []payroll.EmployeeRow{
		{PostalCode: "95407", Data: models.PayrollData{GrossEarnings: money("1000.00"), RegularEarnings: money("1000.00")}},
		{PostalCode: "95407", Data: models.PayrollData{GrossEarnings: money("500.00"), RegularEarnings: money("500.00")}},
		{PostalCode: "94928", Data: models.PayrollData{GrossEarnings: money("2000.00")}},
	}

	result := payroll.AggregateByStore(rows, nil)

	assert.Len(t, result, 2)
	assert.Equal(t, "1500.00", result["20358"].GrossEarnings.StringFixed(2))
	assert.Equal(t, "1500.00", result["20358"].RegularEarnings.StringFixed(2))
	assert.Equal(t, "2000.00", result["WMC"].GrossEarnings.StringFixed(2))
}

func TestAggregateByStoreIsOrderIndependent(t *testing.T) {
	rows := []payroll.EmployeeRow{
		{PostalCode: "95407", Data: models.PayrollData{RegularEarnings: money("100.00")}},
		{PostalCode: "95407", Data: models.PayrollData{RegularEarnings: money("200.00")}},
		{PostalCode: "94954", Data: models.PayrollData{RegularEarnings: money("300.00")}},
	}
	reversed := []payroll.EmployeeRow{rows[2], rows[1], rows[0]}

	forward := payroll.AggregateByStore(rows, nil)
	backward := payroll.AggregateByStore(reversed, nil)

	assert.Equal(t, forward["20358"].RegularEarnings.StringFixed(2), backward["20358"].RegularEarnings.StringFixed(2))
	assert.Equal(t, forward["20395"].RegularEarnings.StringFixed(2), backward["20395"].RegularEarnings.StringFixed(2))
}

func TestAggregateByStoreSkipsUnmappedPostalCode(t *testing.T) {
	rows := []payroll.EmployeeRow{
		{PostalCode: "99999", Data: models.PayrollData{GrossEarnings: money("1000.00")}},
		{PostalCode: "95407", Data: models.PayrollData{GrossEarnings: money("500.00")}},
	}

	result := payroll.AggregateByStore(rows, nil)

	assert.Len(t, result, 1)
	assert.Equal(t, "500.00", result["20358"].GrossEarnings.StringFixed(2))
}

func TestAggregateByStoreManagerSplit(t *testing.T) {
	rows := []payroll.EmployeeRow{
		{
			PostalCode:   "95407",
			EmployeeName: "Melissa Martin",
			Data: models.PayrollData{
				GrossEarnings:    money("3200.00"),
				RegularEarnings:  money("3000.00"),
				OvertimeEarnings: money("200.00"),
			},
		},
	}
	managers := map[string]string{"20358": "Melissa Martin"}

	result := payroll.AggregateByStore(rows, managers)

	data := result["20358"]
	assert.Equal(t, "3000.00", data.ManagerRegularEarnings.StringFixed(2))
	assert.Equal(t, "200.00", data.ManagerOvertimeEarnings.StringFixed(2))
	assert.Equal(t, "0.00", data.RegularEarnings.StringFixed(2))
	assert.Equal(t, "0.00", data.OvertimeEarnings.StringFixed(2))
	// Non-wage categories stay on the shared fields.
	assert.Equal(t, "3200.00", data.GrossEarnings.StringFixed(2))
}

func TestAggregateByStoreManagerMatchIsCaseInsensitive(t *testing.T) {
	rows := []payroll.EmployeeRow{
		{
			PostalCode:   "95407",
			EmployeeName: "MELISSA MARTIN",
			Data:         models.PayrollData{RegularEarnings: money("3000.00")},
		},
	}
	managers := map[string]string{"20358": "Melissa Martin"}

	result := payroll.AggregateByStore(rows, managers)

	assert.Equal(t, "3000.00", result["20358"].ManagerRegularEarnings.StringFixed(2))
}

func TestAggregateByStoreFoldsDoubleOvertimeIntoManagerOvertime(t *testing.T) {
	rows := []payroll.EmployeeRow{
		{
			PostalCode:   "95407",
			EmployeeName: "Melissa Martin",
			Data: models.PayrollData{
				OvertimeEarnings:       money("150.00"),
				DoubleOvertimeEarnings: money("50.00"),
			},
		},
	}
	managers := map[string]string{"20358": "Melissa Martin"}

	result := payroll.AggregateByStore(rows, managers)

	data := result["20358"]
	assert.Equal(t, "200.00", data.ManagerOvertimeEarnings.StringFixed(2))
	assert.Equal(t, "0.00", data.DoubleOvertimeEarnings.StringFixed(2))
}

func TestAggregateByStoreNonManagerRowsUnaffected(t *testing.T) {
	rows := []payroll.EmployeeRow{
		{
			PostalCode:   "95407",
			EmployeeName: "Alice Smith",
			Data: models.PayrollData{
				RegularEarnings:        money("1000.00"),
				OvertimeEarnings:       money("50.00"),
				DoubleOvertimeEarnings: money("25.00"),
			},
		},
	}
	managers := map[string]string{"20358": "Melissa Martin"}

	result := payroll.AggregateByStore(rows, managers)

	data := result["20358"]
	assert.Equal(t, "1000.00", data.RegularEarnings.StringFixed(2))
	assert.Equal(t, "50.00", data.OvertimeEarnings.StringFixed(2))
	assert.Equal(t, "25.00", data.DoubleOvertimeEarnings.StringFixed(2))
	assert.False(t, data.HasManagerSplit())
}
