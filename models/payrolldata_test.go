package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"wmcgroup/payroll-processor/models"
)

func TestPayrollDataDefaultsToZero(t *testing.T) {
	var data models.PayrollData

	assert.True(t, data.GrossEarnings.IsZero())
	assert.True(t, data.EmployerTaxes.IsZero())
	assert.True(t, data.ManagerRegularEarnings.IsZero())
	assert.False(t, data.HasManagerSplit())
}

func TestPayrollDataAdd(t *testing.T) {
	a := models.PayrollData{
		GrossEarnings:    decimal.RequireFromString("1000.00"),
		RegularEarnings:  decimal.RequireFromString("900.00"),
		OvertimeEarnings: decimal.RequireFromString("100.00"),
	}
	b := models.PayrollData{
		GrossEarnings:   decimal.RequireFromString("500.50"),
		RegularEarnings: decimal.RequireFromString("500.50"),
		Reimbursements:  decimal.RequireFromString("25.00"),
	}

	a.Add(&b)

	assert.Equal(t, "1500.50", a.GrossEarnings.StringFixed(2))
	assert.Equal(t, "1400.50", a.RegularEarnings.StringFixed(2))
	assert.Equal(t, "100.00", a.OvertimeEarnings.StringFixed(2))
	assert.Equal(t, "25.00", a.Reimbursements.StringFixed(2))
}

func TestParseCurrency(t *testing.T) {
	assert.Equal(t, "123.46", models.ParseCurrency("123.456").StringFixed(2))
	assert.Equal(t, "100.00", models.ParseCurrency("100").StringFixed(2))
	assert.Equal(t, "0.00", models.ParseCurrency("").StringFixed(2))
	assert.Equal(t, "0.00", models.ParseCurrency("  ").StringFixed(2))
	assert.Equal(t, "0.00", models.ParseCurrency("n/a").StringFixed(2))
	assert.Equal(t, "-42.10", models.ParseCurrency("-42.1").StringFixed(2))
}

func TestOrderStores(t *testing.T) {
	ordered := models.OrderStores([]string{"20400", "WMC", "20358", "99999"})

	assert.Equal(t, []string{"WMC", "20358", "20400"}, ordered)
}
