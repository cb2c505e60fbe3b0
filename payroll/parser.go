// Package payroll turns a payroll provider's "Total By Location" CSV export
// into one balanced labor-allocation journal entry: parse rows, aggregate per
// store, build credit/debit lines per expense account, persist.
package payroll

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"wmcgroup/payroll-processor/models"
)

const (
	// The export embeds a human-readable preamble; the real CSV header is the
	// first line whose leading cell is "Payroll".
	headerSentinel = "Payroll,"

	// Trailer row appended by the provider, excluded from aggregation.
	grandTotalsPrefix = "Grand totals"
)

// Logical category name -> export column header. Header text is not assumed
// stable across provider report revisions; this table is the only place that
// knows the spelling.
var exportColumns = map[string]string{
	"payroll":                      "Payroll",
	"employee_name":                "Employee name",
	"work_zip":                     "Work address (zip)",
	"gross_earnings":               "Gross earnings",
	"employer_taxes":               "Total employer taxes",
	"regular_earnings":             "Regular earnings",
	"overtime_earnings":            "Overtime earnings",
	"double_overtime_earnings":     "Double overtime earnings",
	"pto_earnings":                 "Paid time off earnings",
	"sick_earnings":                "Sick time off earnings",
	"holiday_earnings":             "Holiday earnings",
	"bonus":                        "Bonus",
	"vision_insurance":             "Employee Vision Insurance (employer)",
	"dental_insurance":             "Employee Dental Insurance (employer)",
	"dental_insurance_dependents":  "Dependents Dental Insurance (employer)",
	"medical_insurance":            "Employee Medical Insurance (employer)",
	"medical_insurance_dependents": "Dependents Medical Insurance (employer)",
	"employer_contributions":       "Total employer contributions",
	"reimbursements":               "Total reimbursements",
	"paycheck_tips":                "Paycheck tips",
	"life_insurance":               "Employee Life Insurance (employer)",
	"hsa":                          "Health Savings Account (employer)",
	"officer_wages":                "Officer Wages",
	"meal_period_violations":       "Meal Period Violations",
}

// ExportColumns returns a copy of the logical-name to column-header mapping.
func ExportColumns() map[string]string {
	columns := make(map[string]string, len(exportColumns))
	for name, header := range exportColumns {
		columns[name] = header
	}
	return columns
}

// EmployeeRow is one data row of the export: the employee's work-location
// postal code, the employee name when the export carries that column, and the
// row's category amounts.
type EmployeeRow struct {
	PostalCode   string
	EmployeeName string
	Data         models.PayrollData
}

// ParseLocationExport parses the raw bytes of a Total By Location export.
// A leading UTF-8 BOM and any preamble lines before the header sentinel are
// discarded. Rows without a work postal code and the grand-totals trailer are
// skipped. When no header row is found the result is empty; the caller treats
// zero rows as a no-data outcome rather than a failure.
func ParseLocationExport(content []byte) []EmployeeRow {
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))

	lines := strings.Split(string(content), "\n")
	headerIndex := -1
	for i, line := range lines {
		if strings.HasPrefix(line, headerSentinel) {
			headerIndex = i
			break
		}
	}

	if headerIndex < 0 {
		log.Warn("no header row found in payroll export")
		return nil
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines[headerIndex:], "\n")))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		log.Warnf("failed to read payroll export header: %v", err)
		return nil
	}

	columnIndex := make(map[string]int, len(header))
	for i, name := range header {
		columnIndex[strings.TrimSpace(name)] = i
	}

	cell := func(record []string, logicalName string) string {
		i, found := columnIndex[exportColumns[logicalName]]
		if !found || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []EmployeeRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warnf("skipping malformed payroll export line: %v", err)
			continue
		}

		if strings.TrimSpace(cell(record, "work_zip")) == "" {
			continue
		}

		if strings.HasPrefix(cell(record, "payroll"), grandTotalsPrefix) {
			continue
		}

		rows = append(rows, EmployeeRow{
			PostalCode:   strings.TrimSpace(cell(record, "work_zip")),
			EmployeeName: strings.TrimSpace(cell(record, "employee_name")),
			Data: models.PayrollData{
				GrossEarnings:              models.ParseCurrency(cell(record, "gross_earnings")),
				EmployerTaxes:              models.ParseCurrency(cell(record, "employer_taxes")),
				RegularEarnings:            models.ParseCurrency(cell(record, "regular_earnings")),
				OvertimeEarnings:           models.ParseCurrency(cell(record, "overtime_earnings")),
				DoubleOvertimeEarnings:     models.ParseCurrency(cell(record, "double_overtime_earnings")),
				PTOEarnings:                models.ParseCurrency(cell(record, "pto_earnings")),
				SickEarnings:               models.ParseCurrency(cell(record, "sick_earnings")),
				HolidayEarnings:            models.ParseCurrency(cell(record, "holiday_earnings")),
				Bonus:                      models.ParseCurrency(cell(record, "bonus")),
				VisionInsurance:            models.ParseCurrency(cell(record, "vision_insurance")),
				DentalInsurance:            models.ParseCurrency(cell(record, "dental_insurance")),
				DentalInsuranceDependents:  models.ParseCurrency(cell(record, "dental_insurance_dependents")),
				MedicalInsurance:           models.ParseCurrency(cell(record, "medical_insurance")),
				MedicalInsuranceDependents: models.ParseCurrency(cell(record, "medical_insurance_dependents")),
				EmployerContributions:      models.ParseCurrency(cell(record, "employer_contributions")),
				Reimbursements:             models.ParseCurrency(cell(record, "reimbursements")),
				PaycheckTips:               models.ParseCurrency(cell(record, "paycheck_tips")),
				LifeInsurance:              models.ParseCurrency(cell(record, "life_insurance")),
				HSA:                        models.ParseCurrency(cell(record, "hsa")),
				OfficerWages:               models.ParseCurrency(cell(record, "officer_wages")),
				MealPeriodViolations:       models.ParseCurrency(cell(record, "meal_period_violations")),
			},
		})
	}

	return rows
}
