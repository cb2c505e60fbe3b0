package payroll

import (
	"github.com/shopspring/decimal"

	"wmcgroup/payroll-processor/models"
)

// Ledger account numbers (AcctNum values, not internal ledger IDs) for the
// labor allocation chart.
const (
	acctOfficerWages    = "5500" // Payroll Expenses Labor:Officer Wages
	acctEmployerTaxes   = "5520" // Payroll Expenses Labor:Payroll Taxes - Employer
	acctWages           = "5502" // Payroll Expenses - Hourly:Wages
	acctOvertime        = "5504" // Payroll Expenses - Hourly:Overtime
	acctVacationPay     = "5507" // Payroll Expenses - Hourly:Vacation Pay
	acctSickPay         = "5508" // Payroll Expenses - Hourly:Sick Pay
	acctMealViolations  = "5505" // Payroll Expenses - Hourly:Meal period violations
	acctManagerWages    = "5511" // Payroll Expenses - Management:Wages
	acctManagerOvertime = "5512" // Payroll Expenses - Management:Overtime
	acctMedical         = "5531" // Employee Benefits:Medical Insurance
	acctDental          = "5532" // Employee Benefits:Dental Insurance
	acctLifeInsurance   = "5533" // Employee Benefits:Life Insurance
	acctHSA             = "5534" // Employee Benefits:HSA

	// Source account for reimbursements; flagged for manual allocation,
	// never written as a line.
	acctTravelReimbursement = "6152"
)

// allocationCategory is one financial category of the journal entry: a target
// account plus the rule extracting its per-store amount. Categories are
// iterated strictly in the order declared by allocationCategories, which
// matches the layout of prior months' entries.
type allocationCategory struct {
	name    string
	account string
	amount  func(d *models.PayrollData) decimal.Decimal

	// managerAmount, when set, is wage volume whose debits live on a separate
	// manager-only account but whose credit rides on this category's pooled
	// credit line.
	managerAmount func(d *models.PayrollData) decimal.Decimal

	// skipCredit marks the manager-only accounts: debit lines only, since the
	// corresponding shared category already credited the pool.
	skipCredit bool
}

var allocationCategories = []allocationCategory{
	{
		name:    "officer_wages",
		account: acctOfficerWages,
		amount:  func(d *models.PayrollData) decimal.Decimal { return d.OfficerWages },
	},
	{
		name:    "employer_taxes",
		account: acctEmployerTaxes,
		amount:  func(d *models.PayrollData) decimal.Decimal { return d.EmployerTaxes },
	},
	{
		name:          "wages",
		account:       acctWages,
		amount:        func(d *models.PayrollData) decimal.Decimal { return d.RegularEarnings },
		managerAmount: func(d *models.PayrollData) decimal.Decimal { return d.ManagerRegularEarnings },
	},
	{
		name:    "overtime",
		account: acctOvertime,
		amount: func(d *models.PayrollData) decimal.Decimal {
			return d.OvertimeEarnings.Add(d.DoubleOvertimeEarnings)
		},
		managerAmount: func(d *models.PayrollData) decimal.Decimal { return d.ManagerOvertimeEarnings },
	},
	{
		name:    "vacation_pay",
		account: acctVacationPay,
		amount: func(d *models.PayrollData) decimal.Decimal {
			return d.PTOEarnings.Add(d.HolidayEarnings)
		},
	},
	{
		name:    "sick_pay",
		account: acctSickPay,
		amount:  func(d *models.PayrollData) decimal.Decimal { return d.SickEarnings },
	},
	{
		name:    "meal_violations",
		account: acctMealViolations,
		amount:  func(d *models.PayrollData) decimal.Decimal { return d.MealPeriodViolations },
	},
	{
		name:    "medical_insurance",
		account: acctMedical,
		amount: func(d *models.PayrollData) decimal.Decimal {
			return d.MedicalInsurance.Add(d.MedicalInsuranceDependents)
		},
	},
	{
		name:    "dental_insurance",
		account: acctDental,
		amount: func(d *models.PayrollData) decimal.Decimal {
			return d.DentalInsurance.Add(d.DentalInsuranceDependents)
		},
	},
	{
		name:    "hsa",
		account: acctHSA,
		amount:  func(d *models.PayrollData) decimal.Decimal { return d.HSA },
	},
	{
		name:    "life_insurance",
		account: acctLifeInsurance,
		amount:  func(d *models.PayrollData) decimal.Decimal { return d.LifeInsurance },
	},
	{
		name:       "manager_wages",
		account:    acctManagerWages,
		amount:     func(d *models.PayrollData) decimal.Decimal { return d.ManagerRegularEarnings },
		skipCredit: true,
	},
	{
		name:       "manager_overtime",
		account:    acctManagerOvertime,
		amount:     func(d *models.PayrollData) decimal.Decimal { return d.ManagerOvertimeEarnings },
		skipCredit: true,
	},
}
