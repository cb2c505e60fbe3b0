package models

import "github.com/shopspring/decimal"

// PayrollData accumulates the employer-side payroll totals for a single store
// across one parse of a Total By Location export. The zero value of every
// field is 0.00.
type PayrollData struct {
	GrossEarnings              decimal.Decimal
	EmployerTaxes              decimal.Decimal
	RegularEarnings            decimal.Decimal
	OvertimeEarnings           decimal.Decimal
	DoubleOvertimeEarnings     decimal.Decimal
	PTOEarnings                decimal.Decimal
	SickEarnings               decimal.Decimal
	HolidayEarnings            decimal.Decimal
	Bonus                      decimal.Decimal
	VisionInsurance            decimal.Decimal
	DentalInsurance            decimal.Decimal
	DentalInsuranceDependents  decimal.Decimal
	MedicalInsurance           decimal.Decimal
	MedicalInsuranceDependents decimal.Decimal
	EmployerContributions      decimal.Decimal
	Reimbursements             decimal.Decimal
	PaycheckTips               decimal.Decimal
	LifeInsurance              decimal.Decimal
	HSA                        decimal.Decimal
	OfficerWages               decimal.Decimal
	MealPeriodViolations       decimal.Decimal

	// Wages redirected from the shared fields when a row belongs to the
	// store's configured manager. ManagerOvertimeEarnings absorbs both
	// overtime and double overtime for those rows.
	ManagerRegularEarnings  decimal.Decimal
	ManagerOvertimeEarnings decimal.Decimal
}

// Add combines another PayrollData into this one field by field.
func (d *PayrollData) Add(other *PayrollData) {
	d.GrossEarnings = d.GrossEarnings.Add(other.GrossEarnings)
	d.EmployerTaxes = d.EmployerTaxes.Add(other.EmployerTaxes)
	d.RegularEarnings = d.RegularEarnings.Add(other.RegularEarnings)
	d.OvertimeEarnings = d.OvertimeEarnings.Add(other.OvertimeEarnings)
	d.DoubleOvertimeEarnings = d.DoubleOvertimeEarnings.Add(other.DoubleOvertimeEarnings)
	d.PTOEarnings = d.PTOEarnings.Add(other.PTOEarnings)
	d.SickEarnings = d.SickEarnings.Add(other.SickEarnings)
	d.HolidayEarnings = d.HolidayEarnings.Add(other.HolidayEarnings)
	d.Bonus = d.Bonus.Add(other.Bonus)
	d.VisionInsurance = d.VisionInsurance.Add(other.VisionInsurance)
	d.DentalInsurance = d.DentalInsurance.Add(other.DentalInsurance)
	d.DentalInsuranceDependents = d.DentalInsuranceDependents.Add(other.DentalInsuranceDependents)
	d.MedicalInsurance = d.MedicalInsurance.Add(other.MedicalInsurance)
	d.MedicalInsuranceDependents = d.MedicalInsuranceDependents.Add(other.MedicalInsuranceDependents)
	d.EmployerContributions = d.EmployerContributions.Add(other.EmployerContributions)
	d.Reimbursements = d.Reimbursements.Add(other.Reimbursements)
	d.PaycheckTips = d.PaycheckTips.Add(other.PaycheckTips)
	d.LifeInsurance = d.LifeInsurance.Add(other.LifeInsurance)
	d.HSA = d.HSA.Add(other.HSA)
	d.OfficerWages = d.OfficerWages.Add(other.OfficerWages)
	d.MealPeriodViolations = d.MealPeriodViolations.Add(other.MealPeriodViolations)
	d.ManagerRegularEarnings = d.ManagerRegularEarnings.Add(other.ManagerRegularEarnings)
	d.ManagerOvertimeEarnings = d.ManagerOvertimeEarnings.Add(other.ManagerOvertimeEarnings)
}

// HasManagerSplit reports whether any manager wages were redirected into this
// accumulator.
func (d *PayrollData) HasManagerSplit() bool {
	return !d.ManagerRegularEarnings.IsZero() || !d.ManagerOvertimeEarnings.IsZero()
}
