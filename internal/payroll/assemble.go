package payroll

import (
	"fmt"

	"github.com/Yosefnago/emp-backend/internal/salary"

	"github.com/google/uuid"
)

// BuildSlipData memformat hasil engine menjadi payload slip gaji.
// Semua nilai uang difiksasi 2 desimal di sini, satu kali, supaya slip,
// response API, dan event membawa angka yang identik.
func BuildSlipData(r *Result) SlipData {
	return SlipData{
		IssuerUsername: r.Username,

		Year:  r.Year,
		Month: r.Month,

		EmployeeName: r.Employee.FullName,
		PersonalID:   r.Employee.PersonalID,
		Department:   r.Employee.Department,
		PaymentDate:  r.PaymentDate.Format("2006-01-02"),

		PensionFund:      r.PensionFund,
		ProvidentFund:    r.ProvidentFund,
		InsuranceCompany: r.InsuranceCompany,

		RegularHours:     r.Overtime.RegularHours,
		Overtime125Hours: r.Overtime.Hours125,
		Overtime150Hours: r.Overtime.Hours150,
		TravelDays:       r.TravelDays,

		HourlyRate:      r.HourlyRate.StringFixed(2),
		RegularPay:      r.Gross.RegularPay.StringFixed(2),
		Overtime125Pay:  r.Gross.Overtime125Pay.StringFixed(2),
		Overtime150Pay:  r.Gross.Overtime150Pay.StringFixed(2),
		TravelAllowance: r.Gross.TravelAllowance.StringFixed(2),
		GrossSalary:     r.Gross.Total.StringFixed(2),

		EmployeePension:   r.Deductions.EmployeePension.StringFixed(2),
		NationalInsurance: r.Deductions.EmployeeNI.StringFixed(2),
		TaxableIncome:     r.Deductions.TaxableIncome.StringFixed(2),
		IncomeTax:         r.Deductions.NetTax.StringFixed(2),
		TotalDeductions:   r.Deductions.Total.StringFixed(2),
		NetSalary:         r.NetSalary.StringFixed(2),

		CreditPoints: r.CreditPoints.StringFixed(2),

		EmployerPension:   r.Deductions.EmployerPension.StringFixed(2),
		EmployerSeverance: r.Deductions.EmployerSeverance.StringFixed(2),
		EmployerNI:        r.Deductions.EmployerNI.StringFixed(2),
		TotalEmployerCost: r.EmployerCost.StringFixed(2),
	}
}

// BuildSalaryRecord menurunkan baris salary dari hasil engine.
func BuildSalaryRecord(r *Result, slipPath string) *salary.Salary {
	return &salary.Salary{
		ID:           uuid.New(),
		Username:     r.Username,
		PersonalID:   r.Employee.PersonalID,
		SalaryAmount: r.NetSalary.Round(2),
		SalaryMonth:  r.Month,
		SalaryYear:   r.Year,
		PaymentDate:  r.PaymentDate,
		SlipPath:     slipPath,
	}
}

func slipLines(d SlipData) []string {
	return []string{
		fmt.Sprintf("Salary Slip %02d/%d", d.Month, d.Year),
		"",
		fmt.Sprintf("Employee: %s (%s)", d.EmployeeName, d.PersonalID),
		fmt.Sprintf("Department: %s", d.Department),
		fmt.Sprintf("Payment date: %s", d.PaymentDate),
		fmt.Sprintf("Pension fund: %s", d.PensionFund),
		fmt.Sprintf("Provident fund: %s", d.ProvidentFund),
		fmt.Sprintf("Insurance: %s", d.InsuranceCompany),
		"",
		fmt.Sprintf("Regular hours: %.2f x %s = %s", d.RegularHours, d.HourlyRate, d.RegularPay),
		fmt.Sprintf("Overtime 125%%: %.2f = %s", d.Overtime125Hours, d.Overtime125Pay),
		fmt.Sprintf("Overtime 150%%: %.2f = %s", d.Overtime150Hours, d.Overtime150Pay),
		fmt.Sprintf("Travel allowance: %d days = %s", d.TravelDays, d.TravelAllowance),
		fmt.Sprintf("Gross salary: %s", d.GrossSalary),
		"",
		fmt.Sprintf("Pension (employee): -%s", d.EmployeePension),
		fmt.Sprintf("National insurance: -%s", d.NationalInsurance),
		fmt.Sprintf("Income tax (after %s credit points): -%s", d.CreditPoints, d.IncomeTax),
		fmt.Sprintf("Total deductions: %s", d.TotalDeductions),
		"",
		fmt.Sprintf("NET SALARY: %s", d.NetSalary),
		"",
		fmt.Sprintf("Employer pension: %s", d.EmployerPension),
		fmt.Sprintf("Employer severance: %s", d.EmployerSeverance),
		fmt.Sprintf("Employer national insurance: %s", d.EmployerNI),
		fmt.Sprintf("Total employer cost: %s", d.TotalEmployerCost),
	}
}
