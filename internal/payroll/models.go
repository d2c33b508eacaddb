package payroll

import (
	"time"

	"github.com/Yosefnago/emp-backend/internal/employee"

	"github.com/shopspring/decimal"
)

// OvertimeBreakdown: jam kerja satu periode dibagi ke tiga keranjang tarif.
type OvertimeBreakdown struct {
	RegularHours float64
	Hours125     float64
	Hours150     float64
}

// GrossBreakdown: komponen gaji kotor. Total adalah satu-satunya nilai yang
// dibulatkan (2 desimal, half up).
type GrossBreakdown struct {
	RegularPay      decimal.Decimal
	Overtime125Pay  decimal.Decimal
	Overtime150Pay  decimal.Decimal
	TravelAllowance decimal.Decimal
	Total           decimal.Decimal
}

// Deductions: potongan sisi karyawan plus kontribusi sisi pemberi kerja yang
// dibutuhkan untuk menghitung employer cost.
type Deductions struct {
	EmployeePension   decimal.Decimal
	EmployeeNI        decimal.Decimal
	TaxableIncome     decimal.Decimal
	GrossTax          decimal.Decimal
	CreditDiscount    decimal.Decimal
	NetTax            decimal.Decimal
	Total             decimal.Decimal
	EmployerPension   decimal.Decimal
	EmployerSeverance decimal.Decimal
	EmployerNI        decimal.Decimal
}

// Result adalah keluaran tunggal engine: dibuat sekali per perhitungan,
// tidak pernah dimutasi setelahnya.
type Result struct {
	Username         string
	Employee         employee.PayrollInfo
	Year             int
	Month            int
	PaymentDate      time.Time
	HourlyRate       decimal.Decimal
	CreditPoints     decimal.Decimal
	PensionFund      string
	ProvidentFund    string
	InsuranceCompany string
	TravelDays       int
	Overtime         OvertimeBreakdown
	Gross            GrossBreakdown
	Deductions       Deductions
	NetSalary        decimal.Decimal
	EmployerCost     decimal.Decimal
}

// SlipData adalah payload siap-render untuk slip gaji; seluruh nilai uang
// sudah diformat 2 desimal.
type SlipData struct {
	IssuerUsername string `json:"issuer_username"`

	Year  int `json:"year"`
	Month int `json:"month"`

	EmployeeName string `json:"employee_name"`
	PersonalID   string `json:"personal_id"`
	Department   string `json:"department"`
	PaymentDate  string `json:"payment_date"`

	PensionFund      string `json:"pension_fund"`
	ProvidentFund    string `json:"provident_fund"`
	InsuranceCompany string `json:"insurance_company"`

	RegularHours     float64 `json:"regular_hours"`
	Overtime125Hours float64 `json:"overtime_125_hours"`
	Overtime150Hours float64 `json:"overtime_150_hours"`
	TravelDays       int     `json:"travel_days"`

	HourlyRate      string `json:"hourly_rate"`
	RegularPay      string `json:"regular_pay"`
	Overtime125Pay  string `json:"overtime_125_pay"`
	Overtime150Pay  string `json:"overtime_150_pay"`
	TravelAllowance string `json:"travel_allowance"`
	GrossSalary     string `json:"gross_salary"`

	EmployeePension   string `json:"employee_pension"`
	NationalInsurance string `json:"national_insurance"`
	TaxableIncome     string `json:"taxable_income"`
	IncomeTax         string `json:"income_tax"`
	TotalDeductions   string `json:"total_deductions"`
	NetSalary         string `json:"net_salary"`

	CreditPoints string `json:"credit_points"`

	EmployerPension   string `json:"employer_pension"`
	EmployerSeverance string `json:"employer_severance"`
	EmployerNI        string `json:"employer_ni"`
	TotalEmployerCost string `json:"total_employer_cost"`
}
