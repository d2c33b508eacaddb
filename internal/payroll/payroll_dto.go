package payroll

type RunPayrollRequest struct {
	PersonalID string `json:"personal_id" binding:"required,min=5,max=20"`
	Year       int    `json:"year" binding:"required,gte=2000,lte=2100"`
	Month      int    `json:"month" binding:"required,gte=1,lte=12"`
}

type RunPayrollResponse struct {
	Slip         SlipData `json:"slip"`
	NetSalary    string   `json:"net_salary"`
	EmployerCost string   `json:"employer_cost"`
	SlipPath     string   `json:"slip_path"`
}

type SalaryStatsResponse struct {
	Year             int    `json:"year"`
	Month            int    `json:"month"`
	PayrollCount     int64  `json:"payroll_count"`
	TotalNetSalary   string `json:"total_net_salary"`
	AverageNetSalary string `json:"average_net_salary"`
	MaxNetSalary     string `json:"max_net_salary"`
}

type SalaryHistoryItem struct {
	PersonalID   string `json:"personal_id"`
	SalaryAmount string `json:"salary_amount"`
	SalaryYear   int    `json:"salary_year"`
	SalaryMonth  int    `json:"salary_month"`
	PaymentDate  string `json:"payment_date"`
	SlipPath     string `json:"slip_path"`
}
