package payconfig

type CreatePayConfigRequest struct {
	PersonalID        string  `json:"personal_id" binding:"required"`
	HourlyRate        float64 `json:"hourly_rate" binding:"required,gt=0"`
	CreditPoints      float64 `json:"credit_points" binding:"gte=0"`
	Seniority         float64 `json:"seniority" binding:"gte=0"`
	PensionFund       string  `json:"pension_fund"`
	ProvidentFund     string  `json:"provident_fund"`
	InsuranceCompany  string  `json:"insurance_company"`
	TotalSickDays     float64 `json:"total_sick_days" binding:"gte=0"`
	TotalVacationDays float64 `json:"total_vacation_days" binding:"gte=0"`
}

type UpdatePayConfigRequest struct {
	HourlyRate        *float64 `json:"hourly_rate" binding:"omitempty,gt=0"`
	CreditPoints      *float64 `json:"credit_points" binding:"omitempty,gte=0"`
	Seniority         *float64 `json:"seniority" binding:"omitempty,gte=0"`
	PensionFund       *string  `json:"pension_fund"`
	ProvidentFund     *string  `json:"provident_fund"`
	InsuranceCompany  *string  `json:"insurance_company"`
	TotalSickDays     *float64 `json:"total_sick_days" binding:"omitempty,gte=0"`
	TotalVacationDays *float64 `json:"total_vacation_days" binding:"omitempty,gte=0"`
}

type PayConfigResponse struct {
	ID                string  `json:"id"`
	PersonalID        string  `json:"personal_id"`
	HourlyRate        string  `json:"hourly_rate"`
	CreditPoints      string  `json:"credit_points"`
	Seniority         float64 `json:"seniority"`
	PensionFund       string  `json:"pension_fund"`
	ProvidentFund     string  `json:"provident_fund"`
	InsuranceCompany  string  `json:"insurance_company"`
	TotalSickDays     float64 `json:"total_sick_days"`
	TotalVacationDays float64 `json:"total_vacation_days"`
}
