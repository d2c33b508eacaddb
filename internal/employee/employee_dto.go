package employee

type CreateEmployeeRequest struct {
	PersonalID string  `json:"personal_id" binding:"required,min=5,max=20"`
	FullName   string  `json:"full_name" binding:"required,min=2,max=150"`
	Department string  `json:"department" binding:"omitempty,max=100"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone" binding:"omitempty,max=30"`
	StartDate  *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateEmployeeRequest struct {
	FullName   *string `json:"full_name" binding:"omitempty,min=2,max=150"`
	Department *string `json:"department" binding:"omitempty,max=100"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone" binding:"omitempty,max=30"`
	Active     *bool   `json:"active"`
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	PersonalID string  `json:"personal_id"`
	FullName   string  `json:"full_name"`
	Department string  `json:"department"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	StartDate  *string `json:"start_date,omitempty"`
	Active     bool    `json:"active"`
}
