package salary

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Salary adalah hasil payroll yang dipersistenkan: satu baris per karyawan
// per periode, termasuk lokasi slip gaji yang sudah dirender.
type Salary struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Username     string          `gorm:"column:username;type:varchar(100);not null;uniqueIndex:uq_salary_owner_personal_period"`
	PersonalID   string          `gorm:"column:personal_id;type:varchar(20);not null;uniqueIndex:uq_salary_owner_personal_period"`
	SalaryAmount decimal.Decimal `gorm:"column:salary_amount;type:numeric(12,2);not null"`
	SalaryMonth  int             `gorm:"column:salary_month;not null;uniqueIndex:uq_salary_owner_personal_period"`
	SalaryYear   int             `gorm:"column:salary_year;not null;uniqueIndex:uq_salary_owner_personal_period"`
	PaymentDate  time.Time       `gorm:"column:payment_date;type:date;not null"`
	SlipPath     string          `gorm:"column:slip_path;type:varchar(500)"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
}

func (Salary) TableName() string {
	return "salaries"
}
