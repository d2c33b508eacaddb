package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Username   string         `gorm:"column:username;type:varchar(100);not null;index:idx_employee_owner_personal,unique"`
	PersonalID string         `gorm:"column:personal_id;type:varchar(20);not null;index:idx_employee_owner_personal,unique"`
	FullName   string         `gorm:"column:full_name;type:varchar(150);not null"`
	Department string         `gorm:"column:department;type:varchar(100)"`
	Email      *string        `gorm:"column:email;type:varchar(150)"`
	Phone      *string        `gorm:"column:phone;type:varchar(30)"`
	StartDate  *time.Time     `gorm:"column:start_date;type:date"`
	Active     bool           `gorm:"column:active;not null;default:true"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}

// PayrollInfo adalah potongan data karyawan minimal yang dibutuhkan payroll.
type PayrollInfo struct {
	PersonalID string
	FullName   string
	Department string
}
