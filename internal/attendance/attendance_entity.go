package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Attendance struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Username       string         `gorm:"column:username;type:varchar(100);not null;index"`
	PersonalID     string         `gorm:"column:personal_id;type:varchar(20);not null;index"`
	AttendanceDate time.Time      `gorm:"column:attendance_date;type:date;not null;index"`
	TotalHours     float64        `gorm:"column:total_hours;not null;default:0"`
	TravelAllow    bool           `gorm:"column:travel_allow;not null;default:false"`
	Status         string         `gorm:"column:status;type:varchar(20);not null;default:PRESENT"`
	Notes          *string        `gorm:"column:notes;type:text"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// PayrollDay adalah proyeksi satu hari kehadiran untuk perhitungan payroll.
type PayrollDay struct {
	PersonalID  string
	Date        time.Time
	TotalHours  float64
	Status      string
	TravelAllow bool
}
