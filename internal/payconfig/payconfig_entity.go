package payconfig

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayConfig adalah snapshot pengaturan gaji per karyawan: tarif per jam,
// nilai pembebasan pajak (credit points), senioritas, nama dana pensiun,
// dan akumulasi hari sakit/cuti. Dimutasi oleh HR, read-only bagi engine.
type PayConfig struct {
	ID                uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Username          string          `gorm:"column:username;type:varchar(100);not null;uniqueIndex:uq_pay_config_owner_personal"`
	PersonalID        string          `gorm:"column:personal_id;type:varchar(20);not null;uniqueIndex:uq_pay_config_owner_personal"`
	HourlyRate        decimal.Decimal `gorm:"column:hourly_rate;type:numeric(10,2);not null"`
	CreditPoints      decimal.Decimal `gorm:"column:credit_points;type:numeric(5,2);not null;default:0"`
	Seniority         float64         `gorm:"column:seniority;not null;default:0"`
	PensionFund       string          `gorm:"column:pension_fund;type:varchar(120)"`
	ProvidentFund     string          `gorm:"column:provident_fund;type:varchar(120)"`
	InsuranceCompany  string          `gorm:"column:insurance_company;type:varchar(120)"`
	TotalSickDays     float64         `gorm:"column:total_sick_days;not null;default:0"`
	TotalVacationDays float64         `gorm:"column:total_vacation_days;not null;default:0"`
	CreatedAt         time.Time       `gorm:"column:created_at"`
	UpdatedAt         time.Time       `gorm:"column:updated_at"`
}

func (PayConfig) TableName() string {
	return "pay_configs"
}
