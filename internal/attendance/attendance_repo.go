package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	FindPayrollDays(ctx context.Context, username, personalID string, year, month int) ([]PayrollDay, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// FindPayrollDays mengembalikan seluruh hari kehadiran satu karyawan
// untuk satu bulan kalender, urut tanggal naik. List kosong bukan error.
func (r *repository) FindPayrollDays(ctx context.Context, username, personalID string, year, month int) ([]PayrollDay, error) {
	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Where("personal_id = ?", personalID).
		Where("attendance_date >= ? AND attendance_date < ?", periodStart, periodEnd).
		Order("attendance_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	days := make([]PayrollDay, len(rows))
	for i, row := range rows {
		days[i] = PayrollDay{
			PersonalID:  row.PersonalID,
			Date:        row.AttendanceDate,
			TotalHours:  row.TotalHours,
			Status:      row.Status,
			TravelAllow: row.TravelAllow,
		}
	}
	return days, nil
}
