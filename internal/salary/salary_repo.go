package salary

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Stats meringkas seluruh gaji yang sudah dihitung milik satu owner
// untuk satu periode.
type Stats struct {
	Count   int64           `gorm:"column:count"`
	Total   decimal.Decimal `gorm:"column:total"`
	Average decimal.Decimal `gorm:"column:average"`
	Max     decimal.Decimal `gorm:"column:max"`
}

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Salary) error
	FindAllByPersonalID(ctx context.Context, username, personalID string) ([]Salary, error)
	FindByPeriod(ctx context.Context, username, personalID string, year, month int) (*Salary, error)
	GetStats(ctx context.Context, username string, year, month int) (*Stats, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// Create menulis lewat *sql.Tx saat repo sedang dalam transaksi, supaya
// insert salary dan insert outbox event berbagi satu commit.
func (r *repository) Create(ctx context.Context, s *Salary) error {
	if r.tx != nil {
		query := `
        INSERT INTO salaries (
            id, username, personal_id, salary_amount, salary_month, salary_year, payment_date, slip_path, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
    `
		_, err := r.tx.ExecContext(
			ctx, query,
			s.ID, s.Username, s.PersonalID, s.SalaryAmount,
			s.SalaryMonth, s.SalaryYear, s.PaymentDate, s.SlipPath,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAllByPersonalID(ctx context.Context, username, personalID string) ([]Salary, error) {
	var rows []Salary
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Where("personal_id = ?", personalID).
		Order("salary_year DESC, salary_month DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) GetStats(ctx context.Context, username string, year, month int) (*Stats, error) {
	var stats Stats
	err := r.db.WithContext(ctx).
		Model(&Salary{}).
		Select(`COUNT(*) AS count,
			COALESCE(SUM(salary_amount), 0) AS total,
			COALESCE(AVG(salary_amount), 0) AS average,
			COALESCE(MAX(salary_amount), 0) AS max`).
		Where("username = ?", username).
		Where("salary_year = ? AND salary_month = ?", year, month).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *repository) FindByPeriod(ctx context.Context, username, personalID string, year, month int) (*Salary, error) {
	var s Salary
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Where("personal_id = ?", personalID).
		Where("salary_year = ? AND salary_month = ?", year, month).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
