package employee

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindByPersonalID(ctx context.Context, username, personalID string) (*Employee, error)
	FindAllByOwner(ctx context.Context, username string) ([]Employee, error)
	FindPayrollInfo(ctx context.Context, username, personalID string) (*PayrollInfo, error)
	Update(ctx context.Context, e *Employee) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByPersonalID(ctx context.Context, username, personalID string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Where("personal_id = ?", personalID).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindAllByOwner(ctx context.Context, username string) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("full_name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// FindPayrollInfo returns nil (bukan error) saat karyawan tidak ditemukan;
// engine payroll yang memutuskan error bisnisnya.
func (r *repository) FindPayrollInfo(ctx context.Context, username, personalID string) (*PayrollInfo, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Select("personal_id", "full_name", "department").
		Where("username = ?", username).
		Where("personal_id = ?", personalID).
		Where("active = ?", true).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &PayrollInfo{
		PersonalID: e.PersonalID,
		FullName:   e.FullName,
		Department: e.Department,
	}, nil
}
