package payconfig

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payconfig_repo.go -destination=mock/payconfig_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, cfg *PayConfig) error
	FindByPersonalID(ctx context.Context, username, personalID string) (*PayConfig, error)
	FindAllByOwner(ctx context.Context, username string) ([]PayConfig, error)
	Update(ctx context.Context, cfg *PayConfig) error
	Delete(ctx context.Context, username, personalID string) error
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

func (r *repository) Create(ctx context.Context, cfg *PayConfig) error {
	return r.db.WithContext(ctx).Create(cfg).Error
}

// FindByPersonalID mengembalikan nil tanpa error saat config belum ada;
// pemanggil yang menentukan apakah itu kondisi fatal.
func (r *repository) FindByPersonalID(ctx context.Context, username, personalID string) (*PayConfig, error) {
	var cfg PayConfig
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Where("personal_id = ?", personalID).
		First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *repository) FindAllByOwner(ctx context.Context, username string) ([]PayConfig, error) {
	var rows []PayConfig
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("personal_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, cfg *PayConfig) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}

func (r *repository) Delete(ctx context.Context, username, personalID string) error {
	return r.db.WithContext(ctx).
		Where("username = ?", username).
		Where("personal_id = ?", personalID).
		Delete(&PayConfig{}).Error
}
