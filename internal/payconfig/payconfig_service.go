package payconfig

import (
	"context"
	"database/sql"

	payconfigerrors "github.com/Yosefnago/emp-backend/internal/payconfig/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=payconfig_service.go -destination=mock/payconfig_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, username string, req CreatePayConfigRequest) (PayConfigResponse, error)
	GetAll(ctx context.Context, username string) ([]PayConfigResponse, error)
	GetByPersonalID(ctx context.Context, username, personalID string) (PayConfigResponse, error)
	Update(ctx context.Context, username, personalID string, req UpdatePayConfigRequest) (PayConfigResponse, error)
	Delete(ctx context.Context, username, personalID string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(
	ctx context.Context,
	username string,
	req CreatePayConfigRequest,
) (PayConfigResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayConfigResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	cfg := &PayConfig{
		ID:                uuid.New(),
		Username:          username,
		PersonalID:        req.PersonalID,
		HourlyRate:        decimal.NewFromFloat(req.HourlyRate),
		CreditPoints:      decimal.NewFromFloat(req.CreditPoints),
		Seniority:         req.Seniority,
		PensionFund:       req.PensionFund,
		ProvidentFund:     req.ProvidentFund,
		InsuranceCompany:  req.InsuranceCompany,
		TotalSickDays:     req.TotalSickDays,
		TotalVacationDays: req.TotalVacationDays,
	}

	if err := qtx.Create(ctx, cfg); err != nil {
		return PayConfigResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PayConfigResponse{}, err
	}

	return mapToResponse(*cfg), nil
}

func (s *service) GetAll(
	ctx context.Context,
	username string,
) ([]PayConfigResponse, error) {
	configs, err := s.repo.FindAllByOwner(ctx, username)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(configs), nil
}

func (s *service) GetByPersonalID(
	ctx context.Context,
	username, personalID string,
) (PayConfigResponse, error) {
	cfg, err := s.repo.FindByPersonalID(ctx, username, personalID)
	if err != nil {
		return PayConfigResponse{}, mapRepositoryError(err)
	}
	if cfg == nil {
		return PayConfigResponse{}, payconfigerrors.ErrPayConfigNotFound
	}

	return mapToResponse(*cfg), nil
}

func (s *service) Update(
	ctx context.Context,
	username, personalID string,
	req UpdatePayConfigRequest,
) (PayConfigResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayConfigResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	cfg, err := qtx.FindByPersonalID(ctx, username, personalID)
	if err != nil {
		return PayConfigResponse{}, mapRepositoryError(err)
	}
	if cfg == nil {
		return PayConfigResponse{}, payconfigerrors.ErrPayConfigNotFound
	}

	if req.HourlyRate != nil {
		cfg.HourlyRate = decimal.NewFromFloat(*req.HourlyRate)
	}
	if req.CreditPoints != nil {
		cfg.CreditPoints = decimal.NewFromFloat(*req.CreditPoints)
	}
	if req.Seniority != nil {
		cfg.Seniority = *req.Seniority
	}
	if req.PensionFund != nil {
		cfg.PensionFund = *req.PensionFund
	}
	if req.ProvidentFund != nil {
		cfg.ProvidentFund = *req.ProvidentFund
	}
	if req.InsuranceCompany != nil {
		cfg.InsuranceCompany = *req.InsuranceCompany
	}
	if req.TotalSickDays != nil {
		cfg.TotalSickDays = *req.TotalSickDays
	}
	if req.TotalVacationDays != nil {
		cfg.TotalVacationDays = *req.TotalVacationDays
	}

	if err := qtx.Update(ctx, cfg); err != nil {
		return PayConfigResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PayConfigResponse{}, err
	}

	return mapToResponse(*cfg), nil
}

func (s *service) Delete(
	ctx context.Context,
	username, personalID string,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, username, personalID); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func mapToResponse(cfg PayConfig) PayConfigResponse {
	return PayConfigResponse{
		ID:                cfg.ID.String(),
		PersonalID:        cfg.PersonalID,
		HourlyRate:        cfg.HourlyRate.StringFixed(2),
		CreditPoints:      cfg.CreditPoints.StringFixed(2),
		Seniority:         cfg.Seniority,
		PensionFund:       cfg.PensionFund,
		ProvidentFund:     cfg.ProvidentFund,
		InsuranceCompany:  cfg.InsuranceCompany,
		TotalSickDays:     cfg.TotalSickDays,
		TotalVacationDays: cfg.TotalVacationDays,
	}
}

func mapToListResponse(configs []PayConfig) []PayConfigResponse {
	res := make([]PayConfigResponse, len(configs))
	for i, cfg := range configs {
		res[i] = mapToResponse(cfg)
	}
	return res
}
