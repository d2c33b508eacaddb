package employee

import (
	"context"
	"database/sql"
	"time"

	employeeerrors "github.com/Yosefnago/emp-backend/internal/employee/errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, username string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, username string) ([]EmployeeResponse, error)
	GetByPersonalID(ctx context.Context, username, personalID string) (EmployeeResponse, error)
	Update(ctx context.Context, username, personalID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
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
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e := &Employee{
		ID:         uuid.New(),
		Username:   username,
		PersonalID: req.PersonalID,
		FullName:   req.FullName,
		Department: req.Department,
		Email:      req.Email,
		Phone:      req.Phone,
		Active:     true,
	}

	if req.StartDate != nil {
		startDate, parseErr := time.Parse("2006-01-02", *req.StartDate)
		if parseErr == nil {
			e.StartDate = &startDate
		}
	}

	if err := qtx.Create(ctx, e); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*e), nil
}

func (s *service) GetAll(
	ctx context.Context,
	username string,
) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAllByOwner(ctx, username)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

func (s *service) GetByPersonalID(
	ctx context.Context,
	username, personalID string,
) (EmployeeResponse, error) {
	e, err := s.repo.FindByPersonalID(ctx, username, personalID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if e == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	return mapToResponse(*e), nil
}

func (s *service) Update(
	ctx context.Context,
	username, personalID string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByPersonalID(ctx, username, personalID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if e == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	if req.FullName != nil {
		e.FullName = *req.FullName
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Email != nil {
		e.Email = req.Email
	}
	if req.Phone != nil {
		e.Phone = req.Phone
	}
	if req.Active != nil {
		e.Active = *req.Active
	}

	if err := qtx.Update(ctx, e); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*e), nil
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         e.ID.String(),
		PersonalID: e.PersonalID,
		FullName:   e.FullName,
		Department: e.Department,
		Email:      e.Email,
		Phone:      e.Phone,
		Active:     e.Active,
	}

	if e.StartDate != nil {
		v := e.StartDate.Format("2006-01-02")
		resp.StartDate = &v
	}

	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp
}
