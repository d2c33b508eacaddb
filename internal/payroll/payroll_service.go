package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Yosefnago/emp-backend/internal/bootstrap"
	"github.com/Yosefnago/emp-backend/internal/events"
	"github.com/Yosefnago/emp-backend/internal/messaging/kafka"
	payrollerrors "github.com/Yosefnago/emp-backend/internal/payroll/errors"
	"github.com/Yosefnago/emp-backend/internal/salary"
	"github.com/Yosefnago/emp-backend/internal/shared/apperror"
	"github.com/Yosefnago/emp-backend/internal/shared/contextutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Run(ctx context.Context, username string, req RunPayrollRequest) (RunPayrollResponse, error)
	GetHistory(ctx context.Context, username, personalID string) ([]SalaryHistoryItem, error)
	GetStats(ctx context.Context, username string, year, month int) (SalaryStatsResponse, error)
}

type service struct {
	db       *sql.DB
	engine   *Engine
	salaries salary.Repository
	slips    SlipRenderer
	outbox   kafka.OutboxRepository
	audit    bootstrap.AuditLogger
}

func NewService(db *sql.DB, engine *Engine, salaries salary.Repository, slips SlipRenderer, audit bootstrap.AuditLogger) Service {
	return &service{db: db, engine: engine, salaries: salaries, slips: slips, audit: audit}
}

// NewServiceWithOutbox menambahkan publikasi event payroll.generated lewat
// transactional outbox: baris salary dan baris outbox commit bersama.
func NewServiceWithOutbox(
	db *sql.DB,
	engine *Engine,
	salaries salary.Repository,
	slips SlipRenderer,
	outbox kafka.OutboxRepository,
	audit bootstrap.AuditLogger,
) Service {
	return &service{db: db, engine: engine, salaries: salaries, slips: slips, outbox: outbox, audit: audit}
}

func (s *service) Run(ctx context.Context, username string, req RunPayrollRequest) (RunPayrollResponse, error) {
	// Tolak duplikat sebelum menjalankan engine; unique constraint tetap
	// menjaga race dua request paralel.
	existing, err := s.salaries.FindByPeriod(ctx, username, req.PersonalID, req.Year, req.Month)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return RunPayrollResponse{}, err
	}
	if existing != nil {
		return RunPayrollResponse{}, payrollerrors.ErrSalaryAlreadyExists
	}

	result, err := s.engine.Run(ctx, username, req.PersonalID, req.Year, req.Month)
	if err != nil {
		return RunPayrollResponse{}, err
	}

	slipData := BuildSlipData(result)
	slipPath, err := s.slips.Render(slipData)
	if err != nil {
		return RunPayrollResponse{}, apperror.Wrap(
			err,
			payrollerrors.ErrSlipRenderFailed.Code,
			payrollerrors.ErrSlipRenderFailed.Message,
			payrollerrors.ErrSlipRenderFailed.HTTPStatus,
		)
	}

	record := BuildSalaryRecord(result, slipPath)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunPayrollResponse{}, err
	}
	defer tx.Rollback()

	if err := s.salaries.WithTx(tx).Create(ctx, record); err != nil {
		return RunPayrollResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		if err := s.enqueuePayrollGenerated(ctx, tx, record); err != nil {
			return RunPayrollResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return RunPayrollResponse{}, mapRepositoryError(err)
	}

	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "GENERATED_PAYROLL",
			Message: "Payroll generated for employee",
			Meta: map[string]any{
				"personal_id": record.PersonalID,
				"year":        record.SalaryYear,
				"month":       record.SalaryMonth,
				"net_salary":  record.SalaryAmount.StringFixed(2),
			},
		})
	}

	return RunPayrollResponse{
		Slip:         slipData,
		NetSalary:    result.NetSalary.StringFixed(2),
		EmployerCost: result.EmployerCost.StringFixed(2),
		SlipPath:     slipPath,
	}, nil
}

func (s *service) enqueuePayrollGenerated(ctx context.Context, tx *sql.Tx, record *salary.Salary) error {
	event := events.PayrollGeneratedEvent{
		EventType:   "payroll.generated",
		PersonalID:  record.PersonalID,
		Username:    record.Username,
		SalaryYear:  record.SalaryYear,
		SalaryMonth: record.SalaryMonth,
		NetSalary:   record.SalaryAmount.StringFixed(2),
		SlipPath:    record.SlipPath,
		OccurredAt:  record.PaymentDate,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal payroll.generated event: %w", err)
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "salary",
		AggregateID:   record.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetHistory(ctx context.Context, username, personalID string) ([]SalaryHistoryItem, error) {
	rows, err := s.salaries.FindAllByPersonalID(ctx, username, personalID)
	if err != nil {
		return nil, err
	}

	items := make([]SalaryHistoryItem, len(rows))
	for i, row := range rows {
		items[i] = SalaryHistoryItem{
			PersonalID:   row.PersonalID,
			SalaryAmount: row.SalaryAmount.StringFixed(2),
			SalaryYear:   row.SalaryYear,
			SalaryMonth:  row.SalaryMonth,
			PaymentDate:  row.PaymentDate.Format("2006-01-02"),
			SlipPath:     row.SlipPath,
		}
	}
	return items, nil
}

// GetStats meringkas gaji yang sudah dihitung owner ini untuk satu periode:
// jumlah run, total, rata-rata, dan gaji bersih tertinggi.
func (s *service) GetStats(ctx context.Context, username string, year, month int) (SalaryStatsResponse, error) {
	stats, err := s.salaries.GetStats(ctx, username, year, month)
	if err != nil {
		return SalaryStatsResponse{}, err
	}

	return SalaryStatsResponse{
		Year:             year,
		Month:            month,
		PayrollCount:     stats.Count,
		TotalNetSalary:   stats.Total.StringFixed(2),
		AverageNetSalary: stats.Average.StringFixed(2),
		MaxNetSalary:     stats.Max.StringFixed(2),
	}, nil
}
