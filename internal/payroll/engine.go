package payroll

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Yosefnago/emp-backend/internal/attendance"
	"github.com/Yosefnago/emp-backend/internal/employee"
	"github.com/Yosefnago/emp-backend/internal/payconfig"
	payrollerrors "github.com/Yosefnago/emp-backend/internal/payroll/errors"
	"github.com/Yosefnago/emp-backend/internal/shared/apperror"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Sumber data engine. Repository domain masing-masing memenuhi interface ini
// sehingga engine bisa diuji tanpa database.
type EmployeeSource interface {
	FindPayrollInfo(ctx context.Context, username, personalID string) (*employee.PayrollInfo, error)
}

type AttendanceSource interface {
	FindPayrollDays(ctx context.Context, username, personalID string, year, month int) ([]attendance.PayrollDay, error)
}

type ConfigSource interface {
	FindByPersonalID(ctx context.Context, username, personalID string) (*payconfig.PayConfig, error)
}

// Engine menjalankan satu perhitungan gaji dari awal sampai akhir:
// ambil tiga sumber data secara paralel, validasi, lalu hitung berurutan.
// Engine murni komputasi: tidak menulis apa pun.
type Engine struct {
	employees   EmployeeSource
	attendances AttendanceSource
	configs     ConfigSource
	rates       Rates
	now         func() time.Time
	logger      *zap.Logger
}

func NewEngine(employees EmployeeSource, attendances AttendanceSource, configs ConfigSource) *Engine {
	return &Engine{
		employees:   employees,
		attendances: attendances,
		configs:     configs,
		rates:       DefaultRates(),
		now:         time.Now,
		logger:      zap.L().Named("payroll.engine"),
	}
}

// WithRates mengganti tabel tarif, misalnya untuk tahun pajak berbeda.
func (e *Engine) WithRates(rates Rates) *Engine {
	e.rates = rates
	return e
}

// WithClock dipakai tes untuk mengunci tanggal pembayaran.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Run menghitung gaji satu karyawan untuk satu periode.
//
// Ketiga sumber data diambil paralel lewat errgroup: kegagalan pertama
// membatalkan context grup sehingga fetch lain berhenti, dan perhitungan
// tidak pernah berjalan dengan input parsial.
func (e *Engine) Run(ctx context.Context, username string, personalID string, year, month int) (*Result, error) {
	start := e.now()

	var (
		info *employee.PayrollInfo
		days []attendance.PayrollDay
		cfg  *payconfig.PayConfig
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		info, err = e.employees.FindPayrollInfo(gctx, username, personalID)
		if err != nil {
			return fmt.Errorf("fetch employee: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		days, err = e.attendances.FindPayrollDays(gctx, username, personalID, year, month)
		if err != nil {
			return fmt.Errorf("fetch attendance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cfg, err = e.configs.FindByPersonalID(gctx, username, personalID)
		if err != nil {
			return fmt.Errorf("fetch pay config: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		e.logger.Error("payroll input fetch failed",
			zap.String("personal_id", personalID),
			zap.Int("year", year),
			zap.Int("month", month),
			zap.Error(err),
		)
		return nil, apperror.Wrap(err, apperror.CodeServiceUnavailable, "Failed to fetch payroll inputs", http.StatusServiceUnavailable)
	}

	if info == nil {
		return nil, payrollerrors.ErrEmployeeNotFound
	}
	if len(days) == 0 {
		return nil, payrollerrors.ErrAttendanceMissing
	}
	if cfg == nil {
		return nil, payrollerrors.ErrPayConfigMissing
	}

	// Seluruh baris divalidasi, bukan hanya baris pertama: satu baris
	// milik karyawan lain cukup untuk menggagalkan perhitungan.
	for _, day := range days {
		if day.PersonalID != info.PersonalID {
			e.logger.Error("attendance row belongs to another employee",
				zap.String("expected_personal_id", info.PersonalID),
				zap.String("actual_personal_id", day.PersonalID),
				zap.Time("attendance_date", day.Date),
			)
			return nil, payrollerrors.ErrDataMismatch
		}
	}

	// Periode slip mengikuti tanggal absensi pertama, bukan parameter request.
	periodYear := days[0].Date.Year()
	periodMonth := int(days[0].Date.Month())

	overtime, err := ComputeOvertime(days, e.rates.Overtime)
	if err != nil {
		return nil, err
	}

	travelDays := CountTravelDays(days)
	gross := ComputeGross(overtime, travelDays, cfg.HourlyRate, e.rates)
	deductions := ComputeDeductions(gross.Total, cfg.CreditPoints, e.rates)

	netSalary := gross.Total.Sub(deductions.Total)
	employerCost := gross.Total.
		Add(deductions.EmployerPension).
		Add(deductions.EmployerSeverance).
		Add(deductions.EmployerNI)

	result := &Result{
		Username:         username,
		Employee:         *info,
		Year:             periodYear,
		Month:            periodMonth,
		PaymentDate:      start,
		HourlyRate:       cfg.HourlyRate,
		CreditPoints:     cfg.CreditPoints,
		PensionFund:      cfg.PensionFund,
		ProvidentFund:    cfg.ProvidentFund,
		InsuranceCompany: cfg.InsuranceCompany,
		TravelDays:       travelDays,
		Overtime:         overtime,
		Gross:            gross,
		Deductions:       deductions,
		NetSalary:        netSalary,
		EmployerCost:     employerCost,
	}

	e.logger.Info("payroll computed",
		zap.String("personal_id", personalID),
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("attendance_days", len(days)),
		zap.String("gross_salary", gross.Total.StringFixed(2)),
		zap.String("net_salary", netSalary.StringFixed(2)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return result, nil
}
