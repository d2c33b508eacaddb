package attendance_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Yosefnago/emp-backend/internal/attendance"
	attendanceerrors "github.com/Yosefnago/emp-backend/internal/attendance/errors"
	"github.com/Yosefnago/emp-backend/internal/employee"

	"github.com/stretchr/testify/assert"
)

type fakeAttendanceRepository struct {
	createFn          func(ctx context.Context, a *attendance.Attendance) error
	findPayrollDaysFn func(ctx context.Context, username, personalID string, year, month int) ([]attendance.PayrollDay, error)
}

func (f *fakeAttendanceRepository) Create(ctx context.Context, a *attendance.Attendance) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeAttendanceRepository) FindPayrollDays(ctx context.Context, username, personalID string, year, month int) ([]attendance.PayrollDay, error) {
	if f.findPayrollDaysFn != nil {
		return f.findPayrollDaysFn(ctx, username, personalID, year, month)
	}
	return nil, nil
}

type fakeEmployeeRepository struct {
	findByPersonalIDFn func(ctx context.Context, username, personalID string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepository) FindByPersonalID(ctx context.Context, username, personalID string) (*employee.Employee, error) {
	if f.findByPersonalIDFn != nil {
		return f.findByPersonalIDFn(ctx, username, personalID)
	}
	return &employee.Employee{Username: username, PersonalID: personalID, FullName: "Dana Levi", Active: true}, nil
}

func (f *fakeEmployeeRepository) FindAllByOwner(ctx context.Context, username string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) FindPayrollInfo(ctx context.Context, username, personalID string) (*employee.PayrollInfo, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	return nil
}

func TestAttendanceRecord(t *testing.T) {
	ctx := context.Background()
	req := attendance.RecordAttendanceRequest{
		PersonalID:  "123456789",
		Date:        "2025-03-10",
		TotalHours:  9.5,
		TravelAllow: true,
		Status:      "PRESENT",
	}

	t.Run("records a day for an active employee", func(t *testing.T) {
		var saved *attendance.Attendance
		repo := &fakeAttendanceRepository{
			createFn: func(ctx context.Context, a *attendance.Attendance) error {
				saved = a
				return nil
			},
		}

		svc := attendance.NewService(repo, &fakeEmployeeRepository{})

		resp, err := svc.Record(ctx, "yossi", req)

		assert.NoError(t, err)
		assert.Equal(t, "2025-03-10", resp.Date)
		assert.Equal(t, 9.5, resp.TotalHours)

		if assert.NotNil(t, saved) {
			assert.Equal(t, "yossi", saved.Username)
			assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), saved.AttendanceDate)
			assert.True(t, saved.TravelAllow)
		}
	})

	t.Run("rejects unknown employee", func(t *testing.T) {
		employees := &fakeEmployeeRepository{
			findByPersonalIDFn: func(ctx context.Context, username, personalID string) (*employee.Employee, error) {
				return nil, nil
			},
		}

		svc := attendance.NewService(&fakeAttendanceRepository{}, employees)

		_, err := svc.Record(ctx, "yossi", req)

		assert.ErrorIs(t, err, attendanceerrors.ErrUnknownEmployee)
	})

	t.Run("rejects inactive employee", func(t *testing.T) {
		employees := &fakeEmployeeRepository{
			findByPersonalIDFn: func(ctx context.Context, username, personalID string) (*employee.Employee, error) {
				return &employee.Employee{Username: username, PersonalID: personalID, Active: false}, nil
			},
		}

		svc := attendance.NewService(&fakeAttendanceRepository{}, employees)

		_, err := svc.Record(ctx, "yossi", req)

		assert.ErrorIs(t, err, attendanceerrors.ErrInactiveEmployee)
	})
}

func TestAttendanceGetPeriod(t *testing.T) {
	ctx := context.Background()

	repo := &fakeAttendanceRepository{
		findPayrollDaysFn: func(ctx context.Context, username, personalID string, year, month int) ([]attendance.PayrollDay, error) {
			return []attendance.PayrollDay{
				{
					PersonalID:  personalID,
					Date:        time.Date(year, time.Month(month), 3, 0, 0, 0, 0, time.UTC),
					TotalHours:  8,
					Status:      "PRESENT",
					TravelAllow: true,
				},
			}, nil
		},
	}

	svc := attendance.NewService(repo, &fakeEmployeeRepository{})

	resp, err := svc.GetPeriod(ctx, "yossi", "123456789", 2025, 3)

	assert.NoError(t, err)
	if assert.Len(t, resp, 1) {
		assert.Equal(t, "2025-03-03", resp[0].Date)
		assert.True(t, resp[0].TravelAllow)
	}
}
