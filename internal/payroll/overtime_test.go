package payroll_test

import (
	"testing"
	"time"

	"github.com/Yosefnago/emp-backend/internal/attendance"
	"github.com/Yosefnago/emp-backend/internal/payroll"
	payrollerrors "github.com/Yosefnago/emp-backend/internal/payroll/errors"

	"github.com/stretchr/testify/assert"
)

func day(hours float64, travel bool) attendance.PayrollDay {
	return attendance.PayrollDay{
		PersonalID:  "123456789",
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		TotalHours:  hours,
		Status:      "PRESENT",
		TravelAllow: travel,
	}
}

func TestComputeOvertime(t *testing.T) {
	rules := payroll.DefaultRates().Overtime

	t.Run("regular day stays in regular bucket", func(t *testing.T) {
		got, err := payroll.ComputeOvertime([]attendance.PayrollDay{day(8, false)}, rules)

		assert.NoError(t, err)
		assert.Equal(t, 8.0, got.RegularHours)
		assert.Equal(t, 0.0, got.Hours125)
		assert.Equal(t, 0.0, got.Hours150)
	})

	t.Run("hours above 8 spill into 125 tier", func(t *testing.T) {
		got, err := payroll.ComputeOvertime([]attendance.PayrollDay{day(9.5, false)}, rules)

		assert.NoError(t, err)
		assert.Equal(t, 8.0, got.RegularHours)
		assert.Equal(t, 1.5, got.Hours125)
		assert.Equal(t, 0.0, got.Hours150)
	})

	t.Run("hours above 10 spill into 150 tier", func(t *testing.T) {
		got, err := payroll.ComputeOvertime([]attendance.PayrollDay{day(11, false)}, rules)

		assert.NoError(t, err)
		assert.Equal(t, 8.0, got.RegularHours)
		assert.Equal(t, 2.0, got.Hours125)
		assert.Equal(t, 1.0, got.Hours150)
	})

	t.Run("bucketing is per day not per period total", func(t *testing.T) {
		days := []attendance.PayrollDay{day(9, false), day(9, false)}

		got, err := payroll.ComputeOvertime(days, rules)

		assert.NoError(t, err)
		assert.Equal(t, 16.0, got.RegularHours)
		assert.Equal(t, 2.0, got.Hours125)
		assert.Equal(t, 0.0, got.Hours150)
	})

	t.Run("empty period yields zero breakdown", func(t *testing.T) {
		got, err := payroll.ComputeOvertime(nil, rules)

		assert.NoError(t, err)
		assert.Equal(t, payroll.OvertimeBreakdown{}, got)
	})

	t.Run("negative hours is a data integrity error", func(t *testing.T) {
		_, err := payroll.ComputeOvertime([]attendance.PayrollDay{day(-1, false)}, rules)

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidAttendanceHours)
	})
}

func TestCountTravelDays(t *testing.T) {
	days := []attendance.PayrollDay{
		day(8, true),
		day(8, false),
		day(4, true),
	}

	assert.Equal(t, 2, payroll.CountTravelDays(days))
	assert.Equal(t, 0, payroll.CountTravelDays(nil))
}
