package payroll_test

import (
	"testing"

	"github.com/Yosefnago/emp-backend/internal/payroll"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeGross(t *testing.T) {
	rates := payroll.DefaultRates()
	rate100 := decimal.RequireFromString("100")

	t.Run("single regular day", func(t *testing.T) {
		got := payroll.ComputeGross(payroll.OvertimeBreakdown{RegularHours: 8}, 0, rate100, rates)

		assert.Equal(t, "800.00", got.Total.StringFixed(2))
		assert.Equal(t, "800.00", got.RegularPay.StringFixed(2))
		assert.Equal(t, "0.00", got.TravelAllowance.StringFixed(2))
	})

	t.Run("day with both overtime tiers", func(t *testing.T) {
		breakdown := payroll.OvertimeBreakdown{RegularHours: 8, Hours125: 2, Hours150: 1}

		got := payroll.ComputeGross(breakdown, 0, rate100, rates)

		assert.Equal(t, "800.00", got.RegularPay.StringFixed(2))
		assert.Equal(t, "250.00", got.Overtime125Pay.StringFixed(2))
		assert.Equal(t, "150.00", got.Overtime150Pay.StringFixed(2))
		assert.Equal(t, "1200.00", got.Total.StringFixed(2))
	})

	t.Run("travel allowance is per travel day without cap", func(t *testing.T) {
		got := payroll.ComputeGross(payroll.OvertimeBreakdown{}, 23, rate100, rates)

		assert.Equal(t, "519.80", got.TravelAllowance.StringFixed(2))
		assert.Equal(t, "519.80", got.Total.StringFixed(2))
	})

	t.Run("total rounds half up to two decimals", func(t *testing.T) {
		rate := decimal.RequireFromString("0.005")

		got := payroll.ComputeGross(payroll.OvertimeBreakdown{RegularHours: 1}, 0, rate, rates)

		assert.Equal(t, "0.01", got.Total.String())
	})

	t.Run("components stay unrounded", func(t *testing.T) {
		rate := decimal.RequireFromString("10.333")

		got := payroll.ComputeGross(payroll.OvertimeBreakdown{Hours125: 1}, 0, rate, rates)

		// 10.333 * 1.25 = 12.91625: komponen utuh, total dibulatkan.
		assert.Equal(t, "12.91625", got.Overtime125Pay.String())
		assert.Equal(t, "12.92", got.Total.StringFixed(2))
	})
}
