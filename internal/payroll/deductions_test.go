package payroll_test

import (
	"testing"

	"github.com/Yosefnago/emp-backend/internal/payroll"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeDeductions(t *testing.T) {
	rates := payroll.DefaultRates()
	noCredits := decimal.Zero

	t.Run("pension and taxable base", func(t *testing.T) {
		got := payroll.ComputeDeductions(decimal.RequireFromString("1000"), noCredits, rates)

		assert.Equal(t, "60.00", got.EmployeePension.StringFixed(2))
		assert.Equal(t, "940.00", got.TaxableIncome.StringFixed(2))
		// Seluruh taxable masih di lapisan pertama: 940 * 10%.
		assert.Equal(t, "94.00", got.GrossTax.StringFixed(2))
		assert.Equal(t, "35.00", got.EmployeeNI.StringFixed(2))
		assert.Equal(t, "189.00", got.Total.StringFixed(2))
	})

	t.Run("national insurance at the threshold uses the lower rate", func(t *testing.T) {
		got := payroll.ComputeDeductions(decimal.RequireFromString("7522"), noCredits, rates)

		assert.Equal(t, "263.27", got.EmployeeNI.StringFixed(2))
	})

	t.Run("national insurance is continuous across the threshold", func(t *testing.T) {
		atThreshold := payroll.ComputeDeductions(decimal.RequireFromString("7522"), noCredits, rates)
		justAbove := payroll.ComputeDeductions(decimal.RequireFromString("7523"), noCredits, rates)

		// Hanya 1 unit kelebihan yang kena tarif atas: 263.27 + 1*0.12.
		assert.Equal(t, "263.39", justAbove.EmployeeNI.StringFixed(2))
		assert.True(t, justAbove.EmployeeNI.GreaterThan(atThreshold.EmployeeNI))

		assert.Equal(t, "267.03", atThreshold.EmployerNI.StringFixed(2))
		assert.Equal(t, "267.11", justAbove.EmployerNI.StringFixed(2))
	})

	t.Run("income tax accumulates bracket by bracket", func(t *testing.T) {
		// Pensiun dinolkan supaya taxable == gross dan aritmetika lapisan
		// bisa dicek persis: 7010*10% + 3050*14% + 6090*20% + 3850*31%.
		flat := rates
		flat.Pension.Employee = decimal.Zero

		got := payroll.ComputeDeductions(decimal.RequireFromString("20000"), noCredits, flat)

		assert.Equal(t, "20000.00", got.TaxableIncome.StringFixed(2))
		assert.Equal(t, "3539.50", got.GrossTax.StringFixed(2))
	})

	t.Run("top bracket applies above the last boundary", func(t *testing.T) {
		flat := rates
		flat.Pension.Employee = decimal.Zero

		boundary := payroll.ComputeDeductions(decimal.RequireFromString("60130"), noCredits, flat)
		above := payroll.ComputeDeductions(decimal.RequireFromString("60131"), noCredits, flat)

		assert.Equal(t, "0.50", above.GrossTax.Sub(boundary.GrossTax).StringFixed(2))
	})

	t.Run("credit points reduce tax but never below zero", func(t *testing.T) {
		got := payroll.ComputeDeductions(decimal.RequireFromString("1000"), decimal.RequireFromString("2.25"), rates)

		assert.Equal(t, "544.50", got.CreditDiscount.StringFixed(2))
		assert.Equal(t, "0.00", got.NetTax.StringFixed(2))
		// Total hanya pensiun + NI saat pajak habis dikompensasi.
		assert.Equal(t, "95.00", got.Total.StringFixed(2))
	})

	t.Run("employer contributions are computed on full gross", func(t *testing.T) {
		got := payroll.ComputeDeductions(decimal.RequireFromString("1000"), noCredits, rates)

		assert.Equal(t, "65.00", got.EmployerPension.StringFixed(2))
		assert.Equal(t, "83.30", got.EmployerSeverance.StringFixed(2))
		assert.Equal(t, "35.50", got.EmployerNI.StringFixed(2))
	})

	t.Run("zero gross yields zero everywhere", func(t *testing.T) {
		got := payroll.ComputeDeductions(decimal.Zero, decimal.RequireFromString("2"), rates)

		assert.Equal(t, "0.00", got.GrossTax.StringFixed(2))
		assert.Equal(t, "0.00", got.NetTax.StringFixed(2))
		assert.Equal(t, "0.00", got.EmployeeNI.StringFixed(2))
		assert.Equal(t, "0.00", got.Total.StringFixed(2))
	})

	t.Run("same input computes the same output", func(t *testing.T) {
		gross := decimal.RequireFromString("12345.67")
		credits := decimal.RequireFromString("2.25")

		first := payroll.ComputeDeductions(gross, credits, rates)
		second := payroll.ComputeDeductions(gross, credits, rates)

		assert.Equal(t, first.Total.String(), second.Total.String())
		assert.Equal(t, first.NetTax.String(), second.NetTax.String())
	})
}
