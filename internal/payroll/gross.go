package payroll

import "github.com/shopspring/decimal"

// ComputeGross menghitung komponen gaji kotor dari breakdown jam kerja.
// Komponen individual disimpan tanpa pembulatan; hanya Total yang dibulatkan
// ke 2 desimal (half up) karena total itulah basis seluruh potongan.
func ComputeGross(
	overtime OvertimeBreakdown,
	travelDays int,
	hourlyRate decimal.Decimal,
	rates Rates,
) GrossBreakdown {
	regularPay := decimal.NewFromFloat(overtime.RegularHours).Mul(hourlyRate)
	pay125 := decimal.NewFromFloat(overtime.Hours125).Mul(hourlyRate).Mul(rates.Overtime.Rate125)
	pay150 := decimal.NewFromFloat(overtime.Hours150).Mul(hourlyRate).Mul(rates.Overtime.Rate150)
	travel := decimal.NewFromInt(int64(travelDays)).Mul(rates.DailyTravelRate)

	total := regularPay.Add(pay125).Add(pay150).Add(travel).Round(2)

	return GrossBreakdown{
		RegularPay:      regularPay,
		Overtime125Pay:  pay125,
		Overtime150Pay:  pay150,
		TravelAllowance: travel,
		Total:           total,
	}
}
