package payroll

import (
	"fmt"

	"github.com/Yosefnago/emp-backend/internal/attendance"
	payrollerrors "github.com/Yosefnago/emp-backend/internal/payroll/errors"
)

// ComputeOvertime membagi jam kerja harian ke keranjang reguler / 125% / 150%.
// Pembagian dilakukan per hari, bukan per total periode: 2 hari x 9 jam
// menghasilkan 2 jam lembur 125%, bukan 16 jam reguler + 2 jam lembur.
func ComputeOvertime(days []attendance.PayrollDay, rules OvertimeRules) (OvertimeBreakdown, error) {
	var breakdown OvertimeBreakdown

	for _, day := range days {
		hours := day.TotalHours
		if hours < 0 {
			return OvertimeBreakdown{}, fmt.Errorf(
				"attendance %s has %.2f worked hours: %w",
				day.Date.Format("2006-01-02"), hours, payrollerrors.ErrInvalidAttendanceHours,
			)
		}

		regular := hours
		if regular > rules.RegularDailyLimit {
			regular = rules.RegularDailyLimit
		}
		breakdown.RegularHours += regular

		overtime := hours - regular
		if overtime <= 0 {
			continue
		}

		tier125 := overtime
		if tier125 > rules.Tier125Limit {
			tier125 = rules.Tier125Limit
		}
		breakdown.Hours125 += tier125
		breakdown.Hours150 += overtime - tier125
	}

	return breakdown, nil
}

// CountTravelDays menghitung hari dengan tunjangan perjalanan.
func CountTravelDays(days []attendance.PayrollDay) int {
	count := 0
	for _, day := range days {
		if day.TravelAllow {
			count++
		}
	}
	return count
}
