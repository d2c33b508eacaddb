package payroll

import "github.com/shopspring/decimal"

// TaxBracket adalah satu lapisan pajak marginal. Upper == nil berarti
// lapisan teratas tanpa batas.
type TaxBracket struct {
	Upper *decimal.Decimal
	Rate  decimal.Decimal
}

// NIRates: bituah leumi dua lapisan, sisi karyawan dan pemberi kerja.
type NIRates struct {
	Threshold     decimal.Decimal
	EmployeeBelow decimal.Decimal
	EmployeeAbove decimal.Decimal
	EmployerBelow decimal.Decimal
	EmployerAbove decimal.Decimal
}

type PensionRates struct {
	Employee          decimal.Decimal
	Employer          decimal.Decimal
	EmployerSeverance decimal.Decimal
}

type OvertimeRules struct {
	RegularDailyLimit float64
	Tier125Limit      float64
	Rate125           decimal.Decimal
	Rate150           decimal.Decimal
}

// Rates adalah tabel tarif resmi untuk satu tahun pajak. Seluruh kalkulator
// menerima tabel ini sebagai input sehingga perubahan tarif tahunan tidak
// menyentuh logika perhitungan.
type Rates struct {
	TaxYear          int
	TaxBrackets      []TaxBracket
	NI               NIRates
	Pension          PensionRates
	Overtime         OvertimeRules
	CreditPointValue decimal.Decimal
	DailyTravelRate  decimal.Decimal
}

func bracket(upper string, rate string) TaxBracket {
	u := decimal.RequireFromString(upper)
	return TaxBracket{Upper: &u, Rate: decimal.RequireFromString(rate)}
}

// DefaultRates mengembalikan tabel tarif tahun pajak 2025.
func DefaultRates() Rates {
	return Rates{
		TaxYear: 2025,
		TaxBrackets: []TaxBracket{
			bracket("7010", "0.10"),
			bracket("10060", "0.14"),
			bracket("16150", "0.20"),
			bracket("22440", "0.31"),
			bracket("46690", "0.35"),
			bracket("60130", "0.47"),
			{Upper: nil, Rate: decimal.RequireFromString("0.50")},
		},
		NI: NIRates{
			Threshold:     decimal.RequireFromString("7522"),
			EmployeeBelow: decimal.RequireFromString("0.035"),
			EmployeeAbove: decimal.RequireFromString("0.12"),
			EmployerBelow: decimal.RequireFromString("0.0355"),
			EmployerAbove: decimal.RequireFromString("0.076"),
		},
		Pension: PensionRates{
			Employee:          decimal.RequireFromString("0.06"),
			Employer:          decimal.RequireFromString("0.065"),
			EmployerSeverance: decimal.RequireFromString("0.0833"),
		},
		Overtime: OvertimeRules{
			RegularDailyLimit: 8.0,
			Tier125Limit:      2.0,
			Rate125:           decimal.RequireFromString("1.25"),
			Rate150:           decimal.RequireFromString("1.50"),
		},
		CreditPointValue: decimal.RequireFromString("242"),
		DailyTravelRate:  decimal.RequireFromString("22.60"),
	}
}
