package payroll

import "github.com/shopspring/decimal"

// ComputeDeductions menghitung seluruh potongan wajib dari gaji kotor.
// Urutan penting: pensiun karyawan mengurangi penghasilan kena pajak,
// sedangkan bituah leumi dihitung dari gaji kotor penuh.
func ComputeDeductions(gross decimal.Decimal, creditPoints decimal.Decimal, rates Rates) Deductions {
	employeePension := gross.Mul(rates.Pension.Employee)

	taxable := gross.Sub(employeePension)
	grossTax := incomeTax(taxable, rates.TaxBrackets)

	creditDiscount := creditPoints.Mul(rates.CreditPointValue)
	netTax := grossTax.Sub(creditDiscount)
	if netTax.IsNegative() {
		netTax = decimal.Zero
	}

	employeeNI := nationalInsurance(gross, rates.NI.Threshold, rates.NI.EmployeeBelow, rates.NI.EmployeeAbove)
	employerNI := nationalInsurance(gross, rates.NI.Threshold, rates.NI.EmployerBelow, rates.NI.EmployerAbove)

	return Deductions{
		EmployeePension:   employeePension,
		EmployeeNI:        employeeNI,
		TaxableIncome:     taxable,
		GrossTax:          grossTax,
		CreditDiscount:    creditDiscount,
		NetTax:            netTax,
		Total:             employeePension.Add(employeeNI).Add(netTax),
		EmployerPension:   gross.Mul(rates.Pension.Employer),
		EmployerSeverance: gross.Mul(rates.Pension.EmployerSeverance),
		EmployerNI:        employerNI,
	}
}

// incomeTax menjumlahkan pajak marginal per lapisan secara kumulatif.
// Lapisan harus terurut naik; lapisan terakhir tanpa batas atas.
func incomeTax(taxable decimal.Decimal, brackets []TaxBracket) decimal.Decimal {
	if !taxable.IsPositive() {
		return decimal.Zero
	}

	tax := decimal.Zero
	lower := decimal.Zero
	for _, b := range brackets {
		if taxable.LessThanOrEqual(lower) {
			break
		}

		upper := taxable
		if b.Upper != nil && b.Upper.LessThan(taxable) {
			upper = *b.Upper
		}
		tax = tax.Add(upper.Sub(lower).Mul(b.Rate))

		if b.Upper == nil {
			break
		}
		lower = *b.Upper
	}

	return tax
}

// nationalInsurance: dua lapisan dengan batas tunggal. Bagian sampai batas
// dikenai tarif rendah, sisanya tarif penuh.
func nationalInsurance(gross, threshold, below, above decimal.Decimal) decimal.Decimal {
	if !gross.IsPositive() {
		return decimal.Zero
	}

	if gross.LessThanOrEqual(threshold) {
		return gross.Mul(below)
	}

	base := threshold.Mul(below)
	excess := gross.Sub(threshold).Mul(above)
	return base.Add(excess)
}
