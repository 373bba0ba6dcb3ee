package wiparse

// CalcFunc derives a dollar amount from a form's numeric fields. The map
// holds only fields that were present and parsed cleanly, so rules can tell
// "absent" apart from "present with value 0".
type CalcFunc func(fields map[string]float64) float64

// conventionalIncomeFields is the fallback read order for forms without a
// registered income rule: the first present field wins, else income is 0.
var conventionalIncomeFields = []string{
	"wages",
	"nonemployee_compensation",
	"gross_amount",
	"gross_winnings",
	"gross_income",
}

// incomeCalcs maps form codes to their income derivation. Forms absent here
// use the conventional direct-field fallback.
var incomeCalcs = map[string]CalcFunc{
	"1099-MISC":        income1099MISC,
	"1099-PATR":        income1099PATR,
	"1099-R":           income1099R,
	"1099-B":           income1099B,
	"1099-DIV":         income1099DIV,
	"1099-INT":         income1099INT,
	"1099-G":           income1099G,
	"1099-S":           income1099S,
	"1099-OID":         income1099OID,
	"1099-C":           income1099C,
	"SSA-1099":         incomeSSA1099,
	"K-1 (Form 1065)":  incomeK1065,
	"K-1 (Form 1041)":  incomeK1041,
	"K-1 (Form 1120S)": incomeK1120S,
	// Account balances, tuition, mortgage data and ISO exercises are
	// reference amounts, not income.
	"3922":    zeroAmount,
	"5498":    zeroAmount,
	"5498-SA": zeroAmount,
	"1098":    zeroAmount,
	"1098-E":  zeroAmount,
	"1098-T":  zeroAmount,
	"1099-Q":  zeroAmount,
	"1099-SA": zeroAmount,
	"1099-LTC": zeroAmount,
}

// withholdingCalcs maps form codes to their withholding derivation. Forms
// absent here read federal_withholding directly, defaulting to 0.
var withholdingCalcs = map[string]CalcFunc{
	"1099-MISC": withholding1099MISC,
}

func zeroAmount(map[string]float64) float64 { return 0 }

func income1099MISC(f map[string]float64) float64 {
	return f["nonemployee_compensation"] + f["medical_payments"] + f["fishing_income"] +
		f["rents"] + f["royalties"] + f["attorney_fees"] + f["other_income"] +
		f["substitute_dividends"]
}

func withholding1099MISC(f map[string]float64) float64 {
	return f["federal_withholding"] + f["tax_withheld"]
}

func income1099PATR(f map[string]float64) float64 {
	return f["patronage_dividends"] + f["nonpatronage_distribution"] +
		f["retained_allocations"] + f["redemption_amount"]
}

// income1099R prefers the taxable amount when the payer reported one, even a
// zero one; only then does it fall back to the gross distribution.
func income1099R(f map[string]float64) float64 {
	if v, ok := f["taxable_amount"]; ok {
		return v
	}
	return f["gross_distribution"]
}

func income1099B(f map[string]float64) float64 {
	return f["proceeds"] - f["cost_basis"]
}

func income1099DIV(f map[string]float64) float64 {
	return f["qualified_dividends"] + f["cash_liquidation_distribution"] + f["capital_gains"]
}

// income1099INT counts savings bond interest only above the 1000 reporting
// threshold, matching the back-office income worksheet convention.
func income1099INT(f map[string]float64) float64 {
	income := f["interest"]
	if f["savings_bonds"] >= 1000 {
		income += f["savings_bonds"]
	}
	return income
}

func income1099G(f map[string]float64) float64 {
	return f["unemployment_compensation"] + f["agricultural_subsidies"] + f["taxable_grants"]
}

func income1099S(f map[string]float64) float64 {
	return f["gross_proceeds"]
}

func income1099OID(f map[string]float64) float64 {
	return f["original_issue_discount"] + f["interest"]
}

// income1099C counts only the discharged debt; the property value is
// informational.
func income1099C(f map[string]float64) float64 {
	return f["debt_discharged"]
}

// incomeSSA1099 applies the 85% maximum-taxable fraction to benefits paid.
// The precise fraction depends on filing status and combined income, which
// this layer does not see; 85% is the conservative worksheet default.
func incomeSSA1099(f map[string]float64) float64 {
	return f["total_benefits_paid"] * 0.85
}

func incomeK1065(f map[string]float64) float64 {
	return f["royalties"] + f["ordinary_income"] + f["real_estate"] +
		f["other_rental"] + f["guaranteed_payments"]
}

func incomeK1041(f map[string]float64) float64 {
	return f["net_rental_real_estate_income"] + f["other_rental_income"]
}

func incomeK1120S(f map[string]float64) float64 {
	return f["dividends"] + f["interest"] + f["royalties"] +
		f["ordinary_income"] + f["real_estate"] + f["other_rental"]
}

// computeIncome derives a form's income from its numeric fields: the
// registered rule when one exists, else the first conventional income field
// present, else 0.
func computeIncome(code string, fields map[string]float64) float64 {
	if calc, ok := incomeCalcs[code]; ok {
		return calc(fields)
	}
	for _, name := range conventionalIncomeFields {
		if v, ok := fields[name]; ok {
			return v
		}
	}
	return 0
}

// computeWithholding derives a form's withholding: the registered rule when
// one exists, else the federal_withholding field, else 0.
func computeWithholding(code string, fields map[string]float64) float64 {
	if calc, ok := withholdingCalcs[code]; ok {
		return calc(fields)
	}
	return fields["federal_withholding"]
}
