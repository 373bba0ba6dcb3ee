package wiparse

import (
	"regexp"

	"github.com/resolvetax/transcript-service/dto"
)

// FieldPattern is one named field a form can carry. Pattern captures the raw
// value in group 1. A nil pattern declares the field without a way to extract
// it (some forms list withholding as explicitly not present).
type FieldPattern struct {
	Name    string
	Pattern *regexp.Regexp
}

// FormPattern describes how to recognize one IRS form inside a transcript and
// which fields to pull out of its block.
type FormPattern struct {
	Code     string
	Header   *regexp.Regexp
	Category dto.Category
	Fields   []FieldPattern
}

// amt matches a currency amount after a label, tolerating OCR'd colons and a
// missing dollar sign.
const amt = `[:\s]*\$?\s*([\d,.]+)`

func field(name, expr string) FieldPattern {
	return FieldPattern{Name: name, Pattern: regexp.MustCompile(`(?i)` + expr)}
}

// formPatterns is the pattern table. Order is significant: matching is first
// match wins, so more specific headers (W-2G, 5498-SA, 1098-E) sit before the
// prefixes they share (W-2, 5498, 1098). The table is built once at package
// init and is read-only afterwards; it is safe for concurrent use.
var formPatterns = []FormPattern{
	{
		Code:     "W-2G",
		Header:   regexp.MustCompile(`(?i)Form\s+W-?2G`),
		Category: dto.CategoryNonSE,
		Fields: []FieldPattern{
			field("gross_winnings", `Gross\s+winnings`+amt),
			field("federal_withholding", `Federal\s+income\s+tax\s+withheld`+amt),
			field("payer_fin", `Payer'?s\s+Federal\s+Identification\s+Number\s*\(FIN\):?\s*([\dX\-]+)`),
		},
	},
	{
		// Header tolerates the OCR quirks seen on real W-2 transcript pages:
		// stray spaces and en dashes inside "W-2".
		Code:     "W-2",
		Header:   regexp.MustCompile(`(?i)Form\s*W\s*[-–]?\s*2\b`),
		Category: dto.CategoryNonSE,
		Fields: []FieldPattern{
			field("wages", `Wages[\s,]*Tips[\s,]*(?:and|&)?[\s,]*Other[\s,]*Compensation`+amt),
			field("federal_withholding", `Federal[\s,]*Income[\s,]*Tax[\s,]*Withheld`+amt),
			field("social_security_wages", `Social\s+Security\s+Wages`+amt),
			field("medicare_wages", `Medicare\s+Wages\s+and\s+Tips`+amt),
			field("employer_ein", `Employer\s+Identification\s+Number\s*\(EIN\):?\s*([\dX\-]+)`),
		},
	},
	{
		Code:     "1099-MISC",
		Header:   regexp.MustCompile(`(?i)Form\s+1099-MISC`),
		Category: dto.CategorySE,
		Fields: []FieldPattern{
			field("nonemployee_compensation", `Non[- ]?Employee[- ]?Compensation`+amt),
			field("medical_payments", `Medical[- ]?Payments`+amt),
			field("fishing_income", `Fishing[- ]?Income`+amt),
			field("rents", `Rents`+amt),
			field("royalties", `Royalties`+amt),
			field("attorney_fees", `Attorney[- ]?Fees`+amt),
			field("other_income", `Other[- ]?Income`+amt),
			field("substitute_dividends", `Substitute[- ]?Payments[- ]?for[- ]?Dividends`+amt),
			field("federal_withholding", `Federal[\s,]*Income[\s,]*Tax[\s,]*Withheld`+amt),
			field("tax_withheld", `Tax[- ]?Withheld`+amt),
			field("payer_fin", `Payer'?s\s+Federal\s+Identification\s+Number\s*\(FIN\):?\s*([\dX\-]+)`),
		},
	},
	{
		Code:     "1099-NEC",
		Header:   regexp.MustCompile(`(?i)Form\s+1099-NEC`),
		Category: dto.CategorySE,
		Fields: []FieldPattern{
			field("nonemployee_compensation", `Non[- ]?Employee[- ]?Compensation`+amt),
			field("federal_withholding", `Federal[\s,]*Income[\s,]*Tax[\s,]*Withheld`+amt),
			field("payer_fin", `(?:Payer'?s\s+Federal\s+Identification\s+Number\s*\(FIN\)|Issuer'?s/Provider'?s\s+Federal\s+ID\s+No\.?):?\s*([\dX\-]+)`),
		},
	},
	{
		Code:     "1099-K",
		Header:   regexp.MustCompile(`(?i)Form\s+1099-K`),
		Category: dto.CategorySE,
		Fields: []FieldPattern{
			field("gross_amount", `Gross\s+amount\s+of\s+payment\s+card/third\s+party\s+transactions`+amt),
			field("federal_withholding", `Federal\s+income\s+tax\s+withheld`+amt),
			field("payer_fin", `Payer'?s\s+Federal\s+Identification\s+Number\s*\(FIN\):?\s*([\dX\-]+)`),
		},
	},
	{
		Code:     "1099-PATR",
		Header:   regexp.MustCompile(`(?i)Form\s+1099-PATR`),
		Category: dto.CategorySE,
		Fields: []FieldPattern{
			field("patronage_dividends", `Patronage\s+dividends`+amt),
			field("nonpatronage_distribution", `Non-?patronage\s+distribution`+amt),
			field("retained_allocations", `Retained\s+allocations`+amt),
			field("redemption_amount", `Redemption\s+amount`+amt),
			field("federal_withholding", `Tax\s+withheld`+amt),
			field("payer_fin", `Payer'?s\s+Federal\s+Identification\s+Number\s*\(FIN\):?\s*([\dX\-]+)`),
		},
	},
	{
		Code:     "1099-R",
		Header:   regexp.MustCompile(`(?i)Form\s+1099-R`),
		Category: dto.CategoryNonSE,
		Fields: []FieldPattern{
			field("taxable_amount", `Taxable\s+amount`+amt),
			field("gross_distribution", `Gross\s+distribution`+amt),
			field("federal_withholding", `Tax\s+withheld`+amt),
			field("payer_fin", `Payer'?s\s+Federal\s+Identification\s+Number\s*\(FIN\):?\s*([\dX\-]+)`),
		},
	},
	{
		Code:     "1099-B",
		Header:   regexp.MustCompile(`(?i)Form\s+1099-B`),
		Category: dto.CategoryOther,
		Fields: []FieldPattern{
			field("proceeds", `Proceeds`+amt),
			field("cost_basis", `Cost\s+or\s+basis`+amt),
			field("federal_withholding", `Federal\s+income\s+tax\s+withheld`+amt),
			field("payer_fin", `Payer'?s\s+Federal\s+Identification\s+Number\s*\(FIN\):?\s*([\dX\-]+)`),
		},
	},
	{
		Code:     "1099-DIV",
		Header:   regexp.MustCompile(`(?i)Form\s+1099-DIV`),
		Category: dto.CategoryOther,
		Fields: []FieldPattern{
			field("qualified_dividends", `Qualified\s+dividends`+amt),
			field("cash_liquidation_distribution", `Cash\s+liquidation\s+distribution`+amt),
			field("capital_gains", `Capital\s+gains`+amt),
			field("federal_withholding", `Tax\s+withheld`+amt),
			field("payer_fin", `Payer'?s\s+Federal\s+Identification\s+Number\s*\(FIN\):?\s*([\dX\-]+)`),
		},
	},
	{
		Code:     "1099-INT",
		Header:   regexp.MustCompile(`(?i)Form\s+1099-INT`),
		Category: dto.CategoryOther,
		Fields: []FieldPattern{
			field("interest", `Interest`+amt),
			field("savings_bonds", `Savings\s+bonds`+amt),
			field("federal_withholding", `Tax\s+withheld`+amt),
			field("payer_fin", `Payer'?s\s+Federal\s+Identification\s+Number\s*\(FIN\):?\s*([\dX\-]+)`),
		},
	},
	{
		Code:     "1099-G",
		Header:   regexp.MustCompile(`(?i)Form\s+1099-G`),
		Category: dto.CategoryOther,
		Fields: []FieldPattern{
			field("unemployment_compensation", `Unemployment\s+compensation`+amt),
			field("agricultural_subsidies", `Agricultural\s+subsidies`+amt),
			field("taxable_grants", `Taxable\s+grants`+amt),
			field("prior_year_refund", `Prior\s+year\s+refund`+amt),
			field("federal_withholding", `Tax\s+withheld`+amt),
		},
	},
	{
		Code:     "1099-S",
		Header:   regexp.MustCompile(`(?i)Form\s+1099-S\b`),
		Category: dto.CategoryOther,
		Fields: []FieldPattern{
			field("gross_proceeds", `Gross\s+proceeds`+amt),
			field("payer_fin", `Payer'?s\s+Federal\s+Identification\s+Number\s*\(FIN\):?\s*([\dX\-]+)`),
		},
	},
	{
		Code:     "1099-OID",
		Header:   regexp.MustCompile(`(?i)Form\s+1099-OID`),
		Category: dto.CategoryOther,
		Fields: []FieldPattern{
			field("original_issue_discount", `Original\s+issue\s+discount`+amt),
			field("interest", `Interest`+amt),
			field("federal_withholding", `Tax\s+withheld`+amt),
		},
	},
	{
		Code:     "1099-C",
		Header:   regexp.MustCompile(`(?i)Form\s+1099-C\b`),
		Category: dto.CategoryOther,
		Fields: []FieldPattern{
			field("debt_discharged", `Amount\s+of\s+debt\s+discharged`+amt),
			field("property_fair_market_value", `Property\s+fair\s+market\s+value`+amt),
		},
	},
	{
		Code:     "1099-Q",
		Header:   regexp.MustCompile(`(?i)Form\s+1099-Q\b`),
		Category: dto.CategoryOther,
		Fields: []FieldPattern{
			field("gross_distribution", `Gross\s+Distributions?`+amt),
			field("payer_fin", `Payer'?s\s+Federal\s+Identification\s+Number\s*\(FIN\):?\s*([\dX\-]+)`),
		},
	},
	{
		Code:     "1099-SA",
		Header:   regexp.MustCompile(`(?i)Form\s+1099-SA`),
		Category: dto.CategoryOther,
		Fields: []FieldPattern{
			field("msa_gross_distributions", `MSA\s+gross\s+distributions`+amt),
		},
	},
	{
		Code:     "1099-LTC",
		Header:   regexp.MustCompile(`(?i)Form\s+1099-LTC`),
		Category: dto.CategoryOther,
		Fields: []FieldPattern{
			field("gross_benefits", `Gross\s+(?:long-term\s+care\s+)?benefits(?:\s+paid)?`+amt),
			field("accelerated_death_benefits", `Accelerated\s+death\s+benefits\s+paid`+amt),
		},
	},
	{
		Code:     "SSA-1099",
		Header:   regexp.MustCompile(`(?i)Form\s+SSA-1099`),
		Category: dto.CategoryNonSE,
		Fields: []FieldPattern{
			field("total_benefits_paid", `Pensions\s+and\s+Annuities\s+\(Total\s+Benefits\s+Paid\)[:\s]*[\r\n\s]*\$?\s*([\d,.]+)`),
			field("repayments", `Repayments`+amt),
			field("federal_withholding", `Tax\s+Withheld`+amt),
		},
	},
	{
		Code:     "1042-S",
		Header:   regexp.MustCompile(`(?i)Form\s+1042-S`),
		Category: dto.CategoryOther,
		Fields: []FieldPattern{
			field("gross_income", `Gross\s+income`+amt),
			field("federal_withholding", `U\.?S\.?\s+federal\s+tax\s+withheld`+amt),
		},
	},
	{
		Code:     "K-1 (Form 1065)",
		Header:   regexp.MustCompile(`(?i)Schedule\s+K-1\s+\(Form\s+1065\)`),
		Category: dto.CategorySE,
		Fields: []FieldPattern{
			field("royalties", `Royalties`+amt),
			field("ordinary_income", `Ordinary\s+income`+amt),
			field("real_estate", `Real\s+estate`+amt),
			field("other_rental", `Other\s+rental`+amt),
			field("guaranteed_payments", `Guaranteed\s+payments`+amt),
		},
	},
	{
		Code:     "K-1 (Form 1041)",
		Header:   regexp.MustCompile(`(?i)Schedule\s+K-1\s+\(Form\s+1041\)`),
		Category: dto.CategoryOther,
		Fields: []FieldPattern{
			field("net_rental_real_estate_income", `Net\s+rental\s+real\s+estate\s+income`+amt),
			field("other_rental_income", `Other\s+rental\s+income`+amt),
		},
	},
	{
		Code:     "K-1 (Form 1120S)",
		Header:   regexp.MustCompile(`(?i)Schedule\s+K-1\s+\(Form\s+1120-?S\)`),
		Category: dto.CategoryOther,
		Fields: []FieldPattern{
			field("dividends", `Dividends`+amt),
			field("interest", `Interest`+amt),
			field("royalties", `Royalties`+amt),
			field("ordinary_income", `Ordinary\s+income`+amt),
			field("real_estate", `Real\s+estate`+amt),
			field("other_rental", `Other\s+rental`+amt),
		},
	},
	{
		Code:     "3922",
		Header:   regexp.MustCompile(`(?i)Form\s+3922`),
		Category: dto.CategoryOther,
		Fields: []FieldPattern{
			field("exercise_fair_market_value", `Exercise\s+fair\s+market\s+value\s+per\s+share`+amt),
			field("exercise_price_per_share", `Exercise\s+price\s+per\s+share`+amt),
			field("shares_transferred", `Number\s+of\s+shares\s+transferred`+amt),
		},
	},
	{
		Code:     "5498-SA",
		Header:   regexp.MustCompile(`(?i)Form\s+5498-SA`),
		Category: dto.CategoryOther,
		Fields:   nil,
	},
	{
		Code:     "5498",
		Header:   regexp.MustCompile(`(?i)Form\s+5498`),
		Category: dto.CategoryOther,
		Fields: []FieldPattern{
			field("fair_market_value", `Fair\s+market\s+value\s+of\s+account`+amt),
		},
	},
	{
		Code:     "1098-E",
		Header:   regexp.MustCompile(`(?i)Form\s+1098-E`),
		Category: dto.CategoryOther,
		Fields: []FieldPattern{
			field("received_by_lender", `Received\s+by\s+Lender`+amt),
		},
	},
	{
		Code:     "1098-T",
		Header:   regexp.MustCompile(`(?i)Form\s+1098-T`),
		Category: dto.CategoryOther,
		Fields: []FieldPattern{
			field("qualified_tuition", `Qualified\s+tuition\s+and\s+related\s+expenses`+amt),
		},
	},
	{
		Code:     "1098",
		Header:   regexp.MustCompile(`(?i)Form\s+1098\b`),
		Category: dto.CategoryOther,
		Fields: []FieldPattern{
			field("outstanding_mortgage_principal", `Outstanding\s+Mortgage\s+Princip[al]+e?`+amt),
			field("mortgage_interest_received", `Mortgage\s+Interest\s+Received\s+from\s+Payer\(s\)/Borrower\(s\)`+amt),
		},
	},
}

// genericHeader catches form headings the table does not know about, so an
// unrecognized form still gets its own isolated block instead of leaking its
// lines into the previous one. The token must open with a digit or capital
// so prose like "Form of payment" never starts a block.
var genericHeader = regexp.MustCompile(`^(?i:Form|Schedule)\s+[A-Z0-9]\S*`)

// Patterns returns the pattern table in match-priority order. Callers must
// treat the result as read-only.
func Patterns() []FormPattern {
	return formPatterns
}

// Lookup resolves a raw block header to a pattern entry. First matching entry
// wins; header patterns that overlap for the same literal text are resolved
// by table order, deliberately. Returns nil for unrecognized headers.
func Lookup(headerText string) *FormPattern {
	for i := range formPatterns {
		if formPatterns[i].Header.MatchString(headerText) {
			return &formPatterns[i]
		}
	}
	return nil
}
