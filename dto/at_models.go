package dto

// ATTransaction is one posted transaction line on an account transcript.
type ATTransaction struct {
	Code        string  `json:"code"`
	Meaning     string  `json:"meaning"`
	Description string  `json:"description"`
	CycleDate   string  `json:"cycle_date,omitempty"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
}

// ATRecord is one account transcript's worth of data for a single tax year.
// TotalBalance is the account balance plus accrued interest and penalty.
type ATRecord struct {
	TaxYear             string          `json:"tax_year"`
	Owner               Owner           `json:"owner"`
	SourceFile          string          `json:"source_file"`
	FilingStatus        string          `json:"filing_status,omitempty"`
	ProcessingDate      string          `json:"processing_date,omitempty"`
	AccountBalance      float64         `json:"account_balance"`
	AccruedInterest     float64         `json:"accrued_interest"`
	AccruedPenalty      float64         `json:"accrued_penalty"`
	TotalBalance        float64         `json:"total_balance"`
	AdjustedGrossIncome float64         `json:"adjusted_gross_income"`
	TaxableIncome       float64         `json:"taxable_income"`
	TaxPerReturn        float64         `json:"tax_per_return"`
	ReturnFiled         bool            `json:"return_filed"`
	Transactions        []ATTransaction `json:"transactions"`
}

// ATOwnerBucket accumulates AT record counts for one party within a year.
type ATOwnerBucket struct {
	Records        int     `json:"records"`
	Transactions   int     `json:"transactions"`
	AccountBalance float64 `json:"account_balance"`
}

// ATOwnerTotals breaks a year's AT data down by TP/S attribution.
type ATOwnerTotals struct {
	Taxpayer ATOwnerBucket `json:"taxpayer"`
	Spouse   ATOwnerBucket `json:"spouse"`
	Combined ATOwnerBucket `json:"combined"`
}

// TIInterest holds the interest accrual rates printed on an investigation
// sheet.
type TIInterest struct {
	Daily   float64 `json:"daily"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

// TIResult is the data lifted from a Tax Investigation sheet. Pointer
// fields distinguish "not printed on this sheet" from a genuine zero.
type TIResult struct {
	FileName                 string     `json:"file_name"`
	Version                  string     `json:"version"`
	TotalResolutionFees      *float64   `json:"total_resolution_fees"`
	CurrentTaxLiability      *float64   `json:"current_tax_liability"`
	ProjectedLiability       *float64   `json:"projected_liability"`
	TotalIndividualBalance   *float64   `json:"total_individual_balance"`
	ProjectedUnfiledBalances *float64   `json:"projected_unfiled_balances"`
	Interest                 TIInterest `json:"interest"`
}
