package dto

// Category buckets a form's income for disposable-income math.
type Category string

const (
	CategorySE    Category = "SE"
	CategoryNonSE Category = "Non-SE"
	CategoryOther Category = "Other"
)

// Owner is the TP/S attribution of a form. The empty string means the form
// belongs to a joint filing and its income is not attributable to one party.
type Owner string

const (
	OwnerTaxpayer Owner = "TP"
	OwnerSpouse   Owner = "S"
	OwnerJoint    Owner = ""
)

// ExtractedField is a single field pulled out of one form block.
// Created once per (block, field) pair where the pattern matched; never
// mutated afterwards.
type ExtractedField struct {
	Name             string   `json:"name"`
	RawValue         string   `json:"raw_value"`
	NumericValue     *float64 `json:"numeric_value"`
	SourceLine       string   `json:"source_line"`
	ConfidenceScore  float64  `json:"confidence_score"`
	PatternUsed      string   `json:"pattern_used"`
	ExtractionMethod string   `json:"extraction_method"`
}

// FormRecord is the canonical per-form result after aggregation.
type FormRecord struct {
	FormType      string           `json:"form_type"`
	CanonicalCode string           `json:"canonical_form_code"`
	Owner         Owner            `json:"owner"`
	Fields        []ExtractedField `json:"fields"`
	Income        float64          `json:"income"`
	Withholding   float64          `json:"withholding"`
	Category      Category         `json:"category"`
	UniqueID      string           `json:"unique_id,omitempty"`
	SourceFile    string           `json:"source_file,omitempty"`
	TaxYear       string           `json:"tax_year,omitempty"`
}

// Field returns the extracted field with the given name, or nil when the
// field was not present in the source block.
func (f *FormRecord) Field(name string) *ExtractedField {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			return &f.Fields[i]
		}
	}
	return nil
}

// NumericFields returns only the fields that parsed cleanly as numbers,
// keyed by name. Fields whose raw text failed numeric coercion are absent.
func (f *FormRecord) NumericFields() map[string]float64 {
	out := make(map[string]float64, len(f.Fields))
	for _, fld := range f.Fields {
		if fld.NumericValue != nil {
			out[fld.Name] = *fld.NumericValue
		}
	}
	return out
}

// ScopedField is the wire shape of one extracted field in a scoped parse
// response. Value keeps the cleaned raw text so consumers can distinguish
// "not present" from "present with value 0".
type ScopedField struct {
	Name             string  `json:"name"`
	Value            string  `json:"value"`
	SourceLine       string  `json:"source_line"`
	ConfidenceScore  float64 `json:"confidence_score"`
	PatternUsed      string  `json:"pattern_used"`
	ExtractionMethod string  `json:"extraction_method"`
}

// ScopedForm is one form block's worth of extracted fields.
type ScopedForm struct {
	FormType        string        `json:"form_type"`
	FormConfidence  float64       `json:"form_confidence"`
	BlockTextLength int           `json:"block_text_length"`
	Fields          []ScopedField `json:"fields"`
}

// ParsingMetadata summarizes one document's parse.
type ParsingMetadata struct {
	TotalFormsFound       int     `json:"total_forms_found"`
	SuccessfulExtractions int     `json:"successful_extractions"`
	OverallConfidence     float64 `json:"overall_confidence"`
}

// ScopedParseResult is the block-scoped parse output for one transcript
// document. TrackingNumber and TaxYear are empty when the metadata scan
// found nothing.
type ScopedParseResult struct {
	FileName        string          `json:"file_name"`
	TrackingNumber  string          `json:"tracking_number"`
	TaxYear         string          `json:"tax_year"`
	ParsingMetadata ParsingMetadata `json:"parsing_metadata"`
	Forms           []ScopedForm    `json:"forms"`
}

// YearSummary rolls one tax year's forms into income buckets.
type YearSummary struct {
	TaxYear          string       `json:"tax_year"`
	Forms            []FormRecord `json:"forms"`
	NumberOfForms    int          `json:"number_of_forms"`
	SEIncome         float64      `json:"se_income"`
	NonSEIncome      float64      `json:"non_se_income"`
	OtherIncome      float64      `json:"other_income"`
	TotalIncome      float64      `json:"total_income"`
	TotalWithholding float64      `json:"total_withholding"`
	EstimatedAGI     float64      `json:"estimated_agi"`
}

// OverallTotals sums year summaries across a case.
type OverallTotals struct {
	SEIncome         float64 `json:"total_se_income"`
	NonSEIncome      float64 `json:"total_non_se_income"`
	OtherIncome      float64 `json:"total_other_income"`
	TotalIncome      float64 `json:"total_income"`
	TotalWithholding float64 `json:"total_withholding"`
	EstimatedAGI     float64 `json:"estimated_agi"`
}

// CaseSummary is the case-level aggregation over all parsed documents.
type CaseSummary struct {
	CaseID        string                  `json:"case_id"`
	Years         map[string]*YearSummary `json:"years"`
	YearsAnalyzed []string                `json:"years_analyzed"`
	TotalForms    int                     `json:"total_forms"`
	OverallTotals OverallTotals           `json:"overall_totals"`
}

// OwnerBucket accumulates income totals for one party within a year.
type OwnerBucket struct {
	Income      float64 `json:"income"`
	Withholding float64 `json:"withholding"`
	SEIncome    float64 `json:"se_income"`
	NonSEIncome float64 `json:"non_se_income"`
}

// OwnerTotals breaks one year's totals down by TP/S attribution.
// Combined accumulates every form regardless of owner.
type OwnerTotals struct {
	Taxpayer OwnerBucket `json:"taxpayer"`
	Spouse   OwnerBucket `json:"spouse"`
	Joint    OwnerBucket `json:"joint"`
	Combined OwnerBucket `json:"combined"`
}

// TPSAnalysis is the taxpayer/spouse attribution report attached to a WI
// analysis when requested. Recommendations are advisory only.
type TPSAnalysis struct {
	FilingStatus    string                 `json:"filing_status"`
	TotalsByYear    map[string]OwnerTotals `json:"totals_by_year"`
	Recommendations []string               `json:"missing_data_recommendations"`
	YearsAnalyzed   []string               `json:"years_analyzed"`
	HasTaxpayerData bool                   `json:"has_taxpayer_data"`
	HasSpouseData   bool                   `json:"has_spouse_data"`
}

// TroubleshootRow records one form's contribution to a bucket total,
// re-derived straight from its fields.
type TroubleshootRow struct {
	Form               string             `json:"form"`
	UniqueID           string             `json:"unique_id"`
	Category           Category           `json:"category"`
	Bucket             string             `json:"bucket"`
	FieldsUsed         map[string]float64 `json:"fields_used"`
	IncomeContrib      float64            `json:"income_contrib"`
	WithholdingContrib float64            `json:"withholding_contrib"`
}

// BucketTotals holds the three income buckets for one year.
type BucketTotals struct {
	SEIncome    float64 `json:"se_income"`
	NonSEIncome float64 `json:"non_se_income"`
	OtherIncome float64 `json:"other_income"`
}

// YearReconciliation is the dual-path self-check for one year: bucket
// totals re-computed from each form's fields versus the summary's totals.
// Match is false when any bucket disagrees beyond tolerance; that is data
// to review, never an error.
type YearReconciliation struct {
	Summary       BucketTotals      `json:"summary_totals"`
	Recomputed    BucketTotals      `json:"recomputed_totals"`
	Match         bool              `json:"match"`
	NumberOfForms int               `json:"number_of_forms"`
	Troubleshoot  []TroubleshootRow `json:"troubleshoot"`
}
