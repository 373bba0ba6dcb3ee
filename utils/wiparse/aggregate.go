package wiparse

import (
	"github.com/resolvetax/transcript-service/dto"
)

// idFields are consulted in order to give a form a stable identity, so two
// W-2s from different employers stay distinct through aggregation.
var idFields = []string{"employer_ein", "payer_fin"}

// BuildFormRecord turns one block's extracted fields into a form record:
// income and withholding derived by the form's calculation rules, category
// from the pattern table, identity from the issuer identifier when present.
func BuildFormRecord(block *Block, fields []dto.ExtractedField) dto.FormRecord {
	rec := dto.FormRecord{
		FormType:      block.FormType,
		CanonicalCode: block.CanonicalCode(),
		Fields:        fields,
		Category:      dto.CategoryOther,
	}
	if block.Pattern != nil {
		rec.Category = block.Pattern.Category
	}

	numeric := rec.NumericFields()
	rec.Income = computeIncome(rec.CanonicalCode, numeric)
	rec.Withholding = computeWithholding(rec.CanonicalCode, numeric)

	for _, name := range idFields {
		if f := rec.Field(name); f != nil {
			rec.UniqueID = f.RawValue
			break
		}
	}
	return rec
}

// formConfidence averages the field confidences of one form. A form with no
// extracted fields scores 0.
func formConfidence(fields []dto.ExtractedField) float64 {
	if len(fields) == 0 {
		return 0
	}
	sum := 0.0
	for _, f := range fields {
		sum += f.ConfidenceScore
	}
	return sum / float64(len(fields))
}
