package wiparse

import (
	"github.com/resolvetax/transcript-service/dto"
)

// ParsedForm pairs a form record with its block-level parse diagnostics.
type ParsedForm struct {
	Record          dto.FormRecord
	BlockTextLength int
	FormConfidence  float64
}

// Result is the full parse of one transcript document. Parsing is pure:
// the same text and filename always produce the same result.
type Result struct {
	FileName string
	Meta     Metadata
	Forms    []ParsedForm
}

// Parse segments a wage-and-income transcript into form blocks, extracts
// each block's fields against its own lines only, and aggregates per-form
// records. Unrecognized headings still occupy a block (so their content
// cannot bleed into a neighbor) but produce no record. Empty text yields a
// result with zero forms, not an error.
func Parse(text, filename string) *Result {
	res := &Result{
		FileName: filename,
		Meta:     ScanMetadata(text, filename),
	}
	for _, block := range SegmentBlocks(text) {
		block := block
		if block.Pattern == nil {
			continue
		}
		fields := ExtractFields(&block)
		rec := BuildFormRecord(&block, fields)
		rec.SourceFile = filename
		rec.TaxYear = res.Meta.TaxYear
		res.Forms = append(res.Forms, ParsedForm{
			Record:          rec,
			BlockTextLength: block.ContentLength(),
			FormConfidence:  formConfidence(fields),
		})
	}
	return res
}

// Records returns just the form records, for aggregation layers that do not
// care about block diagnostics.
func (r *Result) Records() []dto.FormRecord {
	out := make([]dto.FormRecord, 0, len(r.Forms))
	for _, pf := range r.Forms {
		out = append(out, pf.Record)
	}
	return out
}

// Scoped shapes the parse into the review-facing response: per-form field
// lists with provenance, plus document-level extraction metadata.
func (r *Result) Scoped() dto.ScopedParseResult {
	out := dto.ScopedParseResult{
		FileName:       r.FileName,
		TrackingNumber: r.Meta.TrackingNumber,
		TaxYear:        r.Meta.TaxYear,
		Forms:          make([]dto.ScopedForm, 0, len(r.Forms)),
	}

	confSum := 0.0
	for _, pf := range r.Forms {
		sf := dto.ScopedForm{
			FormType:        pf.Record.CanonicalCode,
			FormConfidence:  pf.FormConfidence,
			BlockTextLength: pf.BlockTextLength,
			Fields:          make([]dto.ScopedField, 0, len(pf.Record.Fields)),
		}
		for _, f := range pf.Record.Fields {
			sf.Fields = append(sf.Fields, dto.ScopedField{
				Name:             f.Name,
				Value:            f.RawValue,
				SourceLine:       f.SourceLine,
				ConfidenceScore:  f.ConfidenceScore,
				PatternUsed:      f.PatternUsed,
				ExtractionMethod: f.ExtractionMethod,
			})
		}
		out.Forms = append(out.Forms, sf)

		out.ParsingMetadata.TotalFormsFound++
		if len(pf.Record.Fields) > 0 {
			out.ParsingMetadata.SuccessfulExtractions++
			confSum += pf.FormConfidence
		}
	}
	if out.ParsingMetadata.SuccessfulExtractions > 0 {
		out.ParsingMetadata.OverallConfidence = confSum / float64(out.ParsingMetadata.SuccessfulExtractions)
	}
	return out
}
