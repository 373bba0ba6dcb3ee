package wiparse

import (
	"strconv"
	"strings"

	"github.com/resolvetax/transcript-service/dto"
)

// extractionMethod tags every field produced here so downstream consumers
// can tell block-scoped extraction apart from manual corrections.
const extractionMethod = "block_scoped_regex"

// ExtractFields runs a block's pattern table fields against the block's own
// lines, in table order. Each field captures at most once, from the first
// line it matches; lines outside the block are never consulted. Fields whose
// pattern matched nowhere are simply absent from the result.
func ExtractFields(block *Block) []dto.ExtractedField {
	if block.Pattern == nil {
		return nil
	}

	var out []dto.ExtractedField
	for _, fp := range block.Pattern.Fields {
		if fp.Pattern == nil {
			continue
		}
		for _, line := range block.Lines {
			m := fp.Pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			raw := strings.TrimSpace(m[1])
			f := dto.ExtractedField{
				Name:             fp.Name,
				RawValue:         raw,
				SourceLine:       strings.TrimSpace(line),
				PatternUsed:      fp.Pattern.String(),
				ExtractionMethod: extractionMethod,
			}
			if v, ok := parseAmount(raw); ok {
				f.NumericValue = &v
			}
			f.ConfidenceScore = scoreField(fp.Name, raw, block.CanonicalCode())
			out = append(out, f)
			break
		}
	}
	return out
}

// parseAmount coerces a captured value to a float. Dollar signs and
// thousands separators are stripped; masked identifiers ("XX-XXX1234") and
// other non-numeric text report ok=false rather than zero.
func parseAmount(raw string) (float64, bool) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
