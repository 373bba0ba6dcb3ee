package wiparse

import (
	"regexp"
	"strings"
)

// Confidence bands. Scores never leave [0,1]; the bands exist so reviewers
// can triage without reading raw numbers.
const (
	BandHigh    = "high"
	BandMedium  = "medium"
	BandLow     = "low"
	BandUnknown = "unknown"
)

var (
	cleanNumberRe = regexp.MustCompile(`^[\d,]+(?:\.\d+)?$`)
	idShapedRe    = regexp.MustCompile(`^[\dX]{2}-?[\dX]{7}$`)
)

// scoreField blends three heuristics into one confidence score: what the
// field name suggests about the label's specificity, how clean the captured
// value looks, and how reliably the form type extracts in practice. Weights
// are 0.4 name, 0.3 value, 0.3 form.
func scoreField(name, raw, formCode string) float64 {
	score := 0.4*nameScore(name) + 0.3*valueScore(raw) + 0.3*formReliability(formCode)
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

func nameScore(name string) float64 {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "income"), strings.Contains(n, "wages"),
		strings.Contains(n, "compensation"):
		return 0.8
	case strings.Contains(n, "withholding"), strings.Contains(n, "withheld"),
		strings.Contains(n, "tax"):
		return 0.8
	case strings.Contains(n, "ein"), strings.Contains(n, "fin"),
		strings.Contains(n, "identification"):
		return 0.7
	default:
		return 0.6
	}
}

func valueScore(raw string) float64 {
	switch {
	case cleanNumberRe.MatchString(raw):
		return 0.9
	case idShapedRe.MatchString(raw):
		return 0.8
	default:
		return 0.7
	}
}

// formReliability reflects how consistently a form's transcript layout
// matches its patterns across real documents.
func formReliability(code string) float64 {
	switch code {
	case "W-2":
		return 0.9
	case "1099-MISC", "1099-NEC", "1099-INT", "1099-DIV", "1099-R":
		return 0.8
	default:
		return 0.7
	}
}

// Band maps a confidence score to its review band.
func Band(score float64) string {
	switch {
	case score >= 0.8:
		return BandHigh
	case score >= 0.6:
		return BandMedium
	case score >= 0.3:
		return BandLow
	default:
		return BandUnknown
	}
}
