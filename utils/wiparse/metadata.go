package wiparse

import (
	"regexp"
	"strconv"
)

// Metadata is the per-document preamble data: the header lines the IRS
// prints before the first form. Scanned once per document, never per block.
type Metadata struct {
	TrackingNumber string
	TaxYear        string
	SSN            string
	RequestDate    string
}

var (
	trackingRe    = regexp.MustCompile(`(?i)Tracking\s+Number:?\s*([0-9]+)`)
	taxPeriodRe   = regexp.MustCompile(`(?i)Tax\s+Period\s+Requested:?[^\d]*(\d{4})`)
	ssnRe         = regexp.MustCompile(`(?i)SSN\s+Provided:?\s*([\dX\-]+)`)
	requestDateRe = regexp.MustCompile(`(?i)Request\s+Date:?\s*([\d\-/]+)`)

	fileYearShortRe = regexp.MustCompile(`(?i)\b(?:WI|AT)\s+(\d{2})\b`)
	fourDigitYearRe = regexp.MustCompile(`\b(20\d{2})\b`)
)

// ScanMetadata pulls tracking number, tax year, SSN and request date out of
// the transcript preamble. The tax year falls back to the filename
// convention ("WI 19" means 2019) and then to the first 20xx in the text.
func ScanMetadata(text, filename string) Metadata {
	var meta Metadata

	if m := trackingRe.FindStringSubmatch(text); m != nil {
		meta.TrackingNumber = m[1]
	}
	if m := ssnRe.FindStringSubmatch(text); m != nil {
		meta.SSN = m[1]
	}
	if m := requestDateRe.FindStringSubmatch(text); m != nil {
		meta.RequestDate = m[1]
	}

	if m := taxPeriodRe.FindStringSubmatch(text); m != nil {
		meta.TaxYear = m[1]
	} else {
		meta.TaxYear = yearFromFilename(filename, text)
	}
	return meta
}

// yearFromFilename resolves a tax year from back-office filename
// conventions. Two-digit years up to 50 mean 20xx, above that 19xx.
func yearFromFilename(filename, text string) string {
	if m := fileYearShortRe.FindStringSubmatch(filename); m != nil {
		suffix, err := strconv.Atoi(m[1])
		if err == nil {
			if suffix <= 50 {
				return "20" + m[1]
			}
			return "19" + m[1]
		}
	}
	if m := fourDigitYearRe.FindStringSubmatch(filename); m != nil {
		return m[1]
	}
	if m := fourDigitYearRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
