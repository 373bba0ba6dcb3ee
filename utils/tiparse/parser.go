// Package tiparse lifts resolution-planning numbers off Tax Investigation
// sheets. The sheets are free-form exports whose wording drifts between
// template versions, so each value is tried against a fallback chain of
// patterns, most specific first.
package tiparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/resolvetax/transcript-service/dto"
)

const num = `\$?\s*([\d,]+\.?\d*)`

var versionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)TI\s+(\d+\.\d+)`),
	regexp.MustCompile(`(?i)TI\s*(\d+)\.(\d+)`),
	regexp.MustCompile(`(?i)TI\s+(\d+)\s*-\s*`),
	regexp.MustCompile(`(?i)TI\s*(\d+)`),
}

var (
	feesPatterns = chain(
		`Total\s+Resolution\s+Fees\s*`+num,
		`Resolution\s+Fees\s*`+num,
		`Fees\s*`+num,
	)
	currentLiabilityPatterns = chain(
		`Current\s+Tax\s+Liability\s*`+num,
		`Current\s+Liability\s*`+num,
	)
	projectedLiabilityPatterns = chain(
		`Current\s+&\s+Projected\s+Tax\s+Liability\s*`+num,
		`Current\s+and\s+Projected\s+Tax\s+Liability\s*`+num,
	)
	individualBalancePatterns = chain(
		`Total\s+Individual\s+Balance:?\s*`+num,
		`Total\s+Current\s+Balance\s*`+num,
	)
	unfiledBalancePatterns = chain(
		`Projected\s+Unfiled\s+Balances:?\s*`+num,
		`Unfiled\s+Balances:?\s*`+num,
	)

	dailyInterestRe   = regexp.MustCompile(`(?i)Daily:\s*` + num)
	monthlyInterestRe = regexp.MustCompile(`(?i)Monthly:\s*` + num)
	yearlyInterestRe  = regexp.MustCompile(`(?i)Yearly:\s*` + num)
)

func chain(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}

// Parse extracts a TI sheet's planning numbers. Values the sheet does not
// carry stay nil; a sheet with nothing recognizable still returns a result.
func Parse(text, filename string) dto.TIResult {
	res := dto.TIResult{
		FileName: filename,
		Version:  VersionFromFilename(filename),
	}
	res.TotalResolutionFees = firstAmount(text, feesPatterns)
	res.CurrentTaxLiability = firstAmount(text, currentLiabilityPatterns)
	res.ProjectedLiability = firstAmount(text, projectedLiabilityPatterns)
	res.TotalIndividualBalance = firstAmount(text, individualBalancePatterns)
	res.ProjectedUnfiledBalances = firstAmount(text, unfiledBalancePatterns)

	if v := matchAmount(text, dailyInterestRe); v != nil {
		res.Interest.Daily = *v
	}
	if v := matchAmount(text, monthlyInterestRe); v != nil {
		res.Interest.Monthly = *v
	}
	if v := matchAmount(text, yearlyInterestRe); v != nil {
		res.Interest.Yearly = *v
	}
	return res
}

// VersionFromFilename pulls the TI template version out of a filename.
// "TI 6.7 Smith.pdf" yields "6.7"; a bare "TI 6 - Smith.pdf" yields "6".
// Unversioned filenames yield "".
func VersionFromFilename(filename string) string {
	for _, re := range versionPatterns {
		m := re.FindStringSubmatch(filename)
		if m == nil {
			continue
		}
		if len(m) == 3 {
			return m[1] + "." + m[2]
		}
		return m[1]
	}
	return ""
}

func firstAmount(text string, patterns []*regexp.Regexp) *float64 {
	for _, re := range patterns {
		if v := matchAmount(text, re); v != nil {
			return v
		}
	}
	return nil
}

func matchAmount(text string, re *regexp.Regexp) *float64 {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	cleaned := strings.ReplaceAll(m[1], ",", "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}
