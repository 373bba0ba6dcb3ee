package wiparse

import (
	"sort"

	"github.com/resolvetax/transcript-service/dto"
)

// seTaxAdjustment is the deductible half of self-employment tax, applied to
// SE income when estimating AGI.
const seTaxAdjustment = 0.0765

const unknownYear = "unknown"

// GroupByYear buckets form records by tax year. Records with no resolved
// year land in the "unknown" bucket rather than being dropped.
func GroupByYear(records []dto.FormRecord) map[string]*dto.YearSummary {
	years := make(map[string]*dto.YearSummary)
	for _, rec := range records {
		year := rec.TaxYear
		if year == "" {
			year = unknownYear
		}
		ys, ok := years[year]
		if !ok {
			ys = &dto.YearSummary{TaxYear: year}
			years[year] = ys
		}
		ys.Forms = append(ys.Forms, rec)
		ys.NumberOfForms++
		switch rec.Category {
		case dto.CategorySE:
			ys.SEIncome += rec.Income
		case dto.CategoryNonSE:
			ys.NonSEIncome += rec.Income
		default:
			ys.OtherIncome += rec.Income
		}
		ys.TotalWithholding += rec.Withholding
	}
	for _, ys := range years {
		ys.TotalIncome = ys.SEIncome + ys.NonSEIncome + ys.OtherIncome
		ys.EstimatedAGI = ys.TotalIncome - ys.SEIncome*seTaxAdjustment
	}
	return years
}

// BuildCaseSummary rolls all of a case's form records into per-year
// summaries plus case-wide totals. Years are listed newest first; the
// "unknown" bucket, when present, sorts last.
func BuildCaseSummary(caseID string, records []dto.FormRecord) dto.CaseSummary {
	summary := dto.CaseSummary{
		CaseID: caseID,
		Years:  GroupByYear(records),
	}
	for year, ys := range summary.Years {
		summary.YearsAnalyzed = append(summary.YearsAnalyzed, year)
		summary.TotalForms += ys.NumberOfForms
		summary.OverallTotals.SEIncome += ys.SEIncome
		summary.OverallTotals.NonSEIncome += ys.NonSEIncome
		summary.OverallTotals.OtherIncome += ys.OtherIncome
		summary.OverallTotals.TotalIncome += ys.TotalIncome
		summary.OverallTotals.TotalWithholding += ys.TotalWithholding
		summary.OverallTotals.EstimatedAGI += ys.EstimatedAGI
	}
	sort.Slice(summary.YearsAnalyzed, func(i, j int) bool {
		a, b := summary.YearsAnalyzed[i], summary.YearsAnalyzed[j]
		if a == unknownYear {
			return false
		}
		if b == unknownYear {
			return true
		}
		return a > b
	})
	return summary
}
