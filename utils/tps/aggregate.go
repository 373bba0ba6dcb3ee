package tps

import (
	"fmt"
	"sort"

	"github.com/resolvetax/transcript-service/dto"
)

// marriedStatuses are the filing statuses under which missing spouse income
// data is worth flagging. Single and head-of-household cases never need it.
// The portal sends "Married Filing Separately"; older case records carry the
// clipped variants, so both spellings are accepted.
var marriedStatuses = map[string]bool{
	"Married Filing Joint":      true,
	"Married Filing Jointly":    true,
	"Married Filing Separate":   true,
	"Married Filing Separately": true,
}

// IsMarried reports whether a filing status calls for spouse documents.
func IsMarried(filingStatus string) bool {
	return marriedStatuses[filingStatus]
}

// AggregateByOwner rolls form records into per-year, per-owner totals. The
// combined bucket always receives every form; the joint bucket only those
// with no single-party attribution.
func AggregateByOwner(records []dto.FormRecord) map[string]dto.OwnerTotals {
	byYear := make(map[string]dto.OwnerTotals)
	for _, rec := range records {
		year := rec.TaxYear
		if year == "" {
			year = "unknown"
		}
		totals := byYear[year]
		switch rec.Owner {
		case dto.OwnerTaxpayer:
			addForm(&totals.Taxpayer, &rec)
		case dto.OwnerSpouse:
			addForm(&totals.Spouse, &rec)
		default:
			addForm(&totals.Joint, &rec)
		}
		addForm(&totals.Combined, &rec)
		byYear[year] = totals
	}
	return byYear
}

func addForm(b *dto.OwnerBucket, rec *dto.FormRecord) {
	b.Income += rec.Income
	b.Withholding += rec.Withholding
	switch rec.Category {
	case dto.CategorySE:
		b.SEIncome += rec.Income
	case dto.CategoryNonSE:
		b.NonSEIncome += rec.Income
	}
}

// BuildAnalysis produces the taxpayer/spouse attribution report for a case.
// Recommendations only fire for married filing statuses; a single filer with
// no spouse documents is the expected state, not a data gap.
func BuildAnalysis(filingStatus string, records []dto.FormRecord) dto.TPSAnalysis {
	analysis := dto.TPSAnalysis{
		FilingStatus: filingStatus,
		TotalsByYear: AggregateByOwner(records),
	}
	for year, totals := range analysis.TotalsByYear {
		analysis.YearsAnalyzed = append(analysis.YearsAnalyzed, year)
		if totals.Taxpayer.Income != 0 || totals.Taxpayer.Withholding != 0 {
			analysis.HasTaxpayerData = true
		}
		if totals.Spouse.Income != 0 || totals.Spouse.Withholding != 0 {
			analysis.HasSpouseData = true
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(analysis.YearsAnalyzed)))

	if IsMarried(filingStatus) {
		for _, year := range analysis.YearsAnalyzed {
			totals := analysis.TotalsByYear[year]
			switch {
			case totals.Taxpayer.Income > 0 && totals.Spouse.Income == 0:
				analysis.Recommendations = append(analysis.Recommendations,
					fmt.Sprintf("Year %s: only taxpayer income found; check for spouse wage and income documents", year))
			case totals.Taxpayer.Income == 0 && totals.Spouse.Income > 0:
				analysis.Recommendations = append(analysis.Recommendations,
					fmt.Sprintf("Year %s: only spouse income found; check for taxpayer wage and income documents", year))
			case totals.Taxpayer.Income == 0 && totals.Spouse.Income == 0:
				analysis.Recommendations = append(analysis.Recommendations,
					fmt.Sprintf("Year %s: no income found for either spouse; verify transcript completeness", year))
			}
		}
	}
	return analysis
}
