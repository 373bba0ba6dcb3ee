package wiparse

import (
	"math"

	"github.com/resolvetax/transcript-service/dto"
)

// reconcileTolerance is the largest per-bucket difference still considered a
// match between the summary path and the recomputed path.
const reconcileTolerance = 1e-6

// Reconcile recomputes one year's bucket totals straight from each form's
// numeric fields, independently of the summary path, and compares the two.
// A mismatch is surfaced as data (Match=false plus per-form rows), never as
// an error: the rows tell a reviewer exactly which form moved which bucket.
func Reconcile(ys *dto.YearSummary) dto.YearReconciliation {
	rec := dto.YearReconciliation{
		Summary: dto.BucketTotals{
			SEIncome:    ys.SEIncome,
			NonSEIncome: ys.NonSEIncome,
			OtherIncome: ys.OtherIncome,
		},
		NumberOfForms: ys.NumberOfForms,
		Troubleshoot:  make([]dto.TroubleshootRow, 0, len(ys.Forms)),
	}

	for i := range ys.Forms {
		form := &ys.Forms[i]
		numeric := form.NumericFields()
		income := computeIncome(form.CanonicalCode, numeric)
		withholding := computeWithholding(form.CanonicalCode, numeric)

		bucket := "other_income"
		switch form.Category {
		case dto.CategorySE:
			rec.Recomputed.SEIncome += income
			bucket = "se_income"
		case dto.CategoryNonSE:
			rec.Recomputed.NonSEIncome += income
			bucket = "non_se_income"
		default:
			rec.Recomputed.OtherIncome += income
		}

		rec.Troubleshoot = append(rec.Troubleshoot, dto.TroubleshootRow{
			Form:               form.CanonicalCode,
			UniqueID:           form.UniqueID,
			Category:           form.Category,
			Bucket:             bucket,
			FieldsUsed:         numeric,
			IncomeContrib:      income,
			WithholdingContrib: withholding,
		})
	}

	rec.Match = within(rec.Summary.SEIncome, rec.Recomputed.SEIncome) &&
		within(rec.Summary.NonSEIncome, rec.Recomputed.NonSEIncome) &&
		within(rec.Summary.OtherIncome, rec.Recomputed.OtherIncome)
	return rec
}

func within(a, b float64) bool {
	return math.Abs(a-b) <= reconcileTolerance
}
