package atparse

import (
	"github.com/resolvetax/transcript-service/dto"
)

// AggregateByOwner rolls account transcript records into per-year taxpayer
// and spouse buckets. Joint records count only toward combined.
func AggregateByOwner(records []dto.ATRecord) map[string]dto.ATOwnerTotals {
	byYear := make(map[string]dto.ATOwnerTotals)
	for _, rec := range records {
		totals := byYear[rec.TaxYear]
		switch rec.Owner {
		case dto.OwnerTaxpayer:
			addRecord(&totals.Taxpayer, &rec)
		case dto.OwnerSpouse:
			addRecord(&totals.Spouse, &rec)
		}
		addRecord(&totals.Combined, &rec)
		byYear[rec.TaxYear] = totals
	}
	return byYear
}

func addRecord(b *dto.ATOwnerBucket, rec *dto.ATRecord) {
	b.Records++
	b.Transactions += len(rec.Transactions)
	b.AccountBalance += rec.AccountBalance
}
