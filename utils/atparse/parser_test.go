package atparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resolvetax/transcript-service/dto"
)

const sampleAT = `Account Transcript
Report for Tax Period Ending: 12-31-2022
FILING STATUS: Married Filing Joint
ACCOUNT BALANCE: 4,520.00
ACCRUED INTEREST: 120.50
ACCRUED PENALTY: 80.00
ADJUSTED GROSS INCOME: 85,000.00
TAXABLE INCOME: 60,000.00
TAX PER RETURN: 9,200.00
PROCESSING DATE: Mar. 15, 2023

TRANSACTIONS
150Tax return filed20230905 03-13-2023 $9,200.00
806Credit for withheld taxes20230905 04-15-2022 -$6,000.00
670Payment20231402 06-01-2023 -$1,500.00
`

func TestParseAccountTranscript(t *testing.T) {
	rec := Parse(sampleAT, "AT 22.pdf")

	assert.Equal(t, "2022", rec.TaxYear)
	assert.Equal(t, "Married Filing Joint", rec.FilingStatus)
	assert.Equal(t, "Mar. 15, 2023", rec.ProcessingDate)
	assert.Equal(t, 4520.00, rec.AccountBalance)
	assert.Equal(t, 120.50, rec.AccruedInterest)
	assert.Equal(t, 80.00, rec.AccruedPenalty)
	assert.InDelta(t, 4720.50, rec.TotalBalance, 1e-9)
	assert.Equal(t, 85000.00, rec.AdjustedGrossIncome)
	assert.True(t, rec.ReturnFiled)

	require.Len(t, rec.Transactions, 3)
	filed := rec.Transactions[0]
	assert.Equal(t, "150", filed.Code)
	assert.Equal(t, "2023-09-05", filed.CycleDate)
	assert.Equal(t, "2023-03-13", filed.Date)
	assert.Equal(t, 9200.00, filed.Amount)
	assert.Contains(t, filed.Meaning, "Return filed")

	withheld := rec.Transactions[1]
	assert.Equal(t, "806", withheld.Code)
	assert.Equal(t, -6000.00, withheld.Amount)
}

func TestParseUnfiledYear(t *testing.T) {
	text := `Account Transcript
TAX PERIOD: Dec. 31, 2021
ACCOUNT BALANCE: 0.00

TRANSACTIONS
No tax return filed
`
	rec := Parse(text, "AT 21.pdf")
	assert.Equal(t, "2021", rec.TaxYear)
	assert.False(t, rec.ReturnFiled)
	require.Len(t, rec.Transactions, 1)
	assert.Equal(t, "n/a", rec.Transactions[0].Code)
	assert.Equal(t, "No tax return filed", rec.Transactions[0].Meaning)
}

func TestParseSpacedTransactionLayout(t *testing.T) {
	text := `TRANSACTIONS
670 Payment
06-01-2023
$1,500.00
`
	rec := Parse(text, "AT 23.pdf")
	require.Len(t, rec.Transactions, 1)
	assert.Equal(t, "670", rec.Transactions[0].Code)
	assert.Equal(t, "2023-06-01", rec.Transactions[0].Date)
	assert.Equal(t, 1500.00, rec.Transactions[0].Amount)
	assert.Empty(t, rec.Transactions[0].CycleDate)
}

func TestParseEmptyText(t *testing.T) {
	rec := Parse("", "AT 20.pdf")
	assert.Equal(t, "Unknown", rec.TaxYear)
	assert.Empty(t, rec.Transactions)
	assert.False(t, rec.ReturnFiled)
}

func TestLookupCode(t *testing.T) {
	info, ok := LookupCode("846")
	assert.True(t, ok)
	assert.Equal(t, "Refund issued", info.Meaning)

	_, ok = LookupCode("999")
	assert.False(t, ok)
}

func TestAggregateByOwner(t *testing.T) {
	records := []dto.ATRecord{
		{TaxYear: "2022", Owner: dto.OwnerTaxpayer, AccountBalance: 1000, Transactions: make([]dto.ATTransaction, 2)},
		{TaxYear: "2022", Owner: dto.OwnerSpouse, AccountBalance: 500, Transactions: make([]dto.ATTransaction, 1)},
	}

	byYear := AggregateByOwner(records)
	totals := byYear["2022"]
	assert.Equal(t, 1, totals.Taxpayer.Records)
	assert.Equal(t, 1000.0, totals.Taxpayer.AccountBalance)
	assert.Equal(t, 1, totals.Spouse.Records)
	assert.Equal(t, 2, totals.Combined.Records)
	assert.Equal(t, 3, totals.Combined.Transactions)
	assert.Equal(t, 1500.0, totals.Combined.AccountBalance)
}
