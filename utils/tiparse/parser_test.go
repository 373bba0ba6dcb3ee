package tiparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFromFilename(t *testing.T) {
	assert.Equal(t, "6.7", VersionFromFilename("TI 6.7 Smith.pdf"))
	assert.Equal(t, "7.2", VersionFromFilename("TI7.2 final.pdf"))
	assert.Equal(t, "6", VersionFromFilename("TI 6 - David & Paula.pdf"))
	assert.Equal(t, "", VersionFromFilename("investigation.pdf"))
}

func TestParseInvestigationSheet(t *testing.T) {
	text := `Tax Investigation Summary
Total Individual Balance: $34,120.00
Projected Unfiled Balances: $5,000.00
Current Tax Liability $29,120.00
Current & Projected Tax Liability $39,120.00
Interest Accrual
Daily: $4.68
Monthly: $142.17
Yearly: $1,706.00
Total Resolution Fees $3,500.00
`
	res := Parse(text, "TI 6.7 Smith.pdf")

	assert.Equal(t, "6.7", res.Version)
	require.NotNil(t, res.TotalResolutionFees)
	assert.Equal(t, 3500.00, *res.TotalResolutionFees)
	require.NotNil(t, res.CurrentTaxLiability)
	assert.Equal(t, 29120.00, *res.CurrentTaxLiability)
	require.NotNil(t, res.ProjectedLiability)
	assert.Equal(t, 39120.00, *res.ProjectedLiability)
	require.NotNil(t, res.TotalIndividualBalance)
	assert.Equal(t, 34120.00, *res.TotalIndividualBalance)
	require.NotNil(t, res.ProjectedUnfiledBalances)
	assert.Equal(t, 5000.00, *res.ProjectedUnfiledBalances)
	assert.Equal(t, 4.68, res.Interest.Daily)
	assert.Equal(t, 142.17, res.Interest.Monthly)
	assert.Equal(t, 1706.00, res.Interest.Yearly)
}

func TestParseFallbackWording(t *testing.T) {
	text := `Resolution Fees $2,000.00
Current and Projected Tax Liability $10,500.00
Total Current Balance $9,000.00
`
	res := Parse(text, "TI 7.pdf")
	assert.Equal(t, "7", res.Version)
	require.NotNil(t, res.TotalResolutionFees)
	assert.Equal(t, 2000.00, *res.TotalResolutionFees)
	require.NotNil(t, res.ProjectedLiability)
	assert.Equal(t, 10500.00, *res.ProjectedLiability)
	require.NotNil(t, res.TotalIndividualBalance)
	assert.Equal(t, 9000.00, *res.TotalIndividualBalance)
}

func TestParseEmptySheet(t *testing.T) {
	res := Parse("", "unknown.pdf")
	assert.Nil(t, res.TotalResolutionFees)
	assert.Nil(t, res.CurrentTaxLiability)
	assert.Equal(t, 0.0, res.Interest.Daily)
}
