package tps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resolvetax/transcript-service/dto"
)

func TestResolveOwner(t *testing.T) {
	cases := []struct {
		filename string
		want     dto.Owner
	}{
		{"WI 19 TP.pdf", dto.OwnerTaxpayer},
		{"WI S 19.pdf", dto.OwnerSpouse},
		{"WI 19.pdf", dto.OwnerTaxpayer},
		{"WI 21 SPOUSE.pdf", dto.OwnerSpouse},
		{"AT 23 E.pdf", dto.OwnerSpouse},
		{"AT 23.pdf", dto.OwnerTaxpayer},
		{"WI 20 COMBINED.pdf", dto.OwnerJoint},
		{"WI 20 Joint.pdf", dto.OwnerJoint},
		{"WI 20 S COMBINED.pdf", dto.OwnerSpouse},
		{"WI 20 TP JOINT.pdf", dto.OwnerTaxpayer},
		{"random file.pdf", dto.OwnerTaxpayer},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ResolveOwner(c.filename), c.filename)
	}
}

func TestAggregateByOwner(t *testing.T) {
	records := []dto.FormRecord{
		{Owner: dto.OwnerTaxpayer, Category: dto.CategoryNonSE, Income: 50000, Withholding: 6000, TaxYear: "2023"},
		{Owner: dto.OwnerSpouse, Category: dto.CategorySE, Income: 20000, TaxYear: "2023"},
		{Owner: dto.OwnerJoint, Category: dto.CategoryOther, Income: 300, TaxYear: "2023"},
	}

	byYear := AggregateByOwner(records)
	totals, ok := byYear["2023"]
	assert.True(t, ok)

	assert.Equal(t, 50000.0, totals.Taxpayer.Income)
	assert.Equal(t, 50000.0, totals.Taxpayer.NonSEIncome)
	assert.Equal(t, 20000.0, totals.Spouse.Income)
	assert.Equal(t, 20000.0, totals.Spouse.SEIncome)
	assert.Equal(t, 300.0, totals.Joint.Income)
	assert.Equal(t, 70300.0, totals.Combined.Income)
	assert.Equal(t, 6000.0, totals.Combined.Withholding)
}

func TestBuildAnalysisFlagsMissingSpouseData(t *testing.T) {
	records := []dto.FormRecord{
		{Owner: dto.OwnerTaxpayer, Category: dto.CategoryNonSE, Income: 50000, TaxYear: "2023"},
	}

	analysis := BuildAnalysis("Married Filing Joint", records)
	assert.True(t, analysis.HasTaxpayerData)
	assert.False(t, analysis.HasSpouseData)
	assert.Len(t, analysis.Recommendations, 1)

	single := BuildAnalysis("Single", records)
	assert.Empty(t, single.Recommendations)
}

func TestBuildAnalysisFlagsGapsPerYear(t *testing.T) {
	records := []dto.FormRecord{
		{Owner: dto.OwnerTaxpayer, Category: dto.CategoryNonSE, Income: 50000, TaxYear: "2019"},
		{Owner: dto.OwnerSpouse, Category: dto.CategoryNonSE, Income: 30000, TaxYear: "2020"},
	}

	analysis := BuildAnalysis("Married Filing Jointly", records)
	require.Len(t, analysis.Recommendations, 2)
	assert.Contains(t, analysis.Recommendations[0], "Year 2020")
	assert.Contains(t, analysis.Recommendations[0], "taxpayer")
	assert.Contains(t, analysis.Recommendations[1], "Year 2019")
	assert.Contains(t, analysis.Recommendations[1], "spouse")
}

func TestBuildAnalysisFlagsYearWithNoIncome(t *testing.T) {
	records := []dto.FormRecord{
		{Owner: dto.OwnerTaxpayer, Category: dto.CategoryNonSE, Income: 0, Withholding: 200, TaxYear: "2021"},
	}

	analysis := BuildAnalysis("Married Filing Separately", records)
	require.Len(t, analysis.Recommendations, 1)
	assert.Contains(t, analysis.Recommendations[0], "Year 2021")
	assert.Contains(t, analysis.Recommendations[0], "either spouse")
}

func TestIsMarried(t *testing.T) {
	assert.True(t, IsMarried("Married Filing Jointly"))
	assert.True(t, IsMarried("Married Filing Separately"))
	assert.True(t, IsMarried("Married Filing Separate"))
	assert.False(t, IsMarried("Single"))
	assert.False(t, IsMarried("Head of Household"))
}
