package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resolvetax/transcript-service/client"
	"github.com/resolvetax/transcript-service/dto"
)

const taxpayerAT = `Account Transcript
Report for Tax Period Ending: 12-31-2022
ACCOUNT BALANCE: 4,520.00

TRANSACTIONS
150Tax return filed20230905 03-13-2023 $9,200.00
`

const spouseAT = `Account Transcript
Report for Tax Period Ending: 12-31-2022
ACCOUNT BALANCE: 0.00

TRANSACTIONS
No tax return filed
`

func TestAnalyzeAT(t *testing.T) {
	portal := &fakePortal{
		docs: []client.CaseDocument{
			{FileName: "AT 22.pdf", CaseDocumentID: "10"},
			{FileName: "AT 22 E.pdf", CaseDocumentID: "11"},
		},
		contents: map[string][]byte{
			"10": []byte(taxpayerAT),
			"11": []byte(spouseAT),
		},
	}
	svc := NewATService(portal, NewTextExtractor(passthroughPDF{}, nil), nil)

	resp, err := svc.Analyze(context.Background(), "555123", "Married Filing Joint")
	require.NoError(t, err)
	require.Len(t, resp.Records, 2)

	assert.Equal(t, dto.OwnerTaxpayer, resp.Records[0].Owner)
	assert.True(t, resp.Records[0].ReturnFiled)
	assert.Equal(t, dto.OwnerSpouse, resp.Records[1].Owner)
	assert.False(t, resp.Records[1].ReturnFiled)

	totals := resp.TotalsByYear["2022"]
	assert.Equal(t, 1, totals.Taxpayer.Records)
	assert.Equal(t, 1, totals.Spouse.Records)
	assert.Equal(t, 2, totals.Combined.Records)
	assert.Equal(t, 4520.0, totals.Combined.AccountBalance)
	assert.Empty(t, resp.Recommendations)
}

func TestAnalyzeATMissingSpouse(t *testing.T) {
	portal := &fakePortal{
		docs: []client.CaseDocument{
			{FileName: "AT 22.pdf", CaseDocumentID: "10"},
		},
		contents: map[string][]byte{"10": []byte(taxpayerAT)},
	}
	svc := NewATService(portal, NewTextExtractor(passthroughPDF{}, nil), nil)

	resp, err := svc.Analyze(context.Background(), "555123", "Married Filing Joint")
	require.NoError(t, err)
	assert.Len(t, resp.Recommendations, 1)

	single, err := svc.Analyze(context.Background(), "555123", "Single")
	require.NoError(t, err)
	assert.Empty(t, single.Recommendations)
}

func TestAnalyzeATFlagsGapsPerYear(t *testing.T) {
	spouseAT2021 := `Account Transcript
Report for Tax Period Ending: 12-31-2021
ACCOUNT BALANCE: 1,200.00

TRANSACTIONS
150Tax return filed20220905 03-14-2022 $4,100.00
`
	portal := &fakePortal{
		docs: []client.CaseDocument{
			{FileName: "AT 22.pdf", CaseDocumentID: "10"},
			{FileName: "AT 21 E.pdf", CaseDocumentID: "12"},
		},
		contents: map[string][]byte{
			"10": []byte(taxpayerAT),
			"12": []byte(spouseAT2021),
		},
	}
	svc := NewATService(portal, NewTextExtractor(passthroughPDF{}, nil), nil)

	resp, err := svc.Analyze(context.Background(), "555123", "Married Filing Separately")
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 2)
	assert.Contains(t, resp.Recommendations[0], "Year 2022")
	assert.Contains(t, resp.Recommendations[0], "spouse AT file")
	assert.Contains(t, resp.Recommendations[1], "Year 2021")
	assert.Contains(t, resp.Recommendations[1], "taxpayer AT file")
}

func TestAnalyzeATNoFiles(t *testing.T) {
	portal := &fakePortal{docs: []client.CaseDocument{{FileName: "WI 23.pdf", CaseDocumentID: "1"}}}
	svc := NewATService(portal, NewTextExtractor(passthroughPDF{}, nil), nil)

	_, err := svc.Analyze(context.Background(), "555123", "")
	assert.ErrorIs(t, err, dto.ErrNoATFiles)
}

func TestAnalyzeTI(t *testing.T) {
	portal := &fakePortal{
		docs: []client.CaseDocument{
			{FileName: "TI 6.7 Smith.pdf", CaseDocumentID: "20"},
		},
		contents: map[string][]byte{
			"20": []byte("Total Resolution Fees $3,500.00\nCurrent Tax Liability $29,120.00\n"),
		},
	}
	svc := NewTIService(portal, NewTextExtractor(passthroughPDF{}, nil), nil)

	resp, err := svc.Analyze(context.Background(), "555123")
	require.NoError(t, err)
	require.Len(t, resp.Sheets, 1)
	assert.Equal(t, "6.7", resp.Sheets[0].Version)
	require.NotNil(t, resp.Sheets[0].TotalResolutionFees)
	assert.Equal(t, 3500.0, *resp.Sheets[0].TotalResolutionFees)
}
