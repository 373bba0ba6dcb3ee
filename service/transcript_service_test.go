package service

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resolvetax/transcript-service/client"
	"github.com/resolvetax/transcript-service/dto"
)

// fakePortal serves canned documents keyed by CaseDocumentID.
type fakePortal struct {
	docs     []client.CaseDocument
	contents map[string][]byte
}

func (f *fakePortal) FetchDocumentGrid(ctx context.Context, caseID string) ([]client.CaseDocument, error) {
	return f.docs, nil
}

func (f *fakePortal) DownloadDocument(ctx context.Context, caseDocID, caseID string) ([]byte, error) {
	return f.contents[caseDocID], nil
}

// passthroughPDF treats the "PDF" bytes as the extracted text.
type passthroughPDF struct{}

func (passthroughPDF) ExtractText(pdfData []byte) (string, error) { return string(pdfData), nil }
func (passthroughPDF) ExtractImages(pdfData []byte) ([]image.Image, error) {
	return nil, nil
}

const taxpayerWI = `Tracking Number:106782627279
Tax Period Requested:December, 2023

Form W-2 Wage and Tax Statement
Employer Identification Number (EIN):XX-XXX4321
Wages, Tips and Other Compensation:$55,000.00
Federal Income Tax Withheld:$6,200.00
`

const spouseWI = `Tracking Number:106782627280
Tax Period Requested:December, 2023

Form 1099-NEC
Payer's Federal Identification Number (FIN):XX-XXX9876
Non-Employee Compensation:$12,500.00
`

func newTestService() *TranscriptService {
	portal := &fakePortal{
		docs: []client.CaseDocument{
			{FileName: "WI 23 TP.pdf", CaseDocumentID: "1"},
			{FileName: "WI S 23.pdf", CaseDocumentID: "2"},
			{FileName: "engagement letter.pdf", CaseDocumentID: "3"},
		},
		contents: map[string][]byte{
			"1": []byte(taxpayerWI),
			"2": []byte(spouseWI),
		},
	}
	extractor := NewTextExtractor(passthroughPDF{}, nil)
	return NewTranscriptService(portal, extractor, nil)
}

func TestAnalyzeWI(t *testing.T) {
	resp, err := newTestService().AnalyzeWI(context.Background(), "555123", false, "")
	require.NoError(t, err)

	assert.Equal(t, "555123", resp.CaseID)
	require.Len(t, resp.Documents, 2)
	assert.Equal(t, 2, resp.Summary.TotalForms)

	y23 := resp.Summary.Years["2023"]
	require.NotNil(t, y23)
	assert.Equal(t, 55000.0, y23.NonSEIncome)
	assert.Equal(t, 12500.0, y23.SEIncome)
	assert.Equal(t, 67500.0, y23.TotalIncome)
	assert.Equal(t, 6200.0, y23.TotalWithholding)

	// Owner comes from the filename, not the form contents.
	assert.Equal(t, dto.OwnerTaxpayer, y23.Forms[0].Owner)
	assert.Equal(t, dto.OwnerSpouse, y23.Forms[1].Owner)
	assert.Nil(t, resp.TPSAnalysis)
}

func TestAnalyzeWIWithTPSAnalysis(t *testing.T) {
	resp, err := newTestService().AnalyzeWI(context.Background(), "555123", true, "Married Filing Joint")
	require.NoError(t, err)

	require.NotNil(t, resp.TPSAnalysis)
	assert.True(t, resp.TPSAnalysis.HasTaxpayerData)
	assert.True(t, resp.TPSAnalysis.HasSpouseData)
	assert.Empty(t, resp.TPSAnalysis.Recommendations)

	totals := resp.TPSAnalysis.TotalsByYear["2023"]
	assert.Equal(t, 55000.0, totals.Taxpayer.Income)
	assert.Equal(t, 12500.0, totals.Spouse.Income)
	assert.Equal(t, 67500.0, totals.Combined.Income)
}

func TestAnalyzeWINoFiles(t *testing.T) {
	portal := &fakePortal{docs: []client.CaseDocument{
		{FileName: "engagement letter.pdf", CaseDocumentID: "3"},
	}}
	svc := NewTranscriptService(portal, NewTextExtractor(passthroughPDF{}, nil), nil)

	_, err := svc.AnalyzeWI(context.Background(), "555123", false, "")
	assert.ErrorIs(t, err, dto.ErrNoWIFiles)
}

func TestDebugWIReconciles(t *testing.T) {
	resp, err := newTestService().DebugWI(context.Background(), "555123")
	require.NoError(t, err)

	assert.True(t, resp.AllYearsMatch)
	rec := resp.Years["2023"]
	require.NotNil(t, rec)
	assert.True(t, rec.Match)
	assert.Equal(t, rec.Summary, rec.Recomputed)
	assert.Len(t, rec.Troubleshoot, 2)
}
