package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/resolvetax/transcript-service/client"
	"github.com/resolvetax/transcript-service/dto"
	"github.com/resolvetax/transcript-service/store"
	"github.com/resolvetax/transcript-service/utils/tps"
	"github.com/resolvetax/transcript-service/utils/wiparse"
)

// PortalClient is the slice of the case portal this service needs.
type PortalClient interface {
	FetchDocumentGrid(ctx context.Context, caseID string) ([]client.CaseDocument, error)
	DownloadDocument(ctx context.Context, caseDocID, caseID string) ([]byte, error)
}

// TranscriptService runs the wage-and-income analysis pipeline: list the
// case's documents, download the WI transcripts, extract their text, parse
// them block by block, and roll the forms up into the year summary.
type TranscriptService struct {
	portal    PortalClient
	extractor *TextExtractor
	store     *store.Store
}

func NewTranscriptService(portal PortalClient, extractor *TextExtractor, st *store.Store) *TranscriptService {
	return &TranscriptService{
		portal:    portal,
		extractor: extractor,
		store:     st,
	}
}

// AnalyzeWI runs the full WI analysis for a case. The taxpayer/spouse
// attribution report is attached when includeTPS is set or a filing status
// is given. Documents that fail to download or parse are logged and
// skipped; only a case with zero usable WI files is an error.
func (s *TranscriptService) AnalyzeWI(ctx context.Context, caseID string, includeTPS bool, filingStatus string) (*dto.WIAnalysisResponse, error) {
	docs, err := s.portal.FetchDocumentGrid(ctx, caseID)
	if err != nil {
		return nil, err
	}
	wiFiles := client.FilterWIFiles(docs)
	if len(wiFiles) == 0 {
		return nil, dto.ErrNoWIFiles
	}

	var records []dto.FormRecord
	var parsed []dto.ScopedParseResult
	for _, doc := range wiFiles {
		result, err := s.parseDocument(ctx, doc, caseID)
		if err != nil {
			log.Printf("Skipping WI file %s: %v", doc.FileName, err)
			continue
		}

		owner := tps.ResolveOwner(doc.FileName)
		recs := result.Records()
		for i := range recs {
			recs[i].Owner = owner
		}
		records = append(records, recs...)
		parsed = append(parsed, result.Scoped())
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("none of the %d WI files for case %s could be processed", len(wiFiles), caseID)
	}

	resp := &dto.WIAnalysisResponse{
		CaseID:      caseID,
		Summary:     wiparse.BuildCaseSummary(caseID, records),
		Documents:   parsed,
		ProcessedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if includeTPS || filingStatus != "" {
		analysis := tps.BuildAnalysis(filingStatus, records)
		resp.TPSAnalysis = &analysis
	}

	s.snapshot(ctx, caseID, "wi", resp)
	return resp, nil
}

// DebugWI runs the same analysis and re-derives every year's bucket totals
// straight from the forms' fields. A mismatch between the two paths is
// reported per year, never returned as an error.
func (s *TranscriptService) DebugWI(ctx context.Context, caseID string) (*dto.WIDebugResponse, error) {
	analysis, err := s.AnalyzeWI(ctx, caseID, false, "")
	if err != nil {
		return nil, err
	}

	resp := &dto.WIDebugResponse{
		CaseID:        caseID,
		Years:         make(map[string]*dto.YearReconciliation, len(analysis.Summary.Years)),
		OverallTotals: analysis.Summary.OverallTotals,
		AllYearsMatch: true,
	}
	for year, ys := range analysis.Summary.Years {
		rec := wiparse.Reconcile(ys)
		resp.Years[year] = &rec
		if !rec.Match {
			resp.AllYearsMatch = false
		}
	}

	s.snapshot(ctx, caseID, "wi_debug", resp)
	return resp, nil
}

// ParseUpload parses a transcript uploaded directly, bypassing the portal.
// PDFs go through the usual text/OCR path; images go straight to OCR.
func (s *TranscriptService) ParseUpload(fileHeader *multipart.FileHeader) (*dto.ScopedParseResult, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	var text string
	if strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read upload: %w", err)
		}
		text, err = s.extractor.Extract(data, fileHeader.Filename)
		if err != nil {
			return nil, err
		}
	} else {
		text, err = s.extractor.tesseractClient.ExtractTextFromFile(fileHeader)
		if err != nil {
			return nil, err
		}
	}

	result := wiparse.Parse(text, fileHeader.Filename).Scoped()
	return &result, nil
}

func (s *TranscriptService) parseDocument(ctx context.Context, doc client.CaseDocument, caseID string) (*wiparse.Result, error) {
	data, err := s.portal.DownloadDocument(ctx, doc.CaseDocumentID, caseID)
	if err != nil {
		return nil, err
	}
	text, err := s.extractor.Extract(data, doc.FileName)
	if err != nil {
		return nil, err
	}
	return wiparse.Parse(text, doc.FileName), nil
}

// snapshot persists an analysis for later re-reads. Storage trouble never
// fails the request.
func (s *TranscriptService) snapshot(ctx context.Context, caseID, kind string, payload any) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveSnapshot(ctx, caseID, kind, payload); err != nil {
		log.Printf("Failed to snapshot %s analysis for case %s: %v", kind, caseID, err)
	}
}
