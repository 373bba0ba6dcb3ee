package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/resolvetax/transcript-service/client"
	"github.com/resolvetax/transcript-service/dto"
	"github.com/resolvetax/transcript-service/store"
	"github.com/resolvetax/transcript-service/utils/tiparse"
)

// TIService extracts planning numbers from the case's Tax Investigation
// sheets.
type TIService struct {
	portal    PortalClient
	extractor *TextExtractor
	store     *store.Store
}

func NewTIService(portal PortalClient, extractor *TextExtractor, st *store.Store) *TIService {
	return &TIService{
		portal:    portal,
		extractor: extractor,
		store:     st,
	}
}

// Analyze downloads and parses every TI sheet attached to the case.
func (s *TIService) Analyze(ctx context.Context, caseID string) (*dto.TIAnalysisResponse, error) {
	docs, err := s.portal.FetchDocumentGrid(ctx, caseID)
	if err != nil {
		return nil, err
	}
	tiFiles := client.FilterTIFiles(docs)
	if len(tiFiles) == 0 {
		return nil, dto.ErrNoTIFiles
	}

	var sheets []dto.TIResult
	for _, doc := range tiFiles {
		data, err := s.portal.DownloadDocument(ctx, doc.CaseDocumentID, caseID)
		if err != nil {
			log.Printf("Skipping TI file %s: %v", doc.FileName, err)
			continue
		}
		text, err := s.extractor.Extract(data, doc.FileName)
		if err != nil {
			log.Printf("Skipping TI file %s: %v", doc.FileName, err)
			continue
		}
		sheets = append(sheets, tiparse.Parse(text, doc.FileName))
	}
	if len(sheets) == 0 {
		return nil, fmt.Errorf("none of the %d TI files for case %s could be processed", len(tiFiles), caseID)
	}

	resp := &dto.TIAnalysisResponse{
		CaseID:      caseID,
		Sheets:      sheets,
		ProcessedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if s.store != nil {
		if err := s.store.SaveSnapshot(ctx, caseID, "ti", resp); err != nil {
			log.Printf("Failed to snapshot TI analysis for case %s: %v", caseID, err)
		}
	}
	return resp, nil
}
