package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/resolvetax/transcript-service/client"
	"github.com/resolvetax/transcript-service/dto"
	"github.com/resolvetax/transcript-service/store"
	"github.com/resolvetax/transcript-service/utils/atparse"
	"github.com/resolvetax/transcript-service/utils/tps"
)

// ATService runs the account transcript analysis: balances, filed/unfiled
// status, and the interpreted transaction ledger per tax year.
type ATService struct {
	portal    PortalClient
	extractor *TextExtractor
	store     *store.Store
}

func NewATService(portal PortalClient, extractor *TextExtractor, st *store.Store) *ATService {
	return &ATService{
		portal:    portal,
		extractor: extractor,
		store:     st,
	}
}

// Analyze downloads and parses every AT file attached to the case. The
// spouse recommendation only fires for married filing statuses.
func (s *ATService) Analyze(ctx context.Context, caseID, filingStatus string) (*dto.ATAnalysisResponse, error) {
	docs, err := s.portal.FetchDocumentGrid(ctx, caseID)
	if err != nil {
		return nil, err
	}
	atFiles := client.FilterATFiles(docs)
	if len(atFiles) == 0 {
		return nil, dto.ErrNoATFiles
	}

	var records []dto.ATRecord
	for _, doc := range atFiles {
		data, err := s.portal.DownloadDocument(ctx, doc.CaseDocumentID, caseID)
		if err != nil {
			log.Printf("Skipping AT file %s: %v", doc.FileName, err)
			continue
		}
		text, err := s.extractor.Extract(data, doc.FileName)
		if err != nil {
			log.Printf("Skipping AT file %s: %v", doc.FileName, err)
			continue
		}

		rec := atparse.Parse(text, doc.FileName)
		rec.Owner = tps.ResolveOwner(doc.FileName)
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("none of the %d AT files for case %s could be processed", len(atFiles), caseID)
	}

	resp := &dto.ATAnalysisResponse{
		CaseID:       caseID,
		Records:      records,
		TotalsByYear: atparse.AggregateByOwner(records),
		ProcessedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	resp.Recommendations = s.spouseRecommendations(filingStatus, records)

	if s.store != nil {
		if err := s.store.SaveSnapshot(ctx, caseID, "at", resp); err != nil {
			log.Printf("Failed to snapshot AT analysis for case %s: %v", caseID, err)
		}
	}
	return resp, nil
}

// spouseRecommendations flags, year by year, sides of a married case with
// no account transcript on file.
func (s *ATService) spouseRecommendations(filingStatus string, records []dto.ATRecord) []string {
	if !tps.IsMarried(filingStatus) {
		return nil
	}

	type presence struct{ taxpayer, spouse bool }
	byYear := make(map[string]*presence)
	var years []string
	for i := range records {
		year := records[i].TaxYear
		if year == "" {
			year = "unknown"
		}
		p, ok := byYear[year]
		if !ok {
			p = &presence{}
			byYear[year] = p
			years = append(years, year)
		}
		switch records[i].Owner {
		case dto.OwnerSpouse:
			p.spouse = true
		default:
			p.taxpayer = true
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))

	var recs []string
	for _, year := range years {
		p := byYear[year]
		switch {
		case p.taxpayer && !p.spouse:
			recs = append(recs, fmt.Sprintf("Year %s: only taxpayer account transcripts found; check for a spouse AT file", year))
		case p.spouse && !p.taxpayer:
			recs = append(recs, fmt.Sprintf("Year %s: only spouse account transcripts found; check for a taxpayer AT file", year))
		}
	}
	return recs
}
