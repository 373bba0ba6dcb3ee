package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/resolvetax/transcript-service/dto"
)

// CaseDocument is one row of the portal's document grid.
type CaseDocument struct {
	FileName       string
	CaseDocumentID string
}

// Filename filters for the document classes the office keeps per case.
// WI names may carry an owner token between the prefix and the year
// ("WI 23 TP", "WI S 23", "WI SPOUSE 19").
var (
	wiFileRe = regexp.MustCompile(`(?i)\bWI\s+(?:S\s+|SPOUSE\s+|TP\s+)?\d`)
	atFileRe = regexp.MustCompile(`(?i)\bAT\s+\d{2}`)
	tiFileRe = regexp.MustCompile(`(?i)\bTI\s*\d`)
)

// LogiqsClient talks to the Logiqs case-management portal by replaying a
// captured browser session. Redirects are not followed: a 302 toward the
// login page is how the portal says the session expired, and following it
// would turn that signal into a confusing HTML response.
type LogiqsClient struct {
	client   *resty.Client
	sessions *SessionStore
}

// NewLogiqsClient builds a portal client over the given base URL and
// session store.
func NewLogiqsClient(baseURL string, sessions *SessionStore) *LogiqsClient {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetRedirectPolicy(resty.NoRedirectPolicy())
	return &LogiqsClient{client: client, sessions: sessions}
}

// FetchDocumentGrid lists every document attached to a case.
func (lc *LogiqsClient) FetchDocumentGrid(ctx context.Context, caseID string) ([]CaseDocument, error) {
	sess, err := lc.sessions.Get()
	if err != nil {
		return nil, err
	}

	// CaseDocumentID arrives as a bare number from some portal versions and
	// as a string from others.
	var grid struct {
		Result []struct {
			Name           string      `json:"Name"`
			CaseDocumentID json.Number `json:"CaseDocumentID"`
		} `json:"Result"`
	}
	resp, err := lc.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json; charset=utf-8").
		SetHeader("Accept", "application/json, text/javascript, */*; q=0.01").
		SetHeader("User-Agent", sess.UserAgent).
		SetHeader("Cookie", sess.CookieHeader()).
		SetQueryParam("caseid", caseID).
		SetQueryParam("type", "grid").
		SetResult(&grid).
		Post("/API/Document/gridBind")
	if err != nil {
		if resp != nil && isLoginRedirect(resp) {
			return nil, dto.ErrAuthExpired
		}
		return nil, fmt.Errorf("failed to fetch document grid: %w", err)
	}
	if isLoginRedirect(resp) {
		return nil, dto.ErrAuthExpired
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("document grid request returned status %d", resp.StatusCode())
	}

	docs := make([]CaseDocument, 0, len(grid.Result))
	for _, d := range grid.Result {
		if d.Name == "" || d.CaseDocumentID.String() == "" {
			continue
		}
		docs = append(docs, CaseDocument{FileName: d.Name, CaseDocumentID: d.CaseDocumentID.String()})
	}
	return docs, nil
}

// DownloadDocument fetches one document's bytes.
func (lc *LogiqsClient) DownloadDocument(ctx context.Context, caseDocID, caseID string) ([]byte, error) {
	sess, err := lc.sessions.Get()
	if err != nil {
		return nil, err
	}

	resp, err := lc.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", sess.UserAgent).
		SetHeader("Cookie", sess.CookieHeader()).
		SetQueryParam("CaseDocumentID", caseDocID).
		SetQueryParam("caseId", caseID).
		Get("/API/Document/DownloadFile")
	if err != nil {
		if resp != nil && isLoginRedirect(resp) {
			return nil, dto.ErrAuthExpired
		}
		return nil, fmt.Errorf("failed to download document %s: %w", caseDocID, err)
	}
	if isLoginRedirect(resp) {
		return nil, dto.ErrAuthExpired
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("document download returned status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}

// FilterWIFiles keeps the wage-and-income transcripts in a grid listing.
func FilterWIFiles(docs []CaseDocument) []CaseDocument {
	return filterDocs(docs, wiFileRe)
}

// FilterATFiles keeps the account transcripts in a grid listing.
func FilterATFiles(docs []CaseDocument) []CaseDocument {
	return filterDocs(docs, atFileRe)
}

// FilterTIFiles keeps the tax investigation sheets in a grid listing.
func FilterTIFiles(docs []CaseDocument) []CaseDocument {
	return filterDocs(docs, tiFileRe)
}

func filterDocs(docs []CaseDocument, re *regexp.Regexp) []CaseDocument {
	var out []CaseDocument
	for _, d := range docs {
		if re.MatchString(d.FileName) {
			out = append(out, d)
		}
	}
	return out
}

// isLoginRedirect detects the portal's expired-session signal: a 302 whose
// Location points at the login page.
func isLoginRedirect(resp *resty.Response) bool {
	if resp == nil || resp.StatusCode() != http.StatusFound {
		return false
	}
	location := strings.ToLower(resp.Header().Get("Location"))
	return strings.Contains(location, "login") || strings.Contains(location, "default.aspx")
}
