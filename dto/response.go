package dto

import "errors"

// Custom errors
var (
	ErrNoCookies   = errors.New("no portal session stored, authenticate first")
	ErrNoWIFiles   = errors.New("no WI files found for this case")
	ErrNoATFiles   = errors.New("no AT files found for this case")
	ErrNoTIFiles   = errors.New("no TI files found for this case")
	ErrAuthExpired = errors.New("portal session expired, re-authentication required")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// WIAnalysisResponse is the full Wage & Income analysis for a case.
type WIAnalysisResponse struct {
	CaseID      string             `json:"case_id"`
	Summary     CaseSummary        `json:"summary"`
	Documents   []ScopedParseResult `json:"documents"`
	TPSAnalysis *TPSAnalysis       `json:"tps_analysis,omitempty"`
	ProcessedAt string             `json:"processed_at"`
}

// WIDebugResponse is the troubleshoot view: the same analysis with the
// dual-path reconciliation attached per year.
type WIDebugResponse struct {
	CaseID         string                         `json:"case_id"`
	Years          map[string]*YearReconciliation `json:"years"`
	OverallTotals  OverallTotals                  `json:"overall_totals"`
	AllYearsMatch  bool                           `json:"all_years_match"`
}

// ATAnalysisResponse is the Account Transcript analysis for a case.
type ATAnalysisResponse struct {
	CaseID          string                   `json:"case_id"`
	Records         []ATRecord               `json:"records"`
	TotalsByYear    map[string]ATOwnerTotals `json:"totals_by_year"`
	Recommendations []string                 `json:"missing_data_recommendations,omitempty"`
	ProcessedAt     string                   `json:"processed_at"`
}

// TIAnalysisResponse is the Tax Investigation sheet analysis for a case.
type TIAnalysisResponse struct {
	CaseID      string     `json:"case_id"`
	Sheets      []TIResult `json:"sheets"`
	ProcessedAt string     `json:"processed_at"`
}

// FeedbackResponse acknowledges a stored feedback record.
type FeedbackResponse struct {
	FeedbackID string `json:"feedback_id"`
	Recorded   bool   `json:"recorded"`
}
