package dto

import "errors"

// StoreCookiesRequest carries a replayed portal session: the raw cookies
// captured from an authenticated browser plus its user agent.
type StoreCookiesRequest struct {
	Cookies   []SessionCookie `json:"cookies" binding:"required"`
	UserAgent string          `json:"user_agent"`
}

// SessionCookie is a single name/value pair from the portal session.
type SessionCookie struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}

// Validate performs basic validation on the request.
func (r *StoreCookiesRequest) Validate() error {
	if len(r.Cookies) == 0 {
		return errors.New("at least one cookie is required")
	}
	return nil
}

// ExtractionFeedbackRequest records a reviewer's verdict on one extraction.
type ExtractionFeedbackRequest struct {
	ExtractionID string `json:"extraction_id" binding:"required"`
	IsCorrect    *bool  `json:"is_correct" binding:"required"`
	CorrectValue string `json:"correct_value,omitempty"`
	Comments     string `json:"comments,omitempty"`
}

// Validate performs basic validation on the request.
func (r *ExtractionFeedbackRequest) Validate() error {
	if r.ExtractionID == "" {
		return errors.New("extraction_id is required")
	}
	if r.IsCorrect == nil {
		return errors.New("is_correct is required")
	}
	return nil
}
