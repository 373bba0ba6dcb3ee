package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FeedbackEntry is one reviewer verdict on an extraction. IsCorrect is nil
// when the reviewer only left a comment.
type FeedbackEntry struct {
	ID           string    `json:"id"`
	ExtractionID string    `json:"extraction_id"`
	IsCorrect    *bool     `json:"is_correct"`
	CorrectValue string    `json:"correct_value,omitempty"`
	Comments     string    `json:"comments,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AddFeedback appends a feedback row and returns its generated ID. Existing
// rows are never touched; a corrected correction is just another row.
func (s *Store) AddFeedback(ctx context.Context, extractionID string, isCorrect *bool, correctValue, comments string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feedback (id, extraction_id, is_correct, correct_value, comments)
		VALUES (?, ?, ?, ?, ?)`,
		id, extractionID, isCorrect, correctValue, comments)
	if err != nil {
		return "", fmt.Errorf("failed to add feedback: %w", err)
	}
	return id, nil
}

// FeedbackFor lists all feedback recorded against one extraction, oldest
// first.
func (s *Store) FeedbackFor(ctx context.Context, extractionID string) ([]FeedbackEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, extraction_id, is_correct, correct_value, comments, created_at
		FROM feedback WHERE extraction_id = ? ORDER BY created_at`,
		extractionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	var entries []FeedbackEntry
	for rows.Next() {
		var e FeedbackEntry
		if err := rows.Scan(&e.ID, &e.ExtractionID, &e.IsCorrect, &e.CorrectValue, &e.Comments, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
