package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resolvetax/transcript-service/dto"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	summary := dto.CaseSummary{
		CaseID:        "555123",
		YearsAnalyzed: []string{"2023", "2022"},
		TotalForms:    3,
	}
	require.NoError(t, s.SaveSnapshot(ctx, "555123", "wi", summary))

	var loaded dto.CaseSummary
	require.NoError(t, s.LoadSnapshot(ctx, "555123", "wi", &loaded))
	assert.Equal(t, summary.CaseID, loaded.CaseID)
	assert.Equal(t, summary.YearsAnalyzed, loaded.YearsAnalyzed)
	assert.Equal(t, 3, loaded.TotalForms)
}

func TestSnapshotReplacesPrevious(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSnapshot(ctx, "1", "wi", dto.CaseSummary{TotalForms: 1}))
	require.NoError(t, s.SaveSnapshot(ctx, "1", "wi", dto.CaseSummary{TotalForms: 2}))

	var loaded dto.CaseSummary
	require.NoError(t, s.LoadSnapshot(ctx, "1", "wi", &loaded))
	assert.Equal(t, 2, loaded.TotalForms)
}

func TestSnapshotMissing(t *testing.T) {
	s := openTestStore(t)

	var loaded dto.CaseSummary
	err := s.LoadSnapshot(context.Background(), "nope", "wi", &loaded)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestFeedbackAppendOnly(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	wrong := false
	id1, err := s.AddFeedback(ctx, "ext-1", &wrong, "55000.00", "value off by one line")
	require.NoError(t, err)
	assert.NotEmpty(t, id1)

	id2, err := s.AddFeedback(ctx, "ext-1", nil, "", "second opinion pending")
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	entries, err := s.FeedbackFor(ctx, "ext-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.NotNil(t, entries[0].IsCorrect)
	assert.False(t, *entries[0].IsCorrect)
	assert.Equal(t, "55000.00", entries[0].CorrectValue)
	assert.Nil(t, entries[1].IsCorrect)

	other, err := s.FeedbackFor(ctx, "ext-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
