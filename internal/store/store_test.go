package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestSessionCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	created, err := repo.Create(ctx, "A bakery sold 45 cupcakes and 12 muffins. How many baked goods in total?", 57)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID, "expected server-assigned session id")

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ProblemText, got.ProblemText)
	assert.Equal(t, float64(57), got.CorrectAnswer)
	assert.False(t, got.CreatedAt.IsZero(), "expected store-assigned created_at")
}

func TestSessionGetUnknown(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Sessions().Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSubmissionCreate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sess, err := s.Sessions().Create(ctx, "What is 6 * 7?", 42)
	require.NoError(t, err)

	err = s.Submissions().Create(ctx, Submission{
		SessionID:    sess.ID,
		UserAnswer:   42,
		IsCorrect:    true,
		FeedbackText: "Great job!",
	})
	require.NoError(t, err)

	// Duplicate submissions against one session are permitted; each
	// produces its own independent row.
	err = s.Submissions().Create(ctx, Submission{
		SessionID:    sess.ID,
		UserAnswer:   41,
		IsCorrect:    false,
		FeedbackText: "",
	})
	require.NoError(t, err)

	n, err := s.Client().Submission.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "submission count")
}
