package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup does not resolve to a stored row.
var ErrNotFound = errors.New("not found")

// ProblemSession is the durable record of one generated problem.
type ProblemSession struct {
	ID            uuid.UUID
	ProblemText   string
	CorrectAnswer float64
	CreatedAt     time.Time
}

// Submission captures one answer attempt and its generated feedback.
type Submission struct {
	SessionID    uuid.UUID
	UserAnswer   float64
	IsCorrect    bool
	FeedbackText string
}

// SessionRepo persists and retrieves problem sessions.
type SessionRepo interface {
	// Create stores a new session and returns it with the
	// server-assigned identifier.
	Create(ctx context.Context, problemText string, correctAnswer float64) (*ProblemSession, error)

	// Get returns the session with the given id, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*ProblemSession, error)
}

// SubmissionRepo appends answer-attempt records. Submissions are never
// read back or mutated by the service; they exist as an audit trail.
type SubmissionRepo interface {
	Create(ctx context.Context, sub Submission) error
}
