package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/anlek/mathweave/ent"
)

// sessionRepo implements SessionRepo backed by ent.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, problemText string, correctAnswer float64) (*ProblemSession, error) {
	row, err := r.client.ProblemSession.Create().
		SetProblemText(problemText).
		SetCorrectAnswer(correctAnswer).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save problem session: %w", err)
	}

	return &ProblemSession{
		ID:            row.ID,
		ProblemText:   row.ProblemText,
		CorrectAnswer: row.CorrectAnswer,
		CreatedAt:     row.CreatedAt,
	}, nil
}

func (r *sessionRepo) Get(ctx context.Context, id uuid.UUID) (*ProblemSession, error) {
	row, err := r.client.ProblemSession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get problem session: %w", err)
	}

	return &ProblemSession{
		ID:            row.ID,
		ProblemText:   row.ProblemText,
		CorrectAnswer: row.CorrectAnswer,
		CreatedAt:     row.CreatedAt,
	}, nil
}
