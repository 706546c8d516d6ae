package store

import (
	"context"
	"fmt"

	"github.com/anlek/mathweave/ent"
)

// submissionRepo implements SubmissionRepo backed by ent.
type submissionRepo struct {
	client *ent.Client
}

func (r *submissionRepo) Create(ctx context.Context, sub Submission) error {
	_, err := r.client.Submission.Create().
		SetSessionID(sub.SessionID).
		SetUserAnswer(sub.UserAnswer).
		SetIsCorrect(sub.IsCorrect).
		SetFeedbackText(sub.FeedbackText).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save submission: %w", err)
	}
	return nil
}
