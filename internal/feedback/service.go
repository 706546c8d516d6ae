package feedback

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/anlek/mathweave/internal/llm"
	"github.com/anlek/mathweave/internal/store"
)

// Config holds tunables for feedback generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the defaults used in production.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.5,
	}
}

// Result is the outcome of evaluating a submission. Feedback holds the
// full accumulated tutor response, which may be partial if the stream
// was interrupted.
type Result struct {
	IsCorrect bool
	Feedback  string
}

// Service grades a submitted answer against its problem session and
// streams tutoring feedback while recording the submission.
type Service struct {
	provider    llm.Provider
	sessions    store.SessionRepo
	submissions store.SubmissionRepo
	logger      *zap.Logger
	cfg         Config
}

// New creates a feedback service. A nil logger disables logging.
func New(provider llm.Provider, sessions store.SessionRepo, submissions store.SubmissionRepo, logger *zap.Logger, cfg Config) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultConfig().MaxTokens
	}
	return &Service{
		provider:    provider,
		sessions:    sessions,
		submissions: submissions,
		logger:      logger,
		cfg:         cfg,
	}
}

// Evaluate looks up the session, grades the answer with strict equality,
// streams tutor feedback through emit and persists the submission.
//
// The session lookup happens before any provider call, so an unknown id
// never costs a generation. Once the first fragment has been delivered
// the submission is recorded no matter how the stream ends: a mid-stream
// provider failure or a failing emit (client gone) still persists the
// fragments accumulated so far. Only a failure before the first fragment
// is surfaced to the caller, and then nothing is recorded.
func (s *Service) Evaluate(ctx context.Context, sessionID uuid.UUID, userAnswer float64, emit func(fragment string) error) (*Result, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	isCorrect := userAnswer == sess.CorrectAnswer

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(sess.ProblemText, sess.CorrectAnswer, userAnswer, isCorrect)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	ctx = llm.WithPurpose(ctx, "feedback")

	var (
		b         strings.Builder
		streamErr error
	)
	for frag, ferr := range s.provider.GenerateStream(ctx, req) {
		if ferr != nil {
			streamErr = ferr
			break
		}
		b.WriteString(frag)
		if emitErr := emit(frag); emitErr != nil {
			s.logger.Info("feedback consumer went away mid-stream",
				zap.String("session_id", sessionID.String()),
				zap.Error(emitErr))
			break
		}
	}

	if streamErr != nil {
		if b.Len() == 0 {
			return nil, fmt.Errorf("generating feedback: %w", streamErr)
		}
		s.logger.Warn("feedback stream interrupted, persisting partial text",
			zap.String("session_id", sessionID.String()),
			zap.Error(streamErr))
	}

	res := &Result{
		IsCorrect: isCorrect,
		Feedback:  b.String(),
	}

	// The submission must outlive the request: a disconnected client
	// cancels ctx but the grade and feedback are still recorded.
	sub := store.Submission{
		SessionID:    sessionID,
		UserAnswer:   userAnswer,
		IsCorrect:    isCorrect,
		FeedbackText: res.Feedback,
	}
	if err := s.submissions.Create(context.WithoutCancel(ctx), sub); err != nil {
		return nil, fmt.Errorf("recording submission: %w", err)
	}

	return res, nil
}
