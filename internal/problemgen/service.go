package problemgen

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/anlek/mathweave/internal/curriculum"
	"github.com/anlek/mathweave/internal/llm"
	"github.com/anlek/mathweave/internal/store"
)

// Service generates a problem for a requested difficulty and persists
// the backing session. Both the generation call and the session insert
// are fatal on failure: a session id is never returned without a
// durably created row.
type Service struct {
	provider llm.Provider
	sessions store.SessionRepo
	pool     []curriculum.TopicGroup
	cfg      Config

	// newRand builds a request-local random source so concurrent
	// requests sample independently. Overridden in tests.
	newRand func() *rand.Rand
}

// New creates a Service sampling from the full Primary 5 syllabus.
func New(provider llm.Provider, sessions store.SessionRepo, cfg Config) *Service {
	return &Service{
		provider: provider,
		sessions: sessions,
		pool:     curriculum.Syllabus(),
		cfg:      cfg,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
}

// problemOutput is the raw LLM response before mapping.
type problemOutput struct {
	ProblemText   string  `json:"problem_text"`
	CorrectAnswer float64 `json:"correct_answer"`
}

// Generate produces a problem at the given difficulty and returns it
// with the id of the session row created for it.
func (s *Service) Generate(ctx context.Context, difficulty curriculum.Difficulty) (*Problem, error) {
	ctx = llm.WithPurpose(ctx, "problem-gen")

	count := difficulty.ConceptCount()
	if count == 0 {
		return nil, fmt.Errorf("unknown difficulty level: %q", difficulty)
	}

	groups := curriculum.Sample(s.newRand(), s.pool, count)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(difficulty, groups)},
		},
		Schema:      ProblemSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw problemOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	sess, err := s.sessions.Create(ctx, raw.ProblemText, raw.CorrectAnswer)
	if err != nil {
		return nil, fmt.Errorf("persist problem session: %w", err)
	}

	return &Problem{
		Text:      sess.ProblemText,
		Answer:    sess.CorrectAnswer,
		SessionID: sess.ID,
	}, nil
}
