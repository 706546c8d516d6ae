package problemgen

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/anlek/mathweave/internal/curriculum"
	"github.com/anlek/mathweave/internal/llm"
	"github.com/anlek/mathweave/internal/store"
)

// fakeSessionRepo records created sessions in memory.
type fakeSessionRepo struct {
	created []store.ProblemSession
	failing bool
}

func (f *fakeSessionRepo) Create(_ context.Context, problemText string, correctAnswer float64) (*store.ProblemSession, error) {
	if f.failing {
		return nil, errors.New("insert returned no row")
	}
	sess := store.ProblemSession{
		ID:            uuid.New(),
		ProblemText:   problemText,
		CorrectAnswer: correctAnswer,
	}
	f.created = append(f.created, sess)
	return &sess, nil
}

func (f *fakeSessionRepo) Get(_ context.Context, id uuid.UUID) (*store.ProblemSession, error) {
	for i := range f.created {
		if f.created[i].ID == id {
			return &f.created[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func newTestService(provider llm.Provider, repo store.SessionRepo) *Service {
	s := New(provider, repo, DefaultConfig())
	s.newRand = func() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }
	return s
}

const bakeryProblem = `{"problem_text":"A bakery sold 45 cupcakes and 12 muffins. How many baked goods in total?","correct_answer":57}`

func TestGenerate_PersistsSessionAndReturnsID(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(bakeryProblem)},
	)
	repo := &fakeSessionRepo{}
	svc := newTestService(mock, repo)

	p, err := svc.Generate(context.Background(), curriculum.DifficultyEasy)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if p.Answer != 57 {
		t.Errorf("answer = %v, want 57", p.Answer)
	}
	if !strings.Contains(p.Text, "bakery") {
		t.Errorf("unexpected problem text: %q", p.Text)
	}
	if p.SessionID == uuid.Nil {
		t.Error("expected a session id")
	}

	if len(repo.created) != 1 {
		t.Fatalf("sessions created = %d, want 1", len(repo.created))
	}
	if repo.created[0].ID != p.SessionID {
		t.Error("returned session id does not match the persisted row")
	}
	if repo.created[0].CorrectAnswer != 57 {
		t.Errorf("persisted answer = %v, want 57", repo.created[0].CorrectAnswer)
	}
}

func TestGenerate_ConceptCountPerDifficulty(t *testing.T) {
	tests := []struct {
		difficulty curriculum.Difficulty
		concepts   int
	}{
		{curriculum.DifficultyEasy, 1},
		{curriculum.DifficultyMedium, 2},
		{curriculum.DifficultyHard, 3},
	}

	for _, tc := range tests {
		mock := llm.NewMockProvider(
			llm.MockResponse{Content: json.RawMessage(bakeryProblem)},
		)
		svc := newTestService(mock, &fakeSessionRepo{})

		if _, err := svc.Generate(context.Background(), tc.difficulty); err != nil {
			t.Fatalf("%s: %v", tc.difficulty, err)
		}

		// The user message names every sampled concept; count how many
		// pool concepts appear in it.
		msg := mock.Calls[0].Messages[0].Content
		header := strings.SplitN(msg, "--- SYLLABUS REFERENCE ---", 2)[0]
		found := 0
		for _, g := range curriculum.Syllabus() {
			if strings.Contains(header, g.Concept) {
				found++
			}
		}
		if found != tc.concepts {
			t.Errorf("%s: prompt names %d concepts, want %d:\n%s", tc.difficulty, found, tc.concepts, header)
		}
	}
}

func TestGenerate_GatewayFailureCreatesNoSession(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	repo := &fakeSessionRepo{}
	svc := newTestService(mock, repo)

	_, err := svc.Generate(context.Background(), curriculum.DifficultyMedium)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.created) != 0 {
		t.Errorf("sessions created = %d, want 0", len(repo.created))
	}
}

func TestGenerate_StoreFailureIsFatal(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(bakeryProblem)},
	)
	svc := newTestService(mock, &fakeSessionRepo{failing: true})

	_, err := svc.Generate(context.Background(), curriculum.DifficultyEasy)
	if err == nil {
		t.Fatal("expected error when the session insert fails")
	}
}

func TestGenerate_MalformedOutputIsFatal(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"problem_text": 12}`)},
	)
	repo := &fakeSessionRepo{}
	svc := newTestService(mock, repo)

	_, err := svc.Generate(context.Background(), curriculum.DifficultyEasy)
	if err == nil {
		t.Fatal("expected error for unparsable output")
	}
	if len(repo.created) != 0 {
		t.Errorf("sessions created = %d, want 0", len(repo.created))
	}
}
