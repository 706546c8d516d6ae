package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anlek/mathweave/internal/curriculum"
	"github.com/anlek/mathweave/internal/feedback"
	"github.com/anlek/mathweave/internal/llm"
	"github.com/anlek/mathweave/internal/problemgen"
	"github.com/anlek/mathweave/internal/store"
)

type fakeGenerator struct {
	lastDifficulty curriculum.Difficulty
	problem        *problemgen.Problem
	err            error
}

func (f *fakeGenerator) Generate(_ context.Context, d curriculum.Difficulty) (*problemgen.Problem, error) {
	f.lastDifficulty = d
	if f.err != nil {
		return nil, f.err
	}
	return f.problem, nil
}

type fakeEvaluator struct {
	lastSessionID uuid.UUID
	lastAnswer    float64
	fragments     []string
	err           error
}

func (f *fakeEvaluator) Evaluate(_ context.Context, id uuid.UUID, answer float64, emit func(string) error) (*feedback.Result, error) {
	f.lastSessionID = id
	f.lastAnswer = answer
	if f.err != nil {
		return nil, f.err
	}
	var b strings.Builder
	for _, frag := range f.fragments {
		b.WriteString(frag)
		if err := emit(frag); err != nil {
			break
		}
	}
	return &feedback.Result{IsCorrect: true, Feedback: b.String()}, nil
}

func newTestRouter(gen *fakeGenerator, eval *fakeEvaluator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(NewHandler(gen, eval, nil), nil)
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(&fakeGenerator{}, &fakeEvaluator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "ok" {
		t.Errorf("body = %q, want %q", w.Body.String(), "ok")
	}
}

func TestGenerateProblem_DefaultsToMedium(t *testing.T) {
	gen := &fakeGenerator{problem: &problemgen.Problem{
		Text:      "A bakery sold 45 cupcakes and 12 muffins. How many baked goods in total?",
		Answer:    57,
		SessionID: uuid.New(),
	}}
	router := newTestRouter(gen, &fakeEvaluator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/problems", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if gen.lastDifficulty != curriculum.DifficultyMedium {
		t.Errorf("difficulty = %s, want MEDIUM", gen.lastDifficulty)
	}

	var resp struct {
		SessionID     string  `json:"session_id"`
		ProblemText   string  `json:"problem_text"`
		CorrectAnswer float64 `json:"correct_answer"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SessionID != gen.problem.SessionID.String() {
		t.Error("response should carry the session id")
	}
	if resp.ProblemText == "" || resp.CorrectAnswer != 57 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestGenerateProblem_ExplicitDifficulty(t *testing.T) {
	gen := &fakeGenerator{problem: &problemgen.Problem{Text: "x", Answer: 1, SessionID: uuid.New()}}
	router := newTestRouter(gen, &fakeEvaluator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/problems", strings.NewReader(`{"difficulty_level":"HARD"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gen.lastDifficulty != curriculum.DifficultyHard {
		t.Errorf("difficulty = %s, want HARD", gen.lastDifficulty)
	}
}

func TestGenerateProblem_RejectsUnknownDifficulty(t *testing.T) {
	router := newTestRouter(&fakeGenerator{}, &fakeEvaluator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/problems", strings.NewReader(`{"difficulty_level":"BRUTAL"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "error") {
		t.Error("expected an error envelope")
	}
}

func TestGenerateProblem_ProviderDown(t *testing.T) {
	gen := &fakeGenerator{err: &llm.ErrProviderUnavailable{Err: errors.New("down")}}
	router := newTestRouter(gen, &fakeEvaluator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/problems", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestSubmitAnswer_StreamsFeedback(t *testing.T) {
	eval := &fakeEvaluator{fragments: []string{"Great ", "job!"}}
	router := newTestRouter(&fakeGenerator{}, eval)

	id := uuid.New()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/problems/"+id.String()+"/submissions", strings.NewReader(`{"answer":57}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != "Great job!" {
		t.Errorf("body = %q, want the concatenated fragments", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	if cc := w.Header().Get("Cache-Control"); cc != "no-cache" {
		t.Errorf("Cache-Control = %q, want no-cache", cc)
	}
	if eval.lastSessionID != id || eval.lastAnswer != 57 {
		t.Errorf("evaluator called with (%s, %v)", eval.lastSessionID, eval.lastAnswer)
	}
}

func TestSubmitAnswer_InvalidID(t *testing.T) {
	router := newTestRouter(&fakeGenerator{}, &fakeEvaluator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/problems/not-a-uuid/submissions", strings.NewReader(`{"answer":57}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSubmitAnswer_MissingAnswer(t *testing.T) {
	router := newTestRouter(&fakeGenerator{}, &fakeEvaluator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/problems/"+uuid.NewString()+"/submissions", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "answer is required") {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestSubmitAnswer_BodySessionMismatch(t *testing.T) {
	router := newTestRouter(&fakeGenerator{}, &fakeEvaluator{})

	body := `{"answer":57,"session_id":"` + uuid.NewString() + `"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/problems/"+uuid.NewString()+"/submissions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSubmitAnswer_UnknownSession(t *testing.T) {
	eval := &fakeEvaluator{err: store.ErrNotFound}
	router := newTestRouter(&fakeGenerator{}, eval)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/problems/"+uuid.NewString()+"/submissions", strings.NewReader(`{"answer":57}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestSubmitAnswer_ProviderDownBeforeStreaming(t *testing.T) {
	eval := &fakeEvaluator{err: &llm.ErrProviderUnavailable{Err: errors.New("down")}}
	router := newTestRouter(&fakeGenerator{}, eval)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/problems/"+uuid.NewString()+"/submissions", strings.NewReader(`{"answer":57}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
