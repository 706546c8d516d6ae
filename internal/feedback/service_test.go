package feedback

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/anlek/mathweave/internal/llm"
	"github.com/anlek/mathweave/internal/store"
)

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*store.ProblemSession
}

func (f *fakeSessionRepo) Create(_ context.Context, problemText string, correctAnswer float64) (*store.ProblemSession, error) {
	sess := &store.ProblemSession{ID: uuid.New(), ProblemText: problemText, CorrectAnswer: correctAnswer}
	if f.sessions == nil {
		f.sessions = make(map[uuid.UUID]*store.ProblemSession)
	}
	f.sessions[sess.ID] = sess
	return sess, nil
}

func (f *fakeSessionRepo) Get(_ context.Context, id uuid.UUID) (*store.ProblemSession, error) {
	sess, ok := f.sessions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return sess, nil
}

type fakeSubmissionRepo struct {
	created []store.Submission
	failing bool
}

func (f *fakeSubmissionRepo) Create(_ context.Context, sub store.Submission) error {
	if f.failing {
		return errors.New("insert failed")
	}
	f.created = append(f.created, sub)
	return nil
}

func seedSession(t *testing.T, repo *fakeSessionRepo, answer float64) uuid.UUID {
	t.Helper()
	sess, err := repo.Create(context.Background(), "A bakery sold 45 cupcakes and 12 muffins. How many baked goods in total?", answer)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return sess.ID
}

func TestEvaluate_CorrectAnswerStreamsAndPersists(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddStream(llm.MockStream{Fragments: []string{"Great ", "job!"}})

	sessions := &fakeSessionRepo{}
	subs := &fakeSubmissionRepo{}
	id := seedSession(t, sessions, 57)

	svc := New(mock, sessions, subs, nil, DefaultConfig())

	var got []string
	res, err := svc.Evaluate(context.Background(), id, 57, func(frag string) error {
		got = append(got, frag)
		return nil
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if !res.IsCorrect {
		t.Error("57 == 57 should grade correct")
	}
	if joined := strings.Join(got, ""); joined != "Great job!" {
		t.Errorf("streamed %q, want %q", joined, "Great job!")
	}
	if res.Feedback != "Great job!" {
		t.Errorf("accumulated feedback = %q", res.Feedback)
	}

	if len(subs.created) != 1 {
		t.Fatalf("submissions = %d, want 1", len(subs.created))
	}
	sub := subs.created[0]
	if sub.SessionID != id || !sub.IsCorrect || sub.FeedbackText != "Great job!" || sub.UserAnswer != 57 {
		t.Errorf("unexpected submission row: %+v", sub)
	}
}

func TestEvaluate_IncorrectAnswer(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddStream(llm.MockStream{Fragments: []string{"Not quite."}})

	sessions := &fakeSessionRepo{}
	subs := &fakeSubmissionRepo{}
	id := seedSession(t, sessions, 57)

	svc := New(mock, sessions, subs, nil, DefaultConfig())

	res, err := svc.Evaluate(context.Background(), id, 50, func(string) error { return nil })
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.IsCorrect {
		t.Error("50 != 57 should grade incorrect")
	}
	if subs.created[0].IsCorrect {
		t.Error("persisted row should grade incorrect")
	}
	if !strings.Contains(mock.StreamCalls[0].Messages[0].Content, "INCORRECTLY") {
		t.Error("tutor prompt should flag the answer as incorrect")
	}
}

func TestEvaluate_StrictEquality(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddStream(llm.MockStream{Fragments: []string{"x"}})

	sessions := &fakeSessionRepo{}
	subs := &fakeSubmissionRepo{}
	id := seedSession(t, sessions, 0.5)

	svc := New(mock, sessions, subs, nil, DefaultConfig())

	// 0.50000001 is close but not equal; no tolerance is applied.
	res, err := svc.Evaluate(context.Background(), id, 0.50000001, func(string) error { return nil })
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.IsCorrect {
		t.Error("near-miss answers must not grade correct")
	}
}

func TestEvaluate_UnknownSessionSkipsGateway(t *testing.T) {
	mock := llm.NewMockProvider()
	sessions := &fakeSessionRepo{}
	subs := &fakeSubmissionRepo{}

	svc := New(mock, sessions, subs, nil, DefaultConfig())

	_, err := svc.Evaluate(context.Background(), uuid.New(), 57, func(string) error { return nil })
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if mock.StreamCallCount() != 0 {
		t.Error("unknown session must not reach the provider")
	}
	if len(subs.created) != 0 {
		t.Error("unknown session must not record a submission")
	}
}

func TestEvaluate_MidStreamFailurePersistsPartial(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddStream(llm.MockStream{
		Fragments: []string{"You set up the "},
		Err:       &llm.ErrStreamInterrupted{Err: errors.New("connection reset")},
	})

	sessions := &fakeSessionRepo{}
	subs := &fakeSubmissionRepo{}
	id := seedSession(t, sessions, 57)

	svc := New(mock, sessions, subs, nil, DefaultConfig())

	res, err := svc.Evaluate(context.Background(), id, 57, func(string) error { return nil })
	if err != nil {
		t.Fatalf("mid-stream failure should not surface once fragments were delivered, got %v", err)
	}
	if res.Feedback != "You set up the " {
		t.Errorf("feedback = %q, want the partial text", res.Feedback)
	}
	if len(subs.created) != 1 || subs.created[0].FeedbackText != "You set up the " {
		t.Errorf("partial feedback should be persisted, got %+v", subs.created)
	}
}

func TestEvaluate_PreStreamFailureRecordsNothing(t *testing.T) {
	// No canned stream: the mock yields ErrProviderUnavailable before
	// any fragment.
	mock := llm.NewMockProvider()
	sessions := &fakeSessionRepo{}
	subs := &fakeSubmissionRepo{}
	id := seedSession(t, sessions, 57)

	svc := New(mock, sessions, subs, nil, DefaultConfig())

	_, err := svc.Evaluate(context.Background(), id, 57, func(string) error { return nil })
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
	if len(subs.created) != 0 {
		t.Error("pre-stream failure must not record a submission")
	}
}

func TestEvaluate_EmitFailureStillPersists(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddStream(llm.MockStream{Fragments: []string{"Well ", "done, ", "you nailed it."}})

	sessions := &fakeSessionRepo{}
	subs := &fakeSubmissionRepo{}
	id := seedSession(t, sessions, 57)

	svc := New(mock, sessions, subs, nil, DefaultConfig())

	calls := 0
	res, err := svc.Evaluate(context.Background(), id, 57, func(string) error {
		calls++
		if calls == 2 {
			return errors.New("client disconnected")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if res.Feedback != "Well done, " {
		t.Errorf("feedback = %q, want the fragments accepted before disconnect", res.Feedback)
	}
	if len(subs.created) != 1 || subs.created[0].FeedbackText != "Well done, " {
		t.Errorf("submission should persist despite the disconnect, got %+v", subs.created)
	}
}

func TestEvaluate_SubmissionStoreFailure(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddStream(llm.MockStream{Fragments: []string{"ok"}})

	sessions := &fakeSessionRepo{}
	id := seedSession(t, sessions, 57)

	svc := New(mock, sessions, &fakeSubmissionRepo{failing: true}, nil, DefaultConfig())

	_, err := svc.Evaluate(context.Background(), id, 57, func(string) error { return nil })
	if err == nil {
		t.Fatal("expected error when the submission insert fails")
	}
}
