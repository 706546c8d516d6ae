package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}

	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 recorded calls, got %d", mock.CallCount())
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_StreamYieldsFragmentsInOrder(t *testing.T) {
	mock := NewMockProvider()
	mock.AddStream(MockStream{Fragments: []string{"Great ", "job!"}})

	var got []string
	for frag, err := range mock.GenerateStream(context.Background(), Request{}) {
		if err != nil {
			t.Fatalf("unexpected stream error: %v", err)
		}
		got = append(got, frag)
	}

	if len(got) != 2 || got[0] != "Great " || got[1] != "job!" {
		t.Fatalf("fragments = %v, want [Great , job!]", got)
	}
}

func TestMockProvider_StreamMidFailure(t *testing.T) {
	mock := NewMockProvider()
	mock.AddStream(MockStream{
		Fragments: []string{"partial"},
		Err:       &ErrStreamInterrupted{Err: errors.New("cut")},
	})

	var got string
	var streamErr error
	for frag, err := range mock.GenerateStream(context.Background(), Request{}) {
		if err != nil {
			streamErr = err
			continue
		}
		got += frag
	}

	if got != "partial" {
		t.Fatalf("fragments before failure = %q, want %q", got, "partial")
	}
	var interrupted *ErrStreamInterrupted
	if !errors.As(streamErr, &interrupted) {
		t.Fatalf("expected ErrStreamInterrupted, got: %T", streamErr)
	}
}

func TestMockProvider_StreamEmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()

	var streamErr error
	for _, err := range mock.GenerateStream(context.Background(), Request{}) {
		streamErr = err
	}

	var unavail *ErrProviderUnavailable
	if !errors.As(streamErr, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", streamErr)
	}
}
