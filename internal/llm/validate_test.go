package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "word-problem",
		Description: "A generated word problem",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"problem_text":   map[string]any{"type": "string"},
				"correct_answer": map[string]any{"type": "number"},
			},
			"required": []any{"problem_text", "correct_answer"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"problem_text":"What is 6 * 7?","correct_answer":42}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"problem_text":"What is 6 * 7?"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"problem_text":"What is 6 * 7?","correct_answer":"42"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for string answer")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"problem_text": not json`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`anything at all`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("nil schema should skip validation, got: %v", err)
	}
}
