package problemgen

import "github.com/anlek/mathweave/internal/llm"

// ProblemSchema defines the JSON schema for LLM problem generation
// responses: exactly two fields, a problem text and a bare numeric answer.
var ProblemSchema = &llm.Schema{
	Name:        "math-problem",
	Description: "A single math word problem with its numeric answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"problem_text": map[string]any{
				"type":        "string",
				"description": "The word problem shown to the student, in plain text",
			},
			"correct_answer": map[string]any{
				"type":        "number",
				"description": "The correct answer as a plain unit-less number",
			},
		},
		"required":             []any{"problem_text", "correct_answer"},
		"additionalProperties": false,
	},
}
