package problemgen

import "github.com/google/uuid"

// Problem is a generated word problem together with the identifier of
// the persisted session backing it. A Problem is only ever returned
// after its session row has been durably created.
type Problem struct {
	// Text is the word problem shown to the student.
	Text string

	// Answer is the correct answer as a bare, unit-less number.
	Answer float64

	// SessionID is the server-assigned identifier of the persisted
	// session. Submissions reference it.
	SessionID uuid.UUID
}

// Config holds generation tuning parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Temperature matches what the
// generation prompt was tuned with.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.5,
	}
}
