package curriculum

import "fmt"

// Difficulty is the client-selected tier controlling how many syllabus
// concepts a generated problem must combine.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// ParseDifficulty validates a raw difficulty string. Unrecognized values
// are rejected at the boundary, never silently defaulted.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty level: %q", s)
	}
}

// ConceptCount returns how many distinct topic groups a problem at this
// difficulty draws on.
func (d Difficulty) ConceptCount() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 0
	}
}
