package curriculum

import "testing"

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input   string
		want    Difficulty
		wantErr bool
	}{
		{"EASY", DifficultyEasy, false},
		{"MEDIUM", DifficultyMedium, false},
		{"HARD", DifficultyHard, false},
		{"easy", "", true},
		{"EXTREME", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDifficulty(%q) = %q, want error", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDifficulty(%q): %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestConceptCount(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want int
	}{
		{DifficultyEasy, 1},
		{DifficultyMedium, 2},
		{DifficultyHard, 3},
	}

	for _, tc := range tests {
		if got := tc.d.ConceptCount(); got != tc.want {
			t.Errorf("%s.ConceptCount() = %d, want %d", tc.d, got, tc.want)
		}
	}
}
