package feedback

import (
	"strings"
	"testing"
)

func TestBuildUserMessage_Correct(t *testing.T) {
	msg := buildUserMessage("A tank holds 57 litres.", 57, 57, true)

	if !strings.Contains(msg, "A tank holds 57 litres.") {
		t.Error("message should quote the problem text")
	}
	if !strings.Contains(msg, "Correct answer: 57\n") {
		t.Errorf("message should carry the reference answer:\n%s", msg)
	}
	if !strings.Contains(msg, "CORRECTLY") {
		t.Error("correct submissions should be flagged as such")
	}
}

func TestBuildUserMessage_Incorrect(t *testing.T) {
	msg := buildUserMessage("A tank holds 57 litres.", 57, 50, false)

	if !strings.Contains(msg, "Student's answer: 50\n") {
		t.Errorf("message should carry the student's answer:\n%s", msg)
	}
	if !strings.Contains(msg, "INCORRECTLY") {
		t.Error("incorrect submissions should be flagged as such")
	}
	if !strings.Contains(msg, "without revealing the final answer") {
		t.Error("incorrect branch should restate the withholding rule")
	}
}

func TestFormatAnswer(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{57, "57"},
		{0.5, "0.5"},
		{12.25, "12.25"},
		{-3, "-3"},
	}
	for _, tc := range tests {
		if got := formatAnswer(tc.in); got != tc.want {
			t.Errorf("formatAnswer(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
