package problemgen

import (
	"strings"
	"testing"

	"github.com/anlek/mathweave/internal/curriculum"
)

func TestBuildUserMessage_SingleConcept(t *testing.T) {
	groups := []curriculum.TopicGroup{
		{Concept: "Fractions", Details: []string{"Adding and subtracting mixed numbers"}},
	}

	msg := buildUserMessage(curriculum.DifficultyEasy, groups)

	if !strings.Contains(msg, "EASY") {
		t.Error("message should name the difficulty")
	}
	if !strings.Contains(msg, "Concept: Fractions") {
		t.Errorf("message should name the single concept:\n%s", msg)
	}
	if !strings.Contains(msg, "Adding and subtracting mixed numbers") {
		t.Error("message should include the detail topics")
	}
}

func TestBuildUserMessage_MultipleConceptsCombined(t *testing.T) {
	groups := []curriculum.TopicGroup{
		{Concept: "Decimals", Details: []string{"Kilograms and grams"}},
		{Concept: "Rate", Details: []string{"Finding rate, total amount or number of units given the other two quantities"}},
	}

	msg := buildUserMessage(curriculum.DifficultyMedium, groups)

	if !strings.Contains(msg, "Concepts to combine into ONE problem: Decimals, Rate") {
		t.Errorf("message should demand combining all concepts:\n%s", msg)
	}
	if !strings.Contains(msg, "Kilograms and grams") {
		t.Error("message should include details from every group")
	}
}

func TestBuildUserMessage_DeduplicatesDetails(t *testing.T) {
	groups := []curriculum.TopicGroup{
		{Concept: "A", Details: []string{"shared topic", "only in A"}},
		{Concept: "B", Details: []string{"shared topic", "only in B"}},
	}

	msg := buildUserMessage(curriculum.DifficultyMedium, groups)

	if got := strings.Count(msg, "shared topic"); got != 1 {
		t.Errorf("duplicated detail appears %d times, want 1:\n%s", got, msg)
	}
	if !strings.Contains(msg, "only in A") || !strings.Contains(msg, "only in B") {
		t.Error("message should keep distinct details from both groups")
	}
}
