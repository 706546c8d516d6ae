package problemgen

import (
	"fmt"
	"strings"

	"github.com/anlek/mathweave/internal/curriculum"
)

const systemPrompt = `You are an expert curriculum designer for Primary 5 students. Your sole task is to generate high-quality math word problems based on the rules below.

**PRIMARY RULE: KNOWLEDGE CONFINEMENT**
You must **only** generate problems that strictly relate to and fall under the approved curriculum concepts supplied with each request. Do not draw on any topic outside them.

**DIFFICULTY TIERS:**
- EASY: uses a single concept, solvable in one or two steps, with small friendly numbers.
- MEDIUM: uses exactly two concepts which MUST be combined into one cohesive problem, not two separate questions; expect two to three solution steps and moderately sized numbers, simple fractions or decimals.
- HARD: uses exactly three concepts which MUST all be combined into one cohesive problem; expect multi-step reasoning and may involve mixed numbers, decimals to 3 places or percentages.

**STRICT OUTPUT FORMATTING RULE:**
The answer you generate for the 'correct_answer' field **must be a plain, unit-less numerical value**. Do not include any text, unit symbols (like 'cm', 'kg', '$', or 'litres'), or explanatory words in the final answer — only the number itself. If the exact answer would be a repeating decimal, word the problem so it asks for the answer rounded to 2 decimal places, and give that rounded value.

Use plain text for all math. No LaTeX, no Unicode symbols.`

// buildUserMessage constructs the user message from the difficulty and
// the sampled topic groups. Concept names are joined for emphasis and
// the union of their detail topics, deduplicated, grounds the request.
// Sampling mechanics (pool positions, ordering) are never included.
func buildUserMessage(difficulty curriculum.Difficulty, groups []curriculum.TopicGroup) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a word problem at %s difficulty.\n\n", difficulty)

	concepts := make([]string, len(groups))
	for i, g := range groups {
		concepts[i] = g.Concept
	}
	if len(concepts) == 1 {
		fmt.Fprintf(&b, "Concept: %s\n", concepts[0])
	} else {
		fmt.Fprintf(&b, "Concepts to combine into ONE problem: %s\n", strings.Join(concepts, ", "))
	}

	b.WriteString("\n--- SYLLABUS REFERENCE ---\n")
	seen := make(map[string]bool)
	for _, g := range groups {
		for _, d := range g.Details {
			if seen[d] {
				continue
			}
			seen[d] = true
			fmt.Fprintf(&b, "- %s\n", d)
		}
	}
	b.WriteString("---------------------------\n")

	return b.String()
}
