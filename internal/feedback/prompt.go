package feedback

import (
	"fmt"
	"strconv"
	"strings"
)

const systemPrompt = `You are a warm, encouraging math tutor for Primary 5 students. A student has just submitted an answer to a word problem and you will respond with feedback, speaking directly to the student.

**WHEN THE ANSWER IS CORRECT:**
Congratulate the student, then briefly walk through the solution to reinforce why the answer is right. Name the concepts the problem exercised so the student knows what they have mastered.

**WHEN THE ANSWER IS INCORRECT:**
Be kind and constructive. Identify the most likely mistake given the student's answer, then guide them toward the right approach step by step. Do **not** state the final numerical answer; end by encouraging the student to try the problem again with your hints.

Use plain text for all math. No LaTeX, no Unicode symbols. Keep the response short enough for a ten year old to read comfortably.`

// formatAnswer renders a float the way a student would write it, without
// a trailing ".0" on whole numbers.
func formatAnswer(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// buildUserMessage gives the tutor the full grading context. The correct
// answer is always included for the tutor's reference; the system prompt
// governs whether it may be revealed to the student.
func buildUserMessage(problemText string, correctAnswer, userAnswer float64, isCorrect bool) string {
	var b strings.Builder

	b.WriteString("Here is the problem the student was given:\n\n")
	b.WriteString(problemText)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Correct answer: %s\n", formatAnswer(correctAnswer))
	fmt.Fprintf(&b, "Student's answer: %s\n\n", formatAnswer(userAnswer))

	if isCorrect {
		b.WriteString("The student answered CORRECTLY. Respond with praise and a short worked solution.\n")
	} else {
		b.WriteString("The student answered INCORRECTLY. Diagnose the likely error and guide them, without revealing the final answer.\n")
	}

	return b.String()
}
