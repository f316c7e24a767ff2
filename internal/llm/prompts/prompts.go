// Package prompts builds the natural-language instruction payloads sent
// to the content backends. All prompts demand a bare JSON object reply;
// the caller still extracts defensively because backends do not always
// comply.
package prompts

import (
	"fmt"
	"strings"
)

// QuestionParams describes the question to generate.
type QuestionParams struct {
	QuestionType string // multiple-choice, short-answer, essay
	Subject      string
	Difficulty   string // easy, medium, hard
}

// GradingParams describes the answer to grade.
type GradingParams struct {
	QuestionType  string
	QuestionText  string
	UserAnswer    string
	CorrectAnswer string // may be empty for essay questions
}

// QuestionSystem is the system prompt for question generation.
func QuestionSystem() string {
	return "You are a bar exam question writer. You produce realistic, " +
		"original bar exam questions calibrated to the requested subject and " +
		"difficulty. Respond ONLY with a single JSON object and no other text."
}

// Question builds the user prompt for generating one question.
func Question(p QuestionParams) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Write one %s bar exam question.\n", p.QuestionType)
	fmt.Fprintf(&sb, "Subject: %s\n", p.Subject)
	fmt.Fprintf(&sb, "Difficulty: %s\n\n", p.Difficulty)

	switch p.QuestionType {
	case "multiple-choice":
		sb.WriteString("The question must have exactly four answer choices labeled A through D, with exactly one correct choice.\n\n")
		sb.WriteString("Respond with a JSON object of this shape:\n")
		sb.WriteString(`{"question": "<fact pattern and call of the question>", "options": ["A) ...", "B) ...", "C) ...", "D) ..."], "correctAnswer": "<the full text of the correct option>", "explanation": "<why the correct choice is right and the others are wrong>", "subject": "<subject>"}`)
	case "short-answer":
		sb.WriteString("The question should be answerable in two to four sentences.\n\n")
		sb.WriteString("Respond with a JSON object of this shape:\n")
		sb.WriteString(`{"question": "<the question>", "correctAnswer": "<a model answer>", "explanation": "<what a complete answer must cover>", "subject": "<subject>"}`)
	default: // essay
		sb.WriteString("Write a full essay fact pattern with a call of the question, as it would appear on the written portion of the exam.\n\n")
		sb.WriteString("Respond with a JSON object of this shape:\n")
		sb.WriteString(`{"question": "<fact pattern and call of the question>", "correctAnswer": "<a model answer outline: issues, rules, analysis, conclusion>", "explanation": "<the issues a passing answer must reach>", "subject": "<subject>"}`)
	}
	sb.WriteString("\n")

	return sb.String()
}

// GradingSystem is the system prompt for grading. Written answers
// (short-answer, essay) use a calibration variant that anchors scoring
// against a fixed worked example, to reduce score variance across
// backends.
func GradingSystem(questionType string) string {
	var sb strings.Builder
	sb.WriteString("You are a bar exam grader. You score answers on a 0-100 scale ")
	sb.WriteString("and give specific, actionable feedback. Respond ONLY with a single JSON object and no other text.\n")

	if questionType == "short-answer" || questionType == "essay" {
		sb.WriteString("\nCALIBRATION EXAMPLE (score anchor):\n")
		sb.WriteString("Question: \"Explain what is required for a valid contract.\"\n")
		sb.WriteString("Answer: \"A valid contract requires offer, acceptance, and consideration. ")
		sb.WriteString("The parties must have capacity and the subject matter must be legal.\"\n")
		sb.WriteString("Score: 85. The answer states every element correctly and concisely; ")
		sb.WriteString("it loses points only for not illustrating the elements.\n\n")
		sb.WriteString("GRADING RULES:\n")
		sb.WriteString("- Anchor your score against the calibration example above.\n")
		sb.WriteString("- Do NOT deduct credit for stylistic omissions (citations, headings, ")
		sb.WriteString("formal structure) that do not affect legal correctness.\n")
		sb.WriteString("- Deduct for missed issues, misstated rules, and unsupported conclusions.\n")
	}

	return sb.String()
}

// Grading builds the user prompt for grading one answer.
func Grading(p GradingParams) string {
	var sb strings.Builder
	sb.WriteString("QUESTION:\n" + p.QuestionText + "\n\n")
	sb.WriteString("STUDENT ANSWER:\n" + p.UserAnswer + "\n\n")
	if p.CorrectAnswer != "" {
		sb.WriteString("MODEL ANSWER (not shown to student):\n" + p.CorrectAnswer + "\n\n")
	}
	sb.WriteString("Grade the student answer. Respond with a JSON object of this shape:\n")
	sb.WriteString(`{"score": <0-100>, "feedback": "<overall feedback>", "strengths": ["<strength>", ...], "improvements": ["<improvement>", ...], "correctAnswer": "<the correct answer, restated>"}`)
	sb.WriteString("\n")
	return sb.String()
}

// ChatSystem is the system prompt for tutoring chat.
func ChatSystem(contextTag string) string {
	base := "You are a bar exam tutor. Explain legal concepts clearly, use " +
		"concrete examples, and keep answers focused on bar exam preparation. " +
		"Politely decline questions unrelated to legal study."
	if contextTag == "" {
		return base
	}
	return fmt.Sprintf("%s The student is currently working on: %s.", base, contextTag)
}
