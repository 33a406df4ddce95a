package domain

// GenericTopic is the statistics bucket for questions without an exam
// grouping, and the section fallback within an exam ("Genel" in the UI).
const GenericTopic = "Genel"

// Question is a single multiple-choice question. Questions are immutable
// once created; edits are delete-and-recreate.
type Question struct {
	ID           string
	Text         string
	Choices      []string
	CorrectIndex int
	Explanation  string
	ImageURL     string

	// Exam grouping. ExamID/ExamTitle/Section are set for exam questions;
	// exams themselves are derived from these fields, never stored.
	ExamID    string
	ExamTitle string
	Section   string
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.Text == "" {
		return NewInvalidInputError("question text is required")
	}
	if len(q.Choices) < 2 {
		return NewInvalidInputError("at least two choices are required")
	}
	for _, c := range q.Choices {
		if c == "" {
			return NewInvalidInputError("all choices must be non-empty")
		}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
		return NewInvalidInputError("correct index is out of range")
	}
	return nil
}

// IsCorrect reports whether the given choice index is the correct answer.
func (q *Question) IsCorrect(choiceIndex int) bool {
	return choiceIndex == q.CorrectIndex
}

// TopicKey derives the statistics bucket for this question:
// "<exam title>/<section>" with GenericTopic standing in for a missing
// section, or GenericTopic alone for questions without an exam grouping.
func (q *Question) TopicKey() string {
	if q.ExamTitle == "" {
		return GenericTopic
	}
	section := q.Section
	if section == "" {
		section = GenericTopic
	}
	return q.ExamTitle + "/" + section
}

// ExamSummary is the derived view of one exam grouping: all questions
// sharing an exam identifier, with their distinct sections in first-seen
// order.
type ExamSummary struct {
	ExamID        string
	Title         string
	Sections      []string
	QuestionCount int
}
