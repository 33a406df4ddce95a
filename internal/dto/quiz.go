package dto

// AddQuestionRequest is the admin form for a new exam question.
// @Description Request body for adding a question
type AddQuestionRequest struct {
	Text         string   `json:"text"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	ExamID       string   `json:"exam_id"`
	ExamTitle    string   `json:"exam_title"`
	Section      string   `json:"section"`
}

// QuestionResponse represents a stored question in the API response
type QuestionResponse struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	ExamID       string   `json:"exam_id,omitempty"`
	ExamTitle    string   `json:"exam_title,omitempty"`
	Section      string   `json:"section,omitempty"`
}

// QuestionListResponse is the admin question listing.
type QuestionListResponse struct {
	Questions []QuestionResponse `json:"questions"`
	Total     int                `json:"total"`
}

// ExamResponse represents one derived exam summary
type ExamResponse struct {
	ExamID        string   `json:"exam_id"`
	Title         string   `json:"title"`
	Sections      []string `json:"sections"`
	QuestionCount int      `json:"question_count"`
}

// ExamListResponse is the exam selection screen payload.
type ExamListResponse struct {
	Exams []ExamResponse `json:"exams"`
}

// StartSessionRequest selects the exam (and optionally one section) to play.
// A null section means all sections.
type StartSessionRequest struct {
	ExamID  string  `json:"exam_id"`
	Section *string `json:"section"`
}

// AnswerRequest records the choice for the current question.
type AnswerRequest struct {
	ChoiceIndex int `json:"choice_index"`
}

// SessionQuestion is the current question as shown to the player. The
// correct index and explanation are withheld until the answer is recorded;
// they arrive in AnswerReveal.
type SessionQuestion struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Choices  []string `json:"choices"`
	ImageURL string   `json:"image_url,omitempty"`
	Section  string   `json:"section,omitempty"`
}

// AnswerReveal is shown after the current question has been answered.
type AnswerReveal struct {
	SelectedIndex int    `json:"selected_index"`
	CorrectIndex  int    `json:"correct_index"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation,omitempty"`
}

// SessionResponse is the full snapshot the presentation layer renders after
// every state change.
type SessionResponse struct {
	Status       string           `json:"status"`
	ExamID       string           `json:"exam_id,omitempty"`
	Section      string           `json:"section,omitempty"`
	Index        int              `json:"index"`
	Total        int              `json:"total"`
	Progress     float64          `json:"progress"`
	Score        int              `json:"score"`
	ScorePercent float64          `json:"score_percent"`
	Question     *SessionQuestion `json:"question,omitempty"`
	Reveal       *AnswerReveal    `json:"reveal,omitempty"`
}

// TopicStatsResponse is one per-topic row of the statistics screen.
type TopicStatsResponse struct {
	Total       int `json:"total"`
	Correct     int `json:"correct"`
	SuccessRate int `json:"success_rate"`
}

// StatsResponse is a user's statistics snapshot.
type StatsResponse struct {
	UserKey     string                        `json:"user_key"`
	Total       int                           `json:"total"`
	Correct     int                           `json:"correct"`
	SuccessRate int                           `json:"success_rate"`
	ByTopic     map[string]TopicStatsResponse `json:"by_topic"`
}
