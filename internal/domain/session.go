package domain

// SessionStatus is the state of a quiz session.
type SessionStatus string

const (
	SessionNotStarted      SessionStatus = "not_started"
	SessionInProgress      SessionStatus = "in_progress"
	SessionAwaitingAdvance SessionStatus = "awaiting_advance"
	SessionFinished        SessionStatus = "finished"
)

const noSelection = -1

// AnswerResult is emitted once per recorded answer, for the statistics
// ledger to consume.
type AnswerResult struct {
	IsCorrect    bool
	TopicKey     string
	CorrectIndex int
	Explanation  string
}

// QuizSession is the live run of a shuffled question sequence. It is plain
// data plus transition methods; callers own it exclusively and drive every
// transition synchronously.
type QuizSession struct {
	questions []Question
	index     int
	selected  int
	score     int
	status    SessionStatus

	// The filter that produced this session, kept so Restart can redraw
	// the same subset. An empty section means all sections.
	examID  string
	section string
}

// NewQuizSession returns an idle session with no questions.
func NewQuizSession() *QuizSession {
	return &QuizSession{selected: noSelection, status: SessionNotStarted}
}

// Start begins a run over the given (already shuffled) questions with the
// filter that selected them. An empty sequence leaves the session in a
// valid idle state instead of erroring.
func (s *QuizSession) Start(questions []Question, examID, section string) {
	s.questions = questions
	s.index = 0
	s.selected = noSelection
	s.score = 0
	s.examID = examID
	s.section = section
	if len(questions) == 0 {
		s.status = SessionNotStarted
		return
	}
	s.status = SessionInProgress
}

// CurrentQuestion returns the question at the current position, or false
// when the session is idle or finished.
func (s *QuizSession) CurrentQuestion() (*Question, bool) {
	if len(s.questions) == 0 || s.index >= len(s.questions) || s.status == SessionFinished {
		return nil, false
	}
	return &s.questions[s.index], true
}

// Answer records the selection for the current question. The first selection
// wins: repeated calls for the same question return (nil, nil) and change
// nothing, as does answering with no current question. An out-of-range
// choice index is rejected without recording anything.
func (s *QuizSession) Answer(choiceIndex int) (*AnswerResult, error) {
	q, ok := s.CurrentQuestion()
	if !ok || s.selected != noSelection {
		return nil, nil
	}
	if choiceIndex < 0 || choiceIndex >= len(q.Choices) {
		return nil, NewInvalidInputError("choice index is out of range")
	}

	s.selected = choiceIndex
	correct := q.IsCorrect(choiceIndex)
	if correct {
		s.score++
	}
	s.status = SessionAwaitingAdvance

	return &AnswerResult{
		IsCorrect:    correct,
		TopicKey:     q.TopicKey(),
		CorrectIndex: q.CorrectIndex,
		Explanation:  q.Explanation,
	}, nil
}

// Advance moves past an answered question. It is a no-op unless the current
// question has been answered; after the last question it finishes the run.
func (s *QuizSession) Advance() {
	if s.status != SessionAwaitingAdvance {
		return
	}
	if s.index+1 >= len(s.questions) {
		s.status = SessionFinished
		return
	}
	s.index++
	s.selected = noSelection
	s.status = SessionInProgress
}

// RemoveQuestion drops a deleted question from the live order. If that
// leaves the current index out of range the session rewinds to the first
// remaining question with a cleared selection and completion state; the
// accumulated score is kept.
func (s *QuizSession) RemoveQuestion(id string) {
	next := make([]Question, 0, len(s.questions))
	for _, q := range s.questions {
		if q.ID != id {
			next = append(next, q)
		}
	}
	if len(next) == len(s.questions) {
		return
	}
	s.questions = next
	if s.index >= len(next) {
		s.index = 0
		s.selected = noSelection
		if len(next) == 0 {
			s.status = SessionNotStarted
			return
		}
		s.status = SessionInProgress
	}
}

// Progress is the display percentage of the current position, 0 for an
// empty session.
func (s *QuizSession) Progress() float64 {
	if len(s.questions) == 0 {
		return 0
	}
	return float64(s.index) / float64(len(s.questions)) * 100
}

// ScorePercent is the final score ratio, 0 for an empty session.
func (s *QuizSession) ScorePercent() float64 {
	if len(s.questions) == 0 {
		return 0
	}
	return float64(s.score) / float64(len(s.questions)) * 100
}

func (s *QuizSession) Status() SessionStatus { return s.status }

func (s *QuizSession) Index() int { return s.index }

func (s *QuizSession) Length() int { return len(s.questions) }

func (s *QuizSession) Score() int { return s.score }

func (s *QuizSession) Finished() bool { return s.status == SessionFinished }

// Selected returns the recorded choice for the current question, or false
// when none has been recorded yet.
func (s *QuizSession) Selected() (int, bool) {
	if s.selected == noSelection {
		return 0, false
	}
	return s.selected, true
}

func (s *QuizSession) ExamID() string { return s.examID }

func (s *QuizSession) Section() string { return s.section }
