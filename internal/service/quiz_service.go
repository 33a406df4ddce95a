package service

import (
	"deneme-api/internal/domain"
	"deneme-api/internal/dto"
	"deneme-api/internal/logger"
	"deneme-api/internal/repository"
	"deneme-api/internal/util"
	"sync"

	"go.uber.org/zap"
)

// QuizService owns the live quiz sessions, one per user key, and drives the
// session state machine. Every answer it records is forwarded to the
// statistics ledger.
type QuizService interface {
	ListExams() (*dto.ExamListResponse, error)
	// StartSession draws a shuffled subset of the store for the given exam
	// (one section when non-nil, all sections otherwise) and replaces the
	// user's current session with it.
	StartSession(userKey, examID string, section *string) (*dto.SessionResponse, error)
	// CurrentSession returns the snapshot of the user's active session.
	CurrentSession(userKey string) (*dto.SessionResponse, error)
	// Answer records the selection for the current question. A repeated
	// answer for the same question is a silent no-op.
	Answer(userKey string, choiceIndex int) (*dto.SessionResponse, error)
	// Advance moves past an answered question, finishing the session after
	// the last one.
	Advance(userKey string) (*dto.SessionResponse, error)
	// Restart redraws and reshuffles the same exam/section subset the
	// session was started with.
	Restart(userKey string) (*dto.SessionResponse, error)
	// EndSession discards the user's session, if any. Ledger entries are
	// kept.
	EndSession(userKey string)
	// RemoveQuestionFromSessions drops a deleted question from every live
	// session's play order.
	RemoveQuestionFromSessions(questionID string)
}

type quizService struct {
	repo  repository.QuestionRepository
	stats StatsService

	mu       sync.Mutex
	sessions map[string]*domain.QuizSession
}

// NewQuizService creates a new instance of quizService
func NewQuizService(repo repository.QuestionRepository, stats StatsService) QuizService {
	return &quizService{
		repo:     repo,
		stats:    stats,
		sessions: make(map[string]*domain.QuizSession),
	}
}

// ListExams implements QuizService
func (s *quizService) ListExams() (*dto.ExamListResponse, error) {
	summaries := s.repo.ListExams()
	exams := make([]dto.ExamResponse, 0, len(summaries))
	for _, e := range summaries {
		exams = append(exams, dto.ExamResponse{
			ExamID:        e.ExamID,
			Title:         e.Title,
			Sections:      e.Sections,
			QuestionCount: e.QuestionCount,
		})
	}
	return &dto.ExamListResponse{Exams: exams}, nil
}

// StartSession implements QuizService
func (s *quizService) StartSession(userKey, examID string, section *string) (*dto.SessionResponse, error) {
	sectionFilter := ""
	if section != nil {
		sectionFilter = *section
	}
	questions := s.repo.QuestionsFor(examID, sectionFilter)

	s.mu.Lock()
	defer s.mu.Unlock()

	session := domain.NewQuizSession()
	session.Start(util.Shuffle(questions), examID, sectionFilter)
	s.sessions[userKey] = session

	logger.Get().Info("Quiz session started",
		zap.String("user_key", userKey),
		zap.String("exam_id", examID),
		zap.String("section", sectionFilter),
		zap.Int("question_count", session.Length()),
	)
	return snapshot(session), nil
}

// CurrentSession implements QuizService
func (s *quizService) CurrentSession(userKey string) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userKey]
	if !ok {
		return nil, domain.NewNoActiveSessionError()
	}
	return snapshot(session), nil
}

// Answer implements QuizService
func (s *quizService) Answer(userKey string, choiceIndex int) (*dto.SessionResponse, error) {
	s.mu.Lock()
	session, ok := s.sessions[userKey]
	if !ok {
		s.mu.Unlock()
		return nil, domain.NewNoActiveSessionError()
	}

	result, err := session.Answer(choiceIndex)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	resp := snapshot(session)
	s.mu.Unlock()

	// result is nil for the benign double-answer race; nothing to record.
	if result != nil {
		s.stats.RecordAnswer(userKey, result.TopicKey, result.IsCorrect)
	}
	return resp, nil
}

// Advance implements QuizService
func (s *quizService) Advance(userKey string) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userKey]
	if !ok {
		return nil, domain.NewNoActiveSessionError()
	}
	session.Advance()
	return snapshot(session), nil
}

// Restart implements QuizService
func (s *quizService) Restart(userKey string) (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userKey]
	if !ok {
		return nil, domain.NewNoActiveSessionError()
	}

	// Redraw with the original filter; with no exam selected the session
	// falls back to empty.
	var questions []domain.Question
	if session.ExamID() != "" {
		questions = s.repo.QuestionsFor(session.ExamID(), session.Section())
	}
	session.Start(util.Shuffle(questions), session.ExamID(), session.Section())

	logger.Get().Info("Quiz session restarted",
		zap.String("user_key", userKey),
		zap.String("exam_id", session.ExamID()),
		zap.Int("question_count", session.Length()),
	)
	return snapshot(session), nil
}

// EndSession implements QuizService
func (s *quizService) EndSession(userKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userKey)
}

// RemoveQuestionFromSessions implements QuizService
func (s *quizService) RemoveQuestionFromSessions(questionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, session := range s.sessions {
		session.RemoveQuestion(questionID)
	}
}

// snapshot renders the session state for the presentation layer. The
// current question never carries its correct index; that is revealed only
// alongside a recorded answer.
func snapshot(session *domain.QuizSession) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		Status:       string(session.Status()),
		ExamID:       session.ExamID(),
		Section:      session.Section(),
		Index:        session.Index(),
		Total:        session.Length(),
		Progress:     session.Progress(),
		Score:        session.Score(),
		ScorePercent: session.ScorePercent(),
	}

	q, ok := session.CurrentQuestion()
	if !ok {
		return resp
	}
	resp.Question = &dto.SessionQuestion{
		ID:       q.ID,
		Text:     q.Text,
		Choices:  q.Choices,
		ImageURL: q.ImageURL,
		Section:  q.Section,
	}
	if selected, answered := session.Selected(); answered {
		resp.Reveal = &dto.AnswerReveal{
			SelectedIndex: selected,
			CorrectIndex:  q.CorrectIndex,
			IsCorrect:     q.IsCorrect(selected),
			Explanation:   q.Explanation,
		}
	}
	return resp
}
