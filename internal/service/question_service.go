package service

import (
	"deneme-api/internal/domain"
	"deneme-api/internal/dto"
	"deneme-api/internal/logger"
	"deneme-api/internal/repository"
	"deneme-api/internal/util"
	"deneme-api/internal/validation"
	"strings"

	"go.uber.org/zap"
)

// SessionInvalidator is notified when a question is deleted so live play
// orders stay consistent with the store.
type SessionInvalidator interface {
	RemoveQuestionFromSessions(questionID string)
}

// QuestionService is the admin surface of the question store.
type QuestionService interface {
	// AddQuestion validates the form, assigns a fresh identifier and
	// appends the question. A failed validation leaves the store untouched.
	AddQuestion(req *dto.AddQuestionRequest) (*dto.QuestionResponse, error)
	// DeleteQuestion removes the question and drops it from live sessions.
	// Deleting an unknown id is not an error.
	DeleteQuestion(id string) error
	ListQuestions() (*dto.QuestionListResponse, error)
}

type questionService struct {
	repo      repository.QuestionRepository
	validator *validation.Validator
	sessions  SessionInvalidator
}

// NewQuestionService creates a new instance of questionService
func NewQuestionService(repo repository.QuestionRepository, validator *validation.Validator, sessions SessionInvalidator) QuestionService {
	return &questionService{
		repo:      repo,
		validator: validator,
		sessions:  sessions,
	}
}

// AddQuestion implements QuestionService
func (s *questionService) AddQuestion(req *dto.AddQuestionRequest) (*dto.QuestionResponse, error) {
	if errs := s.validator.ValidateAddQuestionRequest(req); len(errs) > 0 {
		return nil, errs
	}

	choices := make([]string, len(req.Choices))
	for i, c := range req.Choices {
		choices[i] = strings.TrimSpace(c)
	}
	question := domain.Question{
		ID:           util.NewULID(),
		Text:         strings.TrimSpace(req.Text),
		Choices:      choices,
		CorrectIndex: req.CorrectIndex,
		Explanation:  strings.TrimSpace(req.Explanation),
		ImageURL:     strings.TrimSpace(req.ImageURL),
		ExamID:       strings.TrimSpace(req.ExamID),
		ExamTitle:    strings.TrimSpace(req.ExamTitle),
		Section:      strings.TrimSpace(req.Section),
	}
	if err := s.repo.Add(question); err != nil {
		return nil, domain.NewInternalError("Failed to store question", err)
	}

	logger.Get().Info("Question added",
		zap.String("question_id", question.ID),
		zap.String("exam_id", question.ExamID),
		zap.String("section", question.Section),
	)
	return toQuestionResponse(question), nil
}

// DeleteQuestion implements QuestionService
func (s *questionService) DeleteQuestion(id string) error {
	removed := s.repo.Remove(id)
	// Live sessions are pruned even when the store no longer had the id, so
	// a repeated delete stays idempotent end to end.
	s.sessions.RemoveQuestionFromSessions(id)
	if removed {
		logger.Get().Info("Question deleted", zap.String("question_id", id))
	}
	return nil
}

// ListQuestions implements QuestionService
func (s *questionService) ListQuestions() (*dto.QuestionListResponse, error) {
	all := s.repo.All()
	questions := make([]dto.QuestionResponse, 0, len(all))
	for _, q := range all {
		questions = append(questions, *toQuestionResponse(q))
	}
	return &dto.QuestionListResponse{Questions: questions, Total: len(questions)}, nil
}

func toQuestionResponse(q domain.Question) *dto.QuestionResponse {
	return &dto.QuestionResponse{
		ID:           q.ID,
		Text:         q.Text,
		Choices:      q.Choices,
		CorrectIndex: q.CorrectIndex,
		Explanation:  q.Explanation,
		ImageURL:     q.ImageURL,
		ExamID:       q.ExamID,
		ExamTitle:    q.ExamTitle,
		Section:      q.Section,
	}
}
