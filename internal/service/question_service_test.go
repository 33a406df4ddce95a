package service

import (
	"deneme-api/internal/domain"
	"deneme-api/internal/dto"
	"deneme-api/internal/repository"
	"deneme-api/internal/validation"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockSessionInvalidator struct {
	removeQuestionFromSessionsFunc func(questionID string)
}

func (m *mockSessionInvalidator) RemoveQuestionFromSessions(questionID string) {
	if m.removeQuestionFromSessionsFunc != nil {
		m.removeQuestionFromSessionsFunc(questionID)
	}
}

func addQuestionRequest() *dto.AddQuestionRequest {
	return &dto.AddQuestionRequest{
		Text:         "  3 × 4 = ?  ",
		Choices:      []string{"6", "7", " 12 ", "14"},
		CorrectIndex: 2,
		Explanation:  "3 çarpı 4 = 12",
		ExamID:       "deneme-1",
		ExamTitle:    "Deneme 1",
		Section:      " Matematik ",
	}
}

func newQuestionService(repo repository.QuestionRepository, sessions SessionInvalidator) QuestionService {
	return NewQuestionService(repo, validation.NewValidator(), sessions)
}

func TestQuestionService_AddQuestion(t *testing.T) {
	repo := repository.NewMemoryQuestionRepository()
	svc := newQuestionService(repo, &mockSessionInvalidator{})

	resp, err := svc.AddQuestion(addQuestionRequest())
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "3 × 4 = ?", resp.Text, "fields are trimmed")
	assert.Equal(t, []string{"6", "7", "12", "14"}, resp.Choices)
	assert.Equal(t, "Matematik", resp.Section)
	assert.Equal(t, 1, repo.Count())

	// The stored question is retrievable under the assigned id.
	stored, ok := repo.GetByID(resp.ID)
	assert.True(t, ok)
	assert.Equal(t, 2, stored.CorrectIndex)
}

func TestQuestionService_AddQuestionAssignsUniqueIDs(t *testing.T) {
	repo := repository.NewMemoryQuestionRepository()
	svc := newQuestionService(repo, &mockSessionInvalidator{})

	first, err := svc.AddQuestion(addQuestionRequest())
	assert.NoError(t, err)
	second, err := svc.AddQuestion(addQuestionRequest())
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestQuestionService_AddQuestionValidationFailure(t *testing.T) {
	repo := repository.NewMemoryQuestionRepository()
	svc := newQuestionService(repo, &mockSessionInvalidator{})

	req := addQuestionRequest()
	req.Choices = []string{"only"}
	req.CorrectIndex = 0

	resp, err := svc.AddQuestion(req)
	assert.Nil(t, resp)

	var validationErrs domain.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
	assert.NotEmpty(t, validationErrs)

	// A failed validation leaves the store untouched.
	assert.Equal(t, 0, repo.Count())
}

func TestQuestionService_AddedQuestionAppearsInExams(t *testing.T) {
	repo := repository.NewMemoryQuestionRepository()
	svc := newQuestionService(repo, &mockSessionInvalidator{})

	_, err := svc.AddQuestion(addQuestionRequest())
	assert.NoError(t, err)

	exams := repo.ListExams()
	assert.Len(t, exams, 1)
	assert.Equal(t, "deneme-1", exams[0].ExamID)
	assert.Equal(t, []string{"Matematik"}, exams[0].Sections)
}

func TestQuestionService_DeleteQuestion(t *testing.T) {
	repo := repository.NewMemoryQuestionRepository()
	var invalidated []string
	sessions := &mockSessionInvalidator{
		removeQuestionFromSessionsFunc: func(questionID string) {
			invalidated = append(invalidated, questionID)
		},
	}
	svc := newQuestionService(repo, sessions)

	added, err := svc.AddQuestion(addQuestionRequest())
	assert.NoError(t, err)

	assert.NoError(t, svc.DeleteQuestion(added.ID))
	assert.Equal(t, 0, repo.Count())

	// Unknown ids are not an error, and live sessions are pruned either way.
	assert.NoError(t, svc.DeleteQuestion(added.ID))
	assert.Equal(t, []string{added.ID, added.ID}, invalidated)
}

func TestQuestionService_ListQuestions(t *testing.T) {
	repo := repository.NewMemoryQuestionRepository()
	svc := newQuestionService(repo, &mockSessionInvalidator{})

	resp, err := svc.ListQuestions()
	assert.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Questions)

	first, err := svc.AddQuestion(addQuestionRequest())
	assert.NoError(t, err)

	second := addQuestionRequest()
	second.Text = "2 + 2 = ?"
	secondResp, err := svc.AddQuestion(second)
	assert.NoError(t, err)

	resp, err = svc.ListQuestions()
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, first.ID, resp.Questions[0].ID)
	assert.Equal(t, secondResp.ID, resp.Questions[1].ID)
}
