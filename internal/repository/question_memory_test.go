package repository

import (
	"deneme-api/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func question(id, examID, examTitle, section, text string) domain.Question {
	return domain.Question{
		ID:           id,
		Text:         text,
		Choices:      []string{"a", "b", "c", "d"},
		CorrectIndex: 0,
		ExamID:       examID,
		ExamTitle:    examTitle,
		Section:      section,
	}
}

func seedRepo(t *testing.T) *MemoryQuestionRepository {
	t.Helper()
	repo := NewMemoryQuestionRepository()
	questions := []domain.Question{
		question("q1", "deneme-1", "Deneme 1", "Matematik", "1+1"),
		question("q2", "deneme-1", "Deneme 1", "Fizik", "isik hizi"),
		question("q3", "deneme-2", "Deneme 2", "Kimya", "H2O"),
		question("q4", "deneme-1", "Deneme 1", "Matematik", "2+2"),
	}
	for _, q := range questions {
		assert.NoError(t, repo.Add(q))
	}
	return repo
}

func TestMemoryQuestionRepository_AddValidates(t *testing.T) {
	repo := NewMemoryQuestionRepository()
	bad := question("q1", "deneme-1", "Deneme 1", "Matematik", "1+1")
	bad.CorrectIndex = 9

	assert.Error(t, repo.Add(bad))
	assert.Equal(t, 0, repo.Count())
}

func TestMemoryQuestionRepository_InsertionOrder(t *testing.T) {
	repo := seedRepo(t)

	all := repo.All()
	assert.Len(t, all, 4)
	ids := []string{all[0].ID, all[1].ID, all[2].ID, all[3].ID}
	assert.Equal(t, []string{"q1", "q2", "q3", "q4"}, ids)
}

func TestMemoryQuestionRepository_Remove(t *testing.T) {
	repo := seedRepo(t)

	assert.True(t, repo.Remove("q2"))
	assert.Equal(t, 3, repo.Count())

	// Removing an absent id is a no-op, not an error.
	assert.False(t, repo.Remove("q2"))
	assert.Equal(t, 3, repo.Count())
}

func TestMemoryQuestionRepository_GetByID(t *testing.T) {
	repo := seedRepo(t)

	q, ok := repo.GetByID("q3")
	assert.True(t, ok)
	assert.Equal(t, "Kimya", q.Section)

	_, ok = repo.GetByID("missing")
	assert.False(t, ok)
}

func TestMemoryQuestionRepository_ListExams(t *testing.T) {
	repo := seedRepo(t)

	exams := repo.ListExams()
	assert.Len(t, exams, 2)

	// Exams appear in first-seen order, sections deduplicated in first-seen
	// order.
	assert.Equal(t, "deneme-1", exams[0].ExamID)
	assert.Equal(t, "Deneme 1", exams[0].Title)
	assert.Equal(t, []string{"Matematik", "Fizik"}, exams[0].Sections)
	assert.Equal(t, 3, exams[0].QuestionCount)

	assert.Equal(t, "deneme-2", exams[1].ExamID)
	assert.Equal(t, 1, exams[1].QuestionCount)
}

func TestMemoryQuestionRepository_ListExamsReflectsChanges(t *testing.T) {
	repo := seedRepo(t)
	repo.Remove("q3")

	exams := repo.ListExams()
	assert.Len(t, exams, 1)
	assert.Equal(t, "deneme-1", exams[0].ExamID)

	assert.NoError(t, repo.Add(question("q5", "deneme-3", "Deneme 3", "Tarih", "soru")))
	exams = repo.ListExams()
	assert.Len(t, exams, 2)
	assert.Equal(t, "deneme-3", exams[1].ExamID)
}

func TestMemoryQuestionRepository_QuestionsFor(t *testing.T) {
	repo := seedRepo(t)

	t.Run("all sections", func(t *testing.T) {
		qs := repo.QuestionsFor("deneme-1", "")
		assert.Len(t, qs, 3)
		assert.Equal(t, "q1", qs[0].ID)
		assert.Equal(t, "q4", qs[2].ID)
	})

	t.Run("single section", func(t *testing.T) {
		qs := repo.QuestionsFor("deneme-1", "Matematik")
		assert.Len(t, qs, 2)
		for _, q := range qs {
			assert.Equal(t, "Matematik", q.Section)
		}
	})

	t.Run("unknown exam", func(t *testing.T) {
		assert.Empty(t, repo.QuestionsFor("deneme-9", ""))
	})
}
