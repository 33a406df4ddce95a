package repository

import (
	"deneme-api/internal/domain"
	"sync"
)

// QuestionRepository is the question store. All state is process-lifetime;
// nothing survives a restart.
type QuestionRepository interface {
	// Add appends a validated question, preserving insertion order.
	Add(q domain.Question) error
	// Remove deletes the question with the given id and reports whether it
	// was present. Removing an absent id is not an error.
	Remove(id string) bool
	GetByID(id string) (*domain.Question, bool)
	All() []domain.Question
	// ListExams derives one summary per distinct exam identifier. Exams are
	// ordered by first appearance in the store, sections within an exam
	// likewise.
	ListExams() []domain.ExamSummary
	// QuestionsFor returns the questions of an exam in insertion order,
	// narrowed to one section when section is non-empty.
	QuestionsFor(examID, section string) []domain.Question
	Count() int
}

// MemoryQuestionRepository keeps the questions in an insertion-ordered
// slice guarded by a mutex. Exam groupings are recomputed on demand rather
// than maintained as a second structure that could go stale.
type MemoryQuestionRepository struct {
	mu        sync.RWMutex
	questions []domain.Question
}

// NewMemoryQuestionRepository creates an empty in-memory question store.
func NewMemoryQuestionRepository() *MemoryQuestionRepository {
	return &MemoryQuestionRepository{}
}

func (r *MemoryQuestionRepository) Add(q domain.Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.questions = append(r.questions, q)
	return nil
}

func (r *MemoryQuestionRepository) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, q := range r.questions {
		if q.ID == id {
			r.questions = append(r.questions[:i], r.questions[i+1:]...)
			return true
		}
	}
	return false
}

func (r *MemoryQuestionRepository) GetByID(id string) (*domain.Question, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.questions {
		if q.ID == id {
			out := q
			return &out, true
		}
	}
	return nil, false
}

func (r *MemoryQuestionRepository) All() []domain.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Question, len(r.questions))
	copy(out, r.questions)
	return out
}

func (r *MemoryQuestionRepository) ListExams() []domain.ExamSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byID := make(map[string]*domain.ExamSummary)
	order := make([]string, 0)
	for _, q := range r.questions {
		if q.ExamID == "" {
			continue
		}
		summary, ok := byID[q.ExamID]
		if !ok {
			title := q.ExamTitle
			if title == "" {
				title = q.ExamID
			}
			summary = &domain.ExamSummary{ExamID: q.ExamID, Title: title}
			byID[q.ExamID] = summary
			order = append(order, q.ExamID)
		}
		summary.QuestionCount++
		if q.Section != "" && !containsString(summary.Sections, q.Section) {
			summary.Sections = append(summary.Sections, q.Section)
		}
	}

	out := make([]domain.ExamSummary, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}

func (r *MemoryQuestionRepository) QuestionsFor(examID, section string) []domain.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Question, 0)
	for _, q := range r.questions {
		if q.ExamID != examID {
			continue
		}
		if section != "" && q.Section != section {
			continue
		}
		out = append(out, q)
	}
	return out
}

func (r *MemoryQuestionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.questions)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
