package service

import (
	"deneme-api/internal/domain"
	"deneme-api/internal/dto"
	"deneme-api/internal/logger"
	"sync"

	"go.uber.org/zap"
)

// StatsService is the per-user statistics ledger. Entries are created
// lazily on the first recorded answer and live for the process lifetime;
// nothing is ever deleted, logout included.
type StatsService interface {
	// RecordAnswer adds one answer to the user's ledger entry. An empty
	// user key (anonymous context) is a no-op.
	RecordAnswer(userKey, topicKey string, isCorrect bool)
	// StatsFor returns the user's current snapshot, zeroed for users who
	// have never answered.
	StatsFor(userKey string) *dto.StatsResponse
}

type statsService struct {
	mu      sync.RWMutex
	entries map[string]*domain.UserStats
}

// NewStatsService creates an empty statistics ledger.
func NewStatsService() StatsService {
	return &statsService{entries: make(map[string]*domain.UserStats)}
}

func (s *statsService) RecordAnswer(userKey, topicKey string, isCorrect bool) {
	if userKey == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[userKey]
	if !ok {
		entry = domain.NewUserStats()
		s.entries[userKey] = entry
	}
	entry.Record(topicKey, isCorrect)

	logger.Get().Debug("Recorded answer",
		zap.String("user_key", userKey),
		zap.String("topic_key", topicKey),
		zap.Bool("is_correct", isCorrect),
	)
}

func (s *statsService) StatsFor(userKey string) *dto.StatsResponse {
	s.mu.RLock()
	entry, ok := s.entries[userKey]
	if ok {
		entry = entry.Clone()
	}
	s.mu.RUnlock()

	if !ok {
		entry = domain.NewUserStats()
	}

	resp := &dto.StatsResponse{
		UserKey:     userKey,
		Total:       entry.Total,
		Correct:     entry.Correct,
		SuccessRate: successRate(entry.Correct, entry.Total),
		ByTopic:     make(map[string]dto.TopicStatsResponse, len(entry.ByTopic)),
	}
	for topic, t := range entry.ByTopic {
		resp.ByTopic[topic] = dto.TopicStatsResponse{
			Total:       t.Total,
			Correct:     t.Correct,
			SuccessRate: successRate(t.Correct, t.Total),
		}
	}
	return resp
}

// successRate is the rounded percentage, 0 when nothing was answered.
func successRate(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(correct)/float64(total)*100 + 0.5)
}
