package domain

// TopicStats is one {total, correct} pair within a user's ledger entry.
type TopicStats struct {
	Total   int
	Correct int
}

// UserStats is a user's aggregate ledger entry. The top-level total always
// equals the sum of the per-topic totals.
type UserStats struct {
	Total   int
	Correct int
	ByTopic map[string]TopicStats
}

// NewUserStats creates a zeroed ledger entry.
func NewUserStats() *UserStats {
	return &UserStats{ByTopic: make(map[string]TopicStats)}
}

// Record adds one answer to both the top-level counters and the topic
// bucket, creating the bucket if absent.
func (s *UserStats) Record(topicKey string, isCorrect bool) {
	s.Total++
	t := s.ByTopic[topicKey]
	t.Total++
	if isCorrect {
		s.Correct++
		t.Correct++
	}
	s.ByTopic[topicKey] = t
}

// Clone returns an independent copy of the entry.
func (s *UserStats) Clone() *UserStats {
	out := &UserStats{
		Total:   s.Total,
		Correct: s.Correct,
		ByTopic: make(map[string]TopicStats, len(s.ByTopic)),
	}
	for k, v := range s.ByTopic {
		out.ByTopic[k] = v
	}
	return out
}
