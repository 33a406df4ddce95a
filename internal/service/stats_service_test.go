package service

import (
	"deneme-api/internal/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsService_Accumulation(t *testing.T) {
	stats := NewStatsService()
	user := "google_user@example.com"
	topic := "Deneme 1/Matematik"

	stats.RecordAnswer(user, topic, true)
	stats.RecordAnswer(user, topic, true)
	stats.RecordAnswer(user, topic, false)

	snapshot := stats.StatsFor(user)
	assert.Equal(t, 3, snapshot.Total)
	assert.Equal(t, 2, snapshot.Correct)
	assert.Equal(t, 67, snapshot.SuccessRate)

	bucket, ok := snapshot.ByTopic[topic]
	assert.True(t, ok)
	assert.Equal(t, 3, bucket.Total)
	assert.Equal(t, 2, bucket.Correct)
}

func TestStatsService_MultipleTopics(t *testing.T) {
	stats := NewStatsService()
	user := "adeviye@gmail.com"

	stats.RecordAnswer(user, "Deneme 1/Matematik", true)
	stats.RecordAnswer(user, "Deneme 1/Fizik", false)
	stats.RecordAnswer(user, "Genel", true)

	snapshot := stats.StatsFor(user)
	assert.Equal(t, 3, snapshot.Total)
	assert.Equal(t, 2, snapshot.Correct)
	assert.Len(t, snapshot.ByTopic, 3)

	// The top-level total equals the sum of per-topic totals.
	sum := 0
	for _, bucket := range snapshot.ByTopic {
		sum += bucket.Total
	}
	assert.Equal(t, snapshot.Total, sum)
}

func TestStatsService_AnonymousIsNoOp(t *testing.T) {
	stats := NewStatsService()

	stats.RecordAnswer("", "Deneme 1/Matematik", true)

	snapshot := stats.StatsFor("")
	assert.Equal(t, 0, snapshot.Total)
	assert.Empty(t, snapshot.ByTopic)
}

func TestStatsService_UnknownUserIsZeroed(t *testing.T) {
	stats := NewStatsService()

	snapshot := stats.StatsFor("never@answered.example")
	assert.Equal(t, 0, snapshot.Total)
	assert.Equal(t, 0, snapshot.Correct)
	assert.Equal(t, 0, snapshot.SuccessRate)
	assert.NotNil(t, snapshot.ByTopic)
	assert.Empty(t, snapshot.ByTopic)
}

func TestStatsService_SnapshotIsACopy(t *testing.T) {
	stats := NewStatsService()
	user := "u1"
	stats.RecordAnswer(user, "Genel", true)

	snapshot := stats.StatsFor(user)
	snapshot.ByTopic["Genel"] = dto.TopicStatsResponse{Total: 99, Correct: 99, SuccessRate: 99}

	fresh := stats.StatsFor(user)
	assert.Equal(t, 1, fresh.ByTopic["Genel"].Total)
}

func TestStatsService_IsolatesUsers(t *testing.T) {
	stats := NewStatsService()
	stats.RecordAnswer("u1", "Genel", true)
	stats.RecordAnswer("u2", "Genel", false)

	assert.Equal(t, 1, stats.StatsFor("u1").Correct)
	assert.Equal(t, 0, stats.StatsFor("u2").Correct)
}
