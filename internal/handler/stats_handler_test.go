package handler

import (
	"deneme-api/internal/dto"
	"deneme-api/internal/middleware"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type mockStatsService struct {
	statsForFunc func(userKey string) *dto.StatsResponse
}

func (m *mockStatsService) RecordAnswer(userKey, topicKey string, isCorrect bool) {}

func (m *mockStatsService) StatsFor(userKey string) *dto.StatsResponse {
	return m.statsForFunc(userKey)
}

func TestStatsHandler_GetMyStats(t *testing.T) {
	svc := &mockStatsService{
		statsForFunc: func(userKey string) *dto.StatsResponse {
			assert.Equal(t, "google_user@example.com", userKey)
			return &dto.StatsResponse{
				UserKey:     userKey,
				Total:       3,
				Correct:     2,
				SuccessRate: 67,
				ByTopic: map[string]dto.TopicStatsResponse{
					"Deneme 1/Matematik": {Total: 3, Correct: 2, SuccessRate: 67},
				},
			}
		},
	}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middleware.IdentityKey, "google_user@example.com")
		return c.Next()
	})
	app.Get("/api/stats", NewStatsHandler(svc).GetMyStats)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/stats", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.StatsResponse
	decodeBody(t, resp.Body, &body)
	assert.Equal(t, 3, body.Total)
	assert.Equal(t, 2, body.Correct)
	assert.Equal(t, 2, body.ByTopic["Deneme 1/Matematik"].Correct)
}
