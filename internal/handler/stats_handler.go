package handler

import (
	"deneme-api/internal/middleware"
	"deneme-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler handles statistics HTTP requests
type StatsHandler struct {
	service service.StatsService
}

// NewStatsHandler creates a new StatsHandler instance
func NewStatsHandler(service service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetMyStats godoc
// @Summary Caller's statistics snapshot
// @Description Returns total/correct counters and the per-topic breakdown, zeroed for users who have never answered
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.StatsResponse
// @Router /stats [get]
func (h *StatsHandler) GetMyStats(c *fiber.Ctx) error {
	return c.JSON(h.service.StatsFor(middleware.Identity(c)))
}
