package handler

import (
	"deneme-api/internal/domain"
	"deneme-api/internal/dto"
	"deneme-api/internal/middleware"
	"deneme-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz session HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// ListExams godoc
// @Summary List exams
// @Description Returns the derived exam summaries in first-seen order
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ExamListResponse
// @Router /exams [get]
func (h *QuizHandler) ListExams(c *fiber.Ctx) error {
	exams, err := h.service.ListExams()
	if err != nil {
		return err
	}
	return c.JSON(exams)
}

// StartSession godoc
// @Summary Start a quiz session
// @Description Starts a shuffled session over one exam, optionally narrowed to a section
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.StartSessionRequest true "Exam and optional section"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /session/start [post]
func (h *QuizHandler) StartSession(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Malformed start request")
	}
	if req.ExamID == "" {
		return domain.NewInvalidInputError("exam_id is required")
	}

	snapshot, err := h.service.StartSession(middleware.Identity(c), req.ExamID, req.Section)
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}

// GetSession godoc
// @Summary Current session snapshot
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /session [get]
func (h *QuizHandler) GetSession(c *fiber.Ctx) error {
	snapshot, err := h.service.CurrentSession(middleware.Identity(c))
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}

// Answer godoc
// @Summary Answer the current question
// @Description Records the selection for the current question. The first selection wins; a repeated answer changes nothing.
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.AnswerRequest true "Choice index"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /session/answer [post]
func (h *QuizHandler) Answer(c *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Malformed answer request")
	}

	snapshot, err := h.service.Answer(middleware.Identity(c), req.ChoiceIndex)
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}

// Advance godoc
// @Summary Advance past an answered question
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /session/advance [post]
func (h *QuizHandler) Advance(c *fiber.Ctx) error {
	snapshot, err := h.service.Advance(middleware.Identity(c))
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}

// Restart godoc
// @Summary Restart the session
// @Description Redraws and reshuffles the same exam/section subset
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /session/restart [post]
func (h *QuizHandler) Restart(c *fiber.Ctx) error {
	snapshot, err := h.service.Restart(middleware.Identity(c))
	if err != nil {
		return err
	}
	return c.JSON(snapshot)
}
