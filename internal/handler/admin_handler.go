package handler

import (
	"deneme-api/internal/domain"
	"deneme-api/internal/dto"
	"deneme-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles question management HTTP requests
type AdminHandler struct {
	service service.QuestionService
}

// NewAdminHandler creates a new AdminHandler instance
func NewAdminHandler(service service.QuestionService) *AdminHandler {
	return &AdminHandler{service: service}
}

// AddQuestion godoc
// @Summary Add a question
// @Description Validates and stores a new exam question
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.AddQuestionRequest true "Question fields"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /admin/questions [post]
func (h *AdminHandler) AddQuestion(c *fiber.Ctx) error {
	var req dto.AddQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Malformed question request")
	}

	question, err := h.service.AddQuestion(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(question)
}

// ListQuestions godoc
// @Summary List all questions
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.QuestionListResponse
// @Router /admin/questions [get]
func (h *AdminHandler) ListQuestions(c *fiber.Ctx) error {
	questions, err := h.service.ListQuestions()
	if err != nil {
		return err
	}
	return c.JSON(questions)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Removes a question from the store and from live sessions. Deleting an unknown id succeeds.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Router /admin/questions/{id} [delete]
func (h *AdminHandler) DeleteQuestion(c *fiber.Ctx) error {
	if err := h.service.DeleteQuestion(c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "deleted"})
}
