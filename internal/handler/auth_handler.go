package handler

import (
	"deneme-api/internal/domain"
	"deneme-api/internal/dto"
	"deneme-api/internal/middleware"
	"deneme-api/internal/service"
	"deneme-api/internal/util"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
	quizService service.QuizService
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(authService service.AuthService, quizService service.QuizService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		quizService: quizService,
	}
}

// AdminLogin godoc
// @Summary Admin login
// @Description Checks the admin credential pair and issues tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Malformed login request")
	}

	tokens, err := h.authService.AdminLogin(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(tokens)
}

// SocialSignIn godoc
// @Summary Social sign-in
// @Description Signs in through the named provider and issues tokens
// @Tags auth
// @Produce json
// @Param provider path string true "Provider name (google, apple)"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /auth/social/{provider} [post]
func (h *AuthHandler) SocialSignIn(c *fiber.Ctx) error {
	tokens, err := h.authService.SocialSignIn(c.Context(), c.Params("provider"))
	if err != nil {
		return err
	}
	return c.JSON(tokens)
}

// GoogleLoginURL godoc
// @Summary Google authorization URL
// @Description Returns the Google OAuth authorization URL for the non-mock sign-in flow
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginURLResponse
// @Router /auth/google/login [get]
func (h *AuthHandler) GoogleLoginURL(c *fiber.Ctx) error {
	state := util.NewULID()
	return c.JSON(dto.LoginURLResponse{URL: h.authService.GoogleLoginURL(state)})
}

// RefreshToken godoc
// @Summary Refresh tokens
// @Description Rotates the access/refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return domain.NewInvalidInputError("Malformed refresh request")
	}

	tokens, err := h.authService.RefreshToken(c.Context(), req.RefreshToken)
	if err != nil {
		return domain.NewError(domain.ErrUnauthorized, "Invalid refresh token", err)
	}
	return c.JSON(tokens)
}

// Logout godoc
// @Summary Logout
// @Description Discards the caller's quiz session. Statistics are kept.
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.quizService.EndSession(middleware.Identity(c))
	return c.JSON(dto.MessageResponse{Message: "logged out"})
}
