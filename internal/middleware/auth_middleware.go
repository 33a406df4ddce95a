package middleware

import (
	"deneme-api/internal/service"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	// Keys for fiber.Ctx locals
	IdentityKey = "identity"
	RoleKey     = "role"
)

// Protected is a middleware function that protects routes by requiring a
// valid access token. It stores the caller's identity and role in the
// context locals.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "MISSING_AUTH_HEADER",
				Message: "Authorization header is missing",
				Status:  fiber.StatusUnauthorized,
			})
		}

		if !strings.HasPrefix(authHeader, BearerSchema) {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_AUTH_SCHEME",
				Message: "Authorization scheme is not Bearer",
				Status:  fiber.StatusUnauthorized,
			})
		}

		tokenString := strings.TrimPrefix(authHeader, BearerSchema)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "EMPTY_TOKEN",
				Message: "Token is empty",
				Status:  fiber.StatusUnauthorized,
			})
		}

		claims, err := authService.ValidateJWT(c.Context(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: err.Error(),
				Status:  fiber.StatusUnauthorized,
			})
		}

		if claims.TokenType != "access" {
			return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
				Code:    "INVALID_TOKEN_TYPE",
				Message: "Expected an access token",
				Status:  fiber.StatusForbidden,
			})
		}

		c.Locals(IdentityKey, claims.Identity)
		c.Locals(RoleKey, claims.Role)

		return c.Next()
	}
}

// AdminOnly requires a Protected route's caller to carry the admin role.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(RoleKey).(string)
		if role != service.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
				Code:    "ADMIN_ONLY",
				Message: "Admin role required",
				Status:  fiber.StatusForbidden,
			})
		}
		return c.Next()
	}
}

// Identity returns the authenticated caller's identity from the context,
// empty for anonymous requests.
func Identity(c *fiber.Ctx) string {
	identity, _ := c.Locals(IdentityKey).(string)
	return identity
}
