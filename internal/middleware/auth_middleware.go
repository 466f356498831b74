package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"travelstory-backend/internal/models"
	jwtPkg "travelstory-backend/pkg/jwt"
)

// UserIDKey is the Locals key the resolved identity is stored under.
const UserIDKey = "userID"

// AuthMiddleware rejects requests without a valid bearer token and
// attaches the token's user ID to the request context.
func AuthMiddleware(tokens *jwtPkg.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authorization header is required"))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid authorization header format"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokens.Parse(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid or expired token"))
		}

		c.Locals(UserIDKey, userID)

		return c.Next()
	}
}

// UserID reads the identity placed on the context by AuthMiddleware.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(UserIDKey).(uint)
	return id
}
