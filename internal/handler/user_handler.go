package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"travelstory-backend/internal/middleware"
	"travelstory-backend/internal/models"
	"travelstory-backend/internal/service"
)

type UserHandler struct {
	userService *service.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	user, err := h.userService.GetByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("User not found"))
		}
		h.logger.Error("get user failed", zap.Error(err), zap.Uint("user_id", userID))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("An error occurred while retrieving user data"))
	}

	return c.JSON(models.UserResponse{
		Error:   false,
		User:    user.Profile(),
		Message: "User data retrieved successfully",
	})
}
