package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"travelstory-backend/internal/models"
	"travelstory-backend/internal/service"
	"travelstory-backend/pkg/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
		logger:      logger,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("All fields are required"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("All fields are required"))
	}

	user, token, err := h.authService.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("User already exists"))
		}
		h.logger.Error("registration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("An error occurred during registration"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.AuthResponse{
		Error:       false,
		User:        user.Profile(),
		AccessToken: token,
		Message:     "Registration Successful",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Email and password are required"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Email and password are required"))
	}

	user, token, err := h.authService.Login(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("User not found"))
		case errors.Is(err, service.ErrInvalidPassword):
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid password"))
		default:
			h.logger.Error("login failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("An error occurred during login"))
		}
	}

	return c.JSON(models.AuthResponse{
		Error:       false,
		User:        user.Profile(),
		AccessToken: token,
		Message:     "Login successful",
	})
}
