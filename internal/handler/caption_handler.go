package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"travelstory-backend/internal/middleware"
	"travelstory-backend/internal/models"
	"travelstory-backend/internal/service"
	"travelstory-backend/pkg/utils"
)

type CaptionHandler struct {
	captionService *service.CaptionService
	validator      *utils.Validator
	logger         *zap.Logger
}

func NewCaptionHandler(captionService *service.CaptionService, validator *utils.Validator, logger *zap.Logger) *CaptionHandler {
	return &CaptionHandler{
		captionService: captionService,
		validator:      validator,
		logger:         logger,
	}
}

func (h *CaptionHandler) CreateCaption(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req models.CreateCaptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("All fields are required"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("All fields are required"))
	}

	caption, err := h.captionService.Create(userID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid visited date"))
		}
		h.logger.Error("create caption failed", zap.Error(err), zap.Uint("user_id", userID))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("An error occurred while creating caption"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.CaptionResponse{
		Error:   false,
		Caption: *caption,
		Message: "Caption created successfully",
	})
}

func (h *CaptionHandler) GetCaptions(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	captions, err := h.captionService.GetUserCaptions(userID)
	if err != nil {
		h.logger.Error("list captions failed", zap.Error(err), zap.Uint("user_id", userID))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("An error occurred while retrieving stories"))
	}

	return c.JSON(models.StoriesResponse{Stories: captions})
}
