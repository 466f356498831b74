package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"travelstory-backend/internal/models"
	"travelstory-backend/internal/service"
	"travelstory-backend/pkg/utils"
)

type uploadedImage struct {
	MimeType string `validate:"supported_image"`
}

type UploadHandler struct {
	uploadService *service.UploadService
	validator     *utils.Validator
	logger        *zap.Logger
}

func NewUploadHandler(uploadService *service.UploadService, validator *utils.Validator, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		validator:     validator,
		logger:        logger,
	}
}

func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No image uploaded"))
	}

	img := uploadedImage{MimeType: fileHeader.Header.Get("Content-Type")}
	if err := h.validator.Struct(img); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Unsupported image type"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("upload open failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("An error occurred while uploading image"))
	}
	defer file.Close()

	imageURL, err := h.uploadService.Store(c.UserContext(), fileHeader.Filename, file)
	if err != nil {
		h.logger.Error("upload store failed", zap.Error(err), zap.String("filename", fileHeader.Filename))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("An error occurred while uploading image"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{ImageURL: imageURL})
}
