package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"travelstory-backend/internal/config"
	"travelstory-backend/internal/handler"
	"travelstory-backend/internal/middleware"
	"travelstory-backend/internal/models"
	"travelstory-backend/internal/repository"
	"travelstory-backend/internal/service"
	"travelstory-backend/pkg/database"
	jwtPkg "travelstory-backend/pkg/jwt"
	"travelstory-backend/pkg/logger"
	"travelstory-backend/pkg/storage"
	"travelstory-backend/pkg/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zlog.Sync()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(&models.User{}, &models.Caption{}); err != nil {
		zlog.Fatal("failed to migrate database", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	captionRepo := repository.NewCaptionRepository(db)

	// Leaf services
	tokens := jwtPkg.NewTokenService(cfg.JWTSecret)

	var imageStore storage.ImageStorage
	switch cfg.StorageDriver {
	case "r2":
		imageStore, err = storage.NewR2Storage(cfg)
	default:
		imageStore, err = storage.NewLocalStorage(cfg.UploadDir, cfg.PublicBaseURL)
	}
	if err != nil {
		zlog.Fatal("failed to initialize image storage", zap.Error(err))
	}

	// Services
	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	captionService := service.NewCaptionService(captionRepo)
	uploadService := service.NewUploadService(imageStore)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator, zlog)
	userHandler := handler.NewUserHandler(userService, zlog)
	captionHandler := handler.NewCaptionHandler(captionService, validator, zlog)
	uploadHandler := handler.NewUploadHandler(uploadService, validator, zlog)

	// Router
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			zlog.Error("unhandled error", zap.Error(err), zap.String("path", c.Path()))
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET, POST, PUT, DELETE",
		AllowHeaders: "Content-Type, Authorization",
	}))
	app.Use(fiberlogger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "OK",
			"message": "Server is running",
		})
	})

	if cfg.StorageDriver == "local" {
		app.Static("/uploads", cfg.UploadDir)
	}

	// Public routes
	app.Post("/create-account", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Protected routes
	app.Use(middleware.AuthMiddleware(tokens))
	app.Get("/get-user", userHandler.GetUser)
	app.Post("/caption", captionHandler.CreateCaption)
	app.Get("/get-caption", captionHandler.GetCaptions)
	app.Get("/image-upload", uploadHandler.UploadImage)

	zlog.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
