package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"travelstory-backend/internal/middleware"
	"travelstory-backend/internal/models"
	"travelstory-backend/internal/repository"
	"travelstory-backend/internal/service"
	jwtPkg "travelstory-backend/pkg/jwt"
	"travelstory-backend/pkg/storage"
	"travelstory-backend/pkg/utils"
)

const testSecret = "test-secret-key"

type testEnv struct {
	app    *fiber.App
	db     *gorm.DB
	tokens *jwtPkg.TokenService
}

// newTestEnv wires the full handler stack over an in-memory SQLite
// database, mirroring the route layout of cmd/api.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Caption{}))

	userRepo := repository.NewUserRepository(db)
	captionRepo := repository.NewCaptionRepository(db)

	tokens := jwtPkg.NewTokenService(testSecret)
	imageStore, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:8000")
	require.NoError(t, err)

	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	captionService := service.NewCaptionService(captionRepo)
	uploadService := service.NewUploadService(imageStore)

	validator := utils.NewValidator()
	zlog := zap.NewNop()

	authHandler := NewAuthHandler(authService, validator, zlog)
	userHandler := NewUserHandler(userService, zlog)
	captionHandler := NewCaptionHandler(captionService, validator, zlog)
	uploadHandler := NewUploadHandler(uploadService, validator, zlog)

	app := fiber.New()
	app.Post("/create-account", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Use(middleware.AuthMiddleware(tokens))
	app.Get("/get-user", userHandler.GetUser)
	app.Post("/caption", captionHandler.CreateCaption)
	app.Get("/get-caption", captionHandler.GetCaptions)
	app.Get("/image-upload", uploadHandler.UploadImage)

	return &testEnv{
		app:    app,
		db:     db,
		tokens: tokens,
	}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// registerUser creates an account through the API and returns its token.
func (e *testEnv) registerUser(t *testing.T, fullName, email, password string) string {
	t.Helper()

	resp := e.request(t, "POST", "/create-account", map[string]string{
		"fullName": fullName,
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	token, _ := body["accessToken"].(string)
	require.NotEmpty(t, token)
	return token
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
