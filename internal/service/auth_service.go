package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"travelstory-backend/internal/models"
	"travelstory-backend/internal/repository"
	"travelstory-backend/pkg/bcrypt"
	jwtPkg "travelstory-backend/pkg/jwt"
)

type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *jwtPkg.TokenService
}

func NewAuthService(userRepo *repository.UserRepository, tokens *jwtPkg.TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a new account and issues its first access token.
// The email pre-check gives a friendly error; the unique index on
// users.email is what actually closes the race between concurrent
// registrations.
func (s *AuthService) Register(req models.RegisterRequest) (*models.User, string, error) {
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrEmailExists
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("token generation failed: %v", err)
	}

	return user, token, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	ok, err := bcrypt.ComparePassword(user.Password, req.Password)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", ErrInvalidPassword
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("token generation failed: %v", err)
	}

	return user, token, nil
}
