package models

type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateCaptionRequest struct {
	Title           string `json:"title" validate:"required"`
	Story           string `json:"story" validate:"required"`
	VisitedLocation string `json:"visitedLocation" validate:"required"`
	ImageURL        string `json:"imageUrl" validate:"required"`
	VisitedDate     string `json:"visitedDate" validate:"required"`
}

type AuthResponse struct {
	Error       bool        `json:"error"`
	User        UserProfile `json:"user"`
	AccessToken string      `json:"accessToken"`
	Message     string      `json:"message"`
}

type UserResponse struct {
	Error   bool        `json:"error"`
	User    UserProfile `json:"user"`
	Message string      `json:"message"`
}

type CaptionResponse struct {
	Error   bool    `json:"error"`
	Caption Caption `json:"caption"`
	Message string  `json:"message"`
}

type StoriesResponse struct {
	Stories []Caption `json:"stories"`
}

type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}
