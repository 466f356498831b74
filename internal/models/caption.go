package models

import (
	"time"
)

// Caption is a travel-story entry owned by a single user.
type Caption struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"userId" gorm:"index;not null"`
	Title           string    `json:"title" gorm:"not null"`
	Story           string    `json:"story" gorm:"not null"`
	VisitedLocation string    `json:"visitedLocation" gorm:"not null"`
	ImageURL        string    `json:"imageUrl" gorm:"not null"`
	VisitedDate     time.Time `json:"visitedDate" gorm:"not null"`
	IsFavourite     bool      `json:"isFavourite" gorm:"not null;default:false"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
