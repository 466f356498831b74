package models

import (
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"fullName" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserProfile is the public projection of a User returned by the API.
type UserProfile struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func (u *User) Profile() UserProfile {
	return UserProfile{
		FullName: u.FullName,
		Email:    u.Email,
	}
}
