package repository

import (
	"travelstory-backend/internal/models"

	"gorm.io/gorm"
)

type CaptionRepository struct {
	db *gorm.DB
}

func NewCaptionRepository(db *gorm.DB) *CaptionRepository {
	return &CaptionRepository{db: db}
}

func (r *CaptionRepository) Create(caption *models.Caption) (*models.Caption, error) {
	result := r.db.Create(caption)
	if result.Error != nil {
		return nil, result.Error
	}
	return caption, nil
}

// GetByUserID returns a user's captions, favourites first, ties broken
// by insertion order.
func (r *CaptionRepository) GetByUserID(userID uint) ([]models.Caption, error) {
	var captions []models.Caption
	err := r.db.Where("user_id = ?", userID).
		Order("is_favourite DESC, id ASC").
		Find(&captions).Error
	return captions, err
}
