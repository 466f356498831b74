package service

import (
	"time"

	"travelstory-backend/internal/models"
	"travelstory-backend/internal/repository"
)

// Date layouts accepted on the wire for visitedDate.
var visitedDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

type CaptionService struct {
	captionRepo *repository.CaptionRepository
}

func NewCaptionService(captionRepo *repository.CaptionRepository) *CaptionService {
	return &CaptionService{captionRepo: captionRepo}
}

func (s *CaptionService) Create(userID uint, req models.CreateCaptionRequest) (*models.Caption, error) {
	visitedDate, err := parseVisitedDate(req.VisitedDate)
	if err != nil {
		return nil, err
	}

	caption := &models.Caption{
		UserID:          userID,
		Title:           req.Title,
		Story:           req.Story,
		VisitedLocation: req.VisitedLocation,
		ImageURL:        req.ImageURL,
		VisitedDate:     visitedDate,
	}

	return s.captionRepo.Create(caption)
}

// GetUserCaptions lists the caller's stories, favourites first.
func (s *CaptionService) GetUserCaptions(userID uint) ([]models.Caption, error) {
	captions, err := s.captionRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if captions == nil {
		captions = []models.Caption{}
	}
	return captions, nil
}

func parseVisitedDate(value string) (time.Time, error) {
	for _, layout := range visitedDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
