package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"travelstory-backend/pkg/storage"
)

type UploadService struct {
	storage storage.ImageStorage
}

func NewUploadService(store storage.ImageStorage) *UploadService {
	return &UploadService{storage: store}
}

// Store persists an uploaded image under a random key, keeping the
// original extension, and returns its public URL.
func (s *UploadService) Store(ctx context.Context, filename string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	return s.storage.Upload(ctx, key, src)
}
