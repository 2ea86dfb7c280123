package service

import (
	"context"
	"fmt"
	"io"
	"time"
)

// ObjectStorage puts binary objects into a bucket and returns their public URL.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// UploadService stores product images in object storage.
type UploadService struct {
	storage ObjectStorage
}

// NewUploadService creates a new upload service
func NewUploadService(storage ObjectStorage) *UploadService {
	return &UploadService{storage: storage}
}

// Upload stores the file under a collision-free key and returns its URL.
func (s *UploadService) Upload(ctx context.Context, fileName string, body io.Reader, contentType string) (string, error) {
	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), fileName)
	return s.storage.Upload(ctx, key, body, contentType)
}
