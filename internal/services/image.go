package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/platform/gcp"
)

// ImageService owns blob naming and cleanup. Uploads happen before any
// row write so a failed upload never leaves a row pointing at nothing.
type ImageService interface {
	Upload(ctx context.Context, category gcp.BucketCategory, filename string, file io.Reader) (string, error)
	DeleteByURL(ctx context.Context, url string) error
}

type imageService struct {
	log           *logger.Logger
	bucketService gcp.BucketService
}

func NewImageService(log *logger.Logger, bucketService gcp.BucketService) ImageService {
	return &imageService{
		log:           log.With("service", "ImageService"),
		bucketService: bucketService,
	}
}

// Upload stores the file under a fresh key and returns its public URL.
// The key is random plus upload time so browsers never serve a stale
// cached object for a replaced image.
func (is *imageService) Upload(ctx context.Context, category gcp.BucketCategory, filename string, file io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("%s-%d%s", uuid.NewString(), time.Now().UnixMilli(), ext)
	if err := is.bucketService.UploadFile(ctx, category, key, file); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return is.bucketService.GetPublicURL(category, key), nil
}

// DeleteByURL removes the blob a stored public URL points at. Callers
// doing row deletes treat failures as non-fatal; an orphaned blob is
// preferable to a row that cannot be removed.
func (is *imageService) DeleteByURL(ctx context.Context, url string) error {
	if strings.TrimSpace(url) == "" {
		return nil
	}
	category, key, err := is.bucketService.ParsePublicURL(url)
	if err != nil {
		return err
	}
	if err := is.bucketService.DeleteFile(ctx, category, key); err != nil {
		return fmt.Errorf("failed to delete image blob: %w", err)
	}
	return nil
}
