package gcp

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/utils"
)

type BucketCategory string

const (
	BucketCategoryProductImages    BucketCategory = "product-images"
	BucketCategoryHeroSlides       BucketCategory = "hero-slides"
	BucketCategoryCollectionImages BucketCategory = "collection-images"
	BucketCategoryMediaLogos       BucketCategory = "media-logos"
	BucketCategoryContactFiles     BucketCategory = "contact-files"
)

type BucketService interface {
	UploadFile(ctx context.Context, category BucketCategory, key string, file io.Reader) error
	DeleteFile(ctx context.Context, category BucketCategory, key string) error
	GetPublicURL(category BucketCategory, key string) string
	ParsePublicURL(url string) (BucketCategory, string, error)
}

type bucketService struct {
	log           *logger.Logger
	storageClient *storage.Client
	buckets       map[BucketCategory]string
}

func NewBucketService(log *logger.Logger) (BucketService, error) {
	serviceLog := log.With("service", "BucketService")

	buckets := map[BucketCategory]string{
		BucketCategoryProductImages:    utils.GetEnv("PRODUCT_IMAGES_GCS_BUCKET_NAME", "product-images", serviceLog),
		BucketCategoryHeroSlides:       utils.GetEnv("HERO_SLIDES_GCS_BUCKET_NAME", "hero-slides", serviceLog),
		BucketCategoryCollectionImages: utils.GetEnv("COLLECTION_IMAGES_GCS_BUCKET_NAME", "collection-images", serviceLog),
		BucketCategoryMediaLogos:       utils.GetEnv("MEDIA_LOGOS_GCS_BUCKET_NAME", "media-logos", serviceLog),
		BucketCategoryContactFiles:     utils.GetEnv("CONTACT_FILES_GCS_BUCKET_NAME", "contact-files", serviceLog),
	}

	ctx := context.Background()
	opts := ClientOptionsFromEnv()
	opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	stClient, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &bucketService{
		log:           serviceLog,
		storageClient: stClient,
		buckets:       buckets,
	}, nil
}

func (bs *bucketService) getBucketName(category BucketCategory) (string, error) {
	name, ok := bs.buckets[category]
	if !ok {
		return "", fmt.Errorf("unknown bucket category: %s", category)
	}
	return name, nil
}

func (bs *bucketService) UploadFile(ctx context.Context, category BucketCategory, key string, file io.Reader) error {
	name, err := bs.getBucketName(category)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := bs.storageClient.Bucket(name).Object(key).NewWriter(ctx)
	if ct := contentTypeForKey(key); ct != "" {
		w.ContentType = ct
	}
	if _, err := io.Copy(w, file); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close GCS writer: %w", err)
	}
	return nil
}

func (bs *bucketService) DeleteFile(ctx context.Context, category BucketCategory, key string) error {
	name, err := bs.getBucketName(category)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	o := bs.storageClient.Bucket(name).Object(key)
	if err := o.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete GCS object %q in bucket %q: %w", key, name, err)
	}
	return nil
}

func (bs *bucketService) GetPublicURL(category BucketCategory, key string) string {
	name, err := bs.getBucketName(category)
	if err != nil {
		return key
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", name, key)
}

// ParsePublicURL maps a public object URL back to its category and key.
// Rows store public URLs, so blob cleanup goes through here.
func (bs *bucketService) ParsePublicURL(url string) (BucketCategory, string, error) {
	for category, name := range bs.buckets {
		prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", name)
		if strings.HasPrefix(url, prefix) {
			key := strings.TrimPrefix(url, prefix)
			if key == "" {
				return "", "", fmt.Errorf("object URL %q has empty key", url)
			}
			return category, key, nil
		}
	}
	return "", "", fmt.Errorf("object URL %q does not match any configured bucket", url)
}

func contentTypeForKey(key string) string {
	s := strings.ToLower(strings.TrimSpace(key))
	if s == "" {
		return ""
	}
	if i := strings.Index(s, "?"); i >= 0 {
		s = s[:i]
	}
	switch {
	case strings.HasSuffix(s, ".png"):
		return "image/png"
	case strings.HasSuffix(s, ".jpg"), strings.HasSuffix(s, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(s, ".webp"):
		return "image/webp"
	case strings.HasSuffix(s, ".gif"):
		return "image/gif"
	case strings.HasSuffix(s, ".svg"):
		return "image/svg+xml"
	case strings.HasSuffix(s, ".pdf"):
		return "application/pdf"
	default:
		return ""
	}
}
