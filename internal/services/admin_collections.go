package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/platform/gcp"
	"github.com/zenavi/storefront-backend/internal/repos"
	"github.com/zenavi/storefront-backend/internal/types"
)

type CollectionAdminService interface {
	List(ctx context.Context) ([]*types.Collection, error)
	Save(ctx context.Context, collection *types.Collection, filename string, file io.Reader) ([]*types.Collection, error)
	Delete(ctx context.Context, id uuid.UUID) ([]*types.Collection, error)
}

type collectionAdminService struct {
	db           *gorm.DB
	log          *logger.Logger
	collRepo     repos.CollectionRepo
	imageService ImageService
}

func NewCollectionAdminService(db *gorm.DB, log *logger.Logger, collRepo repos.CollectionRepo, imageService ImageService) CollectionAdminService {
	return &collectionAdminService{
		db:           db,
		log:          log.With("service", "CollectionAdminService"),
		collRepo:     collRepo,
		imageService: imageService,
	}
}

func (cas *collectionAdminService) List(ctx context.Context) ([]*types.Collection, error) {
	rows, err := cas.collRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load collections: %w", err)
	}
	return rows, nil
}

func (cas *collectionAdminService) Save(ctx context.Context, collection *types.Collection, filename string, file io.Reader) ([]*types.Collection, error) {
	if strings.TrimSpace(collection.Name) == "" {
		return nil, fmt.Errorf("%w: name required", ErrInvalid)
	}
	if collection.Slug == "" {
		collection.Slug = Slugify(collection.Name)
	}

	oldURL := ""
	if collection.ID != uuid.Nil {
		existing, err := cas.collRepo.GetByIDs(ctx, nil, []uuid.UUID{collection.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to load collection: %w", err)
		}
		if len(existing) == 0 {
			return nil, fmt.Errorf("%w: collection %s", ErrNotFound, collection.ID)
		}
		oldURL = existing[0].ImageURL
		if collection.ImageURL == "" {
			collection.ImageURL = oldURL
		}
	}

	if file != nil {
		url, err := cas.imageService.Upload(ctx, gcp.BucketCategoryCollectionImages, filename, file)
		if err != nil {
			return nil, err
		}
		collection.ImageURL = url
	}

	if collection.ID == uuid.Nil {
		if _, err := cas.collRepo.Create(ctx, nil, collection); err != nil {
			return nil, fmt.Errorf("failed to create collection: %w", err)
		}
	} else {
		if _, err := cas.collRepo.Update(ctx, nil, collection); err != nil {
			return nil, fmt.Errorf("failed to update collection: %w", err)
		}
		if oldURL != "" && oldURL != collection.ImageURL {
			if err := cas.imageService.DeleteByURL(ctx, oldURL); err != nil {
				cas.log.Warn("failed to delete replaced collection image (ignored)", "url", oldURL, "error", err)
			}
		}
	}

	return cas.List(ctx)
}

func (cas *collectionAdminService) Delete(ctx context.Context, id uuid.UUID) ([]*types.Collection, error) {
	existing, err := cas.collRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}
	if len(existing) == 0 {
		return nil, fmt.Errorf("%w: collection %s", ErrNotFound, id)
	}
	if url := existing[0].ImageURL; url != "" {
		if err := cas.imageService.DeleteByURL(ctx, url); err != nil {
			cas.log.Warn("failed to delete collection image (ignored)", "url", url, "error", err)
		}
	}
	if err := cas.collRepo.DeleteByID(ctx, nil, id); err != nil {
		return nil, fmt.Errorf("failed to delete collection: %w", err)
	}
	return cas.List(ctx)
}
