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

type MediaMentionAdminService interface {
	List(ctx context.Context) ([]*types.MediaMention, error)
	Save(ctx context.Context, mention *types.MediaMention, filename string, file io.Reader) ([]*types.MediaMention, error)
	Delete(ctx context.Context, id uuid.UUID) ([]*types.MediaMention, error)
}

type mediaMentionAdminService struct {
	db           *gorm.DB
	log          *logger.Logger
	mentionRepo  repos.MediaMentionRepo
	imageService ImageService
}

func NewMediaMentionAdminService(db *gorm.DB, log *logger.Logger, mentionRepo repos.MediaMentionRepo, imageService ImageService) MediaMentionAdminService {
	return &mediaMentionAdminService{
		db:           db,
		log:          log.With("service", "MediaMentionAdminService"),
		mentionRepo:  mentionRepo,
		imageService: imageService,
	}
}

func (mas *mediaMentionAdminService) List(ctx context.Context) ([]*types.MediaMention, error) {
	rows, err := mas.mentionRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load media mentions: %w", err)
	}
	return rows, nil
}

func (mas *mediaMentionAdminService) Save(ctx context.Context, mention *types.MediaMention, filename string, file io.Reader) ([]*types.MediaMention, error) {
	if strings.TrimSpace(mention.PublicationName) == "" {
		return nil, fmt.Errorf("%w: publication name required", ErrInvalid)
	}

	oldURL := ""
	if mention.ID != uuid.Nil {
		existing, err := mas.mentionRepo.GetByIDs(ctx, nil, []uuid.UUID{mention.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to load media mention: %w", err)
		}
		if len(existing) == 0 {
			return nil, fmt.Errorf("%w: media mention %s", ErrNotFound, mention.ID)
		}
		oldURL = existing[0].LogoURL
		if mention.LogoURL == "" {
			mention.LogoURL = oldURL
		}
	}

	if file != nil {
		url, err := mas.imageService.Upload(ctx, gcp.BucketCategoryMediaLogos, filename, file)
		if err != nil {
			return nil, err
		}
		mention.LogoURL = url
	}

	if mention.ID == uuid.Nil {
		if _, err := mas.mentionRepo.Create(ctx, nil, mention); err != nil {
			return nil, fmt.Errorf("failed to create media mention: %w", err)
		}
	} else {
		if _, err := mas.mentionRepo.Update(ctx, nil, mention); err != nil {
			return nil, fmt.Errorf("failed to update media mention: %w", err)
		}
		if oldURL != "" && oldURL != mention.LogoURL {
			if err := mas.imageService.DeleteByURL(ctx, oldURL); err != nil {
				mas.log.Warn("failed to delete replaced publication logo (ignored)", "url", oldURL, "error", err)
			}
		}
	}

	return mas.List(ctx)
}

func (mas *mediaMentionAdminService) Delete(ctx context.Context, id uuid.UUID) ([]*types.MediaMention, error) {
	existing, err := mas.mentionRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("failed to load media mention: %w", err)
	}
	if len(existing) == 0 {
		return nil, fmt.Errorf("%w: media mention %s", ErrNotFound, id)
	}
	if url := existing[0].LogoURL; url != "" {
		if err := mas.imageService.DeleteByURL(ctx, url); err != nil {
			mas.log.Warn("failed to delete publication logo (ignored)", "url", url, "error", err)
		}
	}
	if err := mas.mentionRepo.DeleteByID(ctx, nil, id); err != nil {
		return nil, fmt.Errorf("failed to delete media mention: %w", err)
	}
	return mas.List(ctx)
}
