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

// SlideAdminService edits hero slides. Save and Delete return the
// reloaded list so the caller always renders fresh state.
type SlideAdminService interface {
	List(ctx context.Context) ([]*types.HeroSlide, error)
	Save(ctx context.Context, slide *types.HeroSlide, filename string, file io.Reader) ([]*types.HeroSlide, error)
	Delete(ctx context.Context, id uuid.UUID) ([]*types.HeroSlide, error)
}

type slideAdminService struct {
	db           *gorm.DB
	log          *logger.Logger
	slideRepo    repos.HeroSlideRepo
	imageService ImageService
}

func NewSlideAdminService(db *gorm.DB, log *logger.Logger, slideRepo repos.HeroSlideRepo, imageService ImageService) SlideAdminService {
	return &slideAdminService{
		db:           db,
		log:          log.With("service", "SlideAdminService"),
		slideRepo:    slideRepo,
		imageService: imageService,
	}
}

func (sas *slideAdminService) List(ctx context.Context) ([]*types.HeroSlide, error) {
	rows, err := sas.slideRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load hero slides: %w", err)
	}
	return rows, nil
}

// Save creates the slide when ID is zero, otherwise updates it. A new
// image uploads before the row write; a failed upload aborts the save
// with the row untouched.
func (sas *slideAdminService) Save(ctx context.Context, slide *types.HeroSlide, filename string, file io.Reader) ([]*types.HeroSlide, error) {
	if strings.TrimSpace(slide.Title) == "" {
		return nil, fmt.Errorf("%w: title required", ErrInvalid)
	}

	oldURL := ""
	if slide.ID != uuid.Nil {
		existing, err := sas.slideRepo.GetByIDs(ctx, nil, []uuid.UUID{slide.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to load hero slide: %w", err)
		}
		if len(existing) == 0 {
			return nil, fmt.Errorf("%w: hero slide %s", ErrNotFound, slide.ID)
		}
		oldURL = existing[0].ImageURL
		if slide.ImageURL == "" {
			slide.ImageURL = oldURL
		}
	}

	if file != nil {
		url, err := sas.imageService.Upload(ctx, gcp.BucketCategoryHeroSlides, filename, file)
		if err != nil {
			return nil, err
		}
		slide.ImageURL = url
	}
	if slide.ImageURL == "" {
		return nil, fmt.Errorf("%w: image required", ErrInvalid)
	}

	if slide.ID == uuid.Nil {
		if _, err := sas.slideRepo.Create(ctx, nil, slide); err != nil {
			return nil, fmt.Errorf("failed to create hero slide: %w", err)
		}
	} else {
		if _, err := sas.slideRepo.Update(ctx, nil, slide); err != nil {
			return nil, fmt.Errorf("failed to update hero slide: %w", err)
		}
		if oldURL != "" && oldURL != slide.ImageURL {
			if err := sas.imageService.DeleteByURL(ctx, oldURL); err != nil {
				sas.log.Warn("failed to delete replaced slide image (ignored)", "url", oldURL, "error", err)
			}
		}
	}

	return sas.List(ctx)
}

// Delete removes the slide's blob best-effort, then the row. A failed
// blob delete never blocks the row delete.
func (sas *slideAdminService) Delete(ctx context.Context, id uuid.UUID) ([]*types.HeroSlide, error) {
	existing, err := sas.slideRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("failed to load hero slide: %w", err)
	}
	if len(existing) == 0 {
		return nil, fmt.Errorf("%w: hero slide %s", ErrNotFound, id)
	}
	if url := existing[0].ImageURL; url != "" {
		if err := sas.imageService.DeleteByURL(ctx, url); err != nil {
			sas.log.Warn("failed to delete slide image (ignored)", "url", url, "error", err)
		}
	}
	if err := sas.slideRepo.DeleteByID(ctx, nil, id); err != nil {
		return nil, fmt.Errorf("failed to delete hero slide: %w", err)
	}
	return sas.List(ctx)
}
