package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/repos"
	"github.com/zenavi/storefront-backend/internal/types"
)

type TestimonialAdminService interface {
	List(ctx context.Context) ([]*types.Testimonial, error)
	Save(ctx context.Context, testimonial *types.Testimonial) ([]*types.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) ([]*types.Testimonial, error)
}

type testimonialAdminService struct {
	db        *gorm.DB
	log       *logger.Logger
	testiRepo repos.TestimonialRepo
}

func NewTestimonialAdminService(db *gorm.DB, log *logger.Logger, testiRepo repos.TestimonialRepo) TestimonialAdminService {
	return &testimonialAdminService{
		db:        db,
		log:       log.With("service", "TestimonialAdminService"),
		testiRepo: testiRepo,
	}
}

func (tas *testimonialAdminService) List(ctx context.Context) ([]*types.Testimonial, error) {
	rows, err := tas.testiRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load testimonials: %w", err)
	}
	return rows, nil
}

func (tas *testimonialAdminService) Save(ctx context.Context, testimonial *types.Testimonial) ([]*types.Testimonial, error) {
	if strings.TrimSpace(testimonial.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer name required", ErrInvalid)
	}
	if strings.TrimSpace(testimonial.TestimonialText) == "" {
		return nil, fmt.Errorf("%w: testimonial text required", ErrInvalid)
	}
	if testimonial.Rating < 1 || testimonial.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalid)
	}

	if testimonial.ID == uuid.Nil {
		if _, err := tas.testiRepo.Create(ctx, nil, testimonial); err != nil {
			return nil, fmt.Errorf("failed to create testimonial: %w", err)
		}
	} else {
		existing, err := tas.testiRepo.GetByIDs(ctx, nil, []uuid.UUID{testimonial.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to load testimonial: %w", err)
		}
		if len(existing) == 0 {
			return nil, fmt.Errorf("%w: testimonial %s", ErrNotFound, testimonial.ID)
		}
		if _, err := tas.testiRepo.Update(ctx, nil, testimonial); err != nil {
			return nil, fmt.Errorf("failed to update testimonial: %w", err)
		}
	}

	return tas.List(ctx)
}

func (tas *testimonialAdminService) Delete(ctx context.Context, id uuid.UUID) ([]*types.Testimonial, error) {
	if err := tas.testiRepo.DeleteByID(ctx, nil, id); err != nil {
		return nil, fmt.Errorf("failed to delete testimonial: %w", err)
	}
	return tas.List(ctx)
}
