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

type ReviewAdminService interface {
	List(ctx context.Context) ([]*types.Review, error)
	Save(ctx context.Context, review *types.Review) ([]*types.Review, error)
	Delete(ctx context.Context, id uuid.UUID) ([]*types.Review, error)
}

type reviewAdminService struct {
	db          *gorm.DB
	log         *logger.Logger
	reviewRepo  repos.ReviewRepo
	productRepo repos.ProductRepo
}

func NewReviewAdminService(db *gorm.DB, log *logger.Logger, reviewRepo repos.ReviewRepo, productRepo repos.ProductRepo) ReviewAdminService {
	return &reviewAdminService{
		db:          db,
		log:         log.With("service", "ReviewAdminService"),
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

func (ras *reviewAdminService) List(ctx context.Context) ([]*types.Review, error) {
	rows, err := ras.reviewRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}
	return rows, nil
}

func (ras *reviewAdminService) Save(ctx context.Context, review *types.Review) ([]*types.Review, error) {
	if strings.TrimSpace(review.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer name required", ErrInvalid)
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalid)
	}
	if review.ProductID == uuid.Nil {
		return nil, fmt.Errorf("%w: product required", ErrInvalid)
	}
	owners, err := ras.productRepo.GetByIDs(ctx, nil, []uuid.UUID{review.ProductID})
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if len(owners) == 0 {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, review.ProductID)
	}

	if review.ID == uuid.Nil {
		if _, err := ras.reviewRepo.Create(ctx, nil, review); err != nil {
			return nil, fmt.Errorf("failed to create review: %w", err)
		}
	} else {
		existing, err := ras.reviewRepo.GetByIDs(ctx, nil, []uuid.UUID{review.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to load review: %w", err)
		}
		if len(existing) == 0 {
			return nil, fmt.Errorf("%w: review %s", ErrNotFound, review.ID)
		}
		if _, err := ras.reviewRepo.Update(ctx, nil, review); err != nil {
			return nil, fmt.Errorf("failed to update review: %w", err)
		}
	}

	return ras.List(ctx)
}

func (ras *reviewAdminService) Delete(ctx context.Context, id uuid.UUID) ([]*types.Review, error) {
	if err := ras.reviewRepo.DeleteByID(ctx, nil, id); err != nil {
		return nil, fmt.Errorf("failed to delete review: %w", err)
	}
	return ras.List(ctx)
}
