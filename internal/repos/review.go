package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/types"
)

type ReviewRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.Review, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Review, error)
	Create(ctx context.Context, tx *gorm.DB, review *types.Review) (*types.Review, error)
	Update(ctx context.Context, tx *gorm.DB, review *types.Review) (*types.Review, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type reviewRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReviewRepo(db *gorm.DB, baseLog *logger.Logger) ReviewRepo {
	return &reviewRepo{db: db, log: baseLog.With("repo", "ReviewRepo")}
}

func (rr *reviewRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Review, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.Review
	if err := transaction.WithContext(ctx).
		Preload("Product").
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *reviewRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Review, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.Review
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *reviewRepo) Create(ctx context.Context, tx *gorm.DB, review *types.Review) (*types.Review, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (rr *reviewRepo) Update(ctx context.Context, tx *gorm.DB, review *types.Review) (*types.Review, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).
		Model(&types.Review{}).
		Where("id = ?", review.ID).
		Updates(map[string]interface{}{
			"product_id":    review.ProductID,
			"customer_name": review.CustomerName,
			"rating":        review.Rating,
			"review_text":   review.ReviewText,
			"is_verified":   review.IsVerified,
			"is_published":  review.IsPublished,
		}).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (rr *reviewRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Review{}).Error
}
