package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/types"
)

type TestimonialRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.Testimonial, error)
	ListFeaturedPublished(ctx context.Context, tx *gorm.DB) ([]*types.Testimonial, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Testimonial, error)
	Create(ctx context.Context, tx *gorm.DB, testimonial *types.Testimonial) (*types.Testimonial, error)
	Update(ctx context.Context, tx *gorm.DB, testimonial *types.Testimonial) (*types.Testimonial, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type testimonialRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTestimonialRepo(db *gorm.DB, baseLog *logger.Logger) TestimonialRepo {
	return &testimonialRepo{db: db, log: baseLog.With("repo", "TestimonialRepo")}
}

func (tr *testimonialRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Testimonial, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var results []*types.Testimonial
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *testimonialRepo) ListFeaturedPublished(ctx context.Context, tx *gorm.DB) ([]*types.Testimonial, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var results []*types.Testimonial
	if err := transaction.WithContext(ctx).
		Where("is_published = ? AND is_featured = ?", true, true).
		Order("display_order ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *testimonialRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Testimonial, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var results []*types.Testimonial
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

func (tr *testimonialRepo) Create(ctx context.Context, tx *gorm.DB, testimonial *types.Testimonial) (*types.Testimonial, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	if err := transaction.WithContext(ctx).Create(testimonial).Error; err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (tr *testimonialRepo) Update(ctx context.Context, tx *gorm.DB, testimonial *types.Testimonial) (*types.Testimonial, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	if err := transaction.WithContext(ctx).
		Model(&types.Testimonial{}).
		Where("id = ?", testimonial.ID).
		Updates(map[string]interface{}{
			"customer_name":    testimonial.CustomerName,
			"customer_title":   testimonial.CustomerTitle,
			"rating":           testimonial.Rating,
			"testimonial_text": testimonial.TestimonialText,
			"is_featured":      testimonial.IsFeatured,
			"is_published":     testimonial.IsPublished,
			"display_order":    testimonial.DisplayOrder,
		}).Error; err != nil {
		return nil, err
	}
	return testimonial, nil
}

func (tr *testimonialRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Testimonial{}).Error
}
