package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/types"
)

type HeroSlideRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.HeroSlide, error)
	ListActive(ctx context.Context, tx *gorm.DB) ([]*types.HeroSlide, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.HeroSlide, error)
	Create(ctx context.Context, tx *gorm.DB, slide *types.HeroSlide) (*types.HeroSlide, error)
	Update(ctx context.Context, tx *gorm.DB, slide *types.HeroSlide) (*types.HeroSlide, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type heroSlideRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHeroSlideRepo(db *gorm.DB, baseLog *logger.Logger) HeroSlideRepo {
	return &heroSlideRepo{db: db, log: baseLog.With("repo", "HeroSlideRepo")}
}

func (hr *heroSlideRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.HeroSlide, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	var results []*types.HeroSlide
	if err := transaction.WithContext(ctx).
		Order("display_order ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (hr *heroSlideRepo) ListActive(ctx context.Context, tx *gorm.DB) ([]*types.HeroSlide, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	var results []*types.HeroSlide
	if err := transaction.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (hr *heroSlideRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.HeroSlide, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	var results []*types.HeroSlide
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

func (hr *heroSlideRepo) Create(ctx context.Context, tx *gorm.DB, slide *types.HeroSlide) (*types.HeroSlide, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	if err := transaction.WithContext(ctx).Create(slide).Error; err != nil {
		return nil, err
	}
	return slide, nil
}

func (hr *heroSlideRepo) Update(ctx context.Context, tx *gorm.DB, slide *types.HeroSlide) (*types.HeroSlide, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	if err := transaction.WithContext(ctx).
		Model(&types.HeroSlide{}).
		Where("id = ?", slide.ID).
		Updates(map[string]interface{}{
			"image_url":     slide.ImageURL,
			"title":         slide.Title,
			"subtitle":      slide.Subtitle,
			"button_text":   slide.ButtonText,
			"button_link":   slide.ButtonLink,
			"display_order": slide.DisplayOrder,
			"is_active":     slide.IsActive,
		}).Error; err != nil {
		return nil, err
	}
	return slide, nil
}

func (hr *heroSlideRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.HeroSlide{}).Error
}
