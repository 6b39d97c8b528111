package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/types"
)

type CategoryRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.Category, error)
	ListActiveByType(ctx context.Context, tx *gorm.DB, categoryType string) ([]*types.Category, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Category, error)
	Create(ctx context.Context, tx *gorm.DB, category *types.Category) (*types.Category, error)
	Update(ctx context.Context, tx *gorm.DB, category *types.Category) (*types.Category, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type categoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	return &categoryRepo{db: db, log: baseLog.With("repo", "CategoryRepo")}
}

func (cr *categoryRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.Category
	if err := transaction.WithContext(ctx).
		Order("display_order ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *categoryRepo) ListActiveByType(ctx context.Context, tx *gorm.DB, categoryType string) ([]*types.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.Category
	if err := transaction.WithContext(ctx).
		Where("is_active = ? AND category_type = ?", true, categoryType).
		Order("display_order ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *categoryRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.Category
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

func (cr *categoryRepo) Create(ctx context.Context, tx *gorm.DB, category *types.Category) (*types.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (cr *categoryRepo) Update(ctx context.Context, tx *gorm.DB, category *types.Category) (*types.Category, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).
		Model(&types.Category{}).
		Where("id = ?", category.ID).
		Updates(map[string]interface{}{
			"name":            category.Name,
			"slug":            category.Slug,
			"parent_category": category.ParentCategory,
			"category_type":   category.CategoryType,
			"material_type":   category.MaterialType,
			"display_order":   category.DisplayOrder,
			"is_active":       category.IsActive,
		}).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (cr *categoryRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Category{}).Error
}
