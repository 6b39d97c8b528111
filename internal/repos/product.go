package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/types"
)

type ProductRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.Product, error)
	ListActiveWithPrimaryImage(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Product, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Product, error)
	Create(ctx context.Context, tx *gorm.DB, product *types.Product) (*types.Product, error)
	Update(ctx context.Context, tx *gorm.DB, product *types.Product) (*types.Product, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return &productRepo{db: db, log: baseLog.With("repo", "ProductRepo")}
}

func (pr *productRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.Product
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// ListActiveWithPrimaryImage loads the storefront view: active products,
// newest first, each with its primary image and categories preloaded.
// limit <= 0 loads everything.
func (pr *productRepo) ListActiveWithPrimaryImage(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	q := transaction.WithContext(ctx).
		Where("is_active = ?", true).
		Preload("Images", "is_primary = ?", true).
		Preload("Categories").
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var results []*types.Product
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.Product
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

func (pr *productRepo) Create(ctx context.Context, tx *gorm.DB, product *types.Product) (*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (pr *productRepo) Update(ctx context.Context, tx *gorm.DB, product *types.Product) (*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).
		Model(&types.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":           product.Name,
			"slug":           product.Slug,
			"description":    product.Description,
			"price":          product.Price,
			"sale_price":     product.SalePrice,
			"material_type":  product.MaterialType,
			"karat":          product.Karat,
			"stock_quantity": product.StockQuantity,
			"is_featured":    product.IsFeatured,
			"is_active":      product.IsActive,
		}).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (pr *productRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Product{}).Error
}
