package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/types"
)

type ProductImageRepo interface {
	ListByProductID(ctx context.Context, tx *gorm.DB, productID uuid.UUID) ([]*types.ProductImage, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.ProductImage, error)
	Create(ctx context.Context, tx *gorm.DB, image *types.ProductImage) (*types.ProductImage, error)
	SetPrimary(ctx context.Context, tx *gorm.DB, productID, imageID uuid.UUID) error
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type productImageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductImageRepo(db *gorm.DB, baseLog *logger.Logger) ProductImageRepo {
	return &productImageRepo{db: db, log: baseLog.With("repo", "ProductImageRepo")}
}

func (pir *productImageRepo) ListByProductID(ctx context.Context, tx *gorm.DB, productID uuid.UUID) ([]*types.ProductImage, error) {
	transaction := tx
	if transaction == nil {
		transaction = pir.db
	}
	var results []*types.ProductImage
	if err := transaction.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("display_order ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pir *productImageRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.ProductImage, error) {
	transaction := tx
	if transaction == nil {
		transaction = pir.db
	}
	var results []*types.ProductImage
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

func (pir *productImageRepo) Create(ctx context.Context, tx *gorm.DB, image *types.ProductImage) (*types.ProductImage, error) {
	transaction := tx
	if transaction == nil {
		transaction = pir.db
	}
	if err := transaction.WithContext(ctx).Create(image).Error; err != nil {
		return nil, err
	}
	return image, nil
}

// SetPrimary flips the primary flag to the target image. Both writes
// run in one transaction so no reader observes zero or two primaries;
// the partial unique index backs this up at the store.
func (pir *productImageRepo) SetPrimary(ctx context.Context, tx *gorm.DB, productID, imageID uuid.UUID) error {
	run := func(transaction *gorm.DB) error {
		if err := transaction.WithContext(ctx).
			Model(&types.ProductImage{}).
			Where("product_id = ?", productID).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return transaction.WithContext(ctx).
			Model(&types.ProductImage{}).
			Where("id = ? AND product_id = ?", imageID, productID).
			Update("is_primary", true).Error
	}
	if tx != nil {
		return run(tx)
	}
	return pir.db.Transaction(run)
}

func (pir *productImageRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pir.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.ProductImage{}).Error
}
