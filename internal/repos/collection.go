package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/types"
)

type CollectionRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.Collection, error)
	ListActive(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Collection, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Collection, error)
	Create(ctx context.Context, tx *gorm.DB, collection *types.Collection) (*types.Collection, error)
	Update(ctx context.Context, tx *gorm.DB, collection *types.Collection) (*types.Collection, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type collectionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCollectionRepo(db *gorm.DB, baseLog *logger.Logger) CollectionRepo {
	return &collectionRepo{db: db, log: baseLog.With("repo", "CollectionRepo")}
}

func (cr *collectionRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Collection, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.Collection
	if err := transaction.WithContext(ctx).
		Order("display_order ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *collectionRepo) ListActive(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Collection, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	q := transaction.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var results []*types.Collection
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *collectionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Collection, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.Collection
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

func (cr *collectionRepo) Create(ctx context.Context, tx *gorm.DB, collection *types.Collection) (*types.Collection, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(collection).Error; err != nil {
		return nil, err
	}
	return collection, nil
}

func (cr *collectionRepo) Update(ctx context.Context, tx *gorm.DB, collection *types.Collection) (*types.Collection, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).
		Model(&types.Collection{}).
		Where("id = ?", collection.ID).
		Updates(map[string]interface{}{
			"name":          collection.Name,
			"slug":          collection.Slug,
			"description":   collection.Description,
			"image_url":     collection.ImageURL,
			"display_order": collection.DisplayOrder,
			"is_active":     collection.IsActive,
		}).Error; err != nil {
		return nil, err
	}
	return collection, nil
}

func (cr *collectionRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Collection{}).Error
}
