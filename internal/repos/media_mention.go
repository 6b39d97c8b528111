package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/types"
)

type MediaMentionRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.MediaMention, error)
	ListActive(ctx context.Context, tx *gorm.DB) ([]*types.MediaMention, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.MediaMention, error)
	Create(ctx context.Context, tx *gorm.DB, mention *types.MediaMention) (*types.MediaMention, error)
	Update(ctx context.Context, tx *gorm.DB, mention *types.MediaMention) (*types.MediaMention, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type mediaMentionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMediaMentionRepo(db *gorm.DB, baseLog *logger.Logger) MediaMentionRepo {
	return &mediaMentionRepo{db: db, log: baseLog.With("repo", "MediaMentionRepo")}
}

func (mr *mediaMentionRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.MediaMention, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var results []*types.MediaMention
	if err := transaction.WithContext(ctx).
		Order("display_order ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *mediaMentionRepo) ListActive(ctx context.Context, tx *gorm.DB) ([]*types.MediaMention, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var results []*types.MediaMention
	if err := transaction.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *mediaMentionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.MediaMention, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var results []*types.MediaMention
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

func (mr *mediaMentionRepo) Create(ctx context.Context, tx *gorm.DB, mention *types.MediaMention) (*types.MediaMention, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if err := transaction.WithContext(ctx).Create(mention).Error; err != nil {
		return nil, err
	}
	return mention, nil
}

func (mr *mediaMentionRepo) Update(ctx context.Context, tx *gorm.DB, mention *types.MediaMention) (*types.MediaMention, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if err := transaction.WithContext(ctx).
		Model(&types.MediaMention{}).
		Where("id = ?", mention.ID).
		Updates(map[string]interface{}{
			"publication_name": mention.PublicationName,
			"logo_url":         mention.LogoURL,
			"article_url":      mention.ArticleURL,
			"display_order":    mention.DisplayOrder,
			"is_active":        mention.IsActive,
		}).Error; err != nil {
		return nil, err
	}
	return mention, nil
}

func (mr *mediaMentionRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.MediaMention{}).Error
}
