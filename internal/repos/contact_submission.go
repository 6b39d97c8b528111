package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/types"
)

type ContactSubmissionRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.ContactSubmission, error)
	Create(ctx context.Context, tx *gorm.DB, submission *types.ContactSubmission) (*types.ContactSubmission, error)
	MarkRead(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type contactSubmissionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactSubmissionRepo(db *gorm.DB, baseLog *logger.Logger) ContactSubmissionRepo {
	return &contactSubmissionRepo{db: db, log: baseLog.With("repo", "ContactSubmissionRepo")}
}

func (cr *contactSubmissionRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.ContactSubmission, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.ContactSubmission
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contactSubmissionRepo) Create(ctx context.Context, tx *gorm.DB, submission *types.ContactSubmission) (*types.ContactSubmission, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(submission).Error; err != nil {
		return nil, err
	}
	return submission, nil
}

func (cr *contactSubmissionRepo) MarkRead(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.ContactSubmission{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (cr *contactSubmissionRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.ContactSubmission{}).Error
}
