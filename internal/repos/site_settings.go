package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/types"
)

type SiteSettingsRepo interface {
	Get(ctx context.Context, tx *gorm.DB) (*types.SiteSettings, error)
	Upsert(ctx context.Context, tx *gorm.DB, settings *types.SiteSettings) (*types.SiteSettings, error)
}

type siteSettingsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSiteSettingsRepo(db *gorm.DB, baseLog *logger.Logger) SiteSettingsRepo {
	return &siteSettingsRepo{db: db, log: baseLog.With("repo", "SiteSettingsRepo")}
}

// Get returns the singleton settings row, or nil when none has been
// written yet.
func (sr *siteSettingsRepo) Get(ctx context.Context, tx *gorm.DB) (*types.SiteSettings, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var settings types.SiteSettings
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Upsert updates the existing singleton row when one exists, otherwise
// inserts the first row.
func (sr *siteSettingsRepo) Upsert(ctx context.Context, tx *gorm.DB, settings *types.SiteSettings) (*types.SiteSettings, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	current, err := sr.Get(ctx, transaction)
	if err != nil {
		return nil, err
	}
	if current == nil {
		if err := transaction.WithContext(ctx).Create(settings).Error; err != nil {
			return nil, err
		}
		return settings, nil
	}
	if err := transaction.WithContext(ctx).
		Model(&types.SiteSettings{}).
		Where("id = ?", current.ID).
		Updates(map[string]interface{}{
			"brand_name":       settings.BrandName,
			"hero_headline":    settings.HeroHeadline,
			"hero_subheadline": settings.HeroSubheadline,
			"about_headline":   settings.AboutHeadline,
			"about_content":    settings.AboutContent,
			"founder_note":     settings.FounderNote,
			"phone_number":     settings.PhoneNumber,
			"email_address":    settings.EmailAddress,
			"showroom_address": settings.ShowroomAddress,
			"operating_hours":  settings.OperatingHours,
			"instagram_url":    settings.InstagramURL,
			"facebook_url":     settings.FacebookURL,
		}).Error; err != nil {
		return nil, err
	}
	return sr.Get(ctx, transaction)
}
