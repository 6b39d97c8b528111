package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/repos"
	"github.com/zenavi/storefront-backend/internal/types"
)

// SettingsService reads and writes the singleton site settings row.
type SettingsService interface {
	Get(ctx context.Context) (*types.SiteSettings, error)
	Update(ctx context.Context, settings *types.SiteSettings) (*types.SiteSettings, error)
}

type settingsService struct {
	db           *gorm.DB
	log          *logger.Logger
	settingsRepo repos.SiteSettingsRepo
}

func NewSettingsService(db *gorm.DB, log *logger.Logger, settingsRepo repos.SiteSettingsRepo) SettingsService {
	return &settingsService{
		db:           db,
		log:          log.With("service", "SettingsService"),
		settingsRepo: settingsRepo,
	}
}

// Get returns the stored settings, or an empty row when none exists
// yet so callers always render something.
func (ss *settingsService) Get(ctx context.Context) (*types.SiteSettings, error) {
	settings, err := ss.settingsRepo.Get(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load site settings: %w", err)
	}
	if settings == nil {
		return &types.SiteSettings{}, nil
	}
	return settings, nil
}

func (ss *settingsService) Update(ctx context.Context, settings *types.SiteSettings) (*types.SiteSettings, error) {
	if strings.TrimSpace(settings.BrandName) == "" {
		return nil, fmt.Errorf("%w: brand name required", ErrInvalid)
	}
	updated, err := ss.settingsRepo.Upsert(ctx, nil, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to save site settings: %w", err)
	}
	return updated, nil
}
