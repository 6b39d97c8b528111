package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/repos"
	"github.com/zenavi/storefront-backend/internal/types"
)

type CategoryAdminService interface {
	List(ctx context.Context) ([]*types.Category, error)
	Save(ctx context.Context, category *types.Category) ([]*types.Category, error)
	Delete(ctx context.Context, id uuid.UUID) ([]*types.Category, error)
}

type categoryAdminService struct {
	db           *gorm.DB
	log          *logger.Logger
	categoryRepo repos.CategoryRepo
}

func NewCategoryAdminService(db *gorm.DB, log *logger.Logger, categoryRepo repos.CategoryRepo) CategoryAdminService {
	return &categoryAdminService{
		db:           db,
		log:          log.With("service", "CategoryAdminService"),
		categoryRepo: categoryRepo,
	}
}

func (cas *categoryAdminService) List(ctx context.Context) ([]*types.Category, error) {
	rows, err := cas.categoryRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return rows, nil
}

func (cas *categoryAdminService) Save(ctx context.Context, category *types.Category) ([]*types.Category, error) {
	if strings.TrimSpace(category.Name) == "" {
		return nil, fmt.Errorf("%w: name required", ErrInvalid)
	}
	switch category.CategoryType {
	case "":
		category.CategoryType = types.CategoryTypeType
	case types.CategoryTypeType, types.CategoryTypeKarat, types.CategoryTypeOccasion, types.CategoryTypeDiamondType:
	default:
		return nil, fmt.Errorf("%w: unknown category type %q", ErrInvalid, category.CategoryType)
	}
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}

	if category.ID == uuid.Nil {
		if _, err := cas.categoryRepo.Create(ctx, nil, category); err != nil {
			return nil, fmt.Errorf("failed to create category: %w", err)
		}
	} else {
		existing, err := cas.categoryRepo.GetByIDs(ctx, nil, []uuid.UUID{category.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to load category: %w", err)
		}
		if len(existing) == 0 {
			return nil, fmt.Errorf("%w: category %s", ErrNotFound, category.ID)
		}
		if _, err := cas.categoryRepo.Update(ctx, nil, category); err != nil {
			return nil, fmt.Errorf("failed to update category: %w", err)
		}
	}

	return cas.List(ctx)
}

func (cas *categoryAdminService) Delete(ctx context.Context, id uuid.UUID) ([]*types.Category, error) {
	if err := cas.categoryRepo.DeleteByID(ctx, nil, id); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}
	return cas.List(ctx)
}
