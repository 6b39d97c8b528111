package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/catalog"
	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/repos"
	"github.com/zenavi/storefront-backend/internal/types"
)

// CatalogService produces the storefront listing: the denormalized
// product view plus the filter/sort transform over it.
type CatalogService interface {
	ListProducts(ctx context.Context, f catalog.Filters, key catalog.SortKey) ([]catalog.Product, error)
	NewArrivals(ctx context.Context, limit int) ([]catalog.Product, error)
}

type catalogService struct {
	db          *gorm.DB
	log         *logger.Logger
	productRepo repos.ProductRepo
}

func NewCatalogService(db *gorm.DB, log *logger.Logger, productRepo repos.ProductRepo) CatalogService {
	return &catalogService{
		db:          db,
		log:         log.With("service", "CatalogService"),
		productRepo: productRepo,
	}
}

func (cs *catalogService) ListProducts(ctx context.Context, f catalog.Filters, key catalog.SortKey) ([]catalog.Product, error) {
	view, err := cs.loadView(ctx, 0)
	if err != nil {
		return nil, err
	}
	return catalog.Apply(view, f, key), nil
}

func (cs *catalogService) NewArrivals(ctx context.Context, limit int) ([]catalog.Product, error) {
	return cs.loadView(ctx, limit)
}

func (cs *catalogService) loadView(ctx context.Context, limit int) ([]catalog.Product, error) {
	rows, err := cs.productRepo.ListActiveWithPrimaryImage(ctx, nil, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	view := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		// Products without a primary image never reach the storefront.
		if len(row.Images) == 0 {
			continue
		}
		view = append(view, toCatalogProduct(row))
	}
	return view, nil
}

func toCatalogProduct(p *types.Product) catalog.Product {
	out := catalog.Product{
		ID:        p.ID,
		Name:      p.Name,
		Slug:      p.Slug,
		Price:     p.Price,
		SalePrice: p.SalePrice,
		Category:  "Jewelry",
		Material:  p.MaterialType,
		Karat:     p.Karat,
		CreatedAt: p.CreatedAt,
	}
	if len(p.Images) > 0 {
		out.Image = p.Images[0].ImageURL
	}
	if len(p.Categories) > 0 {
		out.Category = p.Categories[0].Name
	}
	return out
}
