package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/types"
)

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, price float64) *types.Product {
	tb.Helper()
	p := &types.Product{
		ID:           uuid.New(),
		Name:         name,
		Slug:         fmt.Sprintf("%s-%s", name, uuid.NewString()[:8]),
		Price:        price,
		MaterialType: "gold",
		Karat:        "18K",
		IsActive:     true,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedProductImage(tb testing.TB, ctx context.Context, tx *gorm.DB, productID uuid.UUID, order int, primary bool) *types.ProductImage {
	tb.Helper()
	img := &types.ProductImage{
		ID:           uuid.New(),
		ProductID:    productID,
		ImageURL:     fmt.Sprintf("https://storage.googleapis.com/product-images/%s.jpg", uuid.NewString()),
		DisplayOrder: order,
		IsPrimary:    primary,
	}
	if err := tx.WithContext(ctx).Create(img).Error; err != nil {
		tb.Fatalf("seed product image: %v", err)
	}
	return img
}

func SeedCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, name, categoryType string) *types.Category {
	tb.Helper()
	c := &types.Category{
		ID:           uuid.New(),
		Name:         name,
		Slug:         fmt.Sprintf("%s-%s", name, uuid.NewString()[:8]),
		CategoryType: categoryType,
		MaterialType: "gold",
		IsActive:     true,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

func PtrFloat64(v float64) *float64 { return &v }
