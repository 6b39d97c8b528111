package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/zenavi/storefront-backend/internal/types"
)

func TestProductAdminServiceSaveDerivesSlug(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductAdminService(nil, testLogger(t), repo, &fakeProductImageRepo{}, &fakeImageService{})

	rows, err := svc.Save(context.Background(), &types.Product{Name: "Gold Heritage Ring", Price: 1200})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected reloaded list of 1, got %d", len(rows))
	}
	if rows[0].Slug != "gold-heritage-ring" {
		t.Fatalf("slug not derived: %q", rows[0].Slug)
	}
}

func TestProductAdminServiceSaveRequiresPositivePrices(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductAdminService(nil, testLogger(t), repo, &fakeProductImageRepo{}, &fakeImageService{})

	if _, err := svc.Save(context.Background(), &types.Product{Name: "X", Price: -1}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for negative price, got %v", err)
	}
	if _, err := svc.Save(context.Background(), &types.Product{Name: "X", Price: 0}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for zero price, got %v", err)
	}
	sale := 0.0
	if _, err := svc.Save(context.Background(), &types.Product{Name: "X", Price: 10, SalePrice: &sale}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for zero sale price, got %v", err)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("invalid products must not be stored, got %d rows", len(repo.rows))
	}
}

func TestProductAdminServiceSaveValidatesMaterialAndKarat(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductAdminService(nil, testLogger(t), repo, &fakeProductImageRepo{}, &fakeImageService{})

	if _, err := svc.Save(context.Background(), &types.Product{Name: "X", Price: 10, MaterialType: "silver"}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for unknown material, got %v", err)
	}
	if _, err := svc.Save(context.Background(), &types.Product{Name: "X", Price: 10, Karat: "24K"}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for unknown karat, got %v", err)
	}

	rows, err := svc.Save(context.Background(), &types.Product{Name: "Plain Ring", Price: 10})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if rows[0].MaterialType != types.MaterialTypeGold || rows[0].Karat != types.Karat18K {
		t.Fatalf("empty enums should default, got %q/%q", rows[0].MaterialType, rows[0].Karat)
	}
}

func TestProductAdminServiceAddImageFirstBecomesPrimary(t *testing.T) {
	product := &types.Product{ID: uuid.New(), Name: "Bangle", Slug: "bangle", IsActive: true}
	productRepo := &fakeProductRepo{rows: []*types.Product{product}}
	imageRepo := &fakeProductImageRepo{}
	svc := NewProductAdminService(nil, testLogger(t), productRepo, imageRepo, &fakeImageService{})

	rows, err := svc.AddImage(context.Background(), product.ID, "front.jpg", strings.NewReader("img"), nil, false)
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	if len(rows) != 1 || !rows[0].IsPrimary {
		t.Fatalf("first image should become primary: %+v", rows)
	}

	rows, err = svc.AddImage(context.Background(), product.ID, "side.jpg", strings.NewReader("img"), nil, false)
	if err != nil {
		t.Fatalf("AddImage second: %v", err)
	}
	primaries := 0
	for _, row := range rows {
		if row.IsPrimary {
			primaries++
		}
	}
	if len(rows) != 2 || primaries != 1 {
		t.Fatalf("expected 2 images with one primary, got %d/%d", len(rows), primaries)
	}
}

func TestProductAdminServiceAddImageDisplayOrder(t *testing.T) {
	product := &types.Product{ID: uuid.New(), Name: "Bangle", Slug: "bangle", IsActive: true}
	imageRepo := &fakeProductImageRepo{}
	svc := NewProductAdminService(
		nil, testLogger(t),
		&fakeProductRepo{rows: []*types.Product{product}},
		imageRepo,
		&fakeImageService{},
	)

	if _, err := svc.AddImage(context.Background(), product.ID, "a.jpg", strings.NewReader("img"), nil, false); err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	rows, err := svc.AddImage(context.Background(), product.ID, "b.jpg", strings.NewReader("img"), nil, false)
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	if rows[1].DisplayOrder != 1 {
		t.Fatalf("unset order should append, got %d", rows[1].DisplayOrder)
	}

	// An explicit zero is honored, not treated as unset.
	zero := 0
	rows, err = svc.AddImage(context.Background(), product.ID, "c.jpg", strings.NewReader("img"), &zero, false)
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	if len(rows) != 3 || rows[2].DisplayOrder != 0 {
		t.Fatalf("explicit zero order not stored: %+v", rows)
	}
}

func TestProductAdminServiceSetPrimaryImageChecksOwnership(t *testing.T) {
	product := &types.Product{ID: uuid.New(), Name: "Bangle", Slug: "bangle"}
	other := &types.ProductImage{ID: uuid.New(), ProductID: uuid.New(), ImageURL: "u"}
	svc := NewProductAdminService(
		nil, testLogger(t),
		&fakeProductRepo{rows: []*types.Product{product}},
		&fakeProductImageRepo{rows: []*types.ProductImage{other}},
		&fakeImageService{},
	)

	if _, err := svc.SetPrimaryImage(context.Background(), product.ID, other.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign image, got %v", err)
	}
}

func TestProductAdminServiceDeleteCleansImageBlobs(t *testing.T) {
	product := &types.Product{ID: uuid.New(), Name: "Bangle", Slug: "bangle"}
	img := &types.ProductImage{
		ID:        uuid.New(),
		ProductID: product.ID,
		ImageURL:  "https://storage.googleapis.com/product-images/a.jpg",
	}
	productRepo := &fakeProductRepo{rows: []*types.Product{product}}
	imageRepo := &fakeProductImageRepo{rows: []*types.ProductImage{img}}
	images := &fakeImageService{}
	svc := NewProductAdminService(nil, testLogger(t), productRepo, imageRepo, images)

	rows, err := svc.Delete(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("product row not deleted")
	}
	if len(images.deletedURLs) != 1 || images.deletedURLs[0] != img.ImageURL {
		t.Fatalf("image blob not cleaned up: %v", images.deletedURLs)
	}
}
