package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/zenavi/storefront-backend/internal/repos/testutil"
	"github.com/zenavi/storefront-backend/internal/types"
)

func TestProductRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewProductRepo(db, testutil.Logger(t))

	p := &types.Product{
		ID:           uuid.New(),
		Name:         "Heritage Ring",
		Slug:         "heritage-ring-" + uuid.NewString()[:8],
		Price:        1200,
		MaterialType: "gold",
		Karat:        "22K",
		IsActive:     true,
	}
	if _, err := repo.Create(ctx, tx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{p.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}

	p.Name = "Heritage Ring II"
	p.SalePrice = testutil.PtrFloat64(950)
	if _, err := repo.Update(ctx, tx, p); err != nil {
		t.Fatalf("Update: %v", err)
	}
	rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{p.ID})
	if err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs after update: err=%v len=%d", err, len(rows))
	}
	if rows[0].Name != "Heritage Ring II" {
		t.Fatalf("name not updated: %q", rows[0].Name)
	}
	if rows[0].SalePrice == nil || *rows[0].SalePrice != 950 {
		t.Fatalf("sale price not updated: %v", rows[0].SalePrice)
	}

	if err := repo.DeleteByID(ctx, tx, p.ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{p.ID}); err != nil || len(rows) != 0 {
		t.Fatalf("after DeleteByID GetByIDs: err=%v len=%d", err, len(rows))
	}
}

func TestProductRepoListActiveWithPrimaryImage(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewProductRepo(db, testutil.Logger(t))

	active := testutil.SeedProduct(t, ctx, tx, "Active Pendant", 400)
	testutil.SeedProductImage(t, ctx, tx, active.ID, 1, false)
	primary := testutil.SeedProductImage(t, ctx, tx, active.ID, 0, true)

	inactive := testutil.SeedProduct(t, ctx, tx, "Retired Pendant", 300)
	if err := tx.WithContext(ctx).Model(inactive).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	rows, err := repo.ListActiveWithPrimaryImage(ctx, tx, 0)
	if err != nil {
		t.Fatalf("ListActiveWithPrimaryImage: %v", err)
	}
	var found *types.Product
	for _, row := range rows {
		if row.ID == inactive.ID {
			t.Fatalf("inactive product returned")
		}
		if row.ID == active.ID {
			found = row
		}
	}
	if found == nil {
		t.Fatalf("active product missing from list")
	}
	if len(found.Images) != 1 || found.Images[0].ID != primary.ID {
		t.Fatalf("expected only the primary image preloaded, got %d", len(found.Images))
	}
}
