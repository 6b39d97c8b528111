package repos

import (
	"context"
	"testing"

	"github.com/zenavi/storefront-backend/internal/repos/testutil"
)

func TestProductImageRepoSetPrimary(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewProductImageRepo(db, testutil.Logger(t))

	p := testutil.SeedProduct(t, ctx, tx, "Gold Bangle", 800)
	first := testutil.SeedProductImage(t, ctx, tx, p.ID, 0, true)
	second := testutil.SeedProductImage(t, ctx, tx, p.ID, 1, false)

	if err := repo.SetPrimary(ctx, tx, p.ID, second.ID); err != nil {
		t.Fatalf("SetPrimary: %v", err)
	}

	rows, err := repo.ListByProductID(ctx, tx, p.ID)
	if err != nil {
		t.Fatalf("ListByProductID: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 images, got %d", len(rows))
	}
	primaries := 0
	for _, row := range rows {
		if row.IsPrimary {
			primaries++
			if row.ID != second.ID {
				t.Fatalf("wrong image primary: %s", row.ID)
			}
		}
	}
	if primaries != 1 {
		t.Fatalf("expected exactly one primary, got %d", primaries)
	}
	if rows[0].ID != first.ID {
		t.Fatalf("expected display_order ASC, got %s first", rows[0].ID)
	}

	if err := repo.DeleteByID(ctx, tx, first.ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if rows, err := repo.ListByProductID(ctx, tx, p.ID); err != nil || len(rows) != 1 {
		t.Fatalf("after delete: err=%v len=%d", err, len(rows))
	}
}
