package repos

import (
	"context"
	"testing"

	"github.com/zenavi/storefront-backend/internal/repos/testutil"
	"github.com/zenavi/storefront-backend/internal/types"
)

func TestSiteSettingsRepoUpsert(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewSiteSettingsRepo(db, testutil.Logger(t))

	if current, err := repo.Get(ctx, tx); err != nil || current != nil {
		t.Fatalf("Get on empty table: err=%v current=%v", err, current)
	}

	created, err := repo.Upsert(ctx, tx, &types.SiteSettings{
		BrandName:    "Zenavi",
		HeroHeadline: "Timeless Gold",
	})
	if err != nil {
		t.Fatalf("Upsert insert: %v", err)
	}

	updated, err := repo.Upsert(ctx, tx, &types.SiteSettings{
		BrandName:    "Zenavi Jewels",
		HeroHeadline: "Timeless Gold",
		PhoneNumber:  "+91 98000 00000",
	})
	if err != nil {
		t.Fatalf("Upsert update: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("upsert created a second row: %s != %s", updated.ID, created.ID)
	}
	if updated.BrandName != "Zenavi Jewels" || updated.PhoneNumber != "+91 98000 00000" {
		t.Fatalf("fields not updated: %+v", updated)
	}

	var count int64
	if err := tx.WithContext(ctx).Model(&types.SiteSettings{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected singleton row, got %d", count)
	}
}
