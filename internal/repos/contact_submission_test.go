package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/zenavi/storefront-backend/internal/repos/testutil"
	"github.com/zenavi/storefront-backend/internal/types"
)

func TestContactSubmissionRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewContactSubmissionRepo(db, testutil.Logger(t))

	s := &types.ContactSubmission{
		ID:      uuid.New(),
		Name:    "Asha",
		Email:   "asha@example.com",
		Message: "Do you ship internationally?",
	}
	if _, err := repo.Create(ctx, tx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := repo.List(ctx, tx)
	if err != nil || len(rows) != 1 {
		t.Fatalf("List: err=%v len=%d", err, len(rows))
	}
	if rows[0].IsRead {
		t.Fatalf("new submission should start unread")
	}

	if err := repo.MarkRead(ctx, tx, s.ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	rows, err = repo.List(ctx, tx)
	if err != nil || len(rows) != 1 {
		t.Fatalf("List after MarkRead: err=%v len=%d", err, len(rows))
	}
	if !rows[0].IsRead {
		t.Fatalf("submission not marked read")
	}

	if err := repo.DeleteByID(ctx, tx, s.ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if rows, err := repo.List(ctx, tx); err != nil || len(rows) != 0 {
		t.Fatalf("after DeleteByID List: err=%v len=%d", err, len(rows))
	}
}
