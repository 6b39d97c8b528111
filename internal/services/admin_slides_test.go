package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func TestSlideAdminServiceSaveUploadsBeforeRowWrite(t *testing.T) {
	repo := &fakeHeroSlideRepo{}
	images := &fakeImageService{}
	svc := NewSlideAdminService(nil, testLogger(t), repo, images)

	slide := &types.HeroSlide{Title: "Festive Gold"}
	rows, err := svc.Save(context.Background(), slide, "banner.jpg", strings.NewReader("img"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected reloaded list of 1, got %d", len(rows))
	}
	if len(images.uploads) != 1 {
		t.Fatalf("expected one upload, got %d", len(images.uploads))
	}
	if rows[0].ImageURL != images.uploads[0] {
		t.Fatalf("row does not point at uploaded blob: %q", rows[0].ImageURL)
	}
}

func TestSlideAdminServiceSaveAbortsOnUploadFailure(t *testing.T) {
	repo := &fakeHeroSlideRepo{}
	images := &fakeImageService{uploadErr: errors.New("bucket unavailable")}
	svc := NewSlideAdminService(nil, testLogger(t), repo, images)

	_, err := svc.Save(context.Background(), &types.HeroSlide{Title: "Festive Gold"}, "banner.jpg", strings.NewReader("img"))
	if err == nil {
		t.Fatalf("expected upload failure to abort save")
	}
	if len(repo.rows) != 0 {
		t.Fatalf("row written despite failed upload")
	}
}

func TestSlideAdminServiceSaveRequiresTitleAndImage(t *testing.T) {
	svc := NewSlideAdminService(nil, testLogger(t), &fakeHeroSlideRepo{}, &fakeImageService{})

	if _, err := svc.Save(context.Background(), &types.HeroSlide{}, "", nil); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for missing title, got %v", err)
	}
	if _, err := svc.Save(context.Background(), &types.HeroSlide{Title: "No Image"}, "", nil); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for missing image, got %v", err)
	}
}

func TestSlideAdminServiceSaveReplacementDeletesOldBlob(t *testing.T) {
	existing := &types.HeroSlide{
		ID:       uuid.New(),
		Title:    "Old",
		ImageURL: "https://storage.googleapis.com/hero-slides/old.jpg",
	}
	repo := &fakeHeroSlideRepo{rows: []*types.HeroSlide{existing}}
	images := &fakeImageService{}
	svc := NewSlideAdminService(nil, testLogger(t), repo, images)

	updated := &types.HeroSlide{ID: existing.ID, Title: "New"}
	if _, err := svc.Save(context.Background(), updated, "new.jpg", strings.NewReader("img")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(images.deletedURLs) != 1 || images.deletedURLs[0] != "https://storage.googleapis.com/hero-slides/old.jpg" {
		t.Fatalf("old blob not cleaned up: %v", images.deletedURLs)
	}
}

func TestSlideAdminServiceDeleteRowSurvivesBlobFailure(t *testing.T) {
	existing := &types.HeroSlide{
		ID:       uuid.New(),
		Title:    "Doomed",
		ImageURL: "https://storage.googleapis.com/hero-slides/doomed.jpg",
	}
	repo := &fakeHeroSlideRepo{rows: []*types.HeroSlide{existing}}
	images := &fakeImageService{deleteErr: errors.New("blob gone already")}
	svc := NewSlideAdminService(nil, testLogger(t), repo, images)

	rows, err := svc.Delete(context.Background(), existing.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("row not deleted when blob cleanup failed")
	}
}

func TestSlideAdminServiceDeleteUnknownID(t *testing.T) {
	svc := NewSlideAdminService(nil, testLogger(t), &fakeHeroSlideRepo{}, &fakeImageService{})
	if _, err := svc.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
