package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/repos"
	"github.com/zenavi/storefront-backend/internal/types"
)

// ContactAdminService is read-mostly: submissions come in through the
// public form, the admin lists them, flips the read flag and deletes.
type ContactAdminService interface {
	List(ctx context.Context) ([]*types.ContactSubmission, error)
	MarkRead(ctx context.Context, id uuid.UUID) ([]*types.ContactSubmission, error)
	Delete(ctx context.Context, id uuid.UUID) ([]*types.ContactSubmission, error)
}

type contactAdminService struct {
	db           *gorm.DB
	log          *logger.Logger
	contactRepo  repos.ContactSubmissionRepo
	imageService ImageService
}

func NewContactAdminService(db *gorm.DB, log *logger.Logger, contactRepo repos.ContactSubmissionRepo, imageService ImageService) ContactAdminService {
	return &contactAdminService{
		db:           db,
		log:          log.With("service", "ContactAdminService"),
		contactRepo:  contactRepo,
		imageService: imageService,
	}
}

func (cas *contactAdminService) List(ctx context.Context) ([]*types.ContactSubmission, error) {
	rows, err := cas.contactRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact submissions: %w", err)
	}
	return rows, nil
}

func (cas *contactAdminService) MarkRead(ctx context.Context, id uuid.UUID) ([]*types.ContactSubmission, error) {
	if err := cas.contactRepo.MarkRead(ctx, nil, id); err != nil {
		return nil, fmt.Errorf("failed to mark submission read: %w", err)
	}
	return cas.List(ctx)
}

func (cas *contactAdminService) Delete(ctx context.Context, id uuid.UUID) ([]*types.ContactSubmission, error) {
	rows, err := cas.contactRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact submissions: %w", err)
	}
	for _, row := range rows {
		if row.ID == id && row.FileURL != "" {
			if err := cas.imageService.DeleteByURL(ctx, row.FileURL); err != nil {
				cas.log.Warn("failed to delete submission attachment (ignored)", "url", row.FileURL, "error", err)
			}
		}
	}
	if err := cas.contactRepo.DeleteByID(ctx, nil, id); err != nil {
		return nil, fmt.Errorf("failed to delete contact submission: %w", err)
	}
	return cas.List(ctx)
}
