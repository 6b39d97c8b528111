package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/platform/gcp"
	"github.com/zenavi/storefront-backend/internal/repos"
	"github.com/zenavi/storefront-backend/internal/types"
)

const homeCollectionLimit = 3

// ContentService serves the public storefront reads outside the shop
// listing: home page sections, collection and category lists, and the
// contact form intake.
type ContentService interface {
	ActiveSlides(ctx context.Context) ([]*types.HeroSlide, error)
	FeaturedCollections(ctx context.Context) ([]*types.Collection, error)
	AllCollections(ctx context.Context) ([]*types.Collection, error)
	ActiveMediaMentions(ctx context.Context) ([]*types.MediaMention, error)
	FeaturedTestimonials(ctx context.Context) ([]*types.Testimonial, error)
	CategoriesByType(ctx context.Context, categoryType string) ([]*types.Category, error)
	SubmitContact(ctx context.Context, submission *types.ContactSubmission, filename string, file io.Reader) (*types.ContactSubmission, error)
}

type contentService struct {
	db           *gorm.DB
	log          *logger.Logger
	slideRepo    repos.HeroSlideRepo
	collRepo     repos.CollectionRepo
	categoryRepo repos.CategoryRepo
	mentionRepo  repos.MediaMentionRepo
	testiRepo    repos.TestimonialRepo
	contactRepo  repos.ContactSubmissionRepo
	imageService ImageService
}

func NewContentService(
	db *gorm.DB,
	log *logger.Logger,
	slideRepo repos.HeroSlideRepo,
	collRepo repos.CollectionRepo,
	categoryRepo repos.CategoryRepo,
	mentionRepo repos.MediaMentionRepo,
	testiRepo repos.TestimonialRepo,
	contactRepo repos.ContactSubmissionRepo,
	imageService ImageService,
) ContentService {
	return &contentService{
		db:           db,
		log:          log.With("service", "ContentService"),
		slideRepo:    slideRepo,
		collRepo:     collRepo,
		categoryRepo: categoryRepo,
		mentionRepo:  mentionRepo,
		testiRepo:    testiRepo,
		contactRepo:  contactRepo,
		imageService: imageService,
	}
}

func (cs *contentService) ActiveSlides(ctx context.Context) ([]*types.HeroSlide, error) {
	rows, err := cs.slideRepo.ListActive(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load hero slides: %w", err)
	}
	return rows, nil
}

func (cs *contentService) FeaturedCollections(ctx context.Context) ([]*types.Collection, error) {
	rows, err := cs.collRepo.ListActive(ctx, nil, homeCollectionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load collections: %w", err)
	}
	return rows, nil
}

func (cs *contentService) AllCollections(ctx context.Context) ([]*types.Collection, error) {
	rows, err := cs.collRepo.ListActive(ctx, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load collections: %w", err)
	}
	return rows, nil
}

func (cs *contentService) ActiveMediaMentions(ctx context.Context) ([]*types.MediaMention, error) {
	rows, err := cs.mentionRepo.ListActive(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load media mentions: %w", err)
	}
	return rows, nil
}

func (cs *contentService) FeaturedTestimonials(ctx context.Context) ([]*types.Testimonial, error) {
	rows, err := cs.testiRepo.ListFeaturedPublished(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load testimonials: %w", err)
	}
	return rows, nil
}

func (cs *contentService) CategoriesByType(ctx context.Context, categoryType string) ([]*types.Category, error) {
	if categoryType == "" {
		categoryType = types.CategoryTypeType
	}
	rows, err := cs.categoryRepo.ListActiveByType(ctx, nil, categoryType)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return rows, nil
}

// SubmitContact stores a contact form submission. An attached file is
// uploaded first; a failed upload aborts the whole submission.
func (cs *contentService) SubmitContact(ctx context.Context, submission *types.ContactSubmission, filename string, file io.Reader) (*types.ContactSubmission, error) {
	if strings.TrimSpace(submission.Name) == "" {
		return nil, fmt.Errorf("%w: name required", ErrInvalid)
	}
	if strings.TrimSpace(submission.Email) == "" {
		return nil, fmt.Errorf("%w: email required", ErrInvalid)
	}
	if strings.TrimSpace(submission.Message) == "" {
		return nil, fmt.Errorf("%w: message required", ErrInvalid)
	}
	if file != nil {
		url, err := cs.imageService.Upload(ctx, gcp.BucketCategoryContactFiles, filename, file)
		if err != nil {
			return nil, err
		}
		submission.FileURL = url
	}
	created, err := cs.contactRepo.Create(ctx, nil, submission)
	if err != nil {
		return nil, fmt.Errorf("failed to store contact submission: %w", err)
	}
	return created, nil
}
