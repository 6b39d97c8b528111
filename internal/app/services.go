package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/platform/gcp"
	"github.com/zenavi/storefront-backend/internal/services"
)

type Services struct {
	Image    services.ImageService
	Catalog  services.CatalogService
	Content  services.ContentService
	Settings services.SettingsService

	SlideAdmin        services.SlideAdminService
	CollectionAdmin   services.CollectionAdminService
	CategoryAdmin     services.CategoryAdminService
	ProductAdmin      services.ProductAdminService
	MediaMentionAdmin services.MediaMentionAdminService
	ReviewAdmin       services.ReviewAdminService
	TestimonialAdmin  services.TestimonialAdminService
	ContactAdmin      services.ContactAdminService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) (Services, error) {
	log.Info("Wiring services...")

	bucketService, err := gcp.NewBucketService(log)
	if err != nil {
		return Services{}, fmt.Errorf("init bucket service: %w", err)
	}
	imageService := services.NewImageService(log, bucketService)

	return Services{
		Image:    imageService,
		Catalog:  services.NewCatalogService(db, log, reposet.Product),
		Content: services.NewContentService(
			db, log,
			reposet.HeroSlide,
			reposet.Collection,
			reposet.Category,
			reposet.MediaMention,
			reposet.Testimonial,
			reposet.ContactSubmission,
			imageService,
		),
		Settings: services.NewSettingsService(db, log, reposet.SiteSettings),

		SlideAdmin:        services.NewSlideAdminService(db, log, reposet.HeroSlide, imageService),
		CollectionAdmin:   services.NewCollectionAdminService(db, log, reposet.Collection, imageService),
		CategoryAdmin:     services.NewCategoryAdminService(db, log, reposet.Category),
		ProductAdmin:      services.NewProductAdminService(db, log, reposet.Product, reposet.ProductImage, imageService),
		MediaMentionAdmin: services.NewMediaMentionAdminService(db, log, reposet.MediaMention, imageService),
		ReviewAdmin:       services.NewReviewAdminService(db, log, reposet.Review, reposet.Product),
		TestimonialAdmin:  services.NewTestimonialAdminService(db, log, reposet.Testimonial),
		ContactAdmin:      services.NewContactAdminService(db, log, reposet.ContactSubmission, imageService),
	}, nil
}
