package app

import (
	"gorm.io/gorm"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/repos"
)

type Repos struct {
	Product           repos.ProductRepo
	ProductImage      repos.ProductImageRepo
	Collection        repos.CollectionRepo
	Category          repos.CategoryRepo
	HeroSlide         repos.HeroSlideRepo
	MediaMention      repos.MediaMentionRepo
	Review            repos.ReviewRepo
	Testimonial       repos.TestimonialRepo
	ContactSubmission repos.ContactSubmissionRepo
	SiteSettings      repos.SiteSettingsRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Product:           repos.NewProductRepo(db, log),
		ProductImage:      repos.NewProductImageRepo(db, log),
		Collection:        repos.NewCollectionRepo(db, log),
		Category:          repos.NewCategoryRepo(db, log),
		HeroSlide:         repos.NewHeroSlideRepo(db, log),
		MediaMention:      repos.NewMediaMentionRepo(db, log),
		Review:            repos.NewReviewRepo(db, log),
		Testimonial:       repos.NewTestimonialRepo(db, log),
		ContactSubmission: repos.NewContactSubmissionRepo(db, log),
		SiteSettings:      repos.NewSiteSettingsRepo(db, log),
	}
}
