package app

import (
	"github.com/zenavi/storefront-backend/internal/handlers"
	"github.com/zenavi/storefront-backend/internal/logger"
)

type Handlers struct {
	Shop *handlers.ShopHandler
	Home *handlers.HomeHandler
	Site *handlers.SiteHandler

	AdminSlide       *handlers.AdminSlideHandler
	AdminCollection  *handlers.AdminCollectionHandler
	AdminCategory    *handlers.AdminCategoryHandler
	AdminProduct     *handlers.AdminProductHandler
	AdminMedia       *handlers.AdminMediaHandler
	AdminReview      *handlers.AdminReviewHandler
	AdminTestimonial *handlers.AdminTestimonialHandler
	AdminContact     *handlers.AdminContactHandler
	AdminSettings    *handlers.AdminSettingsHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Shop: handlers.NewShopHandler(log, serviceset.Catalog, serviceset.Content),
		Home: handlers.NewHomeHandler(log, serviceset.Content, serviceset.Catalog),
		Site: handlers.NewSiteHandler(log, serviceset.Content, serviceset.Settings),

		AdminSlide:       handlers.NewAdminSlideHandler(log, serviceset.SlideAdmin),
		AdminCollection:  handlers.NewAdminCollectionHandler(log, serviceset.CollectionAdmin),
		AdminCategory:    handlers.NewAdminCategoryHandler(log, serviceset.CategoryAdmin),
		AdminProduct:     handlers.NewAdminProductHandler(log, serviceset.ProductAdmin),
		AdminMedia:       handlers.NewAdminMediaHandler(log, serviceset.MediaMentionAdmin),
		AdminReview:      handlers.NewAdminReviewHandler(log, serviceset.ReviewAdmin),
		AdminTestimonial: handlers.NewAdminTestimonialHandler(log, serviceset.TestimonialAdmin),
		AdminContact:     handlers.NewAdminContactHandler(log, serviceset.ContactAdmin),
		AdminSettings:    handlers.NewAdminSettingsHandler(log, serviceset.Settings),
	}
}
