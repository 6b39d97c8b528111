package app

import (
	"github.com/gin-gonic/gin"

	"github.com/zenavi/storefront-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,

		ShopHandler: handlerset.Shop,
		HomeHandler: handlerset.Home,
		SiteHandler: handlerset.Site,

		AdminSlideHandler:       handlerset.AdminSlide,
		AdminCollectionHandler:  handlerset.AdminCollection,
		AdminCategoryHandler:    handlerset.AdminCategory,
		AdminProductHandler:     handlerset.AdminProduct,
		AdminMediaHandler:       handlerset.AdminMedia,
		AdminReviewHandler:      handlerset.AdminReview,
		AdminTestimonialHandler: handlerset.AdminTestimonial,
		AdminContactHandler:     handlerset.AdminContact,
		AdminSettingsHandler:    handlerset.AdminSettings,
	})
}
