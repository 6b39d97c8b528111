package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/zenavi/storefront-backend/internal/handlers"
)

type RouterConfig struct {
	AllowedOrigins []string

	ShopHandler *handlers.ShopHandler
	HomeHandler *handlers.HomeHandler
	SiteHandler *handlers.SiteHandler

	AdminSlideHandler       *handlers.AdminSlideHandler
	AdminCollectionHandler  *handlers.AdminCollectionHandler
	AdminCategoryHandler    *handlers.AdminCategoryHandler
	AdminProductHandler     *handlers.AdminProductHandler
	AdminMediaHandler       *handlers.AdminMediaHandler
	AdminReviewHandler      *handlers.AdminReviewHandler
	AdminTestimonialHandler *handlers.AdminTestimonialHandler
	AdminContactHandler     *handlers.AdminContactHandler
	AdminSettingsHandler    *handlers.AdminSettingsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		shop := api.Group("/shop")
		shop.GET("/products", cfg.ShopHandler.ListProducts)
		shop.GET("/categories", cfg.ShopHandler.ListCategories)

		home := api.Group("/home")
		home.GET("/slides", cfg.HomeHandler.Slides)
		home.GET("/collections", cfg.HomeHandler.Collections)
		home.GET("/new-arrivals", cfg.HomeHandler.NewArrivals)
		home.GET("/media-mentions", cfg.HomeHandler.MediaMentions)
		home.GET("/testimonials", cfg.HomeHandler.Testimonials)

		api.GET("/collections", cfg.SiteHandler.Collections)
		api.GET("/settings", cfg.SiteHandler.Settings)
		api.POST("/contact", cfg.SiteHandler.SubmitContact)
	}

	admin := api.Group("/admin")
	{
		admin.GET("/settings", cfg.AdminSettingsHandler.Get)
		admin.PUT("/settings", cfg.AdminSettingsHandler.Update)

		admin.GET("/slides", cfg.AdminSlideHandler.List)
		admin.POST("/slides", cfg.AdminSlideHandler.Save)
		admin.DELETE("/slides/:id", cfg.AdminSlideHandler.Delete)

		admin.GET("/collections", cfg.AdminCollectionHandler.List)
		admin.POST("/collections", cfg.AdminCollectionHandler.Save)
		admin.DELETE("/collections/:id", cfg.AdminCollectionHandler.Delete)

		admin.GET("/categories", cfg.AdminCategoryHandler.List)
		admin.POST("/categories", cfg.AdminCategoryHandler.Save)
		admin.DELETE("/categories/:id", cfg.AdminCategoryHandler.Delete)

		admin.GET("/products", cfg.AdminProductHandler.List)
		admin.POST("/products", cfg.AdminProductHandler.Save)
		admin.DELETE("/products/:id", cfg.AdminProductHandler.Delete)
		admin.GET("/products/:id/images", cfg.AdminProductHandler.ListImages)
		admin.POST("/products/:id/images", cfg.AdminProductHandler.AddImage)
		admin.POST("/products/:id/images/:imageID/primary", cfg.AdminProductHandler.SetPrimaryImage)
		admin.DELETE("/images/:id", cfg.AdminProductHandler.DeleteImage)

		admin.GET("/media-mentions", cfg.AdminMediaHandler.List)
		admin.POST("/media-mentions", cfg.AdminMediaHandler.Save)
		admin.DELETE("/media-mentions/:id", cfg.AdminMediaHandler.Delete)

		admin.GET("/reviews", cfg.AdminReviewHandler.List)
		admin.POST("/reviews", cfg.AdminReviewHandler.Save)
		admin.DELETE("/reviews/:id", cfg.AdminReviewHandler.Delete)

		admin.GET("/testimonials", cfg.AdminTestimonialHandler.List)
		admin.POST("/testimonials", cfg.AdminTestimonialHandler.Save)
		admin.DELETE("/testimonials/:id", cfg.AdminTestimonialHandler.Delete)

		admin.GET("/contact-submissions", cfg.AdminContactHandler.List)
		admin.POST("/contact-submissions/:id/read", cfg.AdminContactHandler.MarkRead)
		admin.DELETE("/contact-submissions/:id", cfg.AdminContactHandler.Delete)
	}

	return router
}

// ParseOrigins splits a comma separated origin list from the
// environment, dropping empty entries.
func ParseOrigins(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
