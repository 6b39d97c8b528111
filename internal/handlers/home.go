package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/services"
)

const newArrivalCount = 6

type HomeHandler struct {
	log            *logger.Logger
	contentService services.ContentService
	catalogService services.CatalogService
}

func NewHomeHandler(log *logger.Logger, contentService services.ContentService, catalogService services.CatalogService) *HomeHandler {
	return &HomeHandler{
		log:            log.With("handler", "HomeHandler"),
		contentService: contentService,
		catalogService: catalogService,
	}
}

// GET /api/home/slides
func (hh *HomeHandler) Slides(c *gin.Context) {
	slides, err := hh.contentService.ActiveSlides(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"slides": slides})
}

// GET /api/home/collections
func (hh *HomeHandler) Collections(c *gin.Context) {
	collections, err := hh.contentService.FeaturedCollections(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"collections": collections})
}

// GET /api/home/new-arrivals
func (hh *HomeHandler) NewArrivals(c *gin.Context) {
	products, err := hh.catalogService.NewArrivals(c.Request.Context(), newArrivalCount)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"products": products})
}

// GET /api/home/media-mentions
func (hh *HomeHandler) MediaMentions(c *gin.Context) {
	mentions, err := hh.contentService.ActiveMediaMentions(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"mentions": mentions})
}

// GET /api/home/testimonials
func (hh *HomeHandler) Testimonials(c *gin.Context) {
	testimonials, err := hh.contentService.FeaturedTestimonials(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"testimonials": testimonials})
}
