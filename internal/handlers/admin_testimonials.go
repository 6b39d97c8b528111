package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/services"
	"github.com/zenavi/storefront-backend/internal/types"
)

type AdminTestimonialHandler struct {
	log          *logger.Logger
	testiService services.TestimonialAdminService
}

func NewAdminTestimonialHandler(log *logger.Logger, testiService services.TestimonialAdminService) *AdminTestimonialHandler {
	return &AdminTestimonialHandler{
		log:          log.With("handler", "AdminTestimonialHandler"),
		testiService: testiService,
	}
}

type testimonialRequest struct {
	ID              uuid.UUID `json:"id"`
	CustomerName    string    `json:"customer_name"`
	CustomerTitle   string    `json:"customer_title"`
	Rating          int       `json:"rating"`
	TestimonialText string    `json:"testimonial_text"`
	IsFeatured      bool      `json:"is_featured"`
	IsPublished     *bool     `json:"is_published"`
	DisplayOrder    int       `json:"display_order"`
}

// GET /api/admin/testimonials
func (h *AdminTestimonialHandler) List(c *gin.Context) {
	testimonials, err := h.testiService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"testimonials": testimonials})
}

// POST /api/admin/testimonials
func (h *AdminTestimonialHandler) Save(c *gin.Context) {
	var req testimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	testimonial := &types.Testimonial{
		ID:              req.ID,
		CustomerName:    req.CustomerName,
		CustomerTitle:   req.CustomerTitle,
		Rating:          req.Rating,
		TestimonialText: req.TestimonialText,
		IsFeatured:      req.IsFeatured,
		IsPublished:     true,
		DisplayOrder:    req.DisplayOrder,
	}
	if req.IsPublished != nil {
		testimonial.IsPublished = *req.IsPublished
	}

	testimonials, err := h.testiService.Save(c.Request.Context(), testimonial)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"testimonials": testimonials})
}

// DELETE /api/admin/testimonials/:id?confirm=true
func (h *AdminTestimonialHandler) Delete(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	testimonials, err := h.testiService.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"testimonials": testimonials})
}
