package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/services"
	"github.com/zenavi/storefront-backend/internal/types"
)

type AdminReviewHandler struct {
	log           *logger.Logger
	reviewService services.ReviewAdminService
}

func NewAdminReviewHandler(log *logger.Logger, reviewService services.ReviewAdminService) *AdminReviewHandler {
	return &AdminReviewHandler{
		log:           log.With("handler", "AdminReviewHandler"),
		reviewService: reviewService,
	}
}

type reviewRequest struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	ReviewText   string    `json:"review_text"`
	IsVerified   bool      `json:"is_verified"`
	IsPublished  bool      `json:"is_published"`
}

// GET /api/admin/reviews
func (h *AdminReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviewService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"reviews": reviews})
}

// POST /api/admin/reviews
func (h *AdminReviewHandler) Save(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	review := &types.Review{
		ID:           req.ID,
		ProductID:    req.ProductID,
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		ReviewText:   req.ReviewText,
		IsVerified:   req.IsVerified,
		IsPublished:  req.IsPublished,
	}

	reviews, err := h.reviewService.Save(c.Request.Context(), review)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"reviews": reviews})
}

// DELETE /api/admin/reviews/:id?confirm=true
func (h *AdminReviewHandler) Delete(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	reviews, err := h.reviewService.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"reviews": reviews})
}
