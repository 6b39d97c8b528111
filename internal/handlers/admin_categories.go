package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/services"
	"github.com/zenavi/storefront-backend/internal/types"
)

type AdminCategoryHandler struct {
	log             *logger.Logger
	categoryService services.CategoryAdminService
}

func NewAdminCategoryHandler(log *logger.Logger, categoryService services.CategoryAdminService) *AdminCategoryHandler {
	return &AdminCategoryHandler{
		log:             log.With("handler", "AdminCategoryHandler"),
		categoryService: categoryService,
	}
}

type categoryRequest struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	ParentCategory string    `json:"parent_category"`
	CategoryType   string    `json:"category_type"`
	MaterialType   string    `json:"material_type"`
	DisplayOrder   int       `json:"display_order"`
	IsActive       *bool     `json:"is_active"`
}

// GET /api/admin/categories
func (h *AdminCategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"categories": categories})
}

// POST /api/admin/categories
func (h *AdminCategoryHandler) Save(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	category := &types.Category{
		ID:             req.ID,
		Name:           req.Name,
		Slug:           req.Slug,
		ParentCategory: req.ParentCategory,
		CategoryType:   req.CategoryType,
		MaterialType:   req.MaterialType,
		DisplayOrder:   req.DisplayOrder,
		IsActive:       true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	categories, err := h.categoryService.Save(c.Request.Context(), category)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"categories": categories})
}

// DELETE /api/admin/categories/:id?confirm=true
func (h *AdminCategoryHandler) Delete(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	categories, err := h.categoryService.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"categories": categories})
}
