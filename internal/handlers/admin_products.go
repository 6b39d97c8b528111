package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/services"
	"github.com/zenavi/storefront-backend/internal/types"
)

type AdminProductHandler struct {
	log            *logger.Logger
	productService services.ProductAdminService
}

func NewAdminProductHandler(log *logger.Logger, productService services.ProductAdminService) *AdminProductHandler {
	return &AdminProductHandler{
		log:            log.With("handler", "AdminProductHandler"),
		productService: productService,
	}
}

type productRequest struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	SalePrice     *float64  `json:"sale_price"`
	MaterialType  string    `json:"material_type"`
	Karat         string    `json:"karat"`
	StockQuantity int       `json:"stock_quantity"`
	IsFeatured    bool      `json:"is_featured"`
	IsActive      *bool     `json:"is_active"`
}

// GET /api/admin/products
func (h *AdminProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"products": products})
}

// POST /api/admin/products
func (h *AdminProductHandler) Save(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	product := &types.Product{
		ID:            req.ID,
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   req.Description,
		Price:         req.Price,
		SalePrice:     req.SalePrice,
		MaterialType:  req.MaterialType,
		Karat:         req.Karat,
		StockQuantity: req.StockQuantity,
		IsFeatured:    req.IsFeatured,
		IsActive:      true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	products, err := h.productService.Save(c.Request.Context(), product)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"products": products})
}

// DELETE /api/admin/products/:id?confirm=true
func (h *AdminProductHandler) Delete(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	products, err := h.productService.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"products": products})
}

// GET /api/admin/products/:id/images
func (h *AdminProductHandler) ListImages(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	images, err := h.productService.ListImages(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"images": images})
}

// POST /api/admin/products/:id/images (multipart, "image" required)
func (h *AdminProductHandler) AddImage(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	fh := optionalFormFile(c, "image")
	if fh == nil {
		RespondError(c, http.StatusBadRequest, "invalid_file",
			fmt.Errorf("image file required"))
		return
	}
	file, err := fh.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_file",
			fmt.Errorf("failed to read image: %w", err))
		return
	}
	defer file.Close()

	images, err := h.productService.AddImage(
		c.Request.Context(),
		productID,
		fh.Filename,
		file,
		optionalFormInt(c, "display_order"),
		formBool(c, "is_primary", false),
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"images": images})
}

// POST /api/admin/products/:id/images/:imageID/primary
func (h *AdminProductHandler) SetPrimaryImage(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	imageID, ok := pathID(c, "imageID")
	if !ok {
		return
	}
	images, err := h.productService.SetPrimaryImage(c.Request.Context(), productID, imageID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"images": images})
}

// DELETE /api/admin/images/:id?confirm=true
func (h *AdminProductHandler) DeleteImage(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	imageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	images, err := h.productService.DeleteImage(c.Request.Context(), imageID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"images": images})
}
