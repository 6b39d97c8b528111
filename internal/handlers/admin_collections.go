package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/services"
	"github.com/zenavi/storefront-backend/internal/types"
)

type AdminCollectionHandler struct {
	log         *logger.Logger
	collService services.CollectionAdminService
}

func NewAdminCollectionHandler(log *logger.Logger, collService services.CollectionAdminService) *AdminCollectionHandler {
	return &AdminCollectionHandler{
		log:         log.With("handler", "AdminCollectionHandler"),
		collService: collService,
	}
}

// GET /api/admin/collections
func (h *AdminCollectionHandler) List(c *gin.Context) {
	collections, err := h.collService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"collections": collections})
}

// POST /api/admin/collections (multipart)
func (h *AdminCollectionHandler) Save(c *gin.Context) {
	collection := &types.Collection{
		ID:           formUUID(c, "id"),
		Name:         c.PostForm("name"),
		Slug:         c.PostForm("slug"),
		Description:  c.PostForm("description"),
		DisplayOrder: formInt(c, "display_order", 0),
		IsActive:     formBool(c, "is_active", true),
	}

	var file io.Reader
	filename := ""
	if fh := optionalFormFile(c, "image"); fh != nil {
		f, err := fh.Open()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_file",
				fmt.Errorf("failed to read image: %w", err))
			return
		}
		defer f.Close()
		file = f
		filename = fh.Filename
	}

	collections, err := h.collService.Save(c.Request.Context(), collection, filename, file)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"collections": collections})
}

// DELETE /api/admin/collections/:id?confirm=true
func (h *AdminCollectionHandler) Delete(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	collections, err := h.collService.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"collections": collections})
}
