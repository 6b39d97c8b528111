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

type AdminMediaHandler struct {
	log            *logger.Logger
	mentionService services.MediaMentionAdminService
}

func NewAdminMediaHandler(log *logger.Logger, mentionService services.MediaMentionAdminService) *AdminMediaHandler {
	return &AdminMediaHandler{
		log:            log.With("handler", "AdminMediaHandler"),
		mentionService: mentionService,
	}
}

// GET /api/admin/media-mentions
func (h *AdminMediaHandler) List(c *gin.Context) {
	mentions, err := h.mentionService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"mentions": mentions})
}

// POST /api/admin/media-mentions (multipart, "logo" optional)
func (h *AdminMediaHandler) Save(c *gin.Context) {
	mention := &types.MediaMention{
		ID:              formUUID(c, "id"),
		PublicationName: c.PostForm("publication_name"),
		ArticleURL:      c.PostForm("article_url"),
		DisplayOrder:    formInt(c, "display_order", 0),
		IsActive:        formBool(c, "is_active", true),
	}

	var file io.Reader
	filename := ""
	if fh := optionalFormFile(c, "logo"); fh != nil {
		f, err := fh.Open()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_file",
				fmt.Errorf("failed to read logo: %w", err))
			return
		}
		defer f.Close()
		file = f
		filename = fh.Filename
	}

	mentions, err := h.mentionService.Save(c.Request.Context(), mention, filename, file)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"mentions": mentions})
}

// DELETE /api/admin/media-mentions/:id?confirm=true
func (h *AdminMediaHandler) Delete(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	mentions, err := h.mentionService.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"mentions": mentions})
}
