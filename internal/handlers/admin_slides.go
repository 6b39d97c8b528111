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

type AdminSlideHandler struct {
	log          *logger.Logger
	slideService services.SlideAdminService
}

func NewAdminSlideHandler(log *logger.Logger, slideService services.SlideAdminService) *AdminSlideHandler {
	return &AdminSlideHandler{
		log:          log.With("handler", "AdminSlideHandler"),
		slideService: slideService,
	}
}

// GET /api/admin/slides
func (h *AdminSlideHandler) List(c *gin.Context) {
	slides, err := h.slideService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"slides": slides})
}

// POST /api/admin/slides (multipart; "id" present = update, "image" optional on update)
func (h *AdminSlideHandler) Save(c *gin.Context) {
	slide := &types.HeroSlide{
		ID:           formUUID(c, "id"),
		Title:        c.PostForm("title"),
		Subtitle:     c.PostForm("subtitle"),
		ButtonText:   c.PostForm("button_text"),
		ButtonLink:   c.PostForm("button_link"),
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

	slides, err := h.slideService.Save(c.Request.Context(), slide, filename, file)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"slides": slides})
}

// DELETE /api/admin/slides/:id?confirm=true
func (h *AdminSlideHandler) Delete(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	slides, err := h.slideService.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"slides": slides})
}
