package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/services"
	"github.com/zenavi/storefront-backend/internal/types"
)

type SiteHandler struct {
	log             *logger.Logger
	contentService  services.ContentService
	settingsService services.SettingsService
}

func NewSiteHandler(log *logger.Logger, contentService services.ContentService, settingsService services.SettingsService) *SiteHandler {
	return &SiteHandler{
		log:             log.With("handler", "SiteHandler"),
		contentService:  contentService,
		settingsService: settingsService,
	}
}

// GET /api/collections
func (sh *SiteHandler) Collections(c *gin.Context) {
	collections, err := sh.contentService.AllCollections(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"collections": collections})
}

// GET /api/settings
func (sh *SiteHandler) Settings(c *gin.Context) {
	settings, err := sh.settingsService.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"settings": settings})
}

// POST /api/contact (multipart, optional "file" attachment)
func (sh *SiteHandler) SubmitContact(c *gin.Context) {
	submission := &types.ContactSubmission{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}

	filename := ""
	fh := optionalFormFile(c, "file")
	if fh != nil {
		file, err := fh.Open()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_file",
				fmt.Errorf("failed to read attachment: %w", err))
			return
		}
		defer file.Close()
		filename = fh.Filename
		created, err := sh.contentService.SubmitContact(c.Request.Context(), submission, filename, file)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		RespondOK(c, gin.H{"submission": created})
		return
	}

	created, err := sh.contentService.SubmitContact(c.Request.Context(), submission, "", nil)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"submission": created})
}
