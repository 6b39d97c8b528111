package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/services"
	"github.com/zenavi/storefront-backend/internal/types"
)

type AdminSettingsHandler struct {
	log             *logger.Logger
	settingsService services.SettingsService
}

func NewAdminSettingsHandler(log *logger.Logger, settingsService services.SettingsService) *AdminSettingsHandler {
	return &AdminSettingsHandler{
		log:             log.With("handler", "AdminSettingsHandler"),
		settingsService: settingsService,
	}
}

type settingsRequest struct {
	BrandName       string `json:"brand_name"`
	HeroHeadline    string `json:"hero_headline"`
	HeroSubheadline string `json:"hero_subheadline"`
	AboutHeadline   string `json:"about_headline"`
	AboutContent    string `json:"about_content"`
	FounderNote     string `json:"founder_note"`
	PhoneNumber     string `json:"phone_number"`
	EmailAddress    string `json:"email_address"`
	ShowroomAddress string `json:"showroom_address"`
	OperatingHours  string `json:"operating_hours"`
	InstagramURL    string `json:"instagram_url"`
	FacebookURL     string `json:"facebook_url"`
}

// GET /api/admin/settings
func (h *AdminSettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"settings": settings})
}

// PUT /api/admin/settings
func (h *AdminSettingsHandler) Update(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_payload", err)
		return
	}
	settings := &types.SiteSettings{
		BrandName:       req.BrandName,
		HeroHeadline:    req.HeroHeadline,
		HeroSubheadline: req.HeroSubheadline,
		AboutHeadline:   req.AboutHeadline,
		AboutContent:    req.AboutContent,
		FounderNote:     req.FounderNote,
		PhoneNumber:     req.PhoneNumber,
		EmailAddress:    req.EmailAddress,
		ShowroomAddress: req.ShowroomAddress,
		OperatingHours:  req.OperatingHours,
		InstagramURL:    req.InstagramURL,
		FacebookURL:     req.FacebookURL,
	}

	updated, err := h.settingsService.Update(c.Request.Context(), settings)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"settings": updated})
}
