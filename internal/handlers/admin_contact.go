package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zenavi/storefront-backend/internal/logger"
	"github.com/zenavi/storefront-backend/internal/services"
)

type AdminContactHandler struct {
	log            *logger.Logger
	contactService services.ContactAdminService
}

func NewAdminContactHandler(log *logger.Logger, contactService services.ContactAdminService) *AdminContactHandler {
	return &AdminContactHandler{
		log:            log.With("handler", "AdminContactHandler"),
		contactService: contactService,
	}
}

// GET /api/admin/contact-submissions
func (h *AdminContactHandler) List(c *gin.Context) {
	submissions, err := h.contactService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"submissions": submissions})
}

// POST /api/admin/contact-submissions/:id/read
func (h *AdminContactHandler) MarkRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	submissions, err := h.contactService.MarkRead(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"submissions": submissions})
}

// DELETE /api/admin/contact-submissions/:id?confirm=true
func (h *AdminContactHandler) Delete(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	submissions, err := h.contactService.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"submissions": submissions})
}
