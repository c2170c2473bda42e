package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vezoprint/vezo-backend/internal/model"
	"github.com/vezoprint/vezo-backend/internal/response"
	"github.com/vezoprint/vezo-backend/internal/service"
)

// ContactHandler handles public contact form submissions.
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Send godoc
// POST /api/contact
// Relays the submission by email. One synchronous attempt; a transport
// failure is the caller's 500.
func (h *ContactHandler) Send(c *gin.Context) {
	var req model.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	if err := h.contactService.Send(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrDeliveryFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
