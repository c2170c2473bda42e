package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vezoprint/vezo-backend/internal/middleware"
	"github.com/vezoprint/vezo-backend/internal/model"
	"github.com/vezoprint/vezo-backend/internal/repository"
	"github.com/vezoprint/vezo-backend/internal/response"
	"github.com/vezoprint/vezo-backend/internal/service"
	"github.com/vezoprint/vezo-backend/internal/validator"
)

// ContentHandler handles CMS content endpoints.
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// List godoc
// GET /api/content?type=&isActive=
// Public listing, filtered by type and active flag, sorted by display
// order then creation time. The response is the bare array the site
// client iterates over.
func (h *ContentHandler) List(c *gin.Context) {
	filter := model.ContentFilter{}

	if t := c.Query("type"); t != "" {
		filter.Type = model.ContentType(t)
	}
	if raw, ok := c.GetQuery("isActive"); ok {
		active := raw == "true"
		filter.IsActive = &active
	}

	items, err := h.contentService.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, items)
}

// Get godoc
// GET /api/content/:id
func (h *ContentHandler) Get(c *gin.Context) {
	id, ok := contentID(c)
	if !ok {
		return
	}

	item, err := h.contentService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Create godoc
// POST /api/content
// Requires a valid token; the new item is stamped with the acting admin.
func (h *ContentHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.ContentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	item, err := h.contentService.Create(c.Request.Context(), req, claims.AdminID)
	if err != nil {
		failContent(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Content created successfully", "content": item})
}

// Update godoc
// PUT /api/content/:id
func (h *ContentHandler) Update(c *gin.Context) {
	id, ok := contentID(c)
	if !ok {
		return
	}

	var req model.ContentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	item, err := h.contentService.Update(c.Request.Context(), id, req)
	if err != nil {
		failContent(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content updated successfully", "content": item})
}

// Delete godoc
// DELETE /api/content/:id
// Admin role only; editors get 403 from the role middleware.
func (h *ContentHandler) Delete(c *gin.Context) {
	id, ok := contentID(c)
	if !ok {
		return
	}

	if err := h.contentService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted successfully"})
}

// Reorder godoc
// POST /api/content/reorder
// Bulk display-order update for drag-and-drop in the admin console.
// Items are updated one by one; a failure partway through is reported
// but earlier updates stay applied.
func (h *ContentHandler) Reorder(c *gin.Context) {
	var req model.ReorderRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.contentService.Reorder(c.Request.Context(), req.Items); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content reordered successfully"})
}

// contentID parses and validates the :id path param, failing the request
// itself on malformed input.
func contentID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return "", false
	}
	return id, true
}

// failContent maps content service errors onto HTTP responses.
func failContent(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidContentType):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidContentType)
	case errors.Is(err, service.ErrTitleRequired):
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
