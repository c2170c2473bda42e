package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vezoprint/vezo-backend/internal/middleware"
	"github.com/vezoprint/vezo-backend/internal/model"
	"github.com/vezoprint/vezo-backend/internal/repository"
	"github.com/vezoprint/vezo-backend/internal/response"
	"github.com/vezoprint/vezo-backend/internal/service"
	"github.com/vezoprint/vezo-backend/internal/validator"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register godoc
// POST /api/admin/register
// One-time setup: creates the first admin account. Closed as soon as any
// account exists.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	_, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationClosed):
			response.Fail(c, http.StatusForbidden, response.ErrRegistrationClosed)
		case errors.Is(err, repository.ErrDuplicate):
			response.Fail(c, http.StatusConflict, response.ErrConflict)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Admin created successfully"})
}

// Login godoc
// POST /api/admin/login
// Validates username + password, returns a bearer token and the account.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, admin, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"admin":   admin,
		"message": "Login successful",
	})
}

// Me godoc
// GET /api/admin/me
// Returns the account of the currently authenticated admin.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	admin, err := h.authService.GetByID(c.Request.Context(), claims.AdminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, admin)
}
