package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifedrawing-art/backend/internal/models"
	"github.com/lifedrawing-art/backend/internal/service"
	"github.com/rs/zerolog"
)

// UserHandler handles the admin-only user management surface
type UserHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(services *service.Services, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		services: services,
		log:      log.With().Str("handler", "users").Logger(),
	}
}

// List handles GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.services.Repos.User.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("List users failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Get handles GET /api/users/:id, returning the user with its profile
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.services.Repos.User.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Get user failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	profile, err := h.services.Repos.User.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Get profile failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "profile": profile})
}

// UpdateUserRequest is the admin update payload
type UpdateUserRequest struct {
	Email          *string `json:"email"`
	IsGlobalActive *bool   `json:"is_global_active"`
	IsAdmin        *bool   `json:"is_admin"`
}

// Update handles PUT /api/users/:id; only the provided fields change
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.services.Repos.User.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Get user failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.IsGlobalActive != nil {
		user.IsGlobalActive = *req.IsGlobalActive
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}

	if err := h.services.Repos.User.Update(c.Request.Context(), user); err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Update user failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/users/:id. Admins cannot delete themselves.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if claims := CurrentClaims(c); claims != nil && claims.UserID == id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete your own account"})
		return
	}

	if err := h.services.Repos.User.Delete(c.Request.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Delete user failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}
