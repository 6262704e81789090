package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifedrawing-art/backend/internal/models"
	"github.com/lifedrawing-art/backend/internal/service"
	"github.com/lifedrawing-art/backend/internal/validation"
	"github.com/rs/zerolog"
)

// ArtistHandler exposes the public artist directory: every user profile,
// keyed by user id. Accounts manage their own profile through it.
type ArtistHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArtistHandler creates a new artist handler
func NewArtistHandler(services *service.Services, log zerolog.Logger) *ArtistHandler {
	return &ArtistHandler{
		services: services,
		log:      log.With().Str("handler", "artists").Logger(),
	}
}

// List handles GET /api/artists
func (h *ArtistHandler) List(c *gin.Context) {
	profiles, err := h.services.Repos.User.ListProfiles(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("List artists failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if profiles == nil {
		profiles = []*models.UserProfile{}
	}
	c.JSON(http.StatusOK, gin.H{"artists": profiles})
}

// Get handles GET /api/artists/:id, where :id is the user id
func (h *ArtistHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	profile, err := h.services.Repos.User.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Get artist failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateArtistRequest is the profile update payload; only the provided
// fields change
type UpdateArtistRequest struct {
	Handle      *string `json:"handle"`
	Fullname    *string `json:"fullname"`
	PhoneNumber *string `json:"phone_number"`
	AvatarURL   *string `json:"avatar_url"`
}

// Update handles PUT /api/artists/:id. Accounts may edit their own profile,
// admins anyone's.
func (h *ArtistHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	claims := CurrentClaims(c)
	if claims == nil || (claims.UserID != id && !claims.IsAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot edit another artist's profile"})
		return
	}

	var req UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Handle != nil && !validation.IsValidHandle(*req.Handle) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Handle must be kebab-case"})
		return
	}

	profile, err := h.services.Repos.User.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Get artist failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	if req.Handle != nil {
		profile.Handle = *req.Handle
	}
	if req.Fullname != nil {
		profile.Fullname = *req.Fullname
	}
	if req.PhoneNumber != nil {
		profile.PhoneNumber = *req.PhoneNumber
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}

	if err := h.services.Repos.User.UpdateProfile(c.Request.Context(), profile); err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Update artist failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
