package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifedrawing-art/backend/internal/models"
	"github.com/lifedrawing-art/backend/internal/service"
	"github.com/lifedrawing-art/backend/internal/validation"
	"github.com/rs/zerolog"
)

// ModelHandler handles model profile CRUD
type ModelHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewModelHandler creates a new model handler
func NewModelHandler(services *service.Services, log zerolog.Logger) *ModelHandler {
	return &ModelHandler{
		services: services,
		log:      log.With().Str("handler", "models").Logger(),
	}
}

// List handles GET /api/models
func (h *ModelHandler) List(c *gin.Context) {
	profiles, err := h.services.Repos.Model.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("List models failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if profiles == nil {
		profiles = []*models.ModelProfile{}
	}
	c.JSON(http.StatusOK, gin.H{"models": profiles})
}

// Get handles GET /api/models/:id
func (h *ModelHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	profile, err := h.services.Repos.Model.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Get model failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Model not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Create handles POST /api/models
func (h *ModelHandler) Create(c *gin.Context) {
	var req models.ModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if errs := validation.ValidateModel(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": errs})
		return
	}

	profile := modelFromRequest(&req)
	if err := h.services.Repos.Model.Create(c.Request.Context(), profile); err != nil {
		h.log.Error().Err(err).Msg("Create model failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// Update handles PUT /api/models/:id
func (h *ModelHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.ModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if errs := validation.ValidateModel(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": errs})
		return
	}

	existing, err := h.services.Repos.Model.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Get model failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Model not found"})
		return
	}

	profile := modelFromRequest(&req)
	profile.ID = id

	if err := h.services.Repos.Model.Update(c.Request.Context(), profile); err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Update model failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Delete handles DELETE /api/models/:id
func (h *ModelHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Repos.Model.Delete(c.Request.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Delete model failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func modelFromRequest(req *models.ModelRequest) *models.ModelProfile {
	sex := req.Sex
	if sex == "" {
		sex = "unspecified"
	}
	return &models.ModelProfile{
		UserID:        req.UserID,
		DisplayName:   req.DisplayName,
		WebsiteURLs:   req.WebsiteURLs,
		SocialHandles: req.SocialHandles,
		PortraitURLs:  req.PortraitURLs,
		Sex:           sex,
	}
}
