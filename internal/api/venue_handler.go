package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lifedrawing-art/backend/internal/models"
	"github.com/lifedrawing-art/backend/internal/service"
	"github.com/lifedrawing-art/backend/internal/validation"
	"github.com/rs/zerolog"
)

// VenueHandler handles venue CRUD
type VenueHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewVenueHandler creates a new venue handler
func NewVenueHandler(services *service.Services, log zerolog.Logger) *VenueHandler {
	return &VenueHandler{
		services: services,
		log:      log.With().Str("handler", "venues").Logger(),
	}
}

// List handles GET /api/venues
func (h *VenueHandler) List(c *gin.Context) {
	venues, err := h.services.Repos.Venue.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("List venues failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if venues == nil {
		venues = []*models.Venue{}
	}
	c.JSON(http.StatusOK, gin.H{"venues": venues})
}

// Get handles GET /api/venues/:id
func (h *VenueHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	venue, err := h.services.Repos.Venue.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Get venue failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if venue == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}
	c.JSON(http.StatusOK, venue)
}

// Create handles POST /api/venues
func (h *VenueHandler) Create(c *gin.Context) {
	var req models.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if errs := validation.ValidateVenue(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": errs})
		return
	}

	venue := venueFromRequest(&req)
	if claims := CurrentClaims(c); claims != nil {
		venue.UserID = &claims.UserID
	}

	if err := h.services.Repos.Venue.Create(c.Request.Context(), venue); err != nil {
		h.log.Error().Err(err).Msg("Create venue failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, venue)
}

// Update handles PUT /api/venues/:id
func (h *VenueHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if errs := validation.ValidateVenue(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": errs})
		return
	}

	existing, err := h.services.Repos.Venue.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Get venue failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}

	venue := venueFromRequest(&req)
	venue.ID = id
	venue.UserID = existing.UserID

	if err := h.services.Repos.Venue.Update(c.Request.Context(), venue); err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Update venue failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, venue)
}

// Delete handles DELETE /api/venues/:id
func (h *VenueHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Repos.Venue.Delete(c.Request.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Delete venue failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func venueFromRequest(req *models.VenueRequest) *models.Venue {
	tz := req.TZ
	if tz == "" {
		tz = "Europe/London"
	}
	return &models.Venue{
		Name:            req.Name,
		AddressLine1:    req.AddressLine1,
		AddressLine2:    req.AddressLine2,
		AddressCity:     req.AddressCity,
		AddressCounty:   req.AddressCounty,
		AddressPostcode: req.AddressPostcode,
		AddressArea:     req.AddressArea,
		TZ:              tz,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	}
}

// pathID parses the :id path parameter, writing the 400 response itself on
// bad input
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
