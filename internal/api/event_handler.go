package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifedrawing-art/backend/internal/models"
	"github.com/lifedrawing-art/backend/internal/service"
	"github.com/lifedrawing-art/backend/internal/validation"
	"github.com/rs/zerolog"
)

// EventHandler handles event CRUD
type EventHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(services *service.Services, log zerolog.Logger) *EventHandler {
	return &EventHandler{
		services: services,
		log:      log.With().Str("handler", "events").Logger(),
	}
}

// List handles GET /api/events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.services.Repos.Event.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("List events failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if events == nil {
		events = []*models.Event{}
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// Get handles GET /api/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	event, err := h.services.Repos.Event.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Get event failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// Create handles POST /api/events
func (h *EventHandler) Create(c *gin.Context) {
	var req models.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if errs := validation.ValidateEvent(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": errs})
		return
	}

	event := eventFromRequest(&req)
	if err := h.services.Repos.Event.Create(c.Request.Context(), event); err != nil {
		h.log.Error().Err(err).Msg("Create event failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, event)
}

// Update handles PUT /api/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if errs := validation.ValidateEvent(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": errs})
		return
	}

	existing, err := h.services.Repos.Event.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Get event failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	event := eventFromRequest(&req)
	event.ID = id

	if err := h.services.Repos.Event.Update(c.Request.Context(), event); err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Update event failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /api/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Repos.Event.Delete(c.Request.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Delete event failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func eventFromRequest(req *models.EventRequest) *models.Event {
	frequency := req.Frequency
	if frequency == "" {
		frequency = "weekly"
	}
	weekDay := req.WeekDay
	if weekDay == "" {
		weekDay = "unknown"
	}
	return &models.Event{
		HostUserID:   req.HostUserID,
		VenueID:      req.VenueID,
		Name:         req.Name,
		Description:  req.Description,
		Frequency:    frequency,
		WeekDay:      weekDay,
		Images:       "[]",
		PricingTable: req.PricingTable,
		PricingText:  req.PricingText,
		PricingTags:  "[]",
		PoseFormat:   req.PoseFormat,
	}
}
