package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lifedrawing-art/backend/internal/models"
	"github.com/lifedrawing-art/backend/internal/service"
	"github.com/lifedrawing-art/backend/internal/validation"
	"github.com/rs/zerolog"
)

// CalendarHandler handles calendar session CRUD
type CalendarHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(services *service.Services, log zerolog.Logger) *CalendarHandler {
	return &CalendarHandler{
		services: services,
		log:      log.With().Str("handler", "calendar").Logger(),
	}
}

// List handles GET /api/calendar, optionally filtered by ?event_id=
func (h *CalendarHandler) List(c *gin.Context) {
	var sessions []*models.CalendarSession
	var err error

	if raw := c.Query("event_id"); raw != "" {
		eventID, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil || eventID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event_id"})
			return
		}
		sessions, err = h.services.Repos.Calendar.ListByEvent(c.Request.Context(), eventID)
	} else {
		sessions, err = h.services.Repos.Calendar.List(c.Request.Context())
	}

	if err != nil {
		h.log.Error().Err(err).Msg("List sessions failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if sessions == nil {
		sessions = []*models.CalendarSession{}
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// Get handles GET /api/calendar/:id
func (h *CalendarHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	session, err := h.services.Repos.Calendar.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Get session failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// Create handles POST /api/calendar
func (h *CalendarHandler) Create(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if errs := validation.ValidateSession(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": errs})
		return
	}

	session := sessionFromRequest(&req)
	if err := h.services.Repos.Calendar.Create(c.Request.Context(), session); err != nil {
		h.log.Error().Err(err).Msg("Create session failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Update handles PUT /api/calendar/:id
func (h *CalendarHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if errs := validation.ValidateSession(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": errs})
		return
	}

	existing, err := h.services.Repos.Calendar.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Get session failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	session := sessionFromRequest(&req)
	session.ID = id

	if err := h.services.Repos.Calendar.Update(c.Request.Context(), session); err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Update session failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// Delete handles DELETE /api/calendar/:id
func (h *CalendarHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Repos.Calendar.Delete(c.Request.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Delete session failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func sessionFromRequest(req *models.SessionRequest) *models.CalendarSession {
	status := models.SessionStatus(req.Status)
	if req.Status == "" {
		status = models.SessionStatusPending
	}
	// validated upstream, parse cannot fail here
	dateTime, _ := time.Parse(time.RFC3339, req.DateTime)

	duration := req.Duration
	if duration == 0 {
		duration = 2
	}

	return &models.CalendarSession{
		EventID:            req.EventID,
		ModelUserID:        req.ModelUserID,
		Status:             status,
		AttendanceInPerson: req.AttendanceInPerson,
		AttendanceOnline:   req.AttendanceOnline,
		DateTime:           dateTime,
		Duration:           duration,
		PoseFormat:         req.PoseFormat,
	}
}
