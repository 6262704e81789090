package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifedrawing-art/backend/internal/models"
	"github.com/lifedrawing-art/backend/internal/service"
	"github.com/rs/zerolog"
)

// HostHandler exposes the imported host metadata. Hosts are written only by
// the import, so the surface is read-only.
type HostHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewHostHandler creates a new host handler
func NewHostHandler(services *service.Services, log zerolog.Logger) *HostHandler {
	return &HostHandler{
		services: services,
		log:      log.With().Str("handler", "hosts").Logger(),
	}
}

// List handles GET /api/hosts
func (h *HostHandler) List(c *gin.Context) {
	hosts, err := h.services.Repos.Host.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("List hosts failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if hosts == nil {
		hosts = []*models.Host{}
	}
	c.JSON(http.StatusOK, gin.H{"hosts": hosts})
}

// Get handles GET /api/hosts/:id
func (h *HostHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	host, err := h.services.Repos.Host.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Get host failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if host == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Host not found"})
		return
	}
	c.JSON(http.StatusOK, host)
}
