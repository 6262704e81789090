package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifedrawing-art/backend/internal/models"
	"github.com/lifedrawing-art/backend/internal/service"
	"github.com/rs/zerolog"
)

// DashboardHandler handles stats and exchange rate reads
type DashboardHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(services *service.Services, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		services: services,
		log:      log.With().Str("handler", "dashboard").Logger(),
	}
}

// Stats handles GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.services.Stats.Dashboard(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Dashboard stats failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ExchangeRates handles GET /api/exchange-rates
func (h *DashboardHandler) ExchangeRates(c *gin.Context) {
	rates, err := h.services.Repos.Rate.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("List rates failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if rates == nil {
		rates = []*models.ExchangeRate{}
	}
	c.JSON(http.StatusOK, gin.H{"rates": rates})
}
