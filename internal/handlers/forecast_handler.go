package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dkrasnov/product-catalog-api/internal/service"
)

// ForecastHandler handles the placeholder weather-forecast endpoint
type ForecastHandler struct {
	service *service.ForecastService
	logger  *slog.Logger
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(service *service.ForecastService, logger *slog.Logger) *ForecastHandler {
	return &ForecastHandler{
		service: service,
		logger:  logger,
	}
}

// GetForecast handles GET /weatherforecast
// Returns five synthetic forecast records, no DB access
func (h *ForecastHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Forecast())
}
