package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"locationreminder/internal/application/dto"
	"locationreminder/internal/pkg/logger"
)

// LocationReporter evaluates a device position against the reminder regions.
type LocationReporter interface {
	ReportLocation(ctx context.Context, deviceID string, latitude, longitude float64) ([]dto.ReminderDataItem, error)
	Forget(deviceID string)
}

// LocationHandler serves device location reports.
type LocationHandler struct {
	locations LocationReporter
	log       logger.Logger
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(locations LocationReporter, log logger.Logger) *LocationHandler {
	return &LocationHandler{locations: locations, log: log}
}

// ReportLocation handles POST /api/v1/locations.
func (h *LocationHandler) ReportLocation(c echo.Context) error {
	var req dto.ReportLocationRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	triggered, err := h.locations.ReportLocation(c.Request().Context(), req.DeviceID, *req.Latitude, *req.Longitude)
	if err != nil {
		h.log.Error("Failed to evaluate location report", err)
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto.ReportLocationResponse{Triggered: triggered})
}
