package router

import (
	"errors"
	"fmt"
	"locationreminder/internal/application/dto"
	"locationreminder/internal/interfaces/api/handler"
	appErrors "locationreminder/internal/pkg/errors"
	"locationreminder/internal/pkg/logger"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Config holds the dependencies for the router.
type Config struct {
	ReminderHandler *handler.ReminderHandler
	LocationHandler *handler.LocationHandler
	// LineHandler is optional; the webhook is only mounted when it is set.
	LineHandler *handler.LineHandler
	Logger      logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(cfg.Logger)

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogHost:      true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-Line-Signature"},
		MaxAge:       300,
	}))

	// Routes
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Location reminders are running.")
	})

	api := e.Group("/api/v1")
	api.GET("/reminders", cfg.ReminderHandler.ListReminders)
	api.GET("/reminders/:id", cfg.ReminderHandler.GetReminder)
	api.POST("/reminders", cfg.ReminderHandler.SaveReminder)
	api.DELETE("/reminders", cfg.ReminderHandler.DeleteAllReminders)
	api.POST("/locations", cfg.LocationHandler.ReportLocation)

	// LINE Platform requires POST for webhook
	if cfg.LineHandler != nil {
		e.POST("/callback", cfg.LineHandler.HandleWebhook)
	}

	cfg.Logger.Info("Router initialized with routes.")
	return e
}

// errorHandler renders errors that escape the handlers, such as unknown
// routes or recovered panics, as JSON error responses.
func errorHandler(log logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := appErrors.ErrInternalServer.Error()
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			}
		} else {
			log.Error("Unhandled request error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, dto.ErrorResponse{Error: msg})
		}
		if err != nil {
			log.Error("Failed to write error response", err)
		}
	}
}
