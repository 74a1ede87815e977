package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/go-retail/internal/middleware"
	"github.com/deppfellow/go-retail/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

// HealthHandler reports whether the service and its dependencies are reachable.
//
// A failing database makes the service unhealthy (503). A failing Redis only
// degrades it: queries keep working, low-stock alerts do not.
type HealthHandler struct {
	Handler
	checks   map[string]HealthCheck
	critical map[string]bool
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{
		Handler:  NewHandler(s),
		checks:   make(map[string]HealthCheck),
		critical: map[string]bool{"database": true},
	}

	obs := s.Config.Observability
	if s.DB != nil && obs.ShouldCheck("database") {
		h.checks["database"] = s.DB.Pool.Ping
	}
	if s.Redis != nil && obs.ShouldCheck("redis") {
		h.checks["redis"] = func(ctx context.Context) error {
			return s.Redis.Ping(ctx).Err()
		}
	}

	return h
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]checkResult, len(h.checks)),
	}

	timeout := h.server.Config.Observability.HealthCheckTimeout()
	isHealthy := true

	for name, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		checkStart := time.Now()
		err := check(ctx)
		elapsed := time.Since(checkStart)
		cancel()

		if err == nil {
			response.Checks[name] = checkResult{Status: "healthy", ResponseTime: elapsed.String()}
			logger.Debug().Str("check", name).Dur("response_time", elapsed).Msg("health check passed")
			continue
		}

		response.Checks[name] = checkResult{
			Status:       "unhealthy",
			ResponseTime: elapsed.String(),
			Error:        err.Error(),
		}

		if h.critical[name] {
			isHealthy = false
		} else if response.Status == "healthy" {
			response.Status = "degraded"
		}

		logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("health check failed")

		h.recordFailure(name, elapsed, err)
	}

	if !isHealthy {
		response.Status = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("service unhealthy")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) recordFailure(check string, elapsed time.Duration, err error) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}

	h.server.LoggerService.GetApplication().RecordCustomEvent(
		"HealthCheckError",
		map[string]interface{}{
			"check_type":       check,
			"operation":        "health_check",
			"error_type":       check + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		},
	)
}
