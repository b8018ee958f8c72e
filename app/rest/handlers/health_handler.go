package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthChecker is anything with a pingable backend
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	database HealthChecker
	kratos   HealthChecker
	logger   *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(database, kratos HealthChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		database: database,
		kratos:   kratos,
		logger:   logger,
	}
}

// HealthCheck performs a basic health check
// @Summary Health check
// @Description Check if the service is healthy and running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /v1/health [get]
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "blog-service",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessCheck performs a readiness check
// @Summary Readiness check
// @Description Check if the service is ready to serve traffic
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/ready [get]
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	ctx := c.Request().Context()
	checks := make(map[string]HealthStatus)

	checks["database"] = h.check(ctx, h.database)
	checks["kratos"] = h.check(ctx, h.kratos)

	allHealthy := true
	for _, check := range checks {
		if check.Status != "healthy" {
			allHealthy = false
			break
		}
	}

	response := ReadinessResponse{
		Status:    getOverallStatus(allHealthy),
		Timestamp: time.Now(),
		Service:   "blog-service",
		Checks:    checks,
	}

	statusCode := http.StatusOK
	if !allHealthy {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, response)
}

// LivenessCheck performs a liveness check
// @Summary Liveness check
// @Description Check if the service is alive
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /v1/live [get]
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	response := HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Service:   "blog-service",
		Version:   "1.0.0",
		Uptime:    time.Since(startTime).String(),
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) check(ctx context.Context, checker HealthChecker) HealthStatus {
	if checker == nil {
		return HealthStatus{Status: "skipped", Message: "not configured"}
	}

	start := time.Now()
	if err := checker.HealthCheck(ctx); err != nil {
		h.logger.Warn("readiness check failed", "error", err)
		return HealthStatus{
			Status:  "unhealthy",
			Message: err.Error(),
			Latency: time.Since(start).String(),
		}
	}

	return HealthStatus{
		Status:  "healthy",
		Message: "connected",
		Latency: time.Since(start).String(),
	}
}

// Helper functions
func getOverallStatus(allHealthy bool) string {
	if allHealthy {
		return "ready"
	}
	return "not_ready"
}

// Response types
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

type ReadinessResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Service   string                  `json:"service"`
	Checks    map[string]HealthStatus `json:"checks"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Latency string `json:"latency,omitempty"`
}

// startTime is set when the service starts
var startTime = time.Now()
