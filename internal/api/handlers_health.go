// handlers_health.go - Health check handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandlerImpl implements the HealthHandler interface
type HealthHandlerImpl struct {
	version string
	backend BackendProber
}

// NewHealthHandler creates a new health handler. backend may be nil.
func NewHealthHandler(version string, backend BackendProber) HealthHandler {
	return &HealthHandlerImpl{
		version: version,
		backend: backend,
	}
}

// HandleHealth returns server health status and backend reachability
func (h *HealthHandlerImpl) HandleHealth(c echo.Context) error {
	resp := map[string]interface{}{
		"status":  "ok",
		"version": h.version,
	}

	if h.backend != nil {
		if err := h.backend.Health(c.Request().Context()); err != nil {
			c.Logger().Warnf("backend health check failed: %v", err)
			resp["status"] = "degraded"
			resp["backend"] = "unreachable"
		} else {
			resp["backend"] = "ok"
		}
	}

	return c.JSON(http.StatusOK, resp)
}
