// interfaces.go - Handler interface definitions for clean separation of concerns
package api

import (
	"context"

	"github.com/labstack/echo/v4"
)

// FormHandler serves the Q&A page and handles its submissions
type FormHandler interface {
	HandleIndex(c echo.Context) error
	HandleAsk(c echo.Context) error
}

// SubmissionHandler exposes tracked submissions
type SubmissionHandler interface {
	HandleRecentSubmissions(c echo.Context) error
	HandleGetSubmission(c echo.Context) error
}

// HealthHandler handles health check operations
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}

// BackendProber checks whether the Q&A backend is reachable
type BackendProber interface {
	Health(ctx context.Context) error
}
