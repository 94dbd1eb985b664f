// routes.go - Route registration helpers
package api

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hackrx/docqa-web/internal/controller"
	"github.com/hackrx/docqa-web/internal/submission"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Submitter   controller.Submitter
	Backend     BackendProber
	Submissions *submission.Manager
	Page        PageSettings
	Version     string
}

// Handlers holds all handler instances
type Handlers struct {
	Health      HealthHandler
	Form        FormHandler
	Submissions SubmissionHandler
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(deps.Version, deps.Backend),
		Form:        NewFormHandler(deps.Submitter, deps.Submissions, deps.Page),
		Submissions: NewSubmissionHandler(deps.Submissions),
	}
}

// RegisterRoutes registers the page and API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, handlers *Handlers) {
	e.GET("/", handlers.Form.HandleIndex)
	e.POST("/ask", handlers.Form.HandleAsk)
	// Plain form posts land here when the page was opened at /ask
	e.GET("/ask", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/")
	})

	apiGroup := e.Group("/api")
	apiGroup.GET("/health", handlers.Health.HandleHealth)
	apiGroup.GET("/submissions/recent", handlers.Submissions.HandleRecentSubmissions)
	apiGroup.GET("/submissions/:id", handlers.Submissions.HandleGetSubmission)
}

// RegisterBackendProxy forwards prefix (e.g. /api/v1/hackrx) to the backend
// unchanged, so browsers can reach it from the same origin.
func RegisterBackendProxy(e *echo.Echo, prefix, backendURL string) error {
	target, err := url.Parse(backendURL)
	if err != nil {
		return fmt.Errorf("parsing backend URL: %w", err)
	}
	if target.Scheme == "" || target.Host == "" {
		return fmt.Errorf("backend URL must be absolute: %q", backendURL)
	}

	balancer := middleware.NewRoundRobinBalancer([]*middleware.ProxyTarget{{URL: target}})
	e.Group(prefix, middleware.ProxyWithConfig(middleware.ProxyConfig{
		Balancer: balancer,
		ErrorHandler: func(c echo.Context, err error) error {
			return NewBadGatewayError("backend unavailable", err)
		},
	}))
	return nil
}

// SetupMiddleware configures common middleware
func SetupMiddleware(e *echo.Echo) {
	e.HTTPErrorHandler = ErrorHandler
}
