// handlers_submission.go - Submission status handlers
package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hackrx/docqa-web/internal/submission"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// SubmissionHandlerImpl implements the SubmissionHandler interface
type SubmissionHandlerImpl struct {
	submissions *submission.Manager
}

// NewSubmissionHandler creates a new submission handler instance
func NewSubmissionHandler(submissions *submission.Manager) SubmissionHandler {
	return &SubmissionHandlerImpl{submissions: submissions}
}

// HandleRecentSubmissions returns the most recent submissions, newest first
func (h *SubmissionHandlerImpl) HandleRecentSubmissions(c echo.Context) error {
	limit := defaultRecentLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return NewValidationError("limit")
		}
		limit = min(n, maxRecentLimit)
	}

	return c.JSON(http.StatusOK, h.submissions.Recent(limit))
}

// HandleGetSubmission returns a single submission
func (h *SubmissionHandlerImpl) HandleGetSubmission(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	sub, ok := h.submissions.Get(id)
	if !ok {
		return NewNotFoundError("submission", id)
	}

	return c.JSON(http.StatusOK, sub)
}
