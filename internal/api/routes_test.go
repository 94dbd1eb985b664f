// routes_test.go - Tests for route registration and the error handler
package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/hackrx/docqa-web/internal/client"
	"github.com/hackrx/docqa-web/internal/models"
	"github.com/hackrx/docqa-web/internal/submission"
	"github.com/hackrx/docqa-web/internal/testutil"
)

func newTestServer(t *testing.T, backend *testutil.FakeBackend) *echo.Echo {
	t.Helper()
	qa := client.New(backend.URL())
	e := echo.New()
	SetupMiddleware(e)
	RegisterRoutes(e, NewHandlers(&Dependencies{
		Submitter:   qa,
		Backend:     qa,
		Submissions: submission.NewManager(),
		Page:        testSettings,
		Version:     "test",
	}))
	return e
}

func TestRegisterRoutes(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	e := newTestServer(t, backend)

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/ask", http.StatusSeeOther},
		{http.MethodGet, "/api/health", http.StatusOK},
		{http.MethodGet, "/api/submissions/recent", http.StatusOK},
		{http.MethodGet, "/api/submissions/unknown", http.StatusNotFound},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRegisterBackendProxy(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.RespondJSON(http.StatusOK, models.UploadResponse{Answers: []models.Answer{{Question: "q", Answer: "a"}}})

	e := echo.New()
	SetupMiddleware(e)
	assert.NoError(t, RegisterBackendProxy(e, "/api/v1/hackrx", backend.URL()))

	body, contentType := multipartBody(t, "doc.pdf", []byte("pdf"), "q")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hackrx/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"answer":"a"`)
	if uploads := backend.Uploads(); assert.Len(t, uploads, 1) {
		assert.Equal(t, "doc.pdf", uploads[0].FileName)
	}
}

func TestRegisterBackendProxy_InvalidURL(t *testing.T) {
	e := echo.New()
	assert.Error(t, RegisterBackendProxy(e, "/api/v1/hackrx", "localhost:8000"))
	assert.Error(t, RegisterBackendProxy(e, "/api/v1/hackrx", "://bad"))
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "api error", err: NewNotFoundError("submission", "x"), wantStatus: http.StatusNotFound, wantCode: `"code":"NOT_FOUND"`},
		{name: "echo error", err: echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"), wantStatus: http.StatusMethodNotAllowed, wantCode: `"code":"HTTP_ERROR"`},
		{name: "unknown error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: `"code":"UNKNOWN_ERROR"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			ErrorHandler(tt.err, e.NewContext(req, rec))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}
