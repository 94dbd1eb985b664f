// handlers_form_test.go - Tests for the Q&A page handlers
package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/hackrx/docqa-web/internal/client"
	"github.com/hackrx/docqa-web/internal/models"
	"github.com/hackrx/docqa-web/internal/submission"
	"github.com/hackrx/docqa-web/internal/testutil"
)

var testSettings = PageSettings{
	Title:            "Document Q&A",
	AcceptFileTypes:  ".pdf,.docx",
	GenericErrorText: "An error occurred while processing your request. Please try again.",
}

func multipartBody(t *testing.T, fileName string, content []byte, questions string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if fileName != "" {
		part, err := w.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		part.Write(content)
	}
	if err := w.WriteField("questions", questions); err != nil {
		t.Fatalf("write field: %v", err)
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func TestFormHandler_HandleIndex(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	handler := NewFormHandler(client.New(backend.URL()), submission.NewManager(), testSettings)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, handler.HandleIndex(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<title>Document Q&amp;A</title>")
		assert.Contains(t, body, "Choose a PDF, DOCX, or TXT file")
		assert.Contains(t, body, "0 questions")
		assert.Contains(t, body, `accept=".pdf,.docx"`)
	}
	assert.Empty(t, backend.Uploads())
}

func TestFormHandler_HandleAsk(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(b *testutil.FakeBackend)
		fileName      string
		questions     string
		wantContains  []string
		wantMissing   []string
		wantStatus    models.Mode
		wantUploads   int
		wantSubmitErr string
	}{
		{
			name: "answers rendered",
			setup: func(b *testutil.FakeBackend) {
				b.RespondJSON(http.StatusOK, models.UploadResponse{Answers: []models.Answer{
					{Question: "Q1", Answer: "**bold** line1\nline2"},
				}})
			},
			fileName:  "policy.pdf",
			questions: "Q1",
			wantContains: []string{
				`<section id="results" class="results">`,
				`<section id="error" class="error" hidden>`,
				"<strong>Q1:</strong> Q1",
				"<strong>bold</strong> line1<br>line2",
				"policy.pdf",
				"1 question<",
			},
			wantStatus:  models.ModeResults,
			wantUploads: 1,
		},
		{
			name: "backend error shown verbatim",
			setup: func(b *testutil.FakeBackend) {
				b.RespondJSON(http.StatusOK, map[string]string{"error": "bad file"})
			},
			fileName:  "notes.xyz",
			questions: "Q1\nQ2",
			wantContains: []string{
				`<section id="error" class="error">`,
				`<section id="results" class="results" hidden>`,
				`<p id="errorMessage">bad file</p>`,
				"2 questions",
			},
			wantStatus:    models.ModeError,
			wantUploads:   1,
			wantSubmitErr: "bad file",
		},
		{
			name: "non JSON response shows generic message",
			setup: func(b *testutil.FakeBackend) {
				b.RespondRaw(http.StatusBadGateway, "<html>upstream down</html>")
			},
			fileName:  "policy.pdf",
			questions: "Q1",
			wantContains: []string{
				"An error occurred while processing your request. Please try again.",
			},
			wantMissing: []string{"upstream down"},
			wantStatus:  models.ModeError,
			wantUploads: 1,
		},
		{
			name:      "missing file shows generic message",
			setup:     func(b *testutil.FakeBackend) {},
			questions: "Q1",
			wantContains: []string{
				"An error occurred while processing your request. Please try again.",
				"Choose a PDF, DOCX, or TXT file",
			},
			wantStatus:  models.ModeError,
			wantUploads: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := testutil.NewFakeBackend(t)
			tt.setup(backend)
			subs := submission.NewManager()
			handler := NewFormHandler(client.New(backend.URL()), subs, testSettings)

			e := echo.New()
			body, contentType := multipartBody(t, tt.fileName, []byte("content"), tt.questions)
			req := httptest.NewRequest(http.MethodPost, "/ask", body)
			req.Header.Set(echo.HeaderContentType, contentType)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if !assert.NoError(t, handler.HandleAsk(c)) {
				return
			}
			assert.Equal(t, http.StatusOK, rec.Code)

			html := rec.Body.String()
			for _, s := range tt.wantContains {
				assert.Contains(t, html, s)
			}
			for _, s := range tt.wantMissing {
				assert.NotContains(t, html, s)
			}
			// submit control is restored in the rendered page
			assert.Contains(t, html, `<button type="submit" id="submitBtn">`)
			assert.Contains(t, html, `<span class="btn-loading" hidden>`)

			assert.Len(t, backend.Uploads(), tt.wantUploads)

			id := rec.Header().Get("X-Submission-ID")
			sub, ok := subs.Get(id)
			if assert.True(t, ok, "submission should be tracked") {
				assert.Equal(t, tt.wantStatus, sub.Status)
				assert.NotNil(t, sub.CompletedAt)
				if tt.wantSubmitErr != "" {
					assert.Equal(t, tt.wantSubmitErr, sub.Error)
				}
			}
		})
	}
}

func TestFormHandler_HandleAskForwardsRawQuestions(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	handler := NewFormHandler(client.New(backend.URL()), submission.NewManager(), testSettings)

	e := echo.New()
	body, contentType := multipartBody(t, "claims.docx", []byte("docx bytes"), "first\n\n  second  ")
	req := httptest.NewRequest(http.MethodPost, "/ask", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	assert.NoError(t, handler.HandleAsk(e.NewContext(req, rec)))

	uploads := backend.Uploads()
	if assert.Len(t, uploads, 1) {
		assert.Equal(t, "claims.docx", uploads[0].FileName)
		assert.Equal(t, []byte("docx bytes"), uploads[0].FileContent)
		assert.Equal(t, "first\n\n  second  ", uploads[0].Questions)
	}
}

func TestFormHandler_HandleAskURLEncoded(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	handler := NewFormHandler(client.New(backend.URL()), submission.NewManager(), testSettings)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader("questions=Q1"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	if assert.NoError(t, handler.HandleAsk(e.NewContext(req, rec))) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), testSettings.GenericErrorText)
	}
	assert.Empty(t, backend.Uploads())
}
