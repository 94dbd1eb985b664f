// handlers_form.go - Q&A page handlers
package api

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hackrx/docqa-web/internal/controller"
	"github.com/hackrx/docqa-web/internal/models"
	"github.com/hackrx/docqa-web/internal/questions"
	"github.com/hackrx/docqa-web/internal/submission"
	"github.com/hackrx/docqa-web/internal/web"
)

// PageSettings holds the configurable page text
type PageSettings struct {
	Title            string
	AcceptFileTypes  string
	GenericErrorText string
}

// FormHandlerImpl implements the FormHandler interface
type FormHandlerImpl struct {
	submitter   controller.Submitter
	submissions *submission.Manager
	settings    PageSettings
}

// NewFormHandler creates a new form handler instance
func NewFormHandler(submitter controller.Submitter, submissions *submission.Manager, settings PageSettings) FormHandler {
	return &FormHandlerImpl{
		submitter:   submitter,
		submissions: submissions,
		settings:    settings,
	}
}

// HandleIndex renders the empty form
func (h *FormHandlerImpl) HandleIndex(c echo.Context) error {
	page := h.newPage()
	ctrl := controller.New(page.View(), h.submitter)
	ctrl.OnFileChange()
	ctrl.OnQuestionsInput()

	return renderPage(c, page)
}

// HandleAsk submits the posted file and questions to the backend and
// renders the page with the answers or an error message. The response is
// 200 in both cases; the outcome is in the page.
func (h *FormHandlerImpl) HandleAsk(c echo.Context) error {
	file, err := selectedFile(c)
	if err != nil {
		return NewBadRequestError("invalid form data", err)
	}
	text := c.FormValue("questions")

	page := h.newPage()
	page.FileUpload.File = file
	page.Questions.Text = text

	sub := h.submissions.Start(file, questions.Count(text))
	c.Response().Header().Set("X-Submission-ID", sub.ID)

	ctrl := controller.New(page.View(), h.submitter,
		controller.WithLogger(c.Logger()),
		controller.WithGenericErrorMessage(h.settings.GenericErrorText),
		controller.WithModeListener(func(mode models.Mode, resp *models.UploadResponse, err error) {
			h.submissions.Update(sub.ID, mode, resp, err)
		}),
	)
	ctrl.OnFileChange()
	ctrl.OnQuestionsInput()
	ctrl.Submit(c.Request().Context())

	return renderPage(c, page)
}

func (h *FormHandlerImpl) newPage() *web.Page {
	return web.NewPage(h.settings.Title, h.settings.AcceptFileTypes)
}

func renderPage(c echo.Context, page *web.Page) error {
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return NewInternalError("failed to render page", err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// selectedFile returns the posted file, or nil when none was chosen
func selectedFile(c echo.Context) (*models.SelectedFile, error) {
	header, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if header.Filename == "" {
		return nil, nil
	}
	return fileFromHeader(header), nil
}

func fileFromHeader(header *multipart.FileHeader) *models.SelectedFile {
	return &models.SelectedFile{
		Name: header.Filename,
		Size: header.Size,
		Open: func() (io.ReadCloser, error) {
			return header.Open()
		},
	}
}
