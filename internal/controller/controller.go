// Package controller implements the document Q&A form: live input
// feedback and the submit, response and render cycle.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hackrx/docqa-web/internal/models"
	"github.com/hackrx/docqa-web/internal/questions"
	"github.com/hackrx/docqa-web/internal/render"
)

// GenericErrorMessage is shown for any transport or decoding failure.
const GenericErrorMessage = "An error occurred while processing your request. Please try again."

var errEmptyResponse = errors.New("backend response has no answers or error")

// Submitter sends one submission to the backend.
type Submitter interface {
	Submit(ctx context.Context, file *models.SelectedFile, questions string) (*models.UploadResponse, error)
}

// Logger receives diagnostics that are never shown to the user.
type Logger interface {
	Errorf(format string, args ...interface{})
}

// ModeListener is notified after every mode change.
type ModeListener func(mode models.Mode, resp *models.UploadResponse, err error)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the diagnostics logger.
func WithLogger(l Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithModeListener registers a callback for mode changes.
func WithModeListener(fn ModeListener) Option {
	return func(c *Controller) {
		c.listeners = append(c.listeners, fn)
	}
}

// WithGenericErrorMessage overrides the message shown for failures.
func WithGenericErrorMessage(msg string) Option {
	return func(c *Controller) {
		if msg != "" {
			c.genericError = msg
		}
	}
}

// Controller drives a View. Submissions are expected to be serialized by
// the caller; the disabled submit control is the only guard.
type Controller struct {
	view         View
	submitter    Submitter
	logger       Logger
	listeners    []ModeListener
	genericError string

	mu   sync.Mutex
	mode models.Mode
}

// New creates a controller in idle mode and renders that mode.
func New(view View, submitter Submitter, opts ...Option) *Controller {
	c := &Controller{
		view:         view,
		submitter:    submitter,
		logger:       nopLogger{},
		genericError: GenericErrorMessage,
		mode:         models.ModeIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.render(models.ModeIdle)
	c.setBusy(false)
	return c
}

// Mode returns the current UI mode.
func (c *Controller) Mode() models.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// OnFileChange shows the selected file's name and size, or the placeholder.
func (c *Controller) OnFileChange() {
	c.view.FileInfo.SetHTML(render.FileInfo(c.view.FileUpload.Selected()))
}

// OnQuestionsInput updates the question count and grows the text area to
// fit its content.
func (c *Controller) OnQuestionsInput() {
	n := questions.Count(c.view.Questions.Value())
	c.view.QuestionCount.SetText(questions.Label(n))

	c.view.Questions.SetHeight("auto")
	c.view.Questions.SetHeight(fmt.Sprintf("%dpx", c.view.Questions.ScrollHeight()))
}

// Submit runs one submission and renders its outcome. The submit control
// is always restored once the submitter returns.
func (c *Controller) Submit(ctx context.Context) {
	c.setMode(models.ModeSubmitting, nil, nil)
	c.setBusy(true)
	defer c.setBusy(false)

	file := c.view.FileUpload.Selected()
	text := c.view.Questions.Value()

	resp, err := c.submitter.Submit(ctx, file, text)
	if err == nil && (resp == nil || !resp.HasOutcome()) {
		err = errEmptyResponse
	}
	switch {
	case err != nil:
		c.logger.Errorf("submit failed: %v", err)
		c.showError(c.genericError, nil, err)
	case resp.Failed():
		c.showError(resp.Error, resp, nil)
	default:
		c.displayResults(resp)
	}
}

func (c *Controller) displayResults(resp *models.UploadResponse) {
	c.view.AnswersContainer.SetHTML(render.Answers(resp.Answers))
	c.setMode(models.ModeResults, resp, nil)
	c.view.Results.ScrollIntoView()
}

func (c *Controller) showError(message string, resp *models.UploadResponse, err error) {
	c.view.ErrorMessage.SetText(message)
	c.setMode(models.ModeError, resp, err)
	c.view.Error.ScrollIntoView()
}

func (c *Controller) setMode(mode models.Mode, resp *models.UploadResponse, err error) {
	c.mu.Lock()
	c.mode = mode
	listeners := c.listeners
	c.mu.Unlock()

	c.render(mode)
	for _, fn := range listeners {
		fn(mode, resp, err)
	}
}

// render maps a mode to panel visibility. At most one panel is visible.
func (c *Controller) render(mode models.Mode) {
	c.view.Results.SetVisible(mode == models.ModeResults)
	c.view.Error.SetVisible(mode == models.ModeError)
}

func (c *Controller) setBusy(busy bool) {
	c.view.SubmitButton.SetDisabled(busy)
	c.view.ButtonText.SetVisible(!busy)
	c.view.ButtonLoading.SetVisible(busy)
}

type nopLogger struct{}

func (nopLogger) Errorf(string, ...interface{}) {}
