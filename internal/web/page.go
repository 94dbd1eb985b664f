package web

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/hackrx/docqa-web/internal/controller"
	"github.com/hackrx/docqa-web/internal/models"
)

const (
	// Rendered height of one textarea line and the vertical padding, in px.
	lineHeight      = 24
	textareaPadding = 24
	minRows         = 5
)

// Content is an element whose body is either trusted markup or literal text.
type Content struct {
	html template.HTML
	text string
}

func (c *Content) SetHTML(html string) {
	c.html = template.HTML(html)
	c.text = ""
}

func (c *Content) SetText(text string) {
	c.text = text
	c.html = ""
}

// Body returns the element body for the template. Literal text is escaped.
func (c *Content) Body() template.HTML {
	if c.html != "" {
		return c.html
	}
	return template.HTML(template.HTMLEscapeString(c.text))
}

// Text returns the literal text body.
func (c *Content) Text() string {
	return c.text
}

// Element is a toggleable, disableable element.
type Element struct {
	Visible  bool
	Disabled bool

	id   string
	page *Page
}

func (e *Element) SetVisible(visible bool) { e.Visible = visible }

func (e *Element) SetDisabled(disabled bool) { e.Disabled = disabled }

// ScrollIntoView marks the element as the scroll target of the page.
func (e *Element) ScrollIntoView() {
	if e.page != nil {
		e.page.ScrollTo = e.id
	}
}

// TextArea is the question input. Its scroll height is estimated from the
// number of lines it holds.
type TextArea struct {
	Text   string
	Height string
}

func (t *TextArea) Value() string { return t.Text }

func (t *TextArea) SetHeight(height string) { t.Height = height }

func (t *TextArea) ScrollHeight() int {
	rows := strings.Count(t.Text, "\n") + 1
	if rows < minRows {
		rows = minRows
	}
	return rows*lineHeight + textareaPadding
}

// FileInput holds the file posted with the form.
type FileInput struct {
	File *models.SelectedFile
}

func (f *FileInput) Selected() *models.SelectedFile { return f.File }

// Page is a server-side rendition of the Q&A form. Its elements implement
// the controller's view handles.
type Page struct {
	Title           string
	AcceptFileTypes string
	ScrollTo        string

	FileUpload    FileInput
	FileInfo      Content
	Questions     TextArea
	QuestionCount Content

	SubmitButton  Element
	ButtonText    Element
	ButtonLoading Element

	Results          Element
	AnswersContainer Content
	Error            Element
	ErrorMessage     Content
}

// NewPage creates an empty page in its initial state.
func NewPage(title, acceptFileTypes string) *Page {
	p := &Page{
		Title:           title,
		AcceptFileTypes: acceptFileTypes,
	}
	p.Results = Element{id: "results", page: p}
	p.Error = Element{id: "error", page: p}
	p.ButtonText.Visible = true
	return p
}

// View returns the element handles for a controller.
func (p *Page) View() controller.View {
	return controller.View{
		FileUpload:       &p.FileUpload,
		FileInfo:         &p.FileInfo,
		Questions:        &p.Questions,
		QuestionCount:    &p.QuestionCount,
		SubmitButton:     &p.SubmitButton,
		ButtonText:       &p.ButtonText,
		ButtonLoading:    &p.ButtonLoading,
		Results:          &p.Results,
		AnswersContainer: &p.AnswersContainer,
		Error:            &p.Error,
		ErrorMessage:     &p.ErrorMessage,
	}
}

// Render writes the full HTML page.
func (p *Page) Render(w io.Writer) error {
	if err := pageTemplate.ExecuteTemplate(w, "index.html", p); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}
