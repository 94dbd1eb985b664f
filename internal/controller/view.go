package controller

import "github.com/hackrx/docqa-web/internal/models"

// Content is an element whose body can be replaced.
type Content interface {
	// SetHTML replaces the body with trusted markup.
	SetHTML(html string)
	// SetText replaces the body with literal text.
	SetText(text string)
}

// Toggle is an element that can be shown or hidden.
type Toggle interface {
	SetVisible(visible bool)
}

// Panel is a section that can be shown and scrolled to.
type Panel interface {
	Toggle
	ScrollIntoView()
}

// Control is an input that can be disabled.
type Control interface {
	SetDisabled(disabled bool)
}

// TextArea is the multi-line question input.
type TextArea interface {
	Value() string
	SetHeight(height string)
	ScrollHeight() int
}

// FileInput is the document picker.
type FileInput interface {
	// Selected returns the chosen file, or nil when the selection is empty.
	Selected() *models.SelectedFile
}

// View holds the element handles the controller drives. All handles must
// be set.
type View struct {
	FileUpload    FileInput
	FileInfo      Content
	Questions     TextArea
	QuestionCount Content

	SubmitButton  Control
	ButtonText    Toggle
	ButtonLoading Toggle

	Results          Panel
	AnswersContainer Content
	Error            Panel
	ErrorMessage     Content
}
