package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/hackrx/docqa-web/internal/controller"
	"github.com/hackrx/docqa-web/internal/models"
)

// terminalView records what the controller renders and reports progress
// on the status writer.
type terminalView struct {
	status io.Writer

	file      *models.SelectedFile
	questions string

	fileInfo      content
	questionCount content
	answers       content
	errorMessage  content
}

type content struct {
	html string
	text string
}

func (c *content) SetHTML(html string) { c.html, c.text = html, "" }
func (c *content) SetText(text string) { c.text, c.html = text, "" }

type toggleFunc func(bool)

func (f toggleFunc) SetVisible(v bool) { f(v) }

type panel struct {
	toggleFunc
}

func (panel) ScrollIntoView() {}

type control struct{}

func (control) SetDisabled(bool) {}

type textArea struct {
	view *terminalView
}

func (t textArea) Value() string     { return t.view.questions }
func (t textArea) SetHeight(string)  {}
func (t textArea) ScrollHeight() int { return 0 }

type fileInput struct {
	view *terminalView
}

func (f fileInput) Selected() *models.SelectedFile { return f.view.file }

func newTerminalView(status io.Writer, path, questions string) (*terminalView, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	return &terminalView{
		status: status,
		file: &models.SelectedFile{
			Name: info.Name(),
			Size: info.Size(),
			Open: func() (io.ReadCloser, error) {
				return os.Open(path)
			},
		},
		questions: questions,
	}, nil
}

func (v *terminalView) View() controller.View {
	return controller.View{
		FileUpload:    fileInput{view: v},
		FileInfo:      &v.fileInfo,
		Questions:     textArea{view: v},
		QuestionCount: &v.questionCount,
		SubmitButton:  control{},
		ButtonText:    toggleFunc(func(bool) {}),
		ButtonLoading: toggleFunc(func(loading bool) {
			if loading {
				fmt.Fprintf(v.status, "Uploading %s (%s) with %s…\n",
					v.file.Name, humanize.Bytes(uint64(v.file.Size)), v.questionCount.text)
			}
		}),
		Results:          panel{toggleFunc(func(bool) {})},
		AnswersContainer: &v.answers,
		Error:            panel{toggleFunc(func(bool) {})},
		ErrorMessage:     &v.errorMessage,
	}
}
