package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/hackrx/docqa-web/internal/models"
)

type fakeContent struct {
	html string
	text string
	log  *[]string
	name string
}

func (f *fakeContent) SetHTML(html string) {
	f.html = html
	f.text = ""
	*f.log = append(*f.log, f.name+".html")
}

func (f *fakeContent) SetText(text string) {
	f.text = text
	f.html = ""
	*f.log = append(*f.log, f.name+".text")
}

type fakePanel struct {
	visible  bool
	scrolled int
	log      *[]string
	name     string
}

func (f *fakePanel) SetVisible(v bool) {
	f.visible = v
	*f.log = append(*f.log, fmt.Sprintf("%s.visible=%t", f.name, v))
}

func (f *fakePanel) ScrollIntoView() {
	f.scrolled++
	*f.log = append(*f.log, f.name+".scroll")
}

type fakeButton struct {
	disabled bool
}

func (f *fakeButton) SetDisabled(d bool) { f.disabled = d }

type fakeTextArea struct {
	value   string
	heights []string
	scroll  int
}

func (f *fakeTextArea) Value() string      { return f.value }
func (f *fakeTextArea) SetHeight(h string) { f.heights = append(f.heights, h) }
func (f *fakeTextArea) ScrollHeight() int  { return f.scroll }

type fakeFileInput struct {
	file *models.SelectedFile
}

func (f *fakeFileInput) Selected() *models.SelectedFile { return f.file }

type fakeView struct {
	log []string

	fileUpload    fakeFileInput
	fileInfo      *fakeContent
	questions     fakeTextArea
	questionCount *fakeContent
	button        fakeButton
	buttonText    *fakePanel
	buttonLoading *fakePanel
	results       *fakePanel
	answers       *fakeContent
	errPanel      *fakePanel
	errMessage    *fakeContent
}

func newFakeView() *fakeView {
	v := &fakeView{}
	v.fileInfo = &fakeContent{log: &v.log, name: "fileInfo"}
	v.questionCount = &fakeContent{log: &v.log, name: "questionCount"}
	v.buttonText = &fakePanel{log: &v.log, name: "btnText"}
	v.buttonLoading = &fakePanel{log: &v.log, name: "btnLoading"}
	v.results = &fakePanel{log: &v.log, name: "results"}
	v.answers = &fakeContent{log: &v.log, name: "answers"}
	v.errPanel = &fakePanel{log: &v.log, name: "error"}
	v.errMessage = &fakeContent{log: &v.log, name: "errorMessage"}
	return v
}

func (v *fakeView) View() View {
	return View{
		FileUpload:       &v.fileUpload,
		FileInfo:         v.fileInfo,
		Questions:        &v.questions,
		QuestionCount:    v.questionCount,
		SubmitButton:     &v.button,
		ButtonText:       v.buttonText,
		ButtonLoading:    v.buttonLoading,
		Results:          v.results,
		AnswersContainer: v.answers,
		Error:            v.errPanel,
		ErrorMessage:     v.errMessage,
	}
}

type fakeSubmitter struct {
	mu       sync.Mutex
	calls    int
	resp     *models.UploadResponse
	err      error
	panicMsg string
	onSubmit func()
}

func (f *fakeSubmitter) Submit(ctx context.Context, file *models.SelectedFile, questions string) (*models.UploadResponse, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.onSubmit != nil {
		f.onSubmit()
	}
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	return f.resp, f.err
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}
