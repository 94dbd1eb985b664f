// Package render builds the HTML fragments shown by the Q&A form.
package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/hackrx/docqa-web/internal/models"
)

// Placeholder is shown in the file info area while no file is selected.
const Placeholder = `<span class="placeholder">Choose a PDF, DOCX, or TXT file</span>`

// boldPattern matches **text** pairs, non-greedy, within a single line.
var boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

// EscapeHTML escapes text so it is never interpreted as markup.
func EscapeHTML(text string) string {
	return html.EscapeString(text)
}

// FormatSizeKB formats a byte count as kilobytes with two decimals.
func FormatSizeKB(size int64) string {
	return fmt.Sprintf("%.2f", float64(size)/1024)
}

// FileInfo renders the name and size of the selected file, or the
// placeholder when file is nil.
func FileInfo(file *models.SelectedFile) string {
	if file == nil {
		return Placeholder
	}
	return fmt.Sprintf(
		`<div class="file-name"><span>✅</span><span>%s</span></div><div class="file-size">%s KB</div>`,
		EscapeHTML(file.Name), FormatSizeKB(file.Size),
	)
}

// FormatAnswer escapes text and then applies the supported markdown subset:
// **bold** spans and line breaks. There is no escape for "**"; any pair of
// markers becomes bold.
func FormatAnswer(text string) string {
	out := EscapeHTML(text)
	out = boldPattern.ReplaceAllString(out, "<strong>$1</strong>")
	return strings.ReplaceAll(out, "\n", "<br>")
}

// AnswerCard renders a single answer; index is zero-based.
func AnswerCard(index int, a models.Answer) string {
	var b strings.Builder
	b.WriteString(`<div class="answer-card">`)
	fmt.Fprintf(&b, `<div class="answer-question"><strong>Q%d:</strong> %s</div>`, index+1, EscapeHTML(a.Question))
	fmt.Fprintf(&b, `<div class="answer-text">%s</div>`, FormatAnswer(a.Answer))
	b.WriteString(`</div>`)
	return b.String()
}

// Answers renders one card per answer in the given order.
func Answers(answers []models.Answer) string {
	var b strings.Builder
	for i, a := range answers {
		b.WriteString(AnswerCard(i, a))
	}
	return b.String()
}
