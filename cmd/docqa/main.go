// Command docqa asks questions about a document through the Q&A backend
// and prints the rendered answers.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"

	"github.com/hackrx/docqa-web/internal/client"
	"github.com/hackrx/docqa-web/internal/controller"
	"github.com/hackrx/docqa-web/internal/models"
)

var cli struct {
	Backend       string        `help:"Base URL of the Q&A backend" default:"http://localhost:8000" env:"BACKEND_URL"`
	UploadPath    string        `help:"Upload endpoint path on the backend" default:"/api/v1/hackrx/upload"`
	Timeout       time.Duration `help:"Request timeout, 0 waits indefinitely" default:"0s"`
	Questions     []string      `short:"q" sep:"none" help:"Question to ask; repeat for several" xor:"questions"`
	QuestionsFile string        `help:"File with one question per line" type:"existingfile" xor:"questions"`
	Out           string        `short:"o" help:"Write the answers HTML to this file instead of stdout" type:"path"`
	Verbose       bool          `short:"v" help:"Log transport errors"`

	File string `arg:"" help:"Document to ask about (PDF, DOCX, EML, MSG)" type:"existingfile"`
}

func main() {
	_ = godotenv.Load()
	kctx := kong.Parse(&cli,
		kong.Name("docqa"),
		kong.Description("Ask questions about a document."),
	)

	questions, err := questionText()
	kctx.FatalIfErrorf(err)

	view, err := newTerminalView(os.Stderr, cli.File, questions)
	kctx.FatalIfErrorf(err)

	logger := log.New("docqa")
	logger.SetLevel(log.OFF)
	if cli.Verbose {
		logger.SetLevel(log.ERROR)
	}

	qa := client.New(cli.Backend,
		client.WithUploadPath(cli.UploadPath),
		client.WithTimeout(cli.Timeout),
	)
	ctrl := controller.New(view.View(), qa, controller.WithLogger(logger))
	ctrl.OnFileChange()
	ctrl.OnQuestionsInput()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctrl.Submit(ctx)

	if ctrl.Mode() == models.ModeError {
		fmt.Fprintln(os.Stderr, "Error:", view.errorMessage.text)
		os.Exit(1)
	}

	html := view.answers.html + "\n"
	if cli.Out == "" {
		fmt.Print(html)
		return
	}
	kctx.FatalIfErrorf(os.WriteFile(cli.Out, []byte(html), 0644))
	fmt.Fprintf(os.Stderr, "Answers written to %s\n", cli.Out)
}

func questionText() (string, error) {
	if cli.QuestionsFile != "" {
		data, err := os.ReadFile(cli.QuestionsFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if len(cli.Questions) == 0 {
		return "", fmt.Errorf("at least one question is required (use -q or --questions-file)")
	}
	return strings.Join(cli.Questions, "\n"), nil
}
