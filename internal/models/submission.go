package models

import "time"

// Mode represents the display state of the form.
type Mode string

const (
	ModeIdle       Mode = "idle"
	ModeSubmitting Mode = "submitting"
	ModeResults    Mode = "results"
	ModeError      Mode = "error"
)

// Settled reports whether a submission in this mode has finished.
func (m Mode) Settled() bool {
	return m == ModeResults || m == ModeError
}

// Submission records one submit cycle handled by the server.
type Submission struct {
	ID            string     `json:"id"`
	FileName      string     `json:"fileName"`
	FileSize      int64      `json:"fileSize"`
	QuestionCount int        `json:"questionCount"`
	Status        Mode       `json:"status"`
	AnswerCount   int        `json:"answerCount,omitempty"`
	Error         string     `json:"error,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// NewSubmission creates a Submission in idle status.
func NewSubmission(id, fileName string, fileSize int64, questionCount int) *Submission {
	return &Submission{
		ID:            id,
		FileName:      fileName,
		FileSize:      fileSize,
		QuestionCount: questionCount,
		Status:        ModeIdle,
		CreatedAt:     time.Now(),
	}
}
