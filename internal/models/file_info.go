// Package models contains domain types for the document Q&A form.
package models

import "io"

// SelectedFile is the document picked in the file input.
type SelectedFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"` // bytes

	// Open returns the file contents. It may be called once per submission.
	Open func() (io.ReadCloser, error) `json:"-"`
}
