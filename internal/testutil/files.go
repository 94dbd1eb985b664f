package testutil

import (
	"bytes"
	"errors"
	"io"

	"github.com/hackrx/docqa-web/internal/models"
)

// NewSelectedFile returns an in-memory SelectedFile with the given content.
func NewSelectedFile(name string, data []byte) *models.SelectedFile {
	return &models.SelectedFile{
		Name: name,
		Size: int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// NewUnreadableFile returns a SelectedFile whose contents cannot be opened.
func NewUnreadableFile(name string, size int64) *models.SelectedFile {
	return &models.SelectedFile{
		Name: name,
		Size: size,
		Open: func() (io.ReadCloser, error) {
			return nil, errors.New("permission denied")
		},
	}
}
