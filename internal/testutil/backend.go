// backend.go - Fake Q&A backend for handler and client tests
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/hackrx/docqa-web/internal/models"
)

// ReceivedUpload is what the fake backend saw in one upload request.
type ReceivedUpload struct {
	FileName    string
	FileContent []byte
	Questions   string
	ContentType string
}

// FakeBackend is an httptest server that mimics the upload endpoint.
type FakeBackend struct {
	Server *httptest.Server

	mu       sync.Mutex
	uploads  []ReceivedUpload
	status   int
	response interface{}
	raw      []byte
	msgpack  bool
}

// NewFakeBackend starts a fake backend that answers every upload with an
// empty answer list until configured otherwise. It is closed with the test.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	b := &FakeBackend{
		status:   http.StatusOK,
		response: models.UploadResponse{Answers: []models.Answer{}},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/hackrx/upload", b.handleUpload)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	b.Server = httptest.NewServer(mux)
	t.Cleanup(b.Server.Close)
	return b
}

// URL returns the base URL of the fake backend.
func (b *FakeBackend) URL() string {
	return b.Server.URL
}

// RespondJSON sets the JSON payload and status for later uploads.
func (b *FakeBackend) RespondJSON(status int, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = status
	b.response = payload
	b.raw = nil
	b.msgpack = false
}

// RespondMsgpack sets a msgpack-encoded payload for later uploads.
func (b *FakeBackend) RespondMsgpack(payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = http.StatusOK
	b.response = payload
	b.raw = nil
	b.msgpack = true
}

// RespondRaw sets a literal body, e.g. an HTML error page.
func (b *FakeBackend) RespondRaw(status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = status
	b.raw = []byte(body)
	b.msgpack = false
}

// Uploads returns every upload received so far.
func (b *FakeBackend) Uploads() []ReceivedUpload {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]ReceivedUpload, len(b.uploads))
	copy(out, b.uploads)
	return out
}

func (b *FakeBackend) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	received := ReceivedUpload{
		ContentType: r.Header.Get("Content-Type"),
		Questions:   r.FormValue("questions"),
	}
	if file, header, err := r.FormFile("file"); err == nil {
		received.FileName = header.Filename
		received.FileContent, _ = io.ReadAll(file)
		file.Close()
	}

	b.mu.Lock()
	b.uploads = append(b.uploads, received)
	status, payload, raw, useMsgpack := b.status, b.response, b.raw, b.msgpack
	b.mu.Unlock()

	switch {
	case raw != nil:
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(status)
		w.Write(raw)
	case useMsgpack:
		data, _ := msgpack.Marshal(payload)
		w.Header().Set("Content-Type", "application/msgpack")
		w.WriteHeader(status)
		w.Write(data)
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(payload)
	}
}
