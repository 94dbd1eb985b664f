// Package client submits documents and questions to the Q&A backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/hackrx/docqa-web/internal/models"
)

// DefaultUploadPath is the backend endpoint that answers questions about a document.
const DefaultUploadPath = "/api/v1/hackrx/upload"

// ErrNoFile is returned when a submission has no selected file.
var ErrNoFile = errors.New("no file selected")

// ErrNoOutcome is returned when a response has neither an error nor an
// answers list.
var ErrNoOutcome = errors.New("response has no answers or error")

// Client talks to the backend upload endpoint.
type Client struct {
	baseURL    string
	uploadPath string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithUploadPath overrides the upload endpoint path.
func WithUploadPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.uploadPath = path
		}
	}
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		uploadPath: DefaultUploadPath,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UploadURL returns the absolute upload endpoint URL.
func (c *Client) UploadURL() string {
	return c.baseURL + c.uploadPath
}

// Submit posts file and the raw question text as a multipart form and
// decodes the response. The HTTP status is not inspected; a backend
// failure is reported through UploadResponse.Error.
func (c *Client) Submit(ctx context.Context, file *models.SelectedFile, questions string) (*models.UploadResponse, error) {
	if file == nil || file.Open == nil {
		return nil, ErrNoFile
	}

	body, contentType, err := buildBody(file, questions)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.UploadURL(), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json, application/msgpack")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posting upload: %w", err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp)
}

// Health probes the backend health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("probing backend: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

func buildBody(file *models.SelectedFile, questions string) (*bytes.Buffer, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("opening %s: %w", file.Name, err)
	}
	defer src.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, "", fmt.Errorf("creating file part: %w", err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return nil, "", fmt.Errorf("copying %s: %w", file.Name, err)
	}
	if err := w.WriteField("questions", questions); err != nil {
		return nil, "", fmt.Errorf("writing questions: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}

func decodeResponse(resp *http.Response) (*models.UploadResponse, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var out models.UploadResponse
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	switch mediaType {
	case "application/msgpack", "application/x-msgpack":
		if err := msgpack.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decoding msgpack response (status %d): %w", resp.StatusCode, err)
		}
	default:
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decoding JSON response (status %d): %w", resp.StatusCode, err)
		}
	}
	if !out.HasOutcome() {
		return nil, fmt.Errorf("%w (status %d)", ErrNoOutcome, resp.StatusCode)
	}

	return &out, nil
}
