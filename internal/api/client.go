// Package api is the HTTP boundary with the partner backend: a thin JSON
// transport client plus one service per endpoint family. Request and response
// bodies use the persistence-shape field names; translation to app shapes
// happens in internal/mapping, never here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTimeout is the client-side request deadline. A request that exceeds
// it is reported the same way as any other network failure.
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the bearer token for authenticated requests. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client issues JSON requests against the backend and converts every failure
// into an *APIError carrying a user-facing message.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        *logrus.Logger
}

// NewClient creates a transport client. A zero timeout falls back to
// DefaultTimeout; a nil logger discards transport logs.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log *logrus.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		log:        log,
	}
}

// Get issues a GET and decodes the response body into out when out != nil.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// Upload issues a multipart POST with a single file part plus extra form
// fields, decoding the response into out when out != nil.
func (c *Client) Upload(ctx context.Context, path, fileName string, file io.Reader, fields map[string]string, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return &APIError{Message: networkMessage}
	}
	if _, err := io.Copy(part, file); err != nil {
		return &APIError{Message: networkMessage}
	}
	for key, value := range fields {
		_ = writer.WriteField(key, value)
	}
	if err := writer.Close(); err != nil {
		return &APIError{Message: networkMessage}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return &APIError{Message: networkMessage}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.send(req, out)
}

// HealthCheck reports whether the backend answers its health endpoint.
func (c *Client) HealthCheck(ctx context.Context) bool {
	return c.Get(ctx, "/health", nil) == nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: fmt.Sprintf("failed to encode request: %v", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &APIError{Message: networkMessage}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.log.WithFields(logrus.Fields{
		"method": req.Method,
		"url":    req.URL.String(),
	}).Debug("http request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).Warn("http request failed")
		return &APIError{Message: networkMessage}
	}
	defer resp.Body.Close()

	c.log.WithFields(logrus.Fields{
		"status": resp.StatusCode,
		"url":    req.URL.String(),
	}).Debug("http response")

	if resp.StatusCode >= 400 {
		var body errorBody
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &body)
		return &APIError{
			Status:  resp.StatusCode,
			Code:    body.Code,
			Message: userMessage(resp.StatusCode, body),
			Errors:  body.Errors,
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{
			Status:  resp.StatusCode,
			Message: "An unexpected error occurred.",
		}
	}
	return nil
}
