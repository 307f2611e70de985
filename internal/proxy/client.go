// Package proxy talks to the backend service on behalf of the UI.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var ErrInvalidResponse = errors.New("backend returned a non-JSON response")

// Reply is a backend response relayed without interpretation.
type Reply struct {
	StatusCode int
	Body       json.RawMessage
}

type BackendClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewBackendClient(baseURL string, timeout time.Duration) *BackendClient {
	return &BackendClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *BackendClient) Logs(ctx context.Context) (*Reply, error) {
	return c.do(ctx, http.MethodGet, "/logs", nil)
}

func (c *BackendClient) StartIO(ctx context.Context) (*Reply, error) {
	return c.do(ctx, http.MethodPost, "/io/start", nil)
}

// WriteIO forwards body as-is.
func (c *BackendClient) WriteIO(ctx context.Context, body []byte) (*Reply, error) {
	return c.do(ctx, http.MethodPost, "/io/write", body)
}

func (c *BackendClient) ReadIO(ctx context.Context) (*Reply, error) {
	return c.do(ctx, http.MethodGet, "/io/read", nil)
}

func (c *BackendClient) do(ctx context.Context, method, path string, body []byte) (*Reply, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w (status %d)", ErrInvalidResponse, resp.StatusCode)
	}
	return &Reply{StatusCode: resp.StatusCode, Body: raw}, nil
}
