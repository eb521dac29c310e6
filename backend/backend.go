// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/homeboard/models"
)

var ErrUnknownEndpoint = errors.New("unknown endpoint")

// maxBodyBytes caps how much of a response Client will read
const maxBodyBytes = 8 << 20

// Backend performs one request against the backend collaborator
type Backend interface {
	PerformAction(ctx context.Context, endpoint string, payload any) (json.RawMessage, error)
}

// Func adapts an ordinary function to Backend
type Func func(ctx context.Context, endpoint string, payload any) (json.RawMessage, error)

func (f Func) PerformAction(ctx context.Context, endpoint string, payload any) (json.RawMessage, error) {
	return f(ctx, endpoint, payload)
}

// StatusError is returned when the API answers with a non-2xx status
type StatusError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: status %d", e.Endpoint, e.StatusCode)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client for the API at baseURL.
// A nil httpClient gets a client with a 10 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// PerformAction handles one request/response round trip
func (c *Client) PerformAction(ctx context.Context, endpoint string, payload any) (json.RawMessage, error) {
	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")

	method := http.MethodGet
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s payload: %w", endpoint, err)
		}
		method = http.MethodPost
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", endpoint, err)
	}

	slog.Debug("backend request completed",
		"method", method,
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
		var apiErr models.ErrorResponse
		if json.Unmarshal(raw, &apiErr) == nil {
			statusErr.Message = apiErr.Message
		}
		return nil, statusErr
	}

	return json.RawMessage(raw), nil
}
