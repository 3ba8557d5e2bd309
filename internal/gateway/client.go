// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the gateway client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeInvalidResponse
	ErrTypeEmptyResponse
)

// Sentinel errors for easy checking.
var (
	ErrTimeout       = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrEmptyResponse = &ClientError{Type: ErrTypeEmptyResponse, Message: "endpoint returned no response text"}
)

// IsEmptyResponse reports whether err is a success-with-no-payload failure.
func IsEmptyResponse(err error) bool {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Type == ErrTypeEmptyResponse
	}
	return false
}

// IsTimeout reports whether err is a timeout.
func IsTimeout(err error) bool {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Type == ErrTypeTimeout
	}
	return false
}

// IsTransport reports whether err is a transport-class failure
// (connection, timeout, non-2xx status, or undecodable body).
func IsTransport(err error) bool {
	var ce *ClientError
	if errors.As(err, &ce) {
		switch ce.Type {
		case ErrTypeConnection, ErrTypeTimeout, ErrTypeInvalidResponse:
			return true
		}
	}
	return false
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// ChatRequest is the request body for the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
	Model   string `json:"model"`
}

// ChatResponse is the expected response body from the chat endpoint.
type ChatResponse struct {
	Response string `json:"response"`
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the gateway client.
type ClientConfig struct {
	// BaseURL is the inference endpoint base URL (default: http://127.0.0.1:8000)
	// Note: Uses explicit IPv4 address instead of localhost to avoid IPv6 resolution issues on Windows
	BaseURL string

	// Timeout for requests. Zero means no operation-level timeout: a hung
	// endpoint keeps the session in its sending state until the transport
	// gives up on its own.
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: "http://127.0.0.1:8000",
		Timeout: 0,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// chatPath is the single endpoint the client talks to.
const chatPath = "/api/chat"

// Client handles communication with the inference endpoint.
// It is safe for concurrent use, though the session controller only ever
// keeps one request in flight.
//
// Example:
//
//	client := gateway.NewClient()
//	reply, err := client.Send(ctx, "hello", "google/gemma-2-2b-it")
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new gateway client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new gateway client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:8000"
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// BaseURL returns the configured endpoint base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Send performs a single chat request and returns the response text.
//
// Exactly one attempt is made; there is no retry or backoff. Failures are
// classified: transport problems (connection refused, timeout, non-2xx,
// undecodable body) come back as transport-class ClientErrors, while a
// well-formed 2xx response whose response field is empty or missing comes
// back as ErrEmptyResponse.
func (c *Client) Send(ctx context.Context, text string, model string) (string, error) {
	body, err := json.Marshal(ChatRequest{Message: text, Model: model})
	if err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+chatPath, bytes.NewReader(body))
	if err != nil {
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to reach endpoint", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &ClientError{
			Type:    ErrTypeInvalidResponse,
			Message: "unexpected status from endpoint: " + resp.Status,
		}
	}

	var result ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	if strings.TrimSpace(result.Response) == "" {
		return "", ErrEmptyResponse
	}

	return result.Response, nil
}
