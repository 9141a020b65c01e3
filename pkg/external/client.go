// Package external provides the client for the external fleet-management
// system's notification endpoint.
//
// Deliveries are authenticated with a bearer API key and bounded by a hard
// 10-second timeout. A zero-value base URL means no external system is
// configured; callers decide what that means for them.
package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// requestTimeout bounds every outbound delivery attempt.
const requestTimeout = 10 * time.Second

// Client sends notification envelopes to the external system.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a Client for the given base URL and API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// Configured reports whether an external endpoint is set.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// URL returns the configured base URL, empty when unconfigured.
func (c *Client) URL() string {
	return c.baseURL
}

// Response captures the external system's reply to a delivery.
type Response struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Send POSTs the envelope to {baseURL}/notifications and returns the parsed
// reply. Any non-2xx status is an error.
func (c *Client) Send(ctx context.Context, envelope any) (Response, error) {
	body, err := json.Marshal(envelope)
	if err != nil {
		return Response{}, fmt.Errorf("marshal envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/notifications", bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Response{}, fmt.Errorf("external API error: %s", resp.Status)
	}

	if !json.Valid(data) {
		data, _ = json.Marshal(string(data))
	}

	return Response{Status: resp.StatusCode, Data: data}, nil
}
