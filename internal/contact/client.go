package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Submitter delivers a form and reports the server's verdict. A non-nil
// error means no verdict was obtained.
type Submitter interface {
	Submit(ctx context.Context, f Form) (Result, error)
}

// Client posts forms to a contact API endpoint.
type Client struct {
	Endpoint string
	HTTP     *http.Client
}

// NewClient returns a client for endpoint with a bounded timeout.
func NewClient(endpoint string) *Client {
	return &Client{Endpoint: endpoint, HTTP: &http.Client{Timeout: 15 * time.Second}}
}

// Submit issues one POST of f as JSON and decodes the {success,message}
// reply, whatever the status code.
func (c *Client) Submit(ctx context.Context, f Form) (Result, error) {
	body, err := json.Marshal(f)
	if err != nil {
		return Result{}, fmt.Errorf("encoding form: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("posting contact form: %w", err)
	}
	defer resp.Body.Close()

	var res Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return Result{}, fmt.Errorf("decoding contact reply (status %d): %w", resp.StatusCode, err)
	}
	return res, nil
}
