// Package workerclient is the gateway's HTTP client for the
// reconstruction worker.
package workerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/TheSupremeTaco/RenderSpace/internal/models"
)

// StatusError reports a non-2xx answer from the worker. Status and body
// are preserved verbatim so the gateway can surface them to the caller
// and "worker rejected the job" stays distinguishable from "gateway
// misconfigured".
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("worker returned status %d, body: %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Reconstruct forwards a job to the worker's /reconstruct endpoint and
// decodes its response. One shot, no retries: a failed dispatch is
// terminal for the current request.
func (c *Client) Reconstruct(ctx context.Context, job models.ReconstructRequest) (map[string]interface{}, error) {
	jsonData, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + "/reconstruct"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach worker: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	return result, nil
}
