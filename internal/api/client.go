// Package api implements the HTTP client for the remote reporting
// service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/modepsa/hornotui/internal/model"
)

const defaultTimeout = 30 * time.Second

// Client talks to the reporting endpoints under a common base URL,
// e.g. http://192.168.10.44:5000/api.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New builds a client. A non-positive timeout falls back to the
// default.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// FetchReport requests one page of the furnace report.
func (c *Client) FetchReport(ctx context.Context, payload model.ReportPayload) (*model.ReportResponse, error) {
	resp, err := c.post(ctx, "/reportes/hornos", payload)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp)
	}
	var out model.ReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode report response: %w", err)
	}
	if !out.Success {
		if out.Error == "" {
			out.Error = "respuesta no satisfactoria"
		}
		return nil, fmt.Errorf("report request rejected: %s", out.Error)
	}
	return &out, nil
}

// ExportExcel requests the spreadsheet rendition of the filtered
// report and returns the binary body.
func (c *Client) ExportExcel(ctx context.Context, payload model.ReportPayload) ([]byte, error) {
	resp, err := c.post(ctx, "/reportes/hornos/excel", payload)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("server returned an empty spreadsheet")
	}
	return data, nil
}

func (c *Client) post(ctx context.Context, path string, payload model.ReportPayload) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// errorFromResponse converts a non-2xx reply into a single error,
// preferring the server's JSON error envelope over the raw status.
func errorFromResponse(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
		return fmt.Errorf("server error: %s", envelope.Error)
	}
	return fmt.Errorf("unexpected status: %s", resp.Status)
}
