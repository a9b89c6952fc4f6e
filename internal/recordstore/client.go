// Package recordstore is the HTTP client for the remote employee record
// store. The store owns persistence; this client only exchanges the plain
// data shapes the portal consumes.
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/noah-isme/emp-portal-api/internal/models"
	"github.com/noah-isme/emp-portal-api/pkg/config"
)

// Client talks to the record store.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient builds a client from config.
func NewClient(cfg config.RecordStoreConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

type idsPayload struct {
	IDs []int64 `json:"ids"`
}

type restoreResponse struct {
	RestoredEmployees []models.Employee `json:"restoredEmployees"`
}

type recycleCountResponse struct {
	RecycleCount int `json:"recycleCount"`
}

type requestsCountResponse struct {
	RequestsCount int `json:"requestsCount"`
}

// FetchAll returns the full ordered employee list.
func (c *Client) FetchAll(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := c.do(ctx, http.MethodGet, "/employees", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// FetchRecycled returns the recycled employees, each carrying deletedOn and a
// worker classification tag.
func (c *Client) FetchRecycled(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := c.do(ctx, http.MethodGet, "/employees/recycled", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// MoveToRecycle soft-deletes the given employees.
func (c *Client) MoveToRecycle(ctx context.Context, ids []int64) error {
	return c.do(ctx, http.MethodPut, "/employees/recycle", idsPayload{IDs: ids}, nil)
}

// Restore brings recycled employees back and returns the restored records.
func (c *Client) Restore(ctx context.Context, ids []int64) ([]models.Employee, error) {
	var resp restoreResponse
	if err := c.do(ctx, http.MethodPut, "/employees/restore", idsPayload{IDs: ids}, &resp); err != nil {
		return nil, err
	}
	return resp.RestoredEmployees, nil
}

// PermanentDelete destroys recycled employees.
func (c *Client) PermanentDelete(ctx context.Context, ids []int64) error {
	return c.do(ctx, http.MethodDelete, "/employees/permanent", idsPayload{IDs: ids}, nil)
}

// RecycleCount returns the shared recycle-bin counter.
func (c *Client) RecycleCount(ctx context.Context) (int, error) {
	var resp recycleCountResponse
	if err := c.do(ctx, http.MethodGet, "/counters/recycle", nil, &resp); err != nil {
		return 0, err
	}
	return resp.RecycleCount, nil
}

// PendingRequestCount returns the shared pending-request counter.
func (c *Client) PendingRequestCount(ctx context.Context) (int, error) {
	var resp requestsCountResponse
	if err := c.do(ctx, http.MethodGet, "/counters/requests", nil, &resp); err != nil {
		return 0, err
	}
	return resp.RequestsCount, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, dest interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("record store %s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("record store request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("record store %s %s: status %d", method, path, resp.StatusCode)
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
