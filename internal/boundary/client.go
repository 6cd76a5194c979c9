package boundary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// DefaultURL points at the public US-states GeoJSON used by the map view.
const DefaultURL = "https://raw.githubusercontent.com/PublicaMundi/MappingAPI/master/data/geojson/us-states.json"

// Client fetches and caches the state boundary GeoJSON. The file changes
// essentially never, so one successful fetch serves the process lifetime.
type Client struct {
	url        string
	httpClient *http.Client

	mu     sync.RWMutex
	cached []byte
}

// NewClient creates a boundary client for the given URL.
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the boundary file and caches it. The body must parse as
// JSON; a bad payload is rejected rather than cached.
func (c *Client) Fetch(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("boundary fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("boundary read: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("boundary fetch: %d %s", resp.StatusCode, c.url)
	}
	if !json.Valid(body) {
		return fmt.Errorf("boundary fetch: invalid JSON from %s", c.url)
	}

	c.mu.Lock()
	c.cached = body
	c.mu.Unlock()
	return nil
}

// Cached returns the boundary GeoJSON, or false if no fetch has succeeded.
func (c *Client) Cached() ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cached, c.cached != nil
}
