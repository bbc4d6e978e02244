package notesdk

import (
	"context"
	"net/http"
)

// Health checks if the service is alive.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/api/health")
}

// Ready checks if the service can reach its database.
func (c *Client) Ready(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/api/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
