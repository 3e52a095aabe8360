package backend

import (
	"context"

	"quickboard/internal/domain"
)

// Stats fetches the index counters
func (c *Client) Stats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats
	err := c.do(ctx, "GET", "/stats", nil, &stats)
	return stats, err
}
