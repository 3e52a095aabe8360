package backend

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"quickboard/internal/domain"
)

type recentResponse struct {
	Count        int           `json:"count"`
	SourceFilter string        `json:"source_filter"`
	Items        []domain.Item `json:"items"`
}

// RecentItems fetches the newest items, newest first. source narrows to one
// capture source when non-empty; after is a unix lower bound (0 = none).
func (c *Client) RecentItems(ctx context.Context, limit int, source domain.Source, after int64) ([]domain.Item, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if source != "" {
		query.Set("source", string(source))
	}
	if after > 0 {
		query.Set("after", strconv.FormatInt(after, 10))
	}

	var resp recentResponse
	if err := c.do(ctx, "GET", "/items/recent", query, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Item fetches a single item by id
func (c *Client) Item(ctx context.Context, id int64) (domain.Item, error) {
	var item domain.Item
	err := c.do(ctx, "GET", fmt.Sprintf("/item/%d", id), nil, &item)
	return item, err
}

// DeleteItem removes an item from the backend
func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/item/%d", id), nil, nil)
}

// ItemImage fetches the stored image bytes for a screenshot item
func (c *Client) ItemImage(ctx context.Context, id int64) ([]byte, error) {
	body, err := c.raw(ctx, "GET", fmt.Sprintf("/item/%d/image", id), nil)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading image body: %v", ErrUnreachable, err)
	}
	return data, nil
}
