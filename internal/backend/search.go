package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strconv"

	"quickboard/internal/domain"
)

type searchResponse struct {
	Query   string        `json:"query"`
	Mode    string        `json:"mode"`
	Results []domain.Item `json:"results"`
	Count   int           `json:"count"`
}

// Search runs a semantic search. after is a unix lower bound on created_ts;
// zero means no bound.
func (c *Client) Search(ctx context.Context, q string, k int, mode domain.Filter, after int64) ([]domain.Item, error) {
	query := url.Values{}
	query.Set("q", q)
	query.Set("k", strconv.Itoa(k))
	query.Set("mode", string(mode))
	if after > 0 {
		query.Set("after", strconv.FormatInt(after, 10))
	}

	var resp searchResponse
	if err := c.do(ctx, "GET", "/search", query, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func decodeJSON(r io.Reader, out interface{}) error {
	return json.NewDecoder(r).Decode(out)
}
