// Package catalog fetches product records from the upstream catalog API
// (a dummyjson-style endpoint returning {"products": [...]}).
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sheikhmdsamiul/productchat/internal/domain"
)

// Client fetches the product catalog over HTTP.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given URL. The timeout applies
// to the whole fetch so a slow upstream cannot stall callers indefinitely.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type productsPayload struct {
	Products []domain.ProductRecord `json:"products"`
}

// FetchProducts retrieves and validates the full product list. Transport
// errors and non-2xx responses surface as ErrUpstreamUnavailable with the
// upstream text preserved; malformed records surface as ErrValidation.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.ProductRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: catalog returned %s: %s", domain.ErrUpstreamUnavailable, resp.Status, string(body))
	}

	var payload productsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode catalog response: %v", domain.ErrUpstreamUnavailable, err)
	}

	for _, rec := range payload.Products {
		if err := rec.Validate(); err != nil {
			return nil, err
		}
	}
	return payload.Products, nil
}
