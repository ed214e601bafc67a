// Package cataloghttp is the cart's client for the catalog API: product
// lookup via GET /products/{id} and stock lookup via GET /stock/{id}.
package cataloghttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rocketshoes/cart-service/internal/cart/domain"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Product(ctx context.Context, productID int64) (domain.Product, error) {
	var product domain.Product
	if err := c.getJSON(ctx, fmt.Sprintf("%s/products/%d", c.baseURL, productID), &product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

func (c *Client) Stock(ctx context.Context, productID int64) (int64, error) {
	var stock struct {
		ID     int64 `json:"id"`
		Amount int64 `json:"amount"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("%s/stock/%d", c.baseURL, productID), &stock); err != nil {
		return 0, err
	}
	return stock.Amount, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog responded %d for %s", resp.StatusCode, url)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}
	return nil
}
