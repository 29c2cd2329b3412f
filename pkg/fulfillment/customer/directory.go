// Package customer provides the client for the external customer registry.
package customer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// Directory answers whether a customer account is active. It satisfies
// shippingorder.CustomerDirectory.
type Directory struct {
	baseURL string
	client  *http.Client
}

func NewDirectory(baseURL string) *Directory {
	return &Directory{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (d *Directory) IsActiveCustomer(ctx context.Context, customerID string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/customer/%s", d.baseURL, customerID), nil)
	if err != nil {
		return false, err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return false, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, fmt.Errorf("customer registry returned status %d", resp.StatusCode)
	}

	var record struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return false, err
	}
	return record.Active, nil
}
