package voucher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/goccy/go-json"
)

type ClientOption func(c *_Client)

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *_Client) {
		c.client = client
	}
}

func WithMaxRetry(maxRetry uint) ClientOption {
	return func(c *_Client) {
		c.maxRetry = maxRetry
	}
}

// _Client talks to the voucher system over REST. Redeem is NOT retried: the
// voucher system treats redemption as exactly-once and a timed-out first
// attempt may still have landed.
type _Client struct {
	baseURL  string
	client   *http.Client
	maxRetry uint
}

func NewClient(baseURL string, opts ...ClientOption) Service {
	c := &_Client{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		maxRetry: 3,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *_Client) Redeem(ctx context.Context, ts int64, voucherID string, actor string) error {
	return c.post(ctx, fmt.Sprintf("%s/voucher/%s/redeem", c.baseURL, voucherID), map[string]any{
		"timestamp": ts,
		"actor":     actor,
	})
}

func (c *_Client) LockForFulfillment(ctx context.Context, ts int64, voucherID string, shippingOrderID string, actor string) error {
	return c.postWithRetry(ctx, fmt.Sprintf("%s/voucher/%s/lock", c.baseURL, voucherID), map[string]any{
		"timestamp":         ts,
		"shipping_order_id": shippingOrderID,
		"actor":             actor,
	})
}

func (c *_Client) Unlock(ctx context.Context, ts int64, voucherID string, actor string) error {
	return c.postWithRetry(ctx, fmt.Sprintf("%s/voucher/%s/unlock", c.baseURL, voucherID), map[string]any{
		"timestamp": ts,
		"actor":     actor,
	})
}

func (c *_Client) CheckFulfillmentEligibility(ctx context.Context, voucherID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/voucher/%s/fulfillment_eligibility", c.baseURL, voucherID), nil)
	if err != nil {
		return err
	}
	return c.do(req)
}

func (c *_Client) post(ctx context.Context, url string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *_Client) postWithRetry(ctx context.Context, url string, payload map[string]any) error {
	return retry.Do(
		func() error { return c.post(ctx, url, payload) },
		retry.Context(ctx),
		retry.Attempts(c.maxRetry),
		retry.LastErrorOnly(true),
	)
}

func (c *_Client) do(req *http.Request) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("voucher service returned status %d for %s", resp.StatusCode, req.URL.Path)
	}
	return nil
}
