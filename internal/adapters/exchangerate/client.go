// Package exchangerate talks to the external USD quote endpoint.
package exchangerate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	portssvc "github.com/SscSPs/business_dashboard/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const baseCurrency = "USD"

// maxBodyBytes caps how much of a quote response is read.
const maxBodyBytes = 1 << 20

var (
	ErrUnexpectedStatus = errors.New("unexpected status from exchange rate endpoint")
	ErrMalformedPayload = errors.New("malformed exchange rate payload")
	ErrRateMissing      = errors.New("exchange rate missing from payload")
)

var placeholderKeys = map[string]struct{}{
	"changeme":    {},
	"placeholder": {},
	"none":        {},
	"null":        {},
	"xxx":         {},
	"test":        {},
}

// Client fetches USD quotes from an exchangerate.host compatible endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient replaces the pooled default HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// NewClient creates a quote client. Per-request deadlines come from the caller's context.
func NewClient(baseURL, apiKey string, options ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: newPooledHTTPClient(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

var _ portssvc.ExternalRateSource = (*Client)(nil)

func newPooledHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   2,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		ForceAttemptHTTP2:     true,
	}
	return &http.Client{Transport: transport}
}

// IsConfigured reports whether the endpoint and a plausible access key are set.
// Empty keys, keys containing whitespace and obvious placeholders are rejected.
func (c *Client) IsConfigured() bool {
	if c.baseURL == "" || c.apiKey == "" {
		return false
	}
	if strings.ContainsAny(c.apiKey, " \t\r\n") {
		return false
	}
	lower := strings.ToLower(c.apiKey)
	if _, ok := placeholderKeys[lower]; ok {
		return false
	}
	return !strings.HasPrefix(lower, "your")
}

type quoteResponse struct {
	Success *bool                      `json:"success"`
	Rates   map[string]decimal.Decimal `json:"rates"`
	Error   *struct {
		Info string `json:"info"`
	} `json:"error"`
}

// FetchUSDRate returns targetCurrency units per 1 USD.
func (c *Client) FetchUSDRate(ctx context.Context, targetCurrency string) (decimal.Decimal, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid exchange rate endpoint: %w", err)
	}
	q := endpoint.Query()
	q.Set("access_key", c.apiKey)
	q.Set("base", baseCurrency)
	q.Set("symbols", targetCurrency)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build exchange rate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("exchange rate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decimal.Zero, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var payload quoteResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if payload.Success != nil && !*payload.Success {
		info := "request rejected"
		if payload.Error != nil && payload.Error.Info != "" {
			info = payload.Error.Info
		}
		return decimal.Zero, fmt.Errorf("%w: %s", ErrMalformedPayload, info)
	}

	rate, ok := payload.Rates[strings.ToUpper(targetCurrency)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrRateMissing, targetCurrency)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: non-positive rate %s", ErrMalformedPayload, rate)
	}
	return rate, nil
}
