// Package market fetches token pair snapshots from the DEX Screener API
package market

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/raykavin/dexscout/pkg/core"
	"github.com/raykavin/dexscout/pkg/logger"
)

const (
	DefaultEndpoint = "https://api.dexscreener.com/latest/dex/tokens"
	DefaultTimeout  = 10 * time.Second
)

// Client performs a single GET per Fetch call. There is no retry and no cache.
type Client struct {
	endpoint string
	client   *http.Client
	log      logger.Logger
}

// Option configures a Client
type Option func(*Client)

// WithTimeout bounds the whole request, including reading the body. The
// current http.Client is copied, never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		client := *c.client
		client.Timeout = d
		c.client = &client
	}
}

// WithHTTPClient replaces the underlying http.Client. A nil client is ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// WithEndpoint points the client at another URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// NewClient creates a DEX Screener client for the fixed pairs endpoint.
func NewClient(log logger.Logger, options ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		client:   &http.Client{Timeout: DefaultTimeout},
		log:      log,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Endpoint returns the URL queried by Fetch.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Fetch implements core.Fetcher.
func (c *Client) Fetch(ctx context.Context) (core.MarketResponse, error) {
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return core.MarketResponse{}, c.fail(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return core.MarketResponse{}, c.fail(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return core.MarketResponse{}, &core.FetchError{Endpoint: c.endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.MarketResponse{}, c.fail(fmt.Errorf("read body: %w", err))
	}

	parsed, err := core.ParseMarketResponse(body)
	if err != nil {
		return core.MarketResponse{}, c.fail(err)
	}

	c.log.WithFields(map[string]any{
		"endpoint": c.endpoint,
		"bytes":    len(body),
		"pairs":    len(parsed.Pairs()),
		"elapsed":  time.Since(started).String(),
	}).Debug("token data fetched")

	return parsed, nil
}

func (c *Client) fail(err error) error {
	return &core.FetchError{Endpoint: c.endpoint, Err: err}
}
