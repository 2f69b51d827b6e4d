// Package http provides net/http-backed implementations: the catalog page
// fetcher and the invoice web form server.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	buddy "github.com/LukasGLars/construction-buddy"
)

// DefaultFetchTimeout is the default timeout for catalog requests. Flipbook
// pages embed the full text of every catalog page, so responses run large.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements buddy.Fetcher at compile time.
var _ buddy.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves catalog HTML using plain HTTP requests. It does not
// execute JavaScript; catalogs that only inject their page text client-side
// need the rod-based fetcher instead.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
