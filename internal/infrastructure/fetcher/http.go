package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"ProgramAdvisor/internal/ports"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/120.0.0.0 Safari/537.36"

// Error marks a network-layer failure; callers distinguish it from the
// extractor's parse errors with errors.As.
type Error struct {
	URL string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPFetcher downloads program pages with desktop-browser headers.
type HTTPFetcher struct {
	client *http.Client
}

var _ ports.PageFetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher wires an HTTP client; the default has a 15s timeout.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPFetcher{client: client}
}

// FetchPage performs a single GET and returns the raw document body.
func (f *HTTPFetcher) FetchPage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ru,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}

	return body, nil
}
