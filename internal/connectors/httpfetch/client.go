package httpfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rfam/rfamops/internal/core/domain"
	"github.com/rfam/rfamops/internal/core/ports/driven"
	"github.com/rfam/rfamops/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.ResourceFetcher = (*Client)(nil)

// Client retrieves remote resources with a timeout and shared rate limiting.
type Client struct {
	http        *http.Client
	rateLimiter *RateLimiter
	userAgent   string
}

// NewClient creates a fetcher from cfg.
func NewClient(cfg Config) *Client {
	return NewClientWithHTTPClient(&http.Client{}, cfg)
}

// NewClientWithHTTPClient creates a fetcher around a custom http.Client.
// The client's Timeout is overwritten with cfg.Timeout when set.
func NewClientWithHTTPClient(httpClient *http.Client, cfg Config) *Client {
	if cfg.Timeout > 0 {
		httpClient.Timeout = cfg.Timeout
	}
	return &Client{
		http:        httpClient,
		rateLimiter: NewRateLimiter(cfg.RequestsPerSecond, cfg.Burst),
		userAgent:   cfg.UserAgent,
	}
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// Fetch retrieves the resource at url and returns its body.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.open(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Cause: fmt.Errorf("read body: %w", err)}
	}
	logger.Debug("Fetched %s (%d bytes)", url, len(body))
	return body, nil
}

// Download streams the resource at url into the file at path.
func (c *Client) Download(ctx context.Context, url, path string) (int64, error) {
	resp, err := c.open(ctx, url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	f, err := os.Create(path)
	if err != nil {
		return 0, &domain.FilesystemError{Op: "create", Path: path, Err: err}
	}

	n, copyErr := io.Copy(f, resp.Body)
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(path)
		if copyErr != nil {
			var pathErr *os.PathError
			if errors.As(copyErr, &pathErr) {
				return 0, &domain.FilesystemError{Op: "write", Path: path, Err: copyErr}
			}
			return 0, &domain.FetchError{URL: url, Cause: fmt.Errorf("read body: %w", copyErr)}
		}
		return 0, &domain.FilesystemError{Op: "close", Path: path, Err: closeErr}
	}

	logger.Debug("Downloaded %s -> %s (%d bytes)", url, path, n)
	return n, nil
}

// open performs a rate-limited GET and checks the status.
// The caller must close the response body.
func (c *Client) open(ctx context.Context, url string) (*http.Response, error) {
	if !c.rateLimiter.Allow() {
		logger.Debug("Rate limited, waiting to fetch %s", url)
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, &domain.FetchError{URL: url, Cause: fmt.Errorf("rate limit wait: %w", err)}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Cause: err}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if c.rateLimiter.RecordThrottle(resp) {
			logger.Warn("Throttled by %s, holding requests until %s", req.URL.Host, c.rateLimiter.RetryAt().Format("15:04:05"))
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &domain.FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Cause:      fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	return resp, nil
}
