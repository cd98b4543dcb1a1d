package document

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

const (
	// DefaultTimeout is the default HTTP request timeout for [Fetch].
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is the default User-Agent header value.
	DefaultUserAgent = "docsift-document/1.0"
	// MaxBodySize is the maximum response body size (10MB).
	MaxBodySize = 10 * 1024 * 1024
	// maxRedirects bounds redirect chains when fetching.
	maxRedirects = 10
)

// FromHTML converts raw HTML to Markdown suitable for extraction prompts.
func FromHTML(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}

// FetchOptions tunes [Fetch]. Zero values use the package defaults.
type FetchOptions struct {
	// Timeout bounds the whole request. Default: [DefaultTimeout].
	Timeout time.Duration
	// UserAgent overrides [DefaultUserAgent].
	UserAgent string
	// Client overrides the HTTP client used for the request. When set, its
	// own timeout and redirect policy apply.
	Client *http.Client
}

// Fetch retrieves the page at url and returns its content as Markdown ready
// for extraction.
//
// Partial URLs (e.g. "example.com/invoice") are normalised by prepending
// "https://". Up to ten redirects are followed and the response body is
// capped at [MaxBodySize] bytes. Fetch returns an error when the URL is
// empty, the status code is not 200 OK, the body exceeds the cap, conversion
// fails, or the context is cancelled or times out.
func Fetch(ctx context.Context, url string, opts FetchOptions) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", fmt.Errorf("URL cannot be empty")
	}

	// Add https:// prefix if missing.
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)

	client := opts.Client
	if client == nil {
		client = &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("too many redirects (>%d)", maxRedirects)
				}
				return nil
			},
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("request timeout or canceled: %w", err)
		}
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d %s", resp.StatusCode, resp.Status)
	}

	htmlBytes, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if len(htmlBytes) == MaxBodySize {
		return "", fmt.Errorf("response body exceeds maximum size of %d bytes", MaxBodySize)
	}

	return FromHTML(string(htmlBytes))
}
