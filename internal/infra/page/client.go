package page

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/pagelens/clarity-scan/pkg/errors"
)

const (
	defaultTimeout = 10 * time.Second
	defaultMaxBody = 2 << 20
	userAgent      = "clarity-scan/1.0 (+https://github.com/pagelens/clarity-scan)"
)

// Client fetches raw page markup over HTTP. Single attempt, bounded body.
type Client struct {
	httpClient *http.Client
	maxBody    int64
}

// NewClient builds a page fetcher with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxBody: defaultMaxBody,
	}
}

// Fetch retrieves the page body for a URL. Failures carry the
// page_fetch_error code so callers can branch on them.
func (c *Client) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSpace(rawURL), nil)
	if err != nil {
		return "", apperrors.Wrap("page_fetch_error", "build page request", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.Wrap("page_fetch_error", "page request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", apperrors.Wrap("page_fetch_error", fmt.Sprintf("page request error: status=%d url=%s", resp.StatusCode, rawURL), nil)
	}
	if ctype := resp.Header.Get("Content-Type"); !isTextLike(ctype) {
		return "", apperrors.Wrap("page_fetch_error", fmt.Sprintf("unsupported content type %q", ctype), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return "", apperrors.Wrap("page_fetch_error", "read page body", err)
	}
	return string(body), nil
}

// isTextLike rejects responses that cannot contain markup. A missing
// Content-Type is tolerated; plenty of small sites omit it.
func isTextLike(ctype string) bool {
	if strings.TrimSpace(ctype) == "" {
		return true
	}
	lowered := strings.ToLower(ctype)
	return strings.Contains(lowered, "html") || strings.HasPrefix(lowered, "text/")
}
