// Package fetch retrieves page HTML over HTTP with timeouts and a bounded
// retry on transient errors. The scheme allowlist is checked before any
// request goes out.
package fetch

import (
    "context"
    "errors"
    "fmt"
    "io"
    "net/http"
    "net/url"
    "strings"
    "time"
)

// ErrHostAccessDenied marks a target the pipeline must not touch at all:
// anything outside the http/https allowlist. Detected before a request is
// attempted, surfaced by the UI as a disabled action rather than an error.
var ErrHostAccessDenied = errors.New("cannot access this page")

// Client wraps http.Client and provides a user agent, per-request timeouts
// and limited retry on transient errors.
type Client struct {
    HTTPClient *http.Client
    UserAgent  string
    // MaxAttempts includes the initial attempt. Minimum 1.
    MaxAttempts int
    // PerRequestTimeout bounds each request.
    PerRequestTimeout time.Duration
    // RedirectMaxHops caps redirect following to avoid loops. Zero means
    // default (5).
    RedirectMaxHops int
}

// Accessible reports whether the pipeline is allowed to touch rawURL.
// Only http and https targets are fetchable.
func Accessible(rawURL string) bool {
    u, err := url.Parse(rawURL)
    if err != nil {
        return false
    }
    return isHTTPScheme(u)
}

func (c *Client) getHTTPClient() *http.Client {
    if c.HTTPClient != nil {
        // Clone to attach our redirect policy without mutating the
        // caller's client.
        base := *c.HTTPClient
        base.CheckRedirect = c.checkRedirectFunc()
        return &base
    }
    return &http.Client{Timeout: c.PerRequestTimeout, CheckRedirect: c.checkRedirectFunc()}
}

// Get issues a GET with context, user agent, and bounded retry for
// transient errors. It returns the body and content type.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, string, error) {
    if !Accessible(rawURL) {
        return nil, "", fmt.Errorf("%w: %s", ErrHostAccessDenied, rawURL)
    }
    attempts := c.MaxAttempts
    if attempts <= 0 {
        attempts = 1
    }
    var lastErr error
    for i := 0; i < attempts; i++ {
        body, ct, err := c.tryOnce(ctx, rawURL)
        if err == nil {
            return body, ct, nil
        }
        if !isTransient(err) || i == attempts-1 {
            return nil, "", err
        }
        lastErr = err
        select {
        case <-ctx.Done():
            return nil, "", ctx.Err()
        case <-time.After(time.Duration(i+1) * 200 * time.Millisecond):
        }
    }
    if lastErr == nil {
        lastErr = errors.New("unknown error")
    }
    return nil, "", lastErr
}

func (c *Client) tryOnce(ctx context.Context, rawURL string) ([]byte, string, error) {
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
    if err != nil {
        return nil, "", fmt.Errorf("new request: %w", err)
    }
    if c.UserAgent != "" {
        req.Header.Set("User-Agent", c.UserAgent)
    }

    httpClient := c.getHTTPClient()
    if c.PerRequestTimeout > 0 {
        var cancel context.CancelFunc
        ctx, cancel = context.WithTimeout(req.Context(), c.PerRequestTimeout)
        defer cancel()
        req = req.WithContext(ctx)
    }

    resp, err := httpClient.Do(req)
    if err != nil {
        return nil, "", err
    }
    defer resp.Body.Close()

    if resp.StatusCode >= 500 && resp.StatusCode <= 599 {
        return nil, "", fmt.Errorf("server error: %d", resp.StatusCode)
    }
    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        return nil, "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
    }

    contentType := resp.Header.Get("Content-Type")
    if !isAllowedHTMLContentType(contentType) {
        return nil, "", fmt.Errorf("unsupported content type: %s", contentType)
    }
    b, err := io.ReadAll(resp.Body)
    if err != nil {
        return nil, "", fmt.Errorf("read body: %w", err)
    }
    return b, contentType, nil
}

func isTransient(err error) bool {
    // Treat HTTP 5xx and context deadline as transient.
    if errors.Is(err, context.DeadlineExceeded) {
        return true
    }
    return strings.Contains(err.Error(), "server error:")
}

func (c *Client) checkRedirectFunc() func(req *http.Request, via []*http.Request) error {
    max := c.RedirectMaxHops
    if max <= 0 {
        max = 5
    }
    return func(req *http.Request, via []*http.Request) error {
        if len(via) >= max {
            return errors.New("too many redirects")
        }
        // Only allow http/https during redirects
        if req.URL == nil || !isHTTPScheme(req.URL) {
            return errors.New("redirect to unsupported scheme")
        }
        return nil
    }
}

func isHTTPScheme(u *url.URL) bool {
    if u == nil {
        return false
    }
    scheme := strings.ToLower(u.Scheme)
    return scheme == "http" || scheme == "https"
}

func isAllowedHTMLContentType(ct string) bool {
    ct = strings.ToLower(strings.TrimSpace(ct))
    return strings.HasPrefix(ct, "text/html") || strings.HasPrefix(ct, "application/xhtml+xml")
}
