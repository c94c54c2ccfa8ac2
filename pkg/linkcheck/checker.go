// Package linkcheck verifies that the URLs of a curated list are reachable.
//
// Each URL gets a HEAD request; when that answers with a status of 400 or
// above, a single GET is tried instead because some servers reject HEAD. Checks
// run one at a time and are spaced by a politeness delay.
package linkcheck

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"golang.org/x/time/rate"
)

// Defaults for Options.
const (
	DefaultTimeout   = 10 * time.Second
	DefaultDelay     = 500 * time.Millisecond
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Options configures a Checker.
type Options struct {
	// Timeout bounds each individual request. Zero selects DefaultTimeout.
	Timeout time.Duration

	// Delay is the minimum spacing between the start of two checks.
	// Zero or negative disables throttling.
	Delay time.Duration

	// UserAgent is sent with every request. Empty selects DefaultUserAgent.
	UserAgent string

	// Categories overrides the category rules. Nil selects the defaults.
	Categories []CategoryRule

	// Client replaces the default HTTP client. Its Timeout is left as-is.
	Client *http.Client
}

// Event reports progress during CheckAll. Result is nil when the check for
// URL is about to start.
type Event struct {
	Index  int
	Total  int
	URL    string
	Result *Result
}

// Checker performs link checks.
type Checker struct {
	client      *http.Client
	limiter     *rate.Limiter
	userAgent   string
	categorizer *Categorizer
}

// New creates a Checker from opts.
func New(opts Options) *Checker {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	limit := rate.Inf
	if opts.Delay > 0 {
		limit = rate.Every(opts.Delay)
	}

	return &Checker{
		client:      client,
		limiter:     rate.NewLimiter(limit, 1),
		userAgent:   userAgent,
		categorizer: NewCategorizer(opts.Categories),
	}
}

// Categorizer returns the categorizer used to label results.
func (c *Checker) Categorizer() *Categorizer {
	return c.categorizer
}

// CheckAll checks urls in order, calling observe before and after each check
// when it is non-nil. A failing URL never stops the run; only cancellation of
// ctx does, in which case the results gathered so far are returned with the
// context error.
func (c *Checker) CheckAll(ctx context.Context, urls []string, observe func(Event)) ([]Result, error) {
	results := make([]Result, 0, len(urls))

	for idx, rawURL := range urls {
		if observe != nil {
			observe(Event{Index: idx + 1, Total: len(urls), URL: rawURL})
		}

		result, err := c.Check(ctx, rawURL)
		if err != nil {
			return results, err
		}
		results = append(results, result)

		if observe != nil {
			observe(Event{Index: idx + 1, Total: len(urls), URL: rawURL, Result: &result})
		}
	}

	return results, nil
}

// Check checks a single URL after waiting for the politeness delay.
// Network failures are recorded in the Result; the error is non-nil only when
// ctx is cancelled.
func (c *Checker) Check(ctx context.Context, rawURL string) (Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Result{}, fmt.Errorf("wait for rate limiter: %w", err)
	}

	start := time.Now()
	result := Result{
		URL:      rawURL,
		Category: c.categorizer.Categorize(rawURL),
		Domain:   RegistrableDomain(rawURL),
		Method:   http.MethodHead,
	}

	code, err := c.request(ctx, http.MethodHead, rawURL)
	if err == nil && code >= http.StatusBadRequest {
		result.Method = http.MethodGet
		code, err = c.request(ctx, http.MethodGet, rawURL)
	}
	result.Elapsed = time.Since(start)

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, fmt.Errorf("check %s: %w", rawURL, ctxErr)
		}
		result.Status, result.Message = classifyError(err)
		return result, nil
	}

	result.StatusCode = code
	if code < http.StatusBadRequest {
		result.Status = StatusOK
	} else {
		result.Status = StatusHTTPError
	}
	result.Message = result.Status.String()

	return result, nil
}

// request issues one request and returns the final status code after redirects.
func (c *Checker) request(ctx context.Context, method, rawURL string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err //nolint:wrapcheck // classified by the caller
	}
	_ = resp.Body.Close()

	return resp.StatusCode, nil
}

// classifyError maps a transport error to a status and label.
func classifyError(err error) (Status, string) {
	if isTimeout(err) {
		return StatusTimeout, StatusTimeout.String()
	}
	if isConnectionError(err) {
		return StatusConnectionError, StatusConnectionError.String()
	}
	return StatusRequestError, StatusRequestError.String() + ": " + err.Error()
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionError(err error) bool {
	var (
		opErr   *net.OpError
		dnsErr  *net.DNSError
		certErr *tls.CertificateVerificationError
	)

	switch {
	case errors.As(err, &opErr), errors.As(err, &dnsErr), errors.As(err, &certErr):
		return true
	case errors.Is(err, syscall.ECONNREFUSED), errors.Is(err, syscall.ECONNRESET):
		return true
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return true
	default:
		return false
	}
}
