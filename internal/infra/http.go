package infra

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// defaultUserAgent is sent when the caller does not set one. Yahoo and
// several other endpoints reject requests with no User-Agent at all.
const defaultUserAgent = "Mozilla/5.0 (compatible; finscope/1.0; +https://github.com/finscope/finscope)"

// httpClient is the shared HTTP client for all providers.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// log is the package logger. It is a no-op unless SetLogger is called.
var log = zap.NewNop()

// SetLogger installs a logger for HTTP diagnostics.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// SetHTTPTimeout overrides the shared client timeout.
func SetHTTPTimeout(d time.Duration) {
	if d > 0 {
		httpClient.Timeout = d
	}
}

// HTTPError is returned for non-2xx responses.
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// DoGet performs an HTTP GET with the given headers and returns the response
// body and status code. The caller must close the body on success.
func DoGet(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("User-Agent", defaultUserAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		log.Debug("http get failed", zap.String("url", url), zap.Error(err))
		return nil, 0, err
	}

	log.Debug("http get",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, resp.StatusCode, &HTTPError{URL: url, StatusCode: resp.StatusCode}
	}

	return resp.Body, resp.StatusCode, nil
}

// GetBytes performs a GET request and reads the full response body.
func GetBytes(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	body, _, err := DoGet(ctx, url, headers)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(body)
}
