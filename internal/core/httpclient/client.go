package httpclient

import (
	"net/http"
	"time"

	"banner-buddy/internal/core/logger"
	"banner-buddy/internal/core/proxy"

	"go.uber.org/zap"
)

// LoggingRoundTripper adds default headers to outgoing requests and logs their outcome.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
	// Headers are set on every request that does not already carry them.
	Headers http.Header
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	if len(lrt.Headers) > 0 {
		req = req.Clone(req.Context())
		for key, values := range lrt.Headers {
			if req.Header.Get(key) != "" {
				continue
			}
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}
	}

	logger.Get().Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		logger.Get().Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Get().Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// Option customizes the client built by NewClient.
type Option func(*LoggingRoundTripper, *http.Transport)

// WithProxy routes requests through the given outbound proxy.
func WithProxy(settings proxy.Settings) Option {
	return func(_ *LoggingRoundTripper, tr *http.Transport) {
		tr.Proxy = settings.ProxyFunc()
	}
}

// WithHeader sets a default header on every request.
func WithHeader(key, value string) Option {
	return func(lrt *LoggingRoundTripper, _ *http.Transport) {
		if lrt.Headers == nil {
			lrt.Headers = http.Header{}
		}
		lrt.Headers.Set(key, value)
	}
}

// NewClient returns an http.Client with logging middleware.
func NewClient(timeout time.Duration, opts ...Option) *http.Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	lrt := &LoggingRoundTripper{Proxied: tr}

	for _, opt := range opts {
		opt(lrt, tr)
	}

	return &http.Client{
		Transport: lrt,
		Timeout:   timeout,
	}
}
