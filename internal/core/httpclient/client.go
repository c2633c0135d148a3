package httpclient

import (
	"net/http"
	"time"

	"banner-studio/internal/core/logger"
	"banner-studio/internal/core/proxy"

	"go.uber.org/zap"
)

// UserAgent identifies outbound requests made by the service.
const UserAgent = "banner-studio/1.0"

// LoggingRoundTripper stamps outbound requests and logs their outcome.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logger.Component("httpclient")

	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}

	log.Debug("HTTP request started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		log.Error("HTTP request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	log.Debug("HTTP request completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with logging middleware.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: http.DefaultTransport,
		},
		Timeout: timeout,
	}
}

// NewProxiedClient returns a logging http.Client that routes through the
// configured outbound proxy. Without a proxy it behaves like NewClient.
func NewProxiedClient(timeout time.Duration, settings proxy.Settings) *http.Client {
	proxyURL := settings.URL()
	if proxyURL == nil {
		return NewClient(timeout)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = http.ProxyURL(proxyURL)

	logger.Component("httpclient").Info("Using outbound proxy", zap.String("proxy", settings.HostPort()))
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: transport,
		},
		Timeout: timeout,
	}
}
