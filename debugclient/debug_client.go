// Package debugclient wraps an HTTP client and logs every request as a
// curl command together with the dumped response.
package debugclient

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"sync/atomic"

	"go.uber.org/zap"
	"moul.io/http2curl"
)

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
	CloseIdleConnections()
}

// Headers which are replaced with "REDACTED" in the log.
var secretHeaders = []string{"Authorization", "Cookie", "X-Api-Key"}

type DebugClient struct {
	impl   HttpClient
	logger *zap.Logger
	n      uint64
}

// New wraps impl. Exchanges are logged at debug level, so the logger must
// enable it for anything to show up.
func New(impl HttpClient, logger *zap.Logger) *DebugClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DebugClient{
		impl:   impl,
		logger: logger,
	}
}

func (c *DebugClient) Do(req *http.Request) (*http.Response, error) {
	n := atomic.AddUint64(&c.n, 1)
	logger := c.logger.With(zap.Uint64("exchange", n))

	if ce := logger.Check(zap.DebugLevel, "client request"); ce != nil {
		clone := redacted(req)
		curl, err := http2curl.GetCurlCommand(clone)
		// GetCurlCommand drains the body and replaces it with a copy.
		req.Body = clone.Body
		if err != nil {
			return nil, fmt.Errorf("http2curl.GetCurlCommand failed for %d: %w", n, err)
		}
		ce.Write(zap.String("curl", curl.String()))
	}

	res, err := c.impl.Do(req)
	if err != nil {
		logger.Debug("client request failed", zap.Error(err))
		return nil, err
	}

	if ce := logger.Check(zap.DebugLevel, "server response"); ce != nil {
		resDump, err := httputil.DumpResponse(res, true)
		if err != nil {
			return nil, fmt.Errorf("httputil.DumpResponse failed for %d: %w", n, err)
		}
		ce.Write(zap.Int("status", res.StatusCode), zap.ByteString("dump", resDump))
	}

	return res, nil
}

// redacted returns a copy of req without secrets in headers. The body is
// shared with req.
func redacted(req *http.Request) *http.Request {
	clone := req.Clone(req.Context())
	clone.Body = req.Body
	for _, name := range secretHeaders {
		if clone.Header.Get(name) != "" {
			clone.Header.Set(name, "REDACTED")
		}
	}
	return clone
}

func (c *DebugClient) CloseIdleConnections() {
	c.impl.CloseIdleConnections()
}
