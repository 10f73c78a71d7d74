// Package closingclient wraps an HTTP client so that closing it cancels
// the requests in flight and waits for them to return.
package closingclient

import (
	"context"
	"io"
	"net/http"
	"sync"

	"go.uber.org/zap"

	apierrors "github.com/textkit/textapi/errors"
)

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
	CloseIdleConnections()
}

type ClosingClient struct {
	impl   HttpClient
	logger *zap.Logger

	mu      sync.Mutex
	closing bool
	cancels map[uint64]context.CancelFunc
	nextKey uint64

	wg sync.WaitGroup
}

// New wraps impl. A nil logger disables logging.
func New(impl HttpClient, logger *zap.Logger) *ClosingClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClosingClient{
		impl:    impl,
		logger:  logger,
		cancels: make(map[uint64]context.CancelFunc),
	}
}

// Do sends the request unless the client is closing. The request is
// cancelled if Close is called before it returns.
func (c *ClosingClient) Do(req *http.Request) (*http.Response, error) {
	ctx, cancel := context.WithCancel(req.Context())

	c.mu.Lock()
	if c.closing {
		c.mu.Unlock()
		cancel()
		return nil, apierrors.Unavailable("client is closing, %s %s was not sent", req.Method, req.URL.Path)
	}

	// Add(1) and Wait() must not be called in parallel.
	// Call Add(1) under mutex protecting c.closing.
	c.wg.Add(1)
	defer c.wg.Done()

	key := c.nextKey
	c.nextKey++
	c.cancels[key] = cancel
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.cancels, key)
	}()

	return c.impl.Do(req.Clone(ctx))
}

func (c *ClosingClient) CloseIdleConnections() {
	c.impl.CloseIdleConnections()
}

// InFlight returns the number of requests being sent.
func (c *ClosingClient) InFlight() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cancels)
}

// Close cancels requests in flight, waits for them and closes the
// underlying client if it is an io.Closer. Calls of Do after Close fail.
func (c *ClosingClient) Close() error {
	c.mu.Lock()
	if !c.closing {
		c.closing = true
		if len(c.cancels) != 0 {
			c.logger.Info("cancelling requests in flight", zap.Int("requests", len(c.cancels)))
		}
		for _, cancel := range c.cancels {
			cancel()
		}
		c.cancels = nil
	}
	c.mu.Unlock()

	c.impl.CloseIdleConnections()

	// By this point c.closing is true, so calls of Do after mu.Unlock
	// above do not call Add(1).
	c.wg.Wait()

	if closer, ok := c.impl.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
