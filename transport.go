package textapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Transport executes assembled requests. It is responsible for
// authentication, the HTTP exchange, timeouts and cancellation.
// Its errors are passed to the caller unmodified.
type Transport interface {
	Do(ctx context.Context, req *Request) (*DetailedResponse, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, req *Request) (*DetailedResponse, error)

func (f TransportFunc) Do(ctx context.Context, req *Request) (*DetailedResponse, error) {
	return f(ctx, req)
}

// DetailedResponse is a successful response of the service. Result holds
// the raw body.
type DetailedResponse struct {
	StatusCode int
	Headers    http.Header
	Result     []byte
}

// Unmarshal decodes the JSON body into v.
func (r *DetailedResponse) Unmarshal(v interface{}) error {
	if err := json.Unmarshal(r.Result, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
