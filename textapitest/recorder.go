package textapitest

import (
	"context"
	"net/http"
	"sync"

	"github.com/textkit/textapi"
)

// Recorder is a textapi.Transport which records requests instead of
// sending them. It replies with Response (an empty 200 if nil) or Err.
type Recorder struct {
	Response *textapi.DetailedResponse
	Err      error

	mu       sync.Mutex
	requests []*textapi.Request
}

func (r *Recorder) Do(ctx context.Context, req *textapi.Request) (*textapi.DetailedResponse, error) {
	r.mu.Lock()
	r.requests = append(r.requests, req)
	r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	if r.Response != nil {
		return r.Response, nil
	}
	return &textapi.DetailedResponse{
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
		Result:     []byte("{}"),
	}, nil
}

// Requests returns recorded requests, in order.
func (r *Recorder) Requests() []*textapi.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*textapi.Request(nil), r.requests...)
}

// Last returns the last recorded request or nil.
func (r *Recorder) Last() *textapi.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.requests) == 0 {
		return nil
	}
	return r.requests[len(r.requests)-1]
}
