package textapi

import (
	"context"
)

// Result is the outcome of one call. Exactly one of Response and Err is set.
type Result struct {
	Response *DetailedResponse
	Err      error
}

// Future is the deferred result of an asynchronous call.
type Future struct {
	done   chan struct{}
	result Result
}

func newFuture() *Future {
	return &Future{
		done: make(chan struct{}),
	}
}

// Rejected returns a future which is already resolved with err.
func Rejected(err error) *Future {
	f := newFuture()
	f.resolve(Result{Err: err})
	return f
}

// Go runs fn in a new goroutine and returns a future for its result.
func Go(fn func() (*DetailedResponse, error)) *Future {
	f := newFuture()
	go func() {
		res, err := fn()
		f.resolve(Result{Response: res, Err: err})
	}()
	return f
}

func (f *Future) resolve(r Result) {
	f.result = r
	close(f.done)
}

// Done is closed when the result is available.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the result is available or ctx is done.
func (f *Future) Wait(ctx context.Context) (*DetailedResponse, error) {
	select {
	case <-f.done:
		return f.result.Response, f.result.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Result returns the result if it is available.
func (f *Future) Result() (Result, bool) {
	select {
	case <-f.done:
		return f.result, true
	default:
		return Result{}, false
	}
}

// Then calls cb from a new goroutine once the result is available.
// The returned channel is closed after cb returns.
func (f *Future) Then(cb func(*DetailedResponse, error)) <-chan struct{} {
	called := make(chan struct{})
	go func() {
		defer close(called)
		<-f.done
		cb(f.result.Response, f.result.Err)
	}()
	return called
}
