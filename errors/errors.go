package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/textkit/textapi/internal/shared"
	"google.golang.org/grpc/codes"
)

// CodeError is an error produced by the SDK itself (as opposed to an error
// returned by the service) classified by a gRPC status code.
type CodeError struct {
	code codes.Code
	err  error
}

func (e *CodeError) Error() string {
	return e.err.Error()
}

func (e *CodeError) Unwrap() error {
	return e.err
}

func (e *CodeError) Code() codes.Code {
	return e.code
}

func (e *CodeError) HttpCode() int {
	return runtime.HTTPStatusFromCode(e.code)
}

func makeError(code codes.Code, format string, a ...interface{}) *CodeError {
	return &CodeError{
		code: code,
		err:  fmt.Errorf(format, a...),
	}
}

// InvalidArgument indicates client specified an invalid argument, e.g.
// malformed service options or credentials.
func InvalidArgument(format string, a ...interface{}) *CodeError {
	return makeError(codes.InvalidArgument, format, a...)
}

// Unimplemented indicates the requested feature (e.g. an authentication
// type) is not supported by this SDK.
func Unimplemented(format string, a ...interface{}) *CodeError {
	return makeError(codes.Unimplemented, format, a...)
}

// Unavailable indicates the client can not send requests anymore,
// e.g. because it is closing.
func Unavailable(format string, a ...interface{}) *CodeError {
	return makeError(codes.Unavailable, format, a...)
}

// MissingParametersError is returned when an operation is called without
// some of its required parameters. No request is sent in this case.
type MissingParametersError struct {
	Operation string
	Params    []string
}

func (e *MissingParametersError) Error() string {
	return fmt.Sprintf("Missing required parameters: %s (operation %s)", strings.Join(e.Params, ", "), e.Operation)
}

func (e *MissingParametersError) Code() codes.Code {
	return codes.InvalidArgument
}

func (e *MissingParametersError) HttpCode() int {
	return runtime.HTTPStatusFromCode(codes.InvalidArgument)
}

// ServiceError is a non-2xx response of the service.
type ServiceError struct {
	StatusCode int
	Status     string
	Message    string
	Header     http.Header
	Body       []byte
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("service returned HTTP status %s", e.Status)
	}
	return fmt.Sprintf("service returned HTTP status %s: %s", e.Status, e.Message)
}

func (e *ServiceError) HttpCode() int {
	return e.StatusCode
}

// Code classifies the HTTP status of the response.
func (e *ServiceError) Code() codes.Code {
	return codeFromHTTPStatus(e.StatusCode)
}

func codeFromHTTPStatus(status int) codes.Code {
	switch status {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusConflict:
		return codes.AlreadyExists
	case http.StatusRequestEntityTooLarge:
		return codes.OutOfRange
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case http.StatusNotImplemented:
		return codes.Unimplemented
	case http.StatusServiceUnavailable:
		return codes.Unavailable
	case http.StatusGatewayTimeout:
		return codes.DeadlineExceeded
	}
	switch {
	case status >= 500:
		return codes.Internal
	case status >= 400:
		return codes.FailedPrecondition
	}
	return codes.Unknown
}

// NewServiceError builds a ServiceError from a response and its already
// read body.
func NewServiceError(res *http.Response, body []byte) *ServiceError {
	return &ServiceError{
		StatusCode: res.StatusCode,
		Status:     res.Status,
		Message:    shared.Text(body),
		Header:     res.Header,
		Body:       body,
	}
}
