// Package textapitest provides fakes of the services for tests: a Recorder
// transport and an HTTP Server which routes requests by operation tables.
package textapitest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"go.uber.org/zap"

	"github.com/textkit/textapi"
)

const maxBody = 64 << 20

type errorMessage struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// Call is a request received by Server.
type Call struct {
	Operation  string
	PathParams map[string]string
	Query      url.Values
	Header     http.Header
	Body       []byte

	// Form holds the parts of multipart/form-data bodies by name.
	Form map[string]Part
}

// Part is a received part of a multipart/form-data body.
type Part struct {
	ContentType string
	Data        []byte
}

// Handler produces the reply to a call. A body which is not []byte is
// sent as JSON.
type Handler func(call Call) (status int, body interface{})

// Server is a fake HTTP service. Requests are matched against the path
// templates of its operations. Operations without a handler reply with 501.
type Server struct {
	*httptest.Server

	logger *zap.Logger

	method2ops map[string][]*textapi.Operation

	mu       sync.Mutex
	handlers map[string]Handler
	calls    []Call
}

// NewServer starts a server for operations. Close it when done.
func NewServer(logger *zap.Logger, operations ...[]*textapi.Operation) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		logger:     logger,
		method2ops: make(map[string][]*textapi.Operation),
		handlers:   make(map[string]Handler),
	}
	for _, ops := range operations {
		for _, op := range ops {
			s.method2ops[op.Method] = append(s.method2ops[op.Method], op)
		}
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	return s
}

// Handle sets the handler of the operation with the given name.
func (s *Server) Handle(operation string, h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[operation] = h
}

// Reply makes the operation always reply with status and body.
func (s *Server) Reply(operation string, status int, body interface{}) {
	s.Handle(operation, func(Call) (int, interface{}) {
		return status, body
	})
}

// Calls returns the calls received so far, in order.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

func (s *Server) match(r *http.Request) (*textapi.Operation, map[string]string, bool) {
	for _, op := range s.method2ops[r.Method] {
		if pathParams, ok := textapi.MatchPath(op.Path, r.URL.EscapedPath()); ok {
			return op, pathParams, true
		}
	}
	return nil, nil, false
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	op, pathParams, ok := s.match(r)
	if !ok {
		s.writeError(w, http.StatusNotFound, "failed to find operation by %s %s", r.Method, r.URL.Path)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	call, err := readCall(r, op.Name, pathParams)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to parse request: %v", err)
		return
	}

	s.mu.Lock()
	s.calls = append(s.calls, call)
	h, has := s.handlers[op.Name]
	s.mu.Unlock()

	if !has {
		s.writeError(w, http.StatusNotImplemented, "operation %s is not implemented", op.Name)
		return
	}

	status, body := h(call)
	if data, ok := body.([]byte); ok {
		w.WriteHeader(status)
		if _, err := w.Write(data); err != nil {
			s.logger.Error("failed to write response", zap.String("operation", op.Name), zap.Error(err))
		}
		return
	}
	s.writeJSON(w, status, body)
}

func readCall(r *http.Request, operation string, pathParams map[string]string) (Call, error) {
	call := Call{
		Operation:  operation,
		PathParams: pathParams,
		Query:      r.URL.Query(),
		Header:     r.Header.Clone(),
	}

	mediaType, params, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return Call{}, err
		}
		call.Body = body
		return call, nil
	}

	call.Form = make(map[string]Part)
	reader := multipart.NewReader(r.Body, params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Call{}, err
		}
		data, err := io.ReadAll(part)
		if err != nil {
			return Call{}, err
		}
		call.Form[part.FormName()] = Part{
			ContentType: part.Header.Get("Content-Type"),
			Data:        data,
		}
	}
	return call, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	s.logger.Debug("fake server error", zap.Int("status", status), zap.String("error", msg))
	s.writeJSON(w, status, errorMessage{Error: msg, Code: status})
}

// DecodeJSON decodes the body of a call, failing on trailing data.
func DecodeJSON(call Call, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(call.Body))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("trailing data after JSON body")
	}
	return nil
}
