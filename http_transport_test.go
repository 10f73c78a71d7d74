package textapi

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc/codes"

	apierrors "github.com/textkit/textapi/errors"
)

type receivedRequest struct {
	Method string
	URI    string
	Header http.Header
	Body   []byte
	Form   map[string]string
	Types  map[string]string
}

type recordingHandler struct {
	mu       sync.Mutex
	received []receivedRequest

	status int
	body   string
}

func (h *recordingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	got := receivedRequest{
		Method: r.Method,
		URI:    r.URL.RequestURI(),
		Header: r.Header.Clone(),
	}
	mediaType, params, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		got.Form = make(map[string]string)
		got.Types = make(map[string]string)
		reader := multipart.NewReader(r.Body, params["boundary"])
		for {
			part, err := reader.NextPart()
			if err != nil {
				break
			}
			data, _ := io.ReadAll(part)
			got.Form[part.FormName()] = string(data)
			got.Types[part.FormName()] = part.Header.Get("Content-Type")
		}
	} else {
		got.Body, _ = io.ReadAll(r.Body)
	}

	h.mu.Lock()
	h.received = append(h.received, got)
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(h.status)
	_, _ = io.WriteString(w, h.body)
}

func (h *recordingHandler) last() receivedRequest {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.received[len(h.received)-1]
}

func newTestTransport(t *testing.T, h *recordingHandler, auth Authenticator, opts ...Option) *HTTPTransport {
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	opts = append([]Option{WithLogger(zaptest.NewLogger(t))}, opts...)
	transport := NewHTTPTransport(server.URL+"/", auth, opts...)
	t.Cleanup(func() { _ = transport.Close() })
	return transport
}

func TestHTTPTransportJSON(t *testing.T) {
	h := &recordingHandler{status: http.StatusOK, body: `{"classifier_id":"c1"}`}
	auth, err := NewBasicAuthenticator("user", "pass")
	require.NoError(t, err)
	transport := newTestTransport(t, h, auth)

	req, err := testClassifyOp.Build(NewParams().Set("classifierId", "c 1").Set("text", "hello"))
	require.NoError(t, err)
	res, err := transport.Do(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/json", res.Headers.Get("Content-Type"))
	require.JSONEq(t, `{"classifier_id":"c1"}`, string(res.Result))

	got := h.last()
	require.Equal(t, http.MethodPost, got.Method)
	require.Equal(t, "/v1/classifiers/c%201/classify", got.URI)
	require.JSONEq(t, `{"text":"hello"}`, string(got.Body))
	require.Equal(t, "application/json", got.Header.Get("Content-Type"))
	require.Equal(t, "application/json", got.Header.Get("Accept"))
	require.Equal(t, defaultUserAgent, got.Header.Get("User-Agent"))
	require.Contains(t, got.Header.Get("Authorization"), "Basic ")
	require.Equal(t, "service_name=natural_language_classifier;service_version=V1;operation_id=classify", got.Header.Get(analyticsHeader))
}

func TestHTTPTransportRawBodyAndQuery(t *testing.T) {
	h := &recordingHandler{status: http.StatusOK, body: `{}`}
	transport := newTestTransport(t, h, nil, UserAgent("custom/2.0"))

	p := NewParams().
		Set("toneInput", "I am happy").
		SetString("contentType", StringPtr("text/plain")).
		SetBool("sentences", BoolPtr(false)).
		SetStrings("tones", []string{"emotion", "social"})
	req, err := testToneOp.Build(p)
	require.NoError(t, err)
	_, err = transport.Do(context.Background(), req)
	require.NoError(t, err)

	got := h.last()
	require.Equal(t, "/v3/tone?sentences=false&tones=emotion%2Csocial", got.URI)
	require.Equal(t, "I am happy", string(got.Body))
	require.Equal(t, "text/plain", got.Header.Get("Content-Type"))
	require.Equal(t, "custom/2.0", got.Header.Get("User-Agent"))
	require.Empty(t, got.Header.Get("Authorization"))
}

func TestHTTPTransportStructRawBody(t *testing.T) {
	h := &recordingHandler{status: http.StatusOK, body: `{}`}
	transport := newTestTransport(t, h, nil)

	type toneInput struct {
		Text string `json:"text"`
	}
	req, err := testToneOp.Build(NewParams().Set("toneInput", toneInput{Text: "hi"}))
	require.NoError(t, err)
	_, err = transport.Do(context.Background(), req)
	require.NoError(t, err)

	got := h.last()
	require.JSONEq(t, `{"text":"hi"}`, string(got.Body))
	require.Equal(t, "application/json", got.Header.Get("Content-Type"))
}

func TestHTTPTransportMultipart(t *testing.T) {
	h := &recordingHandler{status: http.StatusCreated, body: `{"status":"Training"}`}
	transport := newTestTransport(t, h, nil)

	p := NewParams().
		Set("trainingMetadata", strings.NewReader(`{"language":"en"}`)).
		Set("trainingData", []byte("a,b\n1,2"))
	req, err := testCreateOp.Build(p)
	require.NoError(t, err)
	res, err := transport.Do(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	got := h.last()
	mediaType, params, err := mime.ParseMediaType(got.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)
	require.NotEmpty(t, params["boundary"])
	require.Equal(t, map[string]string{
		"training_metadata": `{"language":"en"}`,
		"training_data":     "a,b\n1,2",
	}, got.Form)
	require.Equal(t, map[string]string{
		"training_metadata": "application/json",
		"training_data":     "text/csv",
	}, got.Types)
}

func TestHTTPTransportMultipartKeepsUserContentType(t *testing.T) {
	h := &recordingHandler{status: http.StatusOK, body: `{}`}
	transport := newTestTransport(t, h, nil)

	p := NewParams().
		Set("trainingMetadata", "{}").
		Set("trainingData", "a,b").
		SetHeaders(map[string]string{
			"Accept":       "fake/accept",
			"Content-Type": "fake/header",
		})
	req, err := testCreateOp.Build(p)
	require.NoError(t, err)
	_, err = transport.Do(context.Background(), req)
	require.NoError(t, err)

	got := h.last()
	require.Equal(t, "fake/header", got.Header.Get("Content-Type"))
	require.Equal(t, "fake/accept", got.Header.Get("Accept"))
	require.Contains(t, string(got.Body), `name="training_data"`)
}

func TestHTTPTransportServiceError(t *testing.T) {
	h := &recordingHandler{status: http.StatusNotFound, body: `{"code":404,"error":"Model not found"}`}
	transport := newTestTransport(t, h, nil)

	req, err := testListOp.Build(nil)
	require.NoError(t, err)
	_, err = transport.Do(context.Background(), req)

	var serviceErr *apierrors.ServiceError
	require.True(t, errors.As(err, &serviceErr))
	require.Equal(t, http.StatusNotFound, serviceErr.StatusCode)
	require.Equal(t, "Model not found", serviceErr.Message)
	require.Equal(t, codes.NotFound, serviceErr.Code())
	require.Equal(t, "GET", h.last().Method)
	require.Empty(t, h.last().Header.Get("Content-Type"))
}

func TestHTTPTransportMaxBody(t *testing.T) {
	h := &recordingHandler{status: http.StatusOK, body: strings.Repeat("x", 100)}
	transport := newTestTransport(t, h, nil, MaxBody(10))

	req, err := testListOp.Build(nil)
	require.NoError(t, err)
	_, err = transport.Do(context.Background(), req)
	require.Error(t, err)
}

func TestHTTPTransportCancelled(t *testing.T) {
	h := &recordingHandler{status: http.StatusOK, body: `{}`}
	transport := newTestTransport(t, h, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req, err := testListOp.Build(nil)
	require.NoError(t, err)
	_, err = transport.Do(ctx, req)
	require.ErrorIs(t, err, context.Canceled)
}

func TestHTTPTransportAuthenticationFailure(t *testing.T) {
	h := &recordingHandler{status: http.StatusOK, body: `{}`}
	transport := newTestTransport(t, h, failingAuthenticator{})

	req, err := testListOp.Build(nil)
	require.NoError(t, err)
	_, err = transport.Do(context.Background(), req)
	require.ErrorContains(t, err, "failed to authenticate")

	h.mu.Lock()
	defer h.mu.Unlock()
	require.Empty(t, h.received)
}

type failingAuthenticator struct{}

func (failingAuthenticator) AuthenticationType() string { return "failing" }

func (failingAuthenticator) Authenticate(*http.Request) error {
	return errors.New("token expired")
}

func (failingAuthenticator) Validate() error { return nil }
