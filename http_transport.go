package textapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strings"

	"go.uber.org/zap"

	apierrors "github.com/textkit/textapi/errors"
)

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
	CloseIdleConnections()
}

// HTTPTransport is the default Transport. It sends requests to baseURL
// over HTTP, authenticated by the Authenticator.
type HTTPTransport struct {
	client        HttpClient
	baseURL       string
	authenticator Authenticator
	logger        *zap.Logger
	maxBody       int64
	userAgent     string
}

// NewHTTPTransport creates new instance of HTTP transport.
// Paths of requests are appended to baseURL.
func NewHTTPTransport(baseURL string, authenticator Authenticator, opts ...Option) *HTTPTransport {
	var client HttpClient
	client = &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	config := NewDefaultConfig()
	for _, opt := range opts {
		opt(config)
	}
	if config.client != nil {
		client = config.client
	}
	if authenticator == nil {
		authenticator = &NoAuthAuthenticator{}
	}

	return &HTTPTransport{
		client:        client,
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		authenticator: authenticator,
		logger:        config.logger,
		maxBody:       config.maxBody,
		userAgent:     config.userAgent,
	}
}

// Do sends the request once. Non-2xx responses are returned as
// *errors.ServiceError.
func (t *HTTPTransport) Do(ctx context.Context, req *Request) (*DetailedResponse, error) {
	httpReq, err := t.EncodeRequest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	if err := t.authenticator.Authenticate(httpReq); err != nil {
		return nil, fmt.Errorf("failed to authenticate request: %w", err)
	}

	res, err := t.client.Do(httpReq)
	if err != nil {
		t.logger.Error("request failed", zap.String("operation", req.Operation), zap.Error(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	res.Body = http.MaxBytesReader(nil, res.Body, t.maxBody)
	defer func() {
		if err := res.Body.Close(); err != nil {
			t.logger.Error("failed to close response body", zap.String("operation", req.Operation), zap.Error(err))
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// Handle all 2xx responses as success.
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		serviceErr := apierrors.NewServiceError(res, body)
		t.logger.Debug("service returned error",
			zap.String("operation", req.Operation),
			zap.Int("status", res.StatusCode),
			zap.String("message", serviceErr.Message),
		)
		return nil, serviceErr
	}

	return &DetailedResponse{
		StatusCode: res.StatusCode,
		Headers:    res.Header,
		Result:     body,
	}, nil
}

// EncodeRequest converts a Request descriptor to *http.Request.
func (t *HTTPTransport) EncodeRequest(ctx context.Context, req *Request) (*http.Request, error) {
	urlStr := t.baseURL + req.Path
	if len(req.Query) != 0 {
		urlStr += "?" + encodeQuery(req.Query).Encode()
	}

	header := req.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}

	var body []byte
	var err error
	switch {
	case req.Form != nil:
		var contentType string
		body, contentType, err = encodeForm(req.Form)
		if err != nil {
			return nil, fmt.Errorf("failed to encode form: %w", err)
		}
		// The boundary is only known here. A content type set by the
		// caller is kept as is.
		if ct := header.Get("Content-Type"); ct == "" || ct == "multipart/form-data" {
			header.Set("Content-Type", contentType)
		}
	case req.Body != nil:
		var jsonBody bool
		body, jsonBody, err = encodeBody(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode body: %w", err)
		}
		if jsonBody && header.Get("Content-Type") == "" {
			header.Set("Content-Type", "application/json")
		}
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	request, err := http.NewRequestWithContext(ctx, req.Method, urlStr, bodyReader)
	if err != nil {
		return nil, err
	}
	request.Header = header
	if t.userAgent != "" && request.Header.Get("User-Agent") == "" {
		request.Header.Set("User-Agent", t.userAgent)
	}
	return request, nil
}

// encodeBody returns bytes of body and whether they were produced by
// JSON encoding.
func encodeBody(body interface{}) ([]byte, bool, error) {
	switch v := body.(type) {
	case string:
		return []byte(v), false, nil
	case []byte:
		return v, false, nil
	case io.Reader:
		data, err := io.ReadAll(v)
		return data, false, err
	}
	data, err := json.Marshal(body)
	return data, true, err
}

func encodeForm(form map[string]FormPart) ([]byte, string, error) {
	names := make([]string, 0, len(form))
	for name := range form {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, name := range names {
		part := form[name]
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, name, name))
		h.Set("Content-Type", part.ContentType)
		pw, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		data, _, err := encodeBody(part.Data)
		if err != nil {
			return nil, "", fmt.Errorf("part %s: %w", name, err)
		}
		if _, err := pw.Write(data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func (t *HTTPTransport) Close() error {
	t.client.CloseIdleConnections()

	if closer, ok := t.client.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return err
		}
	}

	return nil
}
