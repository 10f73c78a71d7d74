package metricsclient

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/textkit/textapi"
	apierrors "github.com/textkit/textapi/errors"
	"github.com/textkit/textapi/textapitest"
)

var (
	getOp = &textapi.Operation{
		ServiceName:    "shop",
		ServiceVersion: "V1",
		Name:           "getItem",
		Method:         http.MethodGet,
		Path:           "/v1/items/{id}",
		Required:       []string{"id"},
		Fields: []textapi.Field{
			{Param: "id", Location: textapi.InPath, Name: "id"},
		},
	}

	operations = textapi.MustOperations(getOp)
)

func TestMetricsClient(t *testing.T) {
	server := textapitest.NewServer(nil, operations)
	server.Handle("getItem", func(call textapitest.Call) (int, interface{}) {
		if call.PathParams["id"] == "missing" {
			return http.StatusNotFound, map[string]string{"error": "no such item"}
		}
		return http.StatusOK, map[string]string{"id": call.PathParams["id"]}
	})
	t.Cleanup(server.Close)

	reg := prometheus.NewPedanticRegistry()
	mc, err := New(http.DefaultClient, reg, "textapi")
	require.NoError(t, err)
	transport := textapi.NewHTTPTransport(server.URL, nil, textapi.CustomClient(mc))

	ctx := context.Background()
	for _, id := range []string{"a", "b", "missing"} {
		req, err := getOp.Build(textapi.NewParams().Set("id", id))
		require.NoError(t, err)
		_, err = transport.Do(ctx, req)
		if id == "missing" {
			var serviceErr *apierrors.ServiceError
			require.True(t, errors.As(err, &serviceErr))
		} else {
			require.NoError(t, err)
		}
	}

	require.Equal(t, 2.0, testutil.ToFloat64(mc.requests.WithLabelValues("shop", "getItem", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(mc.requests.WithLabelValues("shop", "getItem", "404")))
	require.Equal(t, 0.0, testutil.ToFloat64(mc.inFlight))
	require.Equal(t, 1, testutil.CollectAndCount(mc.duration))

	want := `
# HELP textapi_client_requests_total Total number of requests sent to the services
# TYPE textapi_client_requests_total counter
textapi_client_requests_total{code="200",operation="getItem",service="shop"} 2
textapi_client_requests_total{code="404",operation="getItem",service="shop"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "textapi_client_requests_total"))
}

type failingClient struct{}

func (failingClient) Do(req *http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func (failingClient) CloseIdleConnections() {}

func TestMetricsClientTransportError(t *testing.T) {
	reg := prometheus.NewRegistry()
	mc, err := New(failingClient{}, reg, "test")
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, "http://example.com/", nil)
	require.NoError(t, err)
	_, err = mc.Do(req)
	require.Error(t, err)
	require.Equal(t, 1.0, testutil.ToFloat64(mc.requests.WithLabelValues("unknown", "unknown", "error")))

	_, err = New(failingClient{}, reg, "test")
	require.Error(t, err, "metrics are already registered")
}

func TestOperationOf(t *testing.T) {
	cases := []struct {
		header        string
		wantService   string
		wantOperation string
	}{
		{"service_name=tone_analyzer;service_version=V3;operation_id=tone", "tone_analyzer", "tone"},
		{"service_name=natural_language_classifier", "natural_language_classifier", "unknown"},
		{"", "unknown", "unknown"},
		{"garbage;operation_id=", "unknown", "unknown"},
	}
	for _, tc := range cases {
		req, err := http.NewRequest(http.MethodGet, "http://example.com/", nil)
		require.NoError(t, err)
		req.Header.Set(analyticsHeader, tc.header)
		service, operation := operationOf(req)
		require.Equal(t, tc.wantService, service, tc.header)
		require.Equal(t, tc.wantOperation, operation, tc.header)
	}
}
