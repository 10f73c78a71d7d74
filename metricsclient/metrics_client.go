// Package metricsclient wraps an HTTP client and records Prometheus
// metrics of the calls per operation.
package metricsclient

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
	CloseIdleConnections()
}

const (
	analyticsHeader  = "X-IBMCloud-SDK-Analytics"
	unknownOperation = "unknown"
	transportError   = "error"
)

type MetricsClient struct {
	impl HttpClient

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// New wraps impl and registers the metrics with reg. Metric names start
// with namespace, e.g. "textapi_client_requests_total".
func New(impl HttpClient, reg prometheus.Registerer, namespace string) (*MetricsClient, error) {
	c := &MetricsClient{
		impl: impl,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "client",
				Name:      "requests_total",
				Help:      "Total number of requests sent to the services",
			},
			[]string{"service", "operation", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "client",
				Name:      "request_duration_seconds",
				Help:      "Duration of requests until response headers, in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"service", "operation"},
		),
		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "client",
				Name:      "requests_in_flight",
				Help:      "Number of requests being sent",
			},
		),
	}
	for _, collector := range []prometheus.Collector{c.requests, c.duration, c.inFlight} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *MetricsClient) Do(req *http.Request) (*http.Response, error) {
	service, operation := operationOf(req)

	c.inFlight.Inc()
	defer c.inFlight.Dec()

	start := time.Now()
	res, err := c.impl.Do(req)
	c.duration.WithLabelValues(service, operation).Observe(time.Since(start).Seconds())

	code := transportError
	if err == nil {
		code = strconv.Itoa(res.StatusCode)
	}
	c.requests.WithLabelValues(service, operation, code).Inc()

	return res, err
}

func (c *MetricsClient) CloseIdleConnections() {
	c.impl.CloseIdleConnections()
}

// operationOf extracts service and operation names from the analytics
// header, e.g. "service_name=tone_analyzer;service_version=V3;operation_id=tone".
func operationOf(req *http.Request) (service, operation string) {
	service, operation = unknownOperation, unknownOperation
	for _, pair := range strings.Split(req.Header.Get(analyticsHeader), ";") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || value == "" {
			continue
		}
		switch key {
		case "service_name":
			service = value
		case "operation_id":
			operation = value
		}
	}
	return service, operation
}
