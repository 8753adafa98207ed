// package prometheuscollector allows to expose metrics for Prometheus.
//
// Using the provided collector, you can easily expose metrics for rangeserve
// in the Prometheus exposition format (https://prometheus.io/docs/instrumenting/exposition_formats/):
//
//	handler, err := handler.NewHandler(…)
//	collector := prometheuscollector.New(handler.Metrics)
//	prometheus.MustRegister(collector)
package prometheuscollector

import (
	"strconv"
	"sync/atomic"

	"github.com/tus/rangeserve/pkg/handler"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotalDesc = prometheus.NewDesc(
		"rangeserve_requests_total",
		"Total number of requests served by rangeserve per method.",
		[]string{"method"}, nil)
	errorsTotalDesc = prometheus.NewDesc(
		"rangeserve_errors_total",
		"Total number of errors per status.",
		[]string{"status", "code"}, nil)
	bytesServedDesc = prometheus.NewDesc(
		"rangeserve_bytes_served",
		"Number of response body bytes sent to clients.",
		nil, nil)
	responsesTotalDesc = prometheus.NewDesc(
		"rangeserve_responses_total",
		"Total number of responses per range outcome (full, partial or unsatisfiable).",
		[]string{"outcome"}, nil)
)

type Collector struct {
	metrics handler.Metrics
}

// New creates a new collector which read froms the provided Metrics struct.
func New(metrics handler.Metrics) Collector {
	return Collector{
		metrics: metrics,
	}
}

func (_ Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- requestsTotalDesc
	descs <- errorsTotalDesc
	descs <- bytesServedDesc
	descs <- responsesTotalDesc
}

func (c Collector) Collect(metrics chan<- prometheus.Metric) {
	for method, valuePtr := range c.metrics.RequestsTotal {
		metrics <- prometheus.MustNewConstMetric(
			requestsTotalDesc,
			prometheus.CounterValue,
			float64(atomic.LoadUint64(valuePtr)),
			method,
		)
	}

	for httpError, valuePtr := range c.metrics.ErrorsTotal.Load() {
		metrics <- prometheus.MustNewConstMetric(
			errorsTotalDesc,
			prometheus.CounterValue,
			float64(atomic.LoadUint64(valuePtr)),
			strconv.Itoa(httpError.StatusCode),
			httpError.ErrorCode,
		)
	}

	metrics <- prometheus.MustNewConstMetric(
		bytesServedDesc,
		prometheus.CounterValue,
		float64(atomic.LoadUint64(c.metrics.BytesServed)),
	)

	for outcome, valuePtr := range c.metrics.ResponsesTotal {
		metrics <- prometheus.MustNewConstMetric(
			responsesTotalDesc,
			prometheus.CounterValue,
			float64(atomic.LoadUint64(valuePtr)),
			outcome,
		)
	}
}
