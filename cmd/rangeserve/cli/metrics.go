package cli

import (
	"net/http"

	"github.com/tus/rangeserve/pkg/handler"
	"github.com/tus/rangeserve/pkg/prometheuscollector"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var MetricsOpenConnections = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "rangeserve_connections_open",
	Help: "Current number of open connections.",
})

func SetupMetrics(mux *http.ServeMux, handler *handler.Handler) {
	prometheus.MustRegister(MetricsOpenConnections)
	prometheus.MustRegister(prometheuscollector.New(handler.Metrics))

	printStartupLog("Using metrics endpoint", "path", Flags.MetricsPath)
	mux.Handle(Flags.MetricsPath, promhttp.Handler())
}
