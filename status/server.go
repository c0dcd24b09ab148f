package status

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsPath is where NewMetricsServer serves the exposition
const MetricsPath = "/metrics"

// NewMetricsServer exposes reg and the Go runtime metrics on addr
// Register after reg holds every key: the collector describes only what it sees at registration
func NewMetricsServer(addr, namespace string, reg *Registry) (*http.Server, error) {
	preg := prometheus.NewRegistry()
	if err := preg.Register(NewCollector(namespace, reg)); err != nil {
		return nil, err
	}
	if err := preg.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(MetricsPath, promhttp.HandlerFor(preg, promhttp.HandlerOpts{}))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}, nil
}
