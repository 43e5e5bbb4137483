package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns an HTTP handler exposing the registry in Prometheus
// text format. The transport server mounts this at /metrics.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.prometheusRegistry, promhttp.HandlerOpts{})
}
