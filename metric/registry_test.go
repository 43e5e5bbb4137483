package metric

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistryCoreMetrics(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r.Metrics)

	// Core metrics are usable immediately.
	r.Metrics.EncodesTotal.WithLabelValues("json").Inc()
	r.Metrics.SignatureFailures.Inc()
	r.Metrics.ReplayRejections.WithLabelValues("duplicate nonce detected").Inc()

	families, err := r.PrometheusRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, family := range families {
		names[family.GetName()] = true
	}
	assert.True(t, names["pulse_codec_encodes_total"])
	assert.True(t, names["pulse_security_signature_failures_total"])
	assert.True(t, names["pulse_security_replay_rejections_total"])
	assert.True(t, names["go_goroutines"], "runtime collectors registered")
}

func TestRegisterComponentMetric(t *testing.T) {
	r := NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pulse",
		Subsystem: "custom",
		Name:      "things_total",
		Help:      "Test counter",
	})
	require.NoError(t, r.Register("custom", "things_total", counter))
	counter.Inc()

	// Duplicate key rejected.
	err := r.Register("custom", "things_total", counter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestUnregister(t *testing.T) {
	r := NewRegistry()

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "pulse", Subsystem: "custom", Name: "level", Help: "Test gauge",
	})
	require.NoError(t, r.Register("custom", "level", gauge))

	assert.True(t, r.Unregister("custom", "level"))
	assert.False(t, r.Unregister("custom", "level"))

	// Key is free again after unregistration.
	assert.NoError(t, r.Register("custom", "level", gauge))
}

func TestHandlerServesMetrics(t *testing.T) {
	r := NewRegistry()
	r.Metrics.DecodesTotal.WithLabelValues("compact").Inc()

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `pulse_codec_decodes_total{format="compact"} 1`)
}

func TestRegistriesIsolated(t *testing.T) {
	first := NewRegistry()
	second := NewRegistry()

	first.Metrics.EncodesTotal.WithLabelValues("json").Add(5)

	families, err := second.PrometheusRegistry().Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == "pulse_codec_encodes_total" {
			assert.Empty(t, family.GetMetric())
		}
	}
}
