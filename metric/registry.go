package metric

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/pulseprotocolorg-cyber/pulse-go/errors"
)

// Registry manages a private Prometheus registry holding the core
// protocol metrics plus any component-specific metrics registered at
// runtime. A private registry keeps test processes and embedding
// applications from colliding on the global default registry.
type Registry struct {
	prometheusRegistry *prometheus.Registry
	Metrics            *Metrics
	registeredMetrics  map[string]prometheus.Collector
	mu                 sync.RWMutex
}

// NewRegistry creates a registry with the core protocol metrics and Go
// runtime collectors pre-registered.
func NewRegistry() *Registry {
	r := &Registry{
		prometheusRegistry: prometheus.NewRegistry(),
		Metrics:            NewMetrics(),
		registeredMetrics:  make(map[string]prometheus.Collector),
	}

	for _, collector := range r.Metrics.collectors() {
		r.prometheusRegistry.MustRegister(collector)
	}

	r.prometheusRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// PrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}

// Register adds a component-specific collector under component.name.
// Registering the same key twice is an error, as is a collision inside
// Prometheus itself.
func (r *Registry) Register(component, name string, collector prometheus.Collector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", component, name)
	if _, exists := r.registeredMetrics[key]; exists {
		return errors.WrapValidation(
			fmt.Errorf("metric %s already registered for component %s", name, component),
			"metric", "Register", "duplicate metric registration")
	}

	if err := r.prometheusRegistry.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if stderrors.As(err, &alreadyRegistered) {
			return errors.WrapValidation(err, "metric", "Register",
				fmt.Sprintf("prometheus conflict for metric %s", name))
		}
		return errors.WrapValidation(err, "metric", "Register", "prometheus registration")
	}

	r.registeredMetrics[key] = collector
	return nil
}

// Unregister removes a component-specific collector, reporting whether
// it was registered.
func (r *Registry) Unregister(component, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", component, name)
	collector, exists := r.registeredMetrics[key]
	if !exists {
		return false
	}

	delete(r.registeredMetrics, key)
	return r.prometheusRegistry.Unregister(collector)
}
