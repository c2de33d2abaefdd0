package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns two Prometheus registries and their HTTP servers.
type Metrics struct {
	// SystemServer serves runtime and process metrics. nil when disabled.
	SystemServer *http.Server

	// ApplicationServer serves ApplicationRegistry. nil when disabled.
	ApplicationServer *http.Server

	// SystemRegistry holds the Go, process and build info collectors. nil
	// when the system endpoint is disabled.
	SystemRegistry *prometheus.Registry

	// ApplicationRegistry holds every metric created through
	// MetricsCollector. It always exists.
	ApplicationRegistry *prometheus.Registry

	namespace  string
	registerer prometheus.Registerer
}

// NewMetrics builds the registries and servers described by cfg. Both
// registries wrap their series with a constant "service" label.
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "storefront"})
//	go m.ApplicationServer.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	m := &Metrics{namespace: cfg.Namespace}
	if m.namespace == "" {
		m.namespace = "monitoring"
	}
	service := prometheus.Labels{"service": cfg.ServiceName}

	if addr := addressOr(cfg.SystemMetricsAddress, DefaultSystemMetricsAddress); addr != "" {
		reg := prometheus.NewRegistry()
		prometheus.WrapRegistererWith(service, reg).MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
		m.SystemRegistry = reg
		m.SystemServer = &http.Server{
			Addr:    addr,
			Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		}
	}

	m.ApplicationRegistry = prometheus.NewRegistry()
	m.registerer = prometheus.WrapRegistererWith(service, m.ApplicationRegistry)
	if addr := addressOr(cfg.ApplicationMetricsAddress, DefaultApplicationMetricsAddress); addr != "" {
		m.ApplicationServer = &http.Server{
			Addr:    addr,
			Handler: m.Handler(),
		}
	}

	return m
}

// Handler serves the application registry. Mount it on an existing mux when
// a separate listener is not wanted.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.ApplicationRegistry, promhttp.HandlerOpts{})
}

// Namespace returns the prefix used for operation metrics.
func (m *Metrics) Namespace() string {
	return m.namespace
}

func addressOr(addr *string, fallback string) string {
	if addr == nil {
		return fallback
	}
	return *addr
}
