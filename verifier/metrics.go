package verifier

import (
	"time"

	"github.com/armon/go-metrics"
	"github.com/armon/go-metrics/prometheus"
	promclient "github.com/prometheus/client_golang/prometheus"
)

const metricsServiceName = "rsa_verifier"

// Telemetry holds the sinks registered as the global go-metrics sink
type Telemetry struct {
	Inmem    *metrics.InmemSink
	registry *promclient.Registry
}

// SetupTelemetry fans the global metrics out to an in-memory sink and a
// Prometheus sink backed by a private registry
func SetupTelemetry() (*Telemetry, error) {
	inm := metrics.NewInmemSink(10*time.Second, time.Minute)
	registry := promclient.NewRegistry()

	promSink, err := prometheus.NewPrometheusSinkFrom(prometheus.PrometheusOpts{
		Name:       "rsa_verifier_prometheus_sink",
		Expiration: 0,
		Registerer: registry,
	})
	if err != nil {
		return nil, err
	}

	metricsConf := metrics.DefaultConfig(metricsServiceName)
	metricsConf.EnableHostname = false
	metricsConf.EnableRuntimeMetrics = false

	if _, err = metrics.NewGlobal(metricsConf, metrics.FanoutSink{inm, promSink}); err != nil {
		return nil, err
	}

	return &Telemetry{
		Inmem:    inm,
		registry: registry,
	}, nil
}

// WriteTextfile dumps the Prometheus metrics into path using the textfile collector format
func (t *Telemetry) WriteTextfile(path string) error {
	return promclient.WriteToTextfile(path, t.registry)
}
