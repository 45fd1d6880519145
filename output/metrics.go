package output

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"wow-analyzer/model"
)

// MetricsExporter exposes statistic fields as Prometheus gauges so runs
// can be picked up by a node_exporter textfile collector.
type MetricsExporter struct {
	registry *prometheus.Registry
	values   *prometheus.GaugeVec
}

// NewMetricsExporter creates an exporter with its own registry.
func NewMetricsExporter() *MetricsExporter {
	registry := prometheus.NewRegistry()
	values := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "wowa_statistic_value",
		Help: "Raw value of an analyzer statistic field for the last analyzed fight.",
	}, []string{"analyzer", "field"})
	registry.MustRegister(values)

	return &MetricsExporter{registry: registry, values: values}
}

// Registry returns the registry so other collectors (e.g. the parser's
// dispatch counter) can be written alongside the statistics.
func (m *MetricsExporter) Registry() *prometheus.Registry {
	return m.registry
}

// Record sets one gauge per statistic field.
func (m *MetricsExporter) Record(statistics []model.Statistic) {
	for _, s := range statistics {
		for _, f := range s.Fields {
			m.values.WithLabelValues(s.Analyzer, f.Key).Set(f.Value)
		}
	}
}

// WriteTextfile writes every registered metric to path in the text format.
func (m *MetricsExporter) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
