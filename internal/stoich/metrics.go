package stoich

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	opsCounter   metric.Int64Counter
	opsHistogram metric.Float64Histogram
	errorCounter metric.Int64Counter
	scaleGauge   metric.Float64Gauge
)

// InitMetrics registers custom OTel metric instruments for the stoichiometry
// domain. Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("stoich")

	var err error

	opsCounter, err = meter.Int64Counter("stoich.operations.total",
		metric.WithDescription("Total number of formula operations performed"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("stoich.operation.duration",
		metric.WithDescription("Duration of formula operations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("stoich.errors.total",
		metric.WithDescription("Total number of formula operation errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	scaleGauge, err = meter.Float64Gauge("stoich.last_scale_factor",
		metric.WithDescription("Scale factor of the last mass calculation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating scale factor gauge: %w", err)
	}

	return nil
}
