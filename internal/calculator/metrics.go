package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric instruments. They are no-ops until InitMetrics runs.
var (
	actionsCounter        metric.Int64Counter = noop.Int64Counter{}
	evaluationsCounter    metric.Int64Counter = noop.Int64Counter{}
	invalidResultsCounter metric.Int64Counter = noop.Int64Counter{}
	errorCounter          metric.Int64Counter = noop.Int64Counter{}
	resultGauge           metric.Float64Gauge = noop.Float64Gauge{}
	historyGauge          metric.Int64Gauge   = noop.Int64Gauge{}
)

// InitMetrics registers the calculator's OTel instruments.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	actionsCounter, err = meter.Int64Counter("calculator.actions.total",
		metric.WithDescription("Total number of calculator actions applied"),
		metric.WithUnit("{action}"),
	)
	if err != nil {
		return fmt.Errorf("creating actions counter: %w", err)
	}

	evaluationsCounter, err = meter.Int64Counter("calculator.evaluations.total",
		metric.WithDescription("Total number of binary evaluations performed"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return fmt.Errorf("creating evaluations counter: %w", err)
	}

	invalidResultsCounter, err = meter.Int64Counter("calculator.invalid_results.total",
		metric.WithDescription("Evaluations that produced NaN or an infinity, such as division by zero"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return fmt.Errorf("creating invalid results counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of rejected calculator requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("calculator.last_result",
		metric.WithDescription("The last finite evaluation result"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	historyGauge, err = meter.Int64Gauge("calculator.history.entries",
		metric.WithDescription("Number of entries in the calculation history"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return fmt.Errorf("creating history gauge: %w", err)
	}

	return nil
}
