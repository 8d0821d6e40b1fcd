package main

import (
	"context"

	"chi-calculator/internal/calculator"
	"chi-calculator/internal/config"
	"chi-calculator/internal/observability"
)

// initTelemetry starts the OTLP pipelines and registers the calculator's
// metric instruments. With telemetry disabled only the instruments are
// created, against the global no-op provider.
func initTelemetry(ctx context.Context, cfg config.Config) (func(context.Context) error, error) {
	shutdown := func(context.Context) error { return nil }

	if cfg.Telemetry {
		var err error
		shutdown, err = observability.StartTelemetry(ctx, cfg.ServiceName)
		if err != nil {
			return nil, err
		}
	}

	if err := calculator.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}
