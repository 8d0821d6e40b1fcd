package observability

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// errorHandler sends OTel SDK errors, such as failed exports, to logger
// instead of the SDK's default stderr logger.
func errorHandler(logger *zap.Logger) otel.ErrorHandler {
	return otel.ErrorHandlerFunc(func(err error) {
		logger.Warn("opentelemetry error", zap.Error(err))
	})
}

// StartTelemetry initialises the OTLP trace, metric and log pipelines and
// returns one shutdown func that flushes all of them. SDK errors go to the
// Logger in place before the OTLP log pipeline is teed in, so a failing log
// export never feeds back into itself.
func StartTelemetry(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	otel.SetErrorHandler(errorHandler(Logger))

	var shutdowns []func(context.Context) error

	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	steps := []struct {
		name string
		init func(context.Context, string) (func(context.Context) error, error)
	}{
		{name: "tracing", init: InitTracing},
		{name: "metrics", init: InitMetrics},
		{name: "logging", init: InitLogging},
	}

	for _, step := range steps {
		fn, err := step.init(ctx, serviceName)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("init %s: %w", step.name, err), shutdown(ctx))
		}
		shutdowns = append(shutdowns, fn)
	}

	return shutdown, nil
}
