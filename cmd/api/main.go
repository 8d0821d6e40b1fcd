package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"chi-calculator/internal/calculator"
	"chi-calculator/internal/config"
	"chi-calculator/internal/observability"
	"chi-calculator/internal/presentation"
	"chi-calculator/internal/server"
)

func main() {

	ctx := context.Background()

	// Config
	if err := config.LoadDotEnv(); err != nil {
		panic(err)
	}
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Logger
	if err := observability.InitLogger(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// Tracing, metrics, log export
	telemetryShutdown, err := initTelemetry(ctx, cfg)
	if err != nil {
		panic(err)
	}
	defer telemetryShutdown(ctx)

	// Calculator
	calc := calculator.New(calculator.Options{
		Theme: cfg.Theme,
		DrawerOptions: []presentation.DrawerOption{
			presentation.WithCloseDelay(cfg.DrawerCloseDelay),
		},
	})
	defer calc.Close()

	// Router
	router := server.NewRouter(calc)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		panic(err)
	}

	// The listener is bound, so the surface is reachable.
	calc.MarkReady()

	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", ln.Addr().String()),
			zap.String("theme", cfg.Theme.String()),
		)

		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(err)
		}
	}()

	waitForShutdown(srv)
}

func waitForShutdown(srv *http.Server) {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		observability.Logger.Error("server shutdown", zap.Error(err))
	}
}
