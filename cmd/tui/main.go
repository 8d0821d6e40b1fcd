package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"chi-calculator/internal/calculator"
	"chi-calculator/internal/config"
	"chi-calculator/internal/observability"
	"chi-calculator/internal/presentation"
	"chi-calculator/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the view; logs only go to a file when one is
	// configured.
	if cfg.LogFile != "" {
		if err := observability.InitLogger(cfg.LogLevel, cfg.LogFile); err != nil {
			return err
		}
		defer observability.SyncLogger()
	}

	if cfg.Telemetry {
		shutdown, err := observability.StartTelemetry(ctx, cfg.ServiceName)
		if err != nil {
			return err
		}
		defer shutdown(ctx)
	}
	if err := calculator.InitMetrics(); err != nil {
		return err
	}

	calc := calculator.New(calculator.Options{
		Theme: cfg.Theme,
		DrawerOptions: []presentation.DrawerOption{
			presentation.WithCloseDelay(cfg.DrawerCloseDelay),
		},
	})
	defer calc.Close()

	_, err = tea.NewProgram(tui.New(ctx, calc), tea.WithAltScreen()).Run()
	return err
}
