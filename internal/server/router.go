package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"chi-calculator/internal/calculator"
	"chi-calculator/internal/handlers"
	"chi-calculator/internal/observability"
)

// NewRouter serves health, metrics and the calculator's HTTP surface.
func NewRouter(calc *calculator.Calculator) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	calculator.RegisterRoutes(r, calculator.NewHandler(calc))

	return r
}
