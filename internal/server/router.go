package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"chem-stoich/internal/handlers"
	"chem-stoich/internal/observability"
	"chem-stoich/internal/ptable"
	"chem-stoich/internal/stoich"
)

func NewRouter() http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	stoich.RegisterRoutes(r, stoich.NewHandlers(ptable.Standard()))

	return r
}
