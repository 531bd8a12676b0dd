package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"transcript-scorer/internal/config"
	"transcript-scorer/internal/logx"
	"transcript-scorer/internal/service"
)

// NewRouter wires the evaluator and handlers into the HTTP handler.
func NewRouter(cfg *config.Config, store Store) http.Handler {
	eval := service.NewEvaluator(store, cfg.Workers.Eval)
	logx.Log.Info().Str("dir", cfg.Data.Dir).Int("workers", cfg.Workers.Eval).
		Msg("evaluator ready")

	h := NewHandlers(store, eval, cfg.Data.Dir)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.Use(requestLogger)

	r.Route("/api", func(ar chi.Router) {
		// Health
		ar.Get("/health", h.Health)

		// Stats
		ar.Get("/stats", h.Stats)

		// Ad-hoc evaluation
		ar.Post("/eval", h.Eval)

		// Suites
		ar.Get("/suites", h.SuitesList)
		ar.Post("/suites/run", h.SuiteRun)
		ar.Get("/suites/status", h.SuiteStatus)
		ar.Post("/suites/stop", h.SuiteStop)

		// Runs
		ar.Get("/runs", h.RunsList)
		ar.Get("/runs/{id}", h.RunsGet)
		ar.Delete("/runs/{id}", h.RunsDelete)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logx.Log.Debug().Str("method", r.Method).Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).Msg("request")
	})
}
