package router

import (
	"net/http"
	"time"

	_ "clinic-records/docs"
	mem "clinic-records/internal/adapters/storage/memory"
	"clinic-records/internal/domain/entities"
	"clinic-records/internal/domain/patients"
	"clinic-records/internal/domain/records"
	"clinic-records/internal/domain/stats"
	"clinic-records/internal/middleware"
	"clinic-records/internal/platform/logger"
	"clinic-records/internal/platform/metrics"
	"clinic-records/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si no viene, se usa la fuente in-memory con datos de dev.
	Source entities.Source

	Logger logger.Logger

	// RateLimitRPS <= 0 desactiva el límite.
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	src := opts.Source
	if src == nil {
		src = mem.NewSource(mem.DevSeed(time.Now()))
	}
	loader := NewLoader(src)

	// Services por módulo
	patientsSvc := patients.NewService(loader)
	recordsSvc := records.NewService(loader, log)
	statsSvc := stats.NewService(loader, log)

	// Rutas por módulo
	patients.RegisterRoutes(r, patientsSvc)
	records.RegisterRoutes(r, recordsSvc)
	stats.RegisterRoutes(r, statsSvc)

	return r
}

// NewLoader arma el Loader con las métricas de fetch. Lo comparte el CLI.
func NewLoader(src entities.Source) *entities.Loader {
	return entities.NewLoader(src, func(kind entities.Kind, took time.Duration, err error) {
		metrics.ObserveFetch(string(kind), took, err)
	})
}
