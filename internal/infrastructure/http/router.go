package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/OSU-CS493-Sp18/auth/internal/infrastructure/http/handlers"
	"github.com/OSU-CS493-Sp18/auth/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	UsersHandler    *handlers.UsersHandler
	LodgingsHandler *handlers.LodgingsHandler
	HealthHandler   *handlers.HealthHandler
	RequireJWT      func(http.Handler) http.Handler // token auth for the profile fetch
	Log             zerolog.Logger
	Secure          func(http.Handler) http.Handler
	IPRateLimit     func(http.Handler) http.Handler
	Metrics         bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	r.Use(chimid.AllowContentType("application/json"))
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/users", func(r chi.Router) {
		r.Post("/", cfg.UsersHandler.Create)
		r.Post("/login", cfg.UsersHandler.Login)
		r.Group(func(r chi.Router) {
			r.Use(cfg.RequireJWT)
			r.Get("/{userID}", cfg.UsersHandler.Get)
		})
		r.Get("/{userID}/lodgings", cfg.UsersHandler.Lodgings)
	})

	if cfg.LodgingsHandler != nil {
		r.Post("/lodgings", cfg.LodgingsHandler.Create)
	}

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
