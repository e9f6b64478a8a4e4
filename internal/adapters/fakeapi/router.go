package fakeapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterOptions struct {
	// AuthMiddleware guards every route except /healthz and /metrics. Defaults to
	// NewAuthMiddleware() with no configured keys.
	AuthMiddleware func(http.Handler) http.Handler
	Logger         *slog.Logger
	Metrics        *Metrics
}

// NewRouter constructs the fake provider router with default options.
func NewRouter(s *Server) http.Handler {
	return NewRouterWithOptions(s, RouterOptions{})
}

func NewRouterWithOptions(s *Server, opts RouterOptions) http.Handler {
	if opts.AuthMiddleware == nil {
		opts.AuthMiddleware = NewAuthMiddleware()
	}
	if opts.Logger == nil {
		opts.Logger = discardLogger
	}
	if opts.Metrics == nil {
		opts.Metrics = s.metrics
	}
	if opts.Metrics == nil {
		opts.Metrics = NewMetrics()
	}
	s.metrics = opts.Metrics
	if s.logger == nil || s.logger == discardLogger {
		s.logger = opts.Logger
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(opts.Logger, opts.Metrics))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(opts.AuthMiddleware)
		r.Post("/checkouts", s.CreateCheckoutSession)
		r.Get("/checkouts/{id}", s.GetCheckoutSession)
		r.Post("/_fake/checkouts/{id}/complete", s.CompleteCheckoutSession)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "no such route", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", nil)
	})
	return r
}

// requestLogger logs one line per request and counts it by route pattern.
func requestLogger(logger *slog.Logger, m *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			m.requestsInflight.Inc()
			defer func() {
				m.requestsInflight.Dec()
				route := "unmatched"
				if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
					route = rc.RoutePattern()
				}
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
				logger.Info("request",
					"method", r.Method,
					"route", route,
					"status", status,
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
