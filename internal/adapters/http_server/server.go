package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"skyfeedback/internal/adapters/observability"
)

// Server is the ops endpoint: liveness and metrics only. No review content
// is ever served here; records still leave the process on stdout.
type Server struct{ mux *chi.Mux }

func New() *Server {
	m := chi.NewRouter()
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(requestLog(log.Logger))
	return &Server{mux: m}
}

func (s *Server) Mux() http.Handler { return s.mux }

func (s *Server) MountOps(reg *prometheus.Registry) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.mux.Handle("/metrics", observability.MetricsHandler(reg))
}

// Serve starts the ops listener in the background. Callers opt in with a
// non-empty addr; the emit loop never blocks on this server.
func Serve(addr string, reg *prometheus.Registry) {
	srv := New()
	srv.MountOps(reg)
	go func() {
		hs := &http.Server{
			Addr:              addr,
			Handler:           srv.Mux(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("ops server listening")
		if err := hs.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("ops server failed")
		}
	}()
}

// statusWriter records the response code for logging and metrics.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

func requestLog(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)
			status := sw.status
			if status == 0 {
				status = http.StatusOK
			}
			dur := time.Since(start)
			observability.ObserveHTTP(r.URL.Path, r.Method, status, dur)
			l.Info().
				Str("path", r.URL.Path).
				Str("method", r.Method).
				Int("status", status).
				Dur("duration", dur).
				Msg("http_request")
		})
	}
}
