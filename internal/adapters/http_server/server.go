package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const defaultTimeout = 15 * time.Second

// Options shapes the middleware chain shared by the API and the pages.
type Options struct {
	// TrustProxy lets X-Forwarded-For and X-Real-IP replace the peer address.
	// Only set it behind a proxy that overwrites those headers; the newsletter
	// rate limit is keyed on the resulting address.
	TrustProxy bool
	Timeout    time.Duration
}

type Server struct{ mux *chi.Mux }

func New(opts Options) *Server {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	m := chi.NewRouter()

	// middlewares must be registered before any route
	if opts.TrustProxy {
		m.Use(chimw.RealIP)
	}
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Timeout(opts.Timeout))
	m.Use(Metrics)
	m.Use(Logger(log.Logger))

	return &Server{mux: m}
}

func (s *Server) Mux() http.Handler { return s.mux }

func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}
