package balancer

import (
	"hello-web/internal/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter forwards every path and method to h.
func NewRouter(h *Handler, log *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.Requests(log))
	r.Use(middleware.Recoverer)

	r.Handle("/", h)
	r.Handle("/*", h)
	r.NotFound(h.ServeHTTP)
	r.MethodNotAllowed(h.ServeHTTP)

	return r
}
