package handler

import (
	"net/http"
	"time"

	"hello-web/internal/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewGreetingRouter routes every path and every method, including ones chi
// does not know about, to the greeting.
func NewGreetingRouter(gh *GreetingHandler, log *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.Requests(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	greet := http.HandlerFunc(gh.Greet)
	r.Handle("/", greet)
	r.Handle("/*", greet)
	r.NotFound(greet)
	r.MethodNotAllowed(greet)

	return r
}
