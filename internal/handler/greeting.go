package handler

import (
	"context"
	"net"
	"net/http"

	"hello-web/internal/model/response"

	"go.uber.org/zap"
)

type GreetingService interface {
	Page(ctx context.Context, local net.Addr) response.GreetingPage
}

type GreetingHandler struct {
	service GreetingService
	log     *zap.Logger
}

func NewGreetingHandler(service GreetingService, log *zap.Logger) *GreetingHandler {
	return &GreetingHandler{
		service: service,
		log:     log,
	}
}

// Greet answers every request with the greeting page. Method, path, headers
// and body are not consulted.
func (gh *GreetingHandler) Greet(w http.ResponseWriter, r *http.Request) {
	local, _ := r.Context().Value(http.LocalAddrContextKey).(net.Addr)
	body := []byte(gh.service.Page(r.Context(), local).Render())

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		gh.log.Debug("write greeting", zap.Error(err))
	}
}
