package balancer

import (
	"net/http"

	"hello-web/internal/model/response"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	pool *Pool
	log  *zap.Logger
}

func NewHandler(pool *Pool, log *zap.Logger) *Handler {
	return &Handler{pool: pool, log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())
	h.log.Info("Received request",
		zap.String("request_id", reqID),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("host", r.Host),
	)

	b := h.pool.Next()
	if b == nil {
		h.log.Warn("no healthy backend", zap.String("path", r.URL.Path))
		response.WriteJSON(w, http.StatusServiceUnavailable, response.ErrorResponse("no healthy backend", nil))
		return
	}

	if err := b.serve(w, r); err != nil {
		if r.Context().Err() != nil {
			// the client went away; the backend did nothing wrong
			h.log.Debug("client gave up",
				zap.String("request_id", reqID),
				zap.String("backend", b.Name),
				zap.Error(err),
			)
			return
		}

		// the next health check brings it back
		b.SetHealthy(false)
		h.log.Error("proxy error",
			zap.String("request_id", reqID),
			zap.String("backend", b.Name),
			zap.String("url", b.URL.String()),
			zap.Error(err),
		)
		response.WriteJSON(w, http.StatusBadGateway, response.ErrorResponse("backend unavailable", map[string]any{
			"backend": b.Name,
		}))
		return
	}

	h.log.Info("Request completed",
		zap.String("request_id", reqID),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("host", r.Host),
		zap.String("backend", b.Name),
		zap.String("url", b.URL.String()),
	)
}
