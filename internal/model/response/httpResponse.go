package response

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type HttpResponse struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
	Data    any    `json:"data"`
}

func ErrorResponse(message string, data any) HttpResponse {
	if data == nil {
		data = map[string]any{}
	}
	return HttpResponse{
		Message: message,
		Status:  false,
		Data:    data,
	}
}

func WriteJSON(w http.ResponseWriter, statusCode int, resp HttpResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		zap.L().Warn("JSON encoding error", zap.Error(err))
	}
}
