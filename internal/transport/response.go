package transport

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/zeromock/threads-api/internal/observability"
)

// WriteJSON encodes payload as the response body.
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		observability.Log.Error("failed to encode response", zap.Error(err))
	}
}

// WriteError sends the {"message": ...} error body the client expects.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"message": message})
}
