package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/zeromock/threads-api/internal/store"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	store *store.Store
}

// NewHealthHandler creates a new health check handler
func NewHealthHandler(s *store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string         `json:"status"`
	Entities map[string]int `json:"entities"`
	Time     string         `json:"time"`
}

// ServeHTTP implements http.Handler
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:   "healthy",
		Entities: make(map[string]int),
		Time:     time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")

	if h.store != nil {
		users, posts, activities := h.store.Counts()
		response.Entities["users"] = users
		response.Entities["posts"] = posts
		response.Entities["activities"] = activities
	} else {
		response.Status = "unhealthy"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	json.NewEncoder(w).Encode(response)
}
