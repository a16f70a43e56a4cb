package handlers

import (
	"net/http"

	"github.com/zeromock/threads-api/internal/config"
	"github.com/zeromock/threads-api/internal/serialize"
	"github.com/zeromock/threads-api/internal/store"
	"github.com/zeromock/threads-api/internal/transport"
)

// ActivityHandler serves the seeded activity feed. Activities are read-only;
// no route creates them.
type ActivityHandler struct {
	store    *store.Store
	pageSize int
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(s *store.Store, cfg *config.Config) *ActivityHandler {
	return &ActivityHandler{store: s, pageSize: cfg.API.PageSize}
}

// List handles GET /activities with the usual cursor pagination. Activities
// keep their seed order.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities := h.store.AllActivities()
	page := store.PageActivities(activities, r.URL.Query().Get("cursor"), h.pageSize)

	transport.WriteJSON(w, http.StatusOK, map[string]any{
		"activities": serialize.Activities(page, h.store.FindUser),
	})
}
