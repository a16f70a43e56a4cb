package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zeromock/threads-api/internal/config"
	"github.com/zeromock/threads-api/internal/models"
	"github.com/zeromock/threads-api/internal/serialize"
	"github.com/zeromock/threads-api/internal/store"
	"github.com/zeromock/threads-api/internal/transport"
)

// UserHandler serves user profiles and per-user post listings.
type UserHandler struct {
	store    *store.Store
	pageSize int
}

// NewUserHandler creates a new user handler.
func NewUserHandler(s *store.Store, cfg *config.Config) *UserHandler {
	return &UserHandler{store: s, pageSize: cfg.API.PageSize}
}

// Get handles GET /users/{id}. The external identifier carries a leading @
// sigil which is stripped before lookup. A missing user serializes as null.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := h.store.FindUser(stripSigil(chi.URLParam(r, "id")))
	if !ok {
		transport.WriteJSON(w, http.StatusOK, map[string]any{"user": nil})
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]any{"user": user})
}

// Posts handles GET /users/{id}/{type}. Type "threads" lists the posts the
// user authored; "reposts" lists posts NOT authored by the user, a
// placeholder dataset standing in for a real repost relation. Any other type
// leaves the feed unfiltered.
func (h *UserHandler) Posts(w http.ResponseWriter, r *http.Request) {
	id := stripSigil(chi.URLParam(r, "id"))
	posts := h.store.AllPosts()

	switch chi.URLParam(r, "type") {
	case "threads":
		posts = filterPosts(posts, func(p models.Post) bool { return p.UserID == id })
	case "reposts":
		posts = filterPosts(posts, func(p models.Post) bool { return p.UserID != id })
	}

	store.SortPostsByIDDesc(posts)
	page := store.PagePosts(posts, r.URL.Query().Get("cursor"), h.pageSize)

	transport.WriteJSON(w, http.StatusOK, map[string]any{
		"posts": serialize.Posts(page, h.store.FindUser),
	})
}

// Update handles PATCH /users/{id}: the profile editor's save action. The
// handle itself is immutable; only display attributes change.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := stripSigil(chi.URLParam(r, "id"))

	var req struct {
		Name               *string `json:"name"`
		Description        *string `json:"description"`
		Link               *string `json:"link"`
		ShowInstagramBadge *bool   `json:"showInstagramBadge"`
		IsPrivate          *bool   `json:"isPrivate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.store.UpdateUser(id, func(u *models.User) {
		if req.Name != nil {
			u.Name = *req.Name
		}
		if req.Description != nil {
			u.Description = *req.Description
		}
		if req.Link != nil {
			u.Link = *req.Link
		}
		if req.ShowInstagramBadge != nil {
			u.ShowInstagramBadge = *req.ShowInstagramBadge
		}
		if req.IsPrivate != nil {
			u.IsPrivate = *req.IsPrivate
		}
	})
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			transport.WriteJSON(w, http.StatusOK, map[string]any{"user": nil})
			return
		}
		transport.WriteError(w, http.StatusInternalServerError, "failed to update user")
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]any{"user": user})
}

func stripSigil(id string) string {
	return strings.TrimPrefix(id, "@")
}
