package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/zeromock/threads-api/internal/auth"
	"github.com/zeromock/threads-api/internal/config"
	"github.com/zeromock/threads-api/internal/observability"
	"github.com/zeromock/threads-api/internal/store"
	"github.com/zeromock/threads-api/internal/transport"
)

// AuthHandler validates the single development credential pair and hands out
// a token pair plus the fixture user record.
type AuthHandler struct {
	store  *store.Store
	cfg    *config.Config
	tokens *auth.Issuer
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(s *store.Store, cfg *config.Config, tokens *auth.Issuer) *AuthHandler {
	return &AuthHandler{store: s, cfg: cfg, tokens: tokens}
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username != h.cfg.Auth.Username || req.Password != h.cfg.Auth.Password {
		transport.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	user, ok := h.store.FindUser(store.FixtureUserID)
	if !ok {
		transport.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	tokens, err := h.tokens.Issue(user.ID)
	if err != nil {
		transport.WriteError(w, http.StatusInternalServerError, "failed to issue tokens")
		return
	}

	observability.Log.Info("user logged in", zap.String("user_id", user.ID))

	transport.WriteJSON(w, http.StatusOK, map[string]any{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"user":         user,
	})
}
