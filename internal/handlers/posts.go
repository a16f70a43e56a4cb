package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zeromock/threads-api/internal/config"
	"github.com/zeromock/threads-api/internal/fake"
	"github.com/zeromock/threads-api/internal/form"
	"github.com/zeromock/threads-api/internal/models"
	"github.com/zeromock/threads-api/internal/observability"
	"github.com/zeromock/threads-api/internal/serialize"
	"github.com/zeromock/threads-api/internal/store"
	"github.com/zeromock/threads-api/internal/transport"
)

const maxMultipartMemory = 32 << 20 // 32MB

// PostHandler serves the feed, post detail, stand-in comments, and post
// creation.
type PostHandler struct {
	store    *store.Store
	faker    *fake.Faker
	pageSize int

	// followedID is the only account the fixture treats as followed; the
	// type=following feed filter restricts to its posts.
	followedID string
	// authorID is the fixed user every created post is attributed to.
	authorID string

	// Delay is the artificial latency applied before a create-post request
	// completes, so the client can observe its pending state. Zero in tests.
	Delay time.Duration
}

// NewPostHandler creates a new post handler.
func NewPostHandler(s *store.Store, f *fake.Faker, cfg *config.Config) *PostHandler {
	return &PostHandler{
		store:      s,
		faker:      f,
		pageSize:   cfg.API.PageSize,
		followedID: store.FixtureUserID,
		authorID:   store.FixtureUserID,
		Delay:      time.Duration(cfg.API.CreatePostDelay) * time.Millisecond,
	}
}

// List handles GET /posts. A type=following query restricts the feed to the
// followed user's posts; cursor pagination starts right after the last-seen
// post id.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts := h.store.AllPosts()

	if r.URL.Query().Get("type") == "following" {
		posts = filterPosts(posts, func(p models.Post) bool {
			return p.UserID == h.followedID
		})
	}

	store.SortPostsByIDDesc(posts)
	page := store.PagePosts(posts, r.URL.Query().Get("cursor"), h.pageSize)

	transport.WriteJSON(w, http.StatusOK, map[string]any{
		"posts": serialize.Posts(page, h.store.FindUser),
	})
}

// Get handles GET /posts/{id}. A missing post serializes as null; absence is
// a normal, displayable state for the client.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, ok := h.store.FindPost(chi.URLParam(r, "id"))
	if !ok {
		transport.WriteJSON(w, http.StatusOK, map[string]any{"post": nil})
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]any{
		"post": serialize.NewPost(post, h.store.FindUser),
	})
}

// Comments handles GET /posts/{id}/comments. The fixture has no comment
// entity; a page of ordinary posts stands in, under the same pagination
// contract as the feed.
func (h *PostHandler) Comments(w http.ResponseWriter, r *http.Request) {
	posts := h.store.AllPosts()
	store.SortPostsByIDDesc(posts)
	page := store.PagePosts(posts, r.URL.Query().Get("cursor"), h.pageSize)

	transport.WriteJSON(w, http.StatusOK, map[string]any{
		"comments": serialize.Posts(page, h.store.FindUser),
	})
}

// Create handles POST /posts. The body is a multipart form carrying one or
// more thread entries (bracketed array keys); all entries are attributed to
// the fixture user. The request runs to completion once accepted, even if the
// client has stopped waiting.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	subs, err := form.Decode(r.MultipartForm)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(subs) == 0 {
		transport.WriteError(w, http.StatusBadRequest, "no posts submitted")
		return
	}

	if h.Delay > 0 {
		time.Sleep(h.Delay)
	}

	created := make([]models.Post, 0, len(subs))
	for _, sub := range subs {
		post := models.Post{
			ID:        sub.ID,
			Content:   sub.Content,
			ImageURLs: sub.ImageURLs,
			Location:  sub.Location,
			UserID:    h.authorID,
		}
		if post.ID == "" {
			post.ID = h.faker.NumericID(6)
		}

		stored, err := h.store.CreatePost(post)
		for errors.Is(err, models.ErrPostExists) {
			post.ID = h.faker.NumericID(6)
			stored, err = h.store.CreatePost(post)
		}
		if err != nil {
			transport.WriteError(w, http.StatusInternalServerError, "failed to create post")
			return
		}
		created = append(created, stored)
	}

	observability.Log.Info("posts created",
		zap.Int("count", len(created)),
		zap.String("user_id", h.authorID),
	)

	transport.WriteJSON(w, http.StatusCreated, map[string]any{
		"posts": serialize.Posts(created, h.store.FindUser),
	})
}

func filterPosts(posts []models.Post, keep func(models.Post) bool) []models.Post {
	out := posts[:0:0]
	for _, p := range posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
