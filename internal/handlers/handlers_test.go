package handlers

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zeromock/threads-api/internal/auth"
	"github.com/zeromock/threads-api/internal/config"
	"github.com/zeromock/threads-api/internal/fake"
	"github.com/zeromock/threads-api/internal/models"
	"github.com/zeromock/threads-api/internal/store"
)

// testEnv wires real handlers onto a router over a deterministic store:
// fixture-user posts 100001..100010 plus five posts by alice, and one seeded
// activity per type.
type testEnv struct {
	store  *store.Store
	router *chi.Mux
	cfg    *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.API.CreatePostDelay = 0

	s := store.New()
	if err := s.CreateUser(models.User{
		ID:              store.FixtureUserID,
		Name:            store.FixtureUserName,
		Description:     store.FixtureUserDescription,
		ProfileImageURL: store.FixtureUserAvatar,
	}); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateUser(models.User{ID: "alice", Name: "Alice Anderson"}); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		_, err := s.CreatePost(models.Post{
			ID:      fmt.Sprintf("%d", 100001+i),
			Content: fmt.Sprintf("post %d", i+1),
			UserID:  store.FixtureUserID,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 5; i++ {
		_, err := s.CreatePost(models.Post{
			ID:      fmt.Sprintf("%d", 200001+i),
			Content: fmt.Sprintf("alice post %d", i+1),
			UserID:  "alice",
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	for i, typ := range models.ActivityTypes {
		_, err := s.CreateActivity(models.Activity{
			ID:      fmt.Sprintf("a%d", i+1),
			Type:    typ,
			Content: "activity " + typ,
			TimeAgo: "3h",
			UserID:  store.FixtureUserID,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	issuer := auth.NewIssuer(
		cfg.Auth.JWTSecret,
		cfg.Auth.JWTIssuer,
		cfg.Auth.JWTAudience,
		time.Duration(cfg.Auth.AccessTokenTTL)*time.Second,
	)
	faker := fake.New(rand.New(rand.NewSource(1)))

	authH := NewAuthHandler(s, cfg, issuer)
	postH := NewPostHandler(s, faker, cfg)
	userH := NewUserHandler(s, cfg)
	activityH := NewActivityHandler(s, cfg)

	r := chi.NewRouter()
	r.Handle("/health", NewHealthHandler(s))
	r.Post("/login", authH.Login)
	r.Get("/posts", postH.List)
	r.Post("/posts", postH.Create)
	r.Get("/posts/{id}", postH.Get)
	r.Get("/posts/{id}/comments", postH.Comments)
	r.Get("/users/{id}", userH.Get)
	r.Patch("/users/{id}", userH.Update)
	r.Get("/users/{id}/{type}", userH.Posts)
	r.Get("/activities", activityH.List)

	return &testEnv{store: s, router: r, cfg: cfg}
}

// Response payload shapes used across the tests.

type userPayload struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	ProfileImageURL    string `json:"profileImageUrl"`
	Link               string `json:"link"`
	ShowInstagramBadge bool   `json:"showInstagramBadge"`
	IsPrivate          bool   `json:"isPrivate"`
}

type postPayload struct {
	ID        string      `json:"id"`
	Content   string      `json:"content"`
	ImageURLs []string    `json:"imageUrls"`
	Location  *[2]float64 `json:"location"`
	User      userPayload `json:"user"`
}

type activityPayload struct {
	ID      string      `json:"id"`
	Type    string      `json:"type"`
	User    userPayload `json:"user"`
	TimeAgo string      `json:"timeAgo"`
}

func checkStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Fatalf("Expected status %d, got %d", want, got)
	}
}
