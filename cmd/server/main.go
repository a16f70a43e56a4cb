package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/zeromock/threads-api/internal/auth"
	"github.com/zeromock/threads-api/internal/config"
	"github.com/zeromock/threads-api/internal/fake"
	"github.com/zeromock/threads-api/internal/handlers"
	"github.com/zeromock/threads-api/internal/observability"
	"github.com/zeromock/threads-api/internal/store"
)

const serviceName = "threads-mock-api"

func main() {
	// Load configuration
	cfg := config.LoadOrDefault("config/config.yaml")

	log := observability.InitLogger(serviceName, cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	log.Info("loaded configuration", zap.String("domain", cfg.Server.Domain))

	// The fixture store lives for the process lifetime: seeded on start,
	// discarded on stop.
	st := store.New()
	faker := fake.New(nil)
	err := store.Seed(st, faker, store.SeedSpec{
		Users:        cfg.Seed.Users,
		PostsPerUser: cfg.Seed.PostsPerUser,
		ExtraPosts:   cfg.Seed.ExtraPosts,
	})
	if err != nil {
		log.Fatal("failed to seed fixture store", zap.Error(err))
	}

	users, posts, activities := st.Counts()
	log.Info("seeded fixture store",
		zap.Int("users", users),
		zap.Int("posts", posts),
		zap.Int("activities", activities),
	)

	httpServer := setupHTTPServer(cfg, st, faker)
	go func() {
		log.Info("starting HTTP server", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	}

	log.Info("server stopped")
}

func setupHTTPServer(cfg *config.Config, st *store.Store, faker *fake.Faker) *http.Server {
	addr := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	return &http.Server{
		Addr:         addr,
		Handler:      newRouter(cfg, st, faker),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func newRouter(cfg *config.Config, st *store.Store, faker *fake.Faker) chi.Router {
	issuer := auth.NewIssuer(
		cfg.Auth.JWTSecret,
		cfg.Auth.JWTIssuer,
		cfg.Auth.JWTAudience,
		time.Duration(cfg.Auth.AccessTokenTTL)*time.Second,
	)

	authH := handlers.NewAuthHandler(st, cfg, issuer)
	postH := handlers.NewPostHandler(st, faker, cfg)
	userH := handlers.NewUserHandler(st, cfg)
	activityH := handlers.NewActivityHandler(st, cfg)

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(observability.MetricsMiddleware(serviceName))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	if cfg.Security.RateLimiting.Enabled {
		r.Use(httprate.LimitByIP(cfg.Security.RateLimiting.RequestsPerMinute, time.Minute))
	}

	// Observability
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/health", handlers.NewHealthHandler(st))

	// Public routes
	r.Post("/login", authH.Login)
	r.Get("/posts", postH.List)
	r.Get("/posts/{id}", postH.Get)
	r.Get("/posts/{id}/comments", postH.Comments)
	r.Get("/users/{id}", userH.Get)
	r.Get("/users/{id}/{type}", userH.Posts)
	r.Get("/activities", activityH.List)

	// Mutating routes, optionally behind token verification
	r.Group(func(p chi.Router) {
		if cfg.Auth.RequireToken {
			p.Use(auth.RequireToken(issuer))
		}
		p.Post("/posts", postH.Create)
		p.Patch("/users/{id}", userH.Update)
	})

	return r
}
