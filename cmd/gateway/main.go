package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	api "github.com/tonearc/artistdna/internal/api/http"
	"github.com/tonearc/artistdna/internal/auth"
	authmw "github.com/tonearc/artistdna/internal/auth/middleware"
	"github.com/tonearc/artistdna/internal/cache"
	"github.com/tonearc/artistdna/internal/config"
	"github.com/tonearc/artistdna/internal/db"
	"github.com/tonearc/artistdna/internal/llm"
	"github.com/tonearc/artistdna/internal/profile"
	"github.com/tonearc/artistdna/internal/session"
)

func main() {
	cfg := config.FromEnv()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Str("service", "artistdna").Logger()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("db open failed")
	}
	store := session.NewSQLStore(dbh, cfg.DBDriver)

	// --- Redis (optional) ---
	var (
		limiter cache.RateLimiter
		results cache.ResultCache
	)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
		}
		limiter = cache.NewRedisRateLimiter(rdb, cfg.RateLimitPerMin, time.Minute)
		results = cache.NewRedisResultCache(rdb, cfg.ResultCacheTTL)
	} else {
		log.Warn().Msg("REDIS_ADDR not set, using in-memory rate limiter and result cache")
		limiter = cache.NewMemoryRateLimiter(cfg.RateLimitPerMin, time.Minute)
		results = cache.NewMemoryResultCache(cfg.ResultCacheTTL)
	}

	// --- LLM ---
	var provider llm.Provider
	if p, err := llm.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel); err != nil {
		log.Warn().Err(err).Msg("llm disabled, results fall back to base profiles")
	} else {
		provider = p
	}
	gen := profile.NewGenerator(store, provider, log)

	// --- Auth ---
	authSvc := authmw.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(cache.RateLimitMiddleware(limiter))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := dbh.PingContext(r.Context()); err != nil {
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	r.Post("/auth/login", authmw.LoginHandler(authSvc, cfg.AdminUser, cfg.AdminPassHash))
	r.Post("/auth/guest", auth.GuestLoginHandler(authSvc, dbh, cfg))

	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(authSvc))

		pr.Route("/profiling", func(pr chi.Router) {
			pr.Get("/questions", api.QuestionsHandler())
			pr.Post("/start", api.StartHandler(store))
			pr.Post("/answer", api.AnswerHandler(store, results))
			pr.Post("/finish", api.FinishHandler(store, gen, results))
			pr.Get("/result", api.ResultHandler(store, results))
		})
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Info().Str("addr", cfg.HTTPAddr).Str("db", cfg.DBDriver).Msg("gateway listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server exited")
	}
}
