package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "SwipeDeck/docs"
	"SwipeDeck/internal/auth"
	"SwipeDeck/internal/config"
	"SwipeDeck/internal/deck"
	"SwipeDeck/internal/generator"
	"SwipeDeck/internal/handler"
	"SwipeDeck/internal/middleware"
	"SwipeDeck/internal/storage"
	"SwipeDeck/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const janitorInterval = time.Minute

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

// @title        SwipeDeck API
// @version      1.0
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	gen := generator.New(stdRNG{})
	store := storage.NewSessionStore(gen, deck.Options{
		DeckSize:     cfg.DeckSize,
		DismissGrace: cfg.DismissGrace,
	}, cfg.SessionTTL, logger)
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go store.RunJanitor(ctx, janitorInterval)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	router.Use(cors.New(corsConfig))

	issuer := auth.NewIssuer(cfg.SessionSecret, cfg.TokenTTL)
	h := handler.NewHandler(store, issuer, gen, logger)
	h.Register(router, middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	if err := web.Register(router); err != nil {
		logger.Error("failed to mount web assets", "error", err)
		os.Exit(1)
	}
	if cfg.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "deck_size", cfg.DeckSize)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
