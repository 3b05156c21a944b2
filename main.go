package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/arogyasagar/storefront/internal/agent/graph"
	agentmodel "github.com/arogyasagar/storefront/internal/agent/model"
	"github.com/arogyasagar/storefront/internal/agent/repo"
	"github.com/arogyasagar/storefront/internal/api"
	"github.com/arogyasagar/storefront/internal/core"
	"github.com/arogyasagar/storefront/internal/storage"
	"github.com/arogyasagar/storefront/internal/storefront"
	logx "github.com/arogyasagar/storefront/pkg/logger"
	pkgredis "github.com/arogyasagar/storefront/pkg/redis"
)

// AppConfig defines every configurable parameter, sourced from environment
// variables (loaded from .env for local runs).
type AppConfig struct {
	Environment     core.Environment `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel        string           `envconfig:"LOG_LEVEL"`
	HTTPAddr        string           `envconfig:"HTTP_ADDR" default:":8080"`
	AllowedOrigins  []string         `envconfig:"CORS_ALLOWED_ORIGINS"`
	ShutdownTimeout time.Duration    `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	AdminEmail  string `envconfig:"ADMIN_EMAIL" default:"admin@arogyasagar.com"`
	CatalogSeed uint64 `envconfig:"CATALOG_SEED" default:"42"`

	// Infrastructure; an empty REDIS_URL keeps everything in memory.
	Redis pkgredis.Config

	// LLM provider; an empty key selects the offline assistant.
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	ChatModel    agentmodel.ChatModelConfig
	Prompt       agentmodel.AssistantPromptConfig
	Conversation agentmodel.ConversationConfig
}

var _ agentmodel.Catalog = (*storefront.Storefront)(nil)

func main() {
	envErr := godotenv.Load(".env")

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logx.Init()
		logx.Fatal().Err(err).Msg("Failed to process environment config")
	}

	logx.Init(logx.LoggerOpts{Environment: cfg.Environment, Level: cfg.LogLevel})
	if envErr != nil {
		logx.Warn().Err(envErr).Msg("Could not load .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ttl, err := time.ParseDuration(cfg.Conversation.TTL)
	if err != nil {
		logx.Fatal().Err(err).Str("ttl", cfg.Conversation.TTL).Msg("Invalid CONVERSATION_TTL")
	}

	var (
		store    storage.Store
		convRepo agentmodel.ConversationRepository
	)
	if cfg.Redis.Enabled() {
		rdb, err := cfg.Redis.New(ctx)
		if err != nil {
			logx.Fatal().Err(err).Msg("Failed to initialise Redis client")
		}
		defer rdb.Close()
		store = storage.NewRedisStore(rdb, cfg.Redis.KeyPrefix)
		convRepo = repo.NewRedisConversationRepository(rdb, cfg.Redis.KeyPrefix, ttl)
		logx.Info().Msg("Connected to Redis")
	} else {
		store = storage.NewMemoryStore()
		convRepo = repo.NewMemoryConversationRepository()
		logx.Warn().Msg("REDIS_URL not set; state will not survive a restart")
	}

	sf, err := storefront.New(ctx, storefront.Options{
		Store:       store,
		AdminEmail:  cfg.AdminEmail,
		CatalogSeed: cfg.CatalogSeed,
	})
	if err != nil {
		logx.Fatal().Err(err).Msg("Failed to load storefront")
	}

	if cfg.APIKey != "" {
		runner, err := graph.BuildAssistantGraph(ctx, graph.Config{
			APIKey:           cfg.APIKey,
			BaseURL:          cfg.BaseURL,
			ChatModel:        cfg.ChatModel,
			Prompt:           cfg.Prompt,
			Conversation:     cfg.Conversation,
			ConversationRepo: convRepo,
			Catalog:          sf,
		})
		if err != nil {
			logx.Error().Err(err).Msg("Failed to build assistant graph; using offline assistant")
		} else {
			sf.SetResponder(runner)
		}
	} else {
		logx.Warn().Msg("GEMINI_API_KEY not set; assistant runs offline")
	}

	router := api.Setup(api.NewHandler(sf), api.RouterOptions{
		Production:     cfg.Environment.IsProduction(),
		AllowedOrigins: cfg.AllowedOrigins,
	})
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logx.Info().Str("addr", cfg.HTTPAddr).Str("environment", cfg.Environment.String()).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	logx.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
