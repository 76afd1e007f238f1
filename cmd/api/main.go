package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"relay-llm/internal/config"
	"relay-llm/internal/db"
	apihttp "relay-llm/internal/http"
	"relay-llm/internal/llm"
	"relay-llm/internal/repository"
	"relay-llm/internal/service"
	"relay-llm/internal/telegram"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var conversations repository.ConversationRepository
	switch {
	case cfg.DatabaseURL != "":
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		conversations = repository.NewPgConversationRepository(pool)
	case cfg.RedisAddr != "":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		}
		cancel()
		conversations = repository.NewRedisConversationRepository(redisClient)
	default:
		logger.Warn("no conversation store configured, keeping history in memory")
		conversations = repository.NewMemoryConversationRepository()
	}

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, zap.NewStdLog(logger))
	sender := telegram.NewHTTPSender(cfg.TelegramAPIBase, cfg.TelegramToken)
	relaySvc := service.NewRelayService(logger, conversations, llmClient, sender, cfg.SystemPrompt)
	webhookHandler := apihttp.NewWebhookHandler(logger, relaySvc, sender)
	router := apihttp.NewRouter(logger, webhookHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
