package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"love-by-flavour/internal/config"
	"love-by-flavour/internal/db"
	apihttp "love-by-flavour/internal/http"
	"love-by-flavour/internal/llm"
	"love-by-flavour/internal/repository"
	"love-by-flavour/internal/service"
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

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	partnerRepo := repository.NewPgPartnerRepository(pool)
	quizRepo := repository.NewPgQuizResultRepository(pool)
	cacheRepo := repository.NewPgAICacheRepository(pool)

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	aiCache := service.NewAICache(cacheRepo, logger)

	// Sin Redis el servicio igual arranca: rate limit y refresh tokens caen
	// a implementaciones en memoria, suficientes para una sola instancia.
	rateLimiter := service.NewAnalysisRateLimiter(time.Hour, cfg.AnalysisRateLimit)
	tokenStore := service.NewMemoryRefreshTokenStore()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			rateLimiter = service.NewRedisAnalysisRateLimiter(redisClient, time.Hour, cfg.AnalysisRateLimit)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	userSvc := service.NewUserService(logger, userRepo)
	quizSvc := service.NewQuizService(quizRepo, userRepo, logger)
	insightSvc := service.NewInsightService(llmClient, aiCache, partnerRepo, quizRepo, logger)

	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc)
	quizHandler := apihttp.NewQuizHandler(logger, quizSvc)
	flavourHandler := apihttp.NewFlavourHandler(logger)
	partnerHandler := apihttp.NewPartnerHandler(logger, partnerRepo)
	analysisHandler := apihttp.NewAnalysisHandler(logger, insightSvc, rateLimiter, !cfg.IsProduction())
	router := apihttp.NewRouter(logger, jwtSvc, userHandler, quizHandler, flavourHandler, partnerHandler, analysisHandler)

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
