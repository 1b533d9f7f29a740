package main

import (
	"context"

	"github.com/Harsh-986/PrepWise/internal/cache"
	"github.com/Harsh-986/PrepWise/internal/config"
	"github.com/Harsh-986/PrepWise/internal/database"
	"github.com/Harsh-986/PrepWise/internal/gemini"
	"github.com/Harsh-986/PrepWise/internal/handler"
	"github.com/Harsh-986/PrepWise/internal/logger"
	"github.com/Harsh-986/PrepWise/internal/repository"
	"github.com/Harsh-986/PrepWise/internal/vapi"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type application struct {
	Mongo      *mongo.Client
	Redis      *redis.Client
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	if cfg.IsDevelopment() {
		sugar.Infof("config loaded: %s", cfg)
	} else {
		sugar.Infof("config loaded, env=%s", cfg.Env)
	}

	client, err := database.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.ConnectTimeout)
	if err != nil {
		sugar.Fatal(err)
	}
	defer client.Disconnect(ctx)

	repo := repository.NewRepository(client.Database(cfg.Mongo.Database))
	if err := repo.User.EnsureIndexes(ctx); err != nil {
		sugar.Fatal(err)
	}

	rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(ctx, rdb); err != nil {
		// The cache is an optimization; the service runs without it.
		sugar.Warnw("redis unreachable, continuing without cache", "err", err)
	}

	geminiClient := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	vapiClient := vapi.NewClient(cfg.Vapi.WebToken, cfg.Vapi.WorkflowID)

	h := &handler.Handler{
		Logger:     log,
		Users:      repo.User,
		Interviews: repo.Interview,
		AI:         geminiClient,
		Voice:      vapiClient,
		Cache:      cache.NewInterviewCache(rdb, cfg.Redis.TTL),
		JWTSecret:  cfg.JWT.Secret,
		JWTTTL:     cfg.JWT.AccessTokenTTL,
		AITimeout:  cfg.Gemini.Timeout,
		Mongo:      client,
		Redis:      rdb,
	}

	app := &application{
		Mongo:      client,
		Redis:      rdb,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler:    h,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
