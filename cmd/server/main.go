package main

import (
	"context"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisdriver "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/todoapp/api/internal/adapters/cache/redis"
	"github.com/todoapp/api/internal/adapters/handler/http"
	mongorepo "github.com/todoapp/api/internal/adapters/repository/mongo"
	"github.com/todoapp/api/internal/auth"
	"github.com/todoapp/api/internal/config"
	"github.com/todoapp/api/internal/core/domain"
	"github.com/todoapp/api/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, err := mongorepo.Connect(ctx, cfg.MongoURL)
	if err != nil {
		logger.Error("failed to connect to mongo", "error", err)
		os.Exit(1)
	}
	defer mongoClient.Disconnect(context.Background())

	db := mongoClient.Database(cfg.MongoDBName)
	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		logger.Error("failed to ensure indexes", "error", err)
		os.Exit(1)
	}

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	handler := buildHandler(cfg, db, redisClient, logger)

	server := &stdhttp.Server{Addr: ":" + cfg.Port, Handler: handler}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}

func buildHandler(cfg *config.Config, db *mongo.Database, redisClient *redisdriver.Client, logger *slog.Logger) stdhttp.Handler {
	cache := redis.NewStore(redisClient)

	tokens := auth.NewManager(auth.Config{
		AccessSecret:  cfg.AccessTokenSecret,
		RefreshSecret: cfg.RefreshTokenSecret,
		AccessTTL:     cfg.AccessTokenTTL,
		RefreshTTL:    cfg.RefreshTokenTTL,
	})

	userRepo := mongorepo.NewUserRepository(db)
	todoRepo := mongorepo.NewTodoRepository(db)
	postRepo := mongorepo.NewPostRepository(db)
	commentRepo := mongorepo.NewCommentRepository(db)

	authService := services.NewAuthService(userRepo, cache, tokens, cfg.RefreshTokenTTL)
	userService := services.NewUserService(userRepo)
	todoService := services.NewTodoService(todoRepo, domain.OwnerScopeOwned)
	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	return http.NewHandler(
		authService,
		cache,
		cfg.CacheTTL,
		http.NewUserHandler(authService, userService, logger),
		http.NewTodoHandler(todoService, logger),
		http.NewPostHandler(postService, logger),
		http.NewCommentHandler(commentService, logger),
		logger,
	)
}
