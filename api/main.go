package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/julienschmidt/httprouter"

	chatauth "github.com/aegomez/chat-app-auth"
	"github.com/aegomez/chat-app-auth/graphql"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := chatauth.LoadConfig()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}
	if err = client.Ping(ctx, nil); err != nil {
		logger.Error("database is unreachable", "error", err)
		os.Exit(1)
	}

	users := client.Database(cfg.Database).Collection(cfg.Collection)
	if err = chatauth.EnsureUserIndexes(ctx, users); err != nil {
		logger.Error("could not create user indexes", "error", err)
		os.Exit(1)
	}

	tokens, err := chatauth.NewTokenService([]byte(cfg.JWTSecret))
	if err != nil {
		logger.Error("invalid token configuration", "error", err)
		os.Exit(1)
	}

	svc := chatauth.NewService(
		chatauth.NewMongoUserRepository(users),
		chatauth.NewHasher(cfg.BcryptCost),
		tokens,
		logger,
	)

	router := httprouter.New()
	router.Handler(http.MethodPost, "/graphql", graphql.NewHandler(svc))

	logger.Info("server started", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
