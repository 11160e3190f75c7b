package main

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	apphttp "github.com/NafizUddin/Quickreads-Server-Side/internal/http"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/httpx"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/platform/logging"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/platform/tracing"
	"github.com/NafizUddin/Quickreads-Server-Side/internal/store"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	_ = godotenv.Load(".env.local")

	logger := logging.New(os.Stderr)

	serverAddress := getEnv("APP_ADDR", ":3000")
	mongoURI := getEnv("MONGO_URI", "mongodb://localhost:27017")
	mongoDatabase := getEnv("MONGO_DB", "quickReadsDB")
	jwtSecret := mustGetEnv("ACCESS_TOKEN_SECRET", logger)
	allowedOrigins := strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ",")

	ctx := context.Background()

	shutdownTracing, err := tracing.Setup(ctx, "quickreads-api")
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot set up tracing")
	}
	defer func() { _ = shutdownTracing(ctx) }()

	client, err := store.Connect(ctx, mongoURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to mongodb")
	}
	defer func() { _ = client.Disconnect(ctx) }()
	logger.Info().Msg("mongodb connection OK")

	db := client.Database(mongoDatabase)
	categoryRepository := store.NewCategoryMongo(db)
	userRepository := store.NewUserMongo(db)
	bookRepository := store.NewBookMongo(db)
	borrowedRepository := store.NewBorrowedBookMongo(db)

	app := &application{
		secret: jwtSecret,
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		auth:     apphttp.NewAuthHandler(jwtSecret),
		category: apphttp.NewCategoryHandler(categoryRepository),
		user:     apphttp.NewUserHandler(userRepository),
		book:     apphttp.NewBookHandler(bookRepository),
		borrowed: apphttp.NewBorrowedBookHandler(borrowedRepository, bookRepository),
	}

	handler := httpx.RequestIDMiddleware(
		httpx.AccessLogMiddleware(logger)(
			httpx.RecoveryMiddleware(logger)(
				httpx.CORSMiddleware(allowedOrigins)(app.routes()),
			),
		),
	)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info().Str("addr", serverAddress).Msg("starting server")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server error")
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustGetEnv(key string, logger zerolog.Logger) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	logger.Fatal().Str("key", key).Msg("missing required environment variable")
	return ""
}
