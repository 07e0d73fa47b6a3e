package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	authuc "github.com/OSU-CS493-Sp18/auth/internal/application/auth"
	"github.com/OSU-CS493-Sp18/auth/internal/application/lodging"
	"github.com/OSU-CS493-Sp18/auth/internal/config"
	infraauth "github.com/OSU-CS493-Sp18/auth/internal/infrastructure/auth"
	httprouter "github.com/OSU-CS493-Sp18/auth/internal/infrastructure/http"
	"github.com/OSU-CS493-Sp18/auth/internal/infrastructure/http/handlers"
	"github.com/OSU-CS493-Sp18/auth/internal/infrastructure/http/middleware"
	mongostore "github.com/OSU-CS493-Sp18/auth/internal/infrastructure/persistence/mongo"
	pgstore "github.com/OSU-CS493-Sp18/auth/internal/infrastructure/persistence/postgres"
	"github.com/OSU-CS493-Sp18/auth/internal/infrastructure/security"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()

	mongoClient, err := mongo.Connect(options.Client().ApplyURI(cfg.Mongo.URL))
	if err != nil {
		log.Fatal().Err(err).Msg("connect to document store")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("disconnect document store")
		}
	}()
	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatal().Err(err).Msg("ping document store")
	}

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}
	if err := pgstore.RunMigrations(ctx, cfg.Database.URL); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	directory := mongostore.NewUserDirectory(mongoClient.Database(cfg.Mongo.Database))
	if err := directory.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure user indexes")
	}
	lodgingStore := pgstore.NewLodgingStore(pool)

	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
		SaltLength:  16,
		KeyLength:   32,
	})
	issuer := infraauth.NewTokenIssuer([]byte(cfg.JWT.Secret), cfg.JWT.Issuer, time.Duration(cfg.JWT.Expiry)*time.Second)

	registerUC := authuc.NewRegister(directory, hasher)
	loginUC := authuc.NewLogin(directory, hasher, issuer)
	createLodgingUC := lodging.NewCreate(lodgingStore, directory, log)

	usersHandler := handlers.NewUsersHandler(registerUC, loginUC, directory, lodgingStore, log)
	lodgingsHandler := handlers.NewLodgingsHandler(createLodgingUC, log)
	healthHandler := handlers.NewHealthHandler(pool, mongoClient)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit.RatePerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Secure.IsDevelopment))
	requireJWT := middleware.NewAuthValidator(issuer).Handler

	router := httprouter.NewRouter(httprouter.RouterConfig{
		UsersHandler:    usersHandler,
		LodgingsHandler: lodgingsHandler,
		HealthHandler:   healthHandler,
		RequireJWT:      requireJWT,
		Log:             log,
		Secure:          secureMiddleware,
		IPRateLimit:     ipLimit,
		Metrics:         true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
