package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jmorgan/word-royale/internal/api"
	"github.com/jmorgan/word-royale/internal/clock"
	"github.com/jmorgan/word-royale/internal/config"
	"github.com/jmorgan/word-royale/internal/repository"
	"github.com/jmorgan/word-royale/internal/repository/memory"
	"github.com/jmorgan/word-royale/internal/repository/postgres"
	"github.com/jmorgan/word-royale/internal/service"
	"github.com/jmorgan/word-royale/internal/words"
	"github.com/jmorgan/word-royale/internal/ws"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	setupLogging(cfg)

	src, err := words.Load(cfg.AnswersFile, cfg.GuessableFile)
	if err != nil {
		log.Warn().Err(err).Msg("word lists unavailable, using built-in fallback")
		src = words.Fallback()
	}
	answers, guessable := src.Stats()
	log.Info().Int("answers", answers).Int("guessable", guessable).Msg("word lists loaded")

	repos, err := buildRepositories(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init store")
	}

	games := service.NewGameService(repos, src, clock.Real{})
	hub := ws.NewHub()
	router := api.NewRouter(games, hub)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func buildRepositories(cfg *config.Config) (*repository.Repositories, error) {
	if cfg.DatabaseURL == "" {
		log.Info().Msg("using in-memory store")
		return memory.NewRepositories(), nil
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	log.Info().Msg("using postgres store")
	return postgres.NewRepositories(db), nil
}
