package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/NextMind-AI/gatewayapi-go/config"
	"github.com/NextMind-AI/gatewayapi-go/gatewayapi"
	"github.com/NextMind-AI/gatewayapi-go/logging"
	"github.com/NextMind-AI/gatewayapi-go/server"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel, nil)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("Invalid log level")
	}
	log.Logger = logger

	httpClient := &http.Client{Timeout: gatewayapi.DefaultTimeout}

	client := gatewayapi.NewClient(
		cfg.GatewayAPIToken,
		gatewayapi.WithHTTPClient(httpClient),
		gatewayapi.WithLogger(logger.With().Str("component", "gatewayapi").Logger()),
	)

	srv := server.New(client, server.Config{
		APIKey:    cfg.RelayAPIKey,
		BodyLimit: cfg.BodyLimit,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Info().Msg("Shutting down SMS relay server")
		if err := srv.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Failed to shut down server")
		}
	}()

	if err := srv.Start(cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
