package server

import (
	"context"

	"github.com/NextMind-AI/gatewayapi-go/gatewayapi"
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// SMSClient is the part of gatewayapi.Client the relay depends on.
type SMSClient interface {
	SendSMS(ctx context.Context, sender, message string, recipients []gatewayapi.Recipient, options map[string]any) (gatewayapi.Response, error)
	GetMessageStatus(ctx context.Context, ids ...string) (gatewayapi.Response, error)
	CancelMessages(ctx context.Context, ids ...string) (gatewayapi.Response, error)
}

type Config struct {
	// APIKey, when set, must be sent by callers in the X-API-Key header.
	APIKey    string
	BodyLimit int
}

type Server struct {
	app    *fiber.App
	client SMSClient
	config Config
}

func New(client SMSClient, config Config) *Server {
	fiberConfig := fiber.Config{}
	if config.BodyLimit > 0 {
		fiberConfig.BodyLimit = config.BodyLimit
	}

	server := &Server{
		app:    fiber.New(fiberConfig),
		client: client,
		config: config,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) Start(port string) error {
	log.Info().Str("port", port).Msg("Starting SMS relay server")

	return s.app.Listen(":"+port, fiber.ListenConfig{
		DisableStartupMessage: true,
	})
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
