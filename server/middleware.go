package server

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/rs/zerolog/log"
)

const apiKeyHeader = "X-API-Key"

func (s *Server) setupMiddleware() {
	s.app.Use(requestLogger)
	s.app.Use(recover.New())
}

func requestLogger(c fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	log.Info().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", responseStatus(c, err)).
		Dur("latency", time.Since(start)).
		Msg("Handled request")

	return err
}

// responseStatus is the status the client will receive. A returned error has
// not been through the error handler yet, so its status is derived the way
// fiber.DefaultErrorHandler does it.
func responseStatus(c fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}

// requireAPIKey rejects requests without the configured key. It is a no-op
// when no key is configured.
func (s *Server) requireAPIKey(c fiber.Ctx) error {
	if s.config.APIKey == "" {
		return c.Next()
	}

	provided := c.Get(apiKeyHeader)
	if subtle.ConstantTimeCompare([]byte(provided), []byte(s.config.APIKey)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error: "invalid or missing API key",
		})
	}

	return c.Next()
}
