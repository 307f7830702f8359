package server

import "github.com/gofiber/fiber/v3"

func (s *Server) setupRoutes() {
	s.app.Get("/health", s.healthCheckHandler)

	s.app.Use("/sms", fiber.Handler(s.requireAPIKey))
	s.app.Use("/messages", fiber.Handler(s.requireAPIKey))

	s.app.Post("/sms", s.sendSMSHandler)
	s.app.Get("/messages", s.messageStatusHandler)
	s.app.Delete("/messages", s.cancelMessagesHandler)
}
