package server

import (
	"errors"
	"strings"

	"github.com/NextMind-AI/gatewayapi-go/gatewayapi"
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

func (s *Server) sendSMSHandler(c fiber.Ctx) error {
	var request SendSMSRequest
	if err := c.Bind().JSON(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
	}

	response, err := s.client.SendSMS(c.Context(), request.Sender, request.Message, request.Recipients, request.Options)
	if err != nil {
		log.Error().
			Err(err).
			Str("sender", request.Sender).
			Int("recipients", len(request.Recipients)).
			Msg("Error sending SMS")
		return writeError(c, err)
	}

	log.Info().
		Strs("ids", response.IDs()).
		Int("recipients", len(request.Recipients)).
		Msg("SMS sent successfully")

	return c.JSON(response)
}

func (s *Server) messageStatusHandler(c fiber.Ctx) error {
	ids, ok := parseIDs(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "ids query parameter is required",
		})
	}

	response, err := s.client.GetMessageStatus(c.Context(), ids...)
	if err != nil {
		log.Error().Err(err).Strs("ids", ids).Msg("Error getting message status")
		return writeError(c, err)
	}

	return c.JSON(response)
}

func (s *Server) cancelMessagesHandler(c fiber.Ctx) error {
	ids, ok := parseIDs(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "ids query parameter is required",
		})
	}

	response, err := s.client.CancelMessages(c.Context(), ids...)
	if err != nil {
		log.Error().Err(err).Strs("ids", ids).Msg("Error cancelling messages")
		return writeError(c, err)
	}

	log.Info().Strs("ids", ids).Msg("Messages cancelled")

	return c.JSON(response)
}

func (s *Server) healthCheckHandler(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// parseIDs splits the comma separated ids parameter, keeping order and
// duplicates.
func parseIDs(c fiber.Ctx) ([]string, bool) {
	raw := strings.TrimSpace(c.Query("ids"))
	if raw == "" {
		return nil, false
	}
	return strings.Split(raw, ","), true
}

func writeError(c fiber.Ctx, err error) error {
	status := fiber.StatusBadGateway
	if errors.Is(err, gatewayapi.ErrValidation) {
		status = fiber.StatusBadRequest
	}

	response := ErrorResponse{Error: err.Error()}

	var gatewayErr *gatewayapi.Error
	if errors.As(err, &gatewayErr) {
		response.Code = gatewayErr.Code
	}

	return c.Status(status).JSON(response)
}
