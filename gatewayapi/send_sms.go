package gatewayapi

import (
	"context"
	"encoding/json"
	"net/http"
	"unicode/utf8"
)

// SendSMS sends message from sender to every recipient.
//
// Keys in options are added to the request body after sender, message and
// recipients, and replace them on collision. This allows any field the API
// accepts (e.g. "sendtime", "class", "label") to be set.
//
// Only the empty string counts as an empty message or recipient; "0" is
// accepted for both, unlike GatewayAPI's PHP client.
func (c *Client) SendSMS(ctx context.Context, sender, message string, recipients []Recipient, options map[string]any) (Response, error) {
	if len(recipients) == 0 {
		return nil, validationError("recipients list cannot be empty")
	}
	if utf8.RuneCountInString(sender) > MaxSenderLength {
		return nil, validationError("sender name cannot exceed %d characters", MaxSenderLength)
	}
	if message == "" {
		return nil, validationError("message cannot be empty")
	}

	formatted, err := formatRecipients(recipients)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"sender":     sender,
		"message":    message,
		"recipients": formatted,
	}
	for key, value := range options {
		payload[key] = value
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &Error{
			Message: "invalid options: " + err.Error(),
			Cause:   err,
			kind:    ErrValidation,
		}
	}

	return c.sendObjectRequest(ctx, "send SMS", http.MethodPost, nil, body)
}

func formatRecipients(recipients []Recipient) ([]recipientPayload, error) {
	formatted := make([]recipientPayload, 0, len(recipients))
	for _, recipient := range recipients {
		msisdn := recipient.MSISDN()
		if msisdn == "" {
			return nil, validationError("invalid recipient number: %q", string(recipient))
		}
		formatted = append(formatted, recipientPayload{MSISDN: msisdn})
	}
	return formatted, nil
}
