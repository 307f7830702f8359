package server

import "github.com/NextMind-AI/gatewayapi-go/gatewayapi"

type SendSMSRequest struct {
	Sender     string                 `json:"sender"`
	Message    string                 `json:"message"`
	Recipients []gatewayapi.Recipient `json:"recipients"`
	Options    map[string]any         `json:"options,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}
