package gatewayapi

import (
	"context"
	"net/http"
)

// CancelMessages cancels scheduled messages that have not been sent yet. Like
// GetMessageStatus, no ids means a request with an empty ids parameter.
func (c *Client) CancelMessages(ctx context.Context, ids ...string) (Response, error) {
	return c.sendObjectRequest(ctx, "cancel messages", http.MethodDelete, idsQuery(ids), nil)
}
