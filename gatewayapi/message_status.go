package gatewayapi

import (
	"context"
	"net/http"
)

// GetMessageStatus looks up the messages with the given ids. A single id and
// a one-element slice produce the same request. Calling it without ids is not
// an error; the request is sent with an empty ids parameter.
func (c *Client) GetMessageStatus(ctx context.Context, ids ...string) (Response, error) {
	return c.sendObjectRequest(ctx, "get message status", http.MethodGet, idsQuery(ids), nil)
}
