package gatewayapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"
)

// maxErrorBodyChars bounds how much of a failed response ends up in a StatusError.
const maxErrorBodyChars = 512

func (c *Client) sendObjectRequest(ctx context.Context, operation, method string, query url.Values, payload []byte) (Response, error) {
	respBody, err := c.sendRequest(ctx, method, messagesPath, query, payload)
	if err != nil {
		return nil, transportError(operation, err)
	}

	return decodeObject(respBody)
}

func (c *Client) sendRequest(ctx context.Context, method, path string, query url.Values, payload []byte) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(req)

	c.logger.Debug().
		Str("method", method).
		Str("url", endpoint).
		Msg("Sending GatewayAPI request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("method", method).
		Int("status", resp.StatusCode).
		Int("bytes", len(responseBody)).
		Msg("Received GatewayAPI response")

	if !isSuccessStatusCode(resp.StatusCode) {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       truncate(strings.TrimSpace(string(responseBody)), maxErrorBodyChars),
		}
	}

	return responseBody, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.SetBasicAuth(c.token, "")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

func decodeObject(body []byte) (Response, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, invalidResponseError(err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, invalidResponseError(errors.New("unexpected data after top-level value"))
	}

	object, ok := value.(map[string]any)
	if !ok {
		return nil, invalidResponseError(fmt.Errorf("expected JSON object, got %T", value))
	}

	return Response(object), nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func idsQuery(ids []string) url.Values {
	query := make(url.Values)
	query.Set("ids", strings.Join(ids, ","))
	return query
}
