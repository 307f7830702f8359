package gatewayapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Recipient is a phone number in any human format, e.g. "+45 12 34 56 78".
type Recipient string

// NumberRecipient converts an integer phone number to a Recipient.
func NumberRecipient(number int64) Recipient {
	return Recipient(strconv.FormatInt(number, 10))
}

// MSISDN returns the number with every non-digit character removed.
func (r Recipient) MSISDN() string {
	return strings.Map(func(char rune) rune {
		if char >= '0' && char <= '9' {
			return char
		}
		return -1
	}, string(r))
}

// UnmarshalJSON accepts both JSON strings and JSON numbers.
func (r *Recipient) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Recipient(s)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("recipient must be a string or a number: %w", err)
	}
	*r = Recipient(number.String())
	return nil
}

type recipientPayload struct {
	MSISDN string `json:"msisdn"`
}

// Response is a decoded API response. Only its being a JSON object is
// guaranteed; numbers are kept as json.Number.
type Response map[string]any

// Usage is the cost summary returned when sending messages.
type Usage struct {
	TotalCost float64
	Currency  string
	Countries map[string]any
}

// IDs returns the message ids of a send response, in order. Numeric ids are
// rendered in their decimal form.
func (r Response) IDs() []string {
	raw, ok := r["ids"].([]any)
	if !ok {
		return nil
	}

	ids := make([]string, 0, len(raw))
	for _, id := range raw {
		switch v := id.(type) {
		case string:
			ids = append(ids, v)
		case json.Number:
			ids = append(ids, v.String())
		}
	}
	return ids
}

// Usage returns the usage block of a send response. The second result is
// false when the response has none.
func (r Response) Usage() (Usage, bool) {
	raw, ok := r["usage"].(map[string]any)
	if !ok {
		return Usage{}, false
	}

	var usage Usage
	if cost, ok := raw["total_cost"].(json.Number); ok {
		usage.TotalCost, _ = cost.Float64()
	}
	usage.Currency, _ = raw["currency"].(string)
	usage.Countries, _ = raw["countries"].(map[string]any)

	return usage, true
}
