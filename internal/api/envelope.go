package api

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// envelope is the wire shape every API response is wrapped in.
// Success responses carry data; error responses carry code, message
// and optional details.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// EnvelopeTransformer wraps every huma response body in the standard
// envelope. Registered as a huma transformer so handlers return plain
// bodies and errors and never touch the envelope themselves.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	success := !strings.HasPrefix(status, "4") && !strings.HasPrefix(status, "5")

	if !success {
		if apiErr, ok := v.(*APIError); ok {
			return &envelope{
				Success: false,
				Code:    apiErr.Code,
				Message: apiErr.Message,
				Details: apiErr.Details,
			}, nil
		}
		if err, ok := v.(error); ok {
			return &envelope{Success: false, Message: err.Error()}, nil
		}
		return &envelope{Success: false, Data: v}, nil
	}

	return &envelope{Success: true, Data: v}, nil
}
