// Package response contains the helper types for the JSON error bodies the
// HTTP handlers return. Errors always serialize as {"error": "<message>"};
// success bodies are endpoint-specific and built by the handlers themselves.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// ErrorResponse is the wire shape of every error body.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// Error returns an ErrorResponse with the given message.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Error: msg,
	}
}

// ValidationError builds an ErrorResponse out of validation failures. Each
// violation becomes a human-readable sentence, joined with commas.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too short", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ErrorResponse{
		Error: strings.Join(errsMsgs, ", "),
	}
}
