package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/redfive410/dinnercaster3-aws/pkg/lambda"
)

// ErrorResponse is the JSON shape of every locally-produced failure
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// ValidationError describes a request body rejected before dispatch.
// It always maps to a 400 response; nothing else produces one.
type ValidationError struct {
	Message string
	Details string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

// errorResponse builds a structured error response with the given status
func errorResponse(statusCode int, message, details string) *lambda.Response {
	body, err := json.Marshal(ErrorResponse{Error: message, Details: details})
	if err != nil {
		// ErrorResponse contains only strings; marshal cannot realistically fail
		body = []byte(`{"error":"Internal server error","details":"failed to encode error response"}`)
	}

	return &lambda.Response{
		StatusCode: statusCode,
		Headers:    jsonHeaders(),
		Body:       body,
	}
}

// badRequestResponse converts a validation error into a 400 response
func badRequestResponse(verr *ValidationError) *lambda.Response {
	return errorResponse(http.StatusBadRequest, verr.Message, verr.Details)
}

// internalErrorResponse converts an unhandled fault into a 500 response
func internalErrorResponse(details string) *lambda.Response {
	return errorResponse(http.StatusInternalServerError, "Internal server error", details)
}
