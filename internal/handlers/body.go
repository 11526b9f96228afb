package handlers

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/redfive410/dinnercaster3-aws/pkg/lambda"
)

// previewLimit caps how much of a rejected body is echoed into diagnostics
const previewLimit = 100

// ValidateBody checks a request body before dispatch and returns the body the
// dispatcher should see. Absent bodies pass through untouched. Textual bodies
// must be free of control characters (other than tab, newline and carriage
// return) and syntactically valid JSON. Binary bodies must additionally decode
// as UTF-8; on success the returned body is the decoded text, so the event is
// dispatched with a textual body.
func ValidateBody(body lambda.Body) (lambda.Body, *ValidationError) {
	switch body.Kind() {
	case lambda.BodyAbsent:
		return body, nil

	case lambda.BodyText:
		if verr := validateText(body.Text()); verr != nil {
			return body, verr
		}
		return body, nil

	case lambda.BodyBinary:
		raw := body.Raw()
		if !utf8.Valid(raw) {
			return body, &ValidationError{
				Message: "Invalid request body format",
				Details: fmt.Sprintf("body is not valid UTF-8, raw body preview: %q", truncateBytes(raw, previewLimit)),
			}
		}
		text := string(raw)
		if verr := validateText(text); verr != nil {
			return body, verr
		}
		// Replace the binary payload with its decoded text for dispatch
		return lambda.TextBody(text), nil

	default:
		return body, &ValidationError{
			Message: "Invalid request body format",
			Details: fmt.Sprintf("unknown body kind %d", body.Kind()),
		}
	}
}

// validateText applies the control-character and JSON syntax checks
func validateText(text string) *ValidationError {
	if hasDisallowedControlChars(text) {
		return &ValidationError{
			Message: "Request body contains invalid control characters",
			Details: fmt.Sprintf("Body length: %d, first 100 chars: %q",
				utf8.RuneCountInString(text), truncateString(text, previewLimit)),
		}
	}

	var payload any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return &ValidationError{
			Message: "Invalid JSON in request body",
			Details: fmt.Sprintf("%s, body preview: %q", err, truncateString(text, previewLimit)),
		}
	}

	return nil
}

// hasDisallowedControlChars reports whether text contains any code point
// below 32 other than tab (9), newline (10) or carriage return (13)
func hasDisallowedControlChars(text string) bool {
	for _, r := range text {
		if r < 32 && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}

// truncateString returns the first limit runes of s
func truncateString(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}

// truncateBytes returns the first limit bytes of b
func truncateBytes(b []byte, limit int) []byte {
	if len(b) <= limit {
		return b
	}
	return b[:limit]
}
