// Package errs defines the typed application errors.
//
// Every error a handler wants the client to see is an *HTTPError. The global
// error handler is the only place that turns them into responses, so clients
// always receive one of:
//
//	{"error": "User not found"}
//	{"error": {"field": "password", "error": "Minimal length of password is 8"}}
//
// Anything that is not an *HTTPError is treated as an unclassified failure.
package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "email", "error": "Field required" }
type FieldError struct {
	// Field is the payload key the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "NOT_FOUND"), used in logs.
//   - Message: human-friendly message, rendered when Errors is empty.
//   - Status: HTTP status code.
//   - Errors: per-field errors; validation is fail-fast so only the first is rendered.
type HTTPError struct {
	Code    string
	Message string
	Status  int
	Errors  []FieldError
}

// Response is the JSON body written for every error.
type Response struct {
	Error any `json:"error"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	if len(e.Errors) > 0 {
		return e.Message + ": " + e.Errors[0].Field + ": " + e.Errors[0].Error
	}
	return e.Message
}

// Is reports whether target is an *HTTPError with the same status and code.
// Messages and field errors are not compared.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	return ok && t.Status == e.Status && t.Code == e.Code
}

// Body returns the response body for this error: the first field error if
// there is one, the message otherwise.
func (e *HTTPError) Body() Response {
	if len(e.Errors) > 0 {
		return Response{Error: e.Errors[0]}
	}
	return Response{Error: e.Message}
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
