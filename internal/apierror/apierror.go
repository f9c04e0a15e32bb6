// Package apierror provides the standardized error envelope for the API.
// All 4xx/5xx responses go through this package so that internal details
// (stack traces, store errors) never reach clients.
package apierror

// APIError is the canonical error envelope: {"error": "..."}.
type APIError struct {
	Error string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}

// ValidationError carries per-field validation failures.
type ValidationError struct {
	Error  string            `json:"error"`
	Campos map[string]string `json:"campos"`
}

func NewValidation(campos map[string]string) *ValidationError {
	return &ValidationError{Error: "Error de validación", Campos: campos}
}
