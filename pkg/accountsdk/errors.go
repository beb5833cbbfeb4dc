package accountsdk

import (
	"fmt"
	"sort"
	"strings"
)

// NonFieldErrors keys validation messages not tied to a single input field.
const NonFieldErrors = "non_field_errors"

// APIError is any non-2xx response from the service.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("accountsdk: unexpected status %d: %s", e.StatusCode, e.Body)
}

// ValidationError is a 400 response carrying the field → messages mapping.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e.Fields[f], "; "))
	}
	return "accountsdk: validation failed: " + strings.Join(parts, ", ")
}

// Messages returns the messages for one field, nil when the field is clean.
func (e *ValidationError) Messages(field string) []string {
	return e.Fields[field]
}

// AuthError is a 401 response (missing, invalid, or revoked token).
type AuthError struct {
	Detail string
}

func (e *AuthError) Error() string {
	return "accountsdk: unauthorized: " + e.Detail
}
