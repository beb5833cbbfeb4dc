package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidCredentials covers unknown identifier, wrong password, and
	// deactivated accounts; callers must not be able to tell them apart.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrInvalidToken means the presented bearer token resolves to no live
	// session (revoked, replaced, or never issued) or a deactivated account.
	ErrInvalidToken = errors.New("invalid_token")

	// ErrMFANotEnrolled is returned by MFA operations that require an
	// active enrollment.
	ErrMFANotEnrolled = errors.New("mfa_not_enrolled")
)

// NonFieldErrors is the key validation messages are filed under when they
// apply to the request as a whole rather than a single field.
const NonFieldErrors = "non_field_errors"

// ValidationError maps field names to one or more messages, mirroring the
// wire format of the API's 400 responses.
type ValidationError struct {
	Fields map[string][]string
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// NewFieldError builds a single-field ValidationError.
func NewFieldError(field, message string) *ValidationError {
	e := newValidationError()
	e.add(field, message)
	return e
}

func (e *ValidationError) add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) empty() bool { return len(e.Fields) == 0 }

// orNil returns nil (a plain nil error, not a typed one) when no messages
// were collected.
func (e *ValidationError) orNil() error {
	if e.empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(e.Fields[f], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
