// Package server provides the HTTP API for the resume wizard.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-wizard/internal/llm"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrDraftNotFound indicates the requested draft does not exist
type ErrDraftNotFound struct {
	DraftID uuid.UUID
}

func (e *ErrDraftNotFound) Error() string {
	return fmt.Sprintf("draft not found: %s", e.DraftID)
}

// ErrInvalidToken indicates a missing or invalid draft token
type ErrInvalidToken struct{}

func (e *ErrInvalidToken) Error() string {
	return "invalid or missing draft token"
}

// ErrNotConfigured indicates a feature is disabled because its
// configuration is absent
type ErrNotConfigured struct {
	Feature string
}

func (e *ErrNotConfigured) Error() string {
	return fmt.Sprintf("%s is not configured", e.Feature)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrDraftNotFound:
		return http.StatusNotFound
	case *ErrInvalidToken:
		return http.StatusUnauthorized
	case *ErrNotConfigured:
		return http.StatusServiceUnavailable
	case *llm.UpstreamError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
