// Package server provides the HTTP REST API of the skill intelligence service.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/skill-intel/internal/ingestion"
)

// ErrNotFound indicates a missing record
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Message
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// validationFromValidator converts the first validator field error.
func validationFromValidator(err error) *ErrValidation {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ErrValidation{Field: fe.Field(), Message: "failed on " + fe.Tag()}
	}
	return &ErrValidation{Message: err.Error()}
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var notFound *ErrNotFound
	var invalid *ErrValidation
	var format *ingestion.DocumentFormatError
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &invalid), errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.As(err, &format):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
