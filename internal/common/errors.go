package common

import (
	"errors"
	"fmt"
	"strings"
)

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Content errors
	ErrContentNotFound = errors.New("content not found")
	ErrSlugConflict    = errors.New("slug already in use")

	// Template errors
	ErrTemplateNotFound    = errors.New("template not found")
	ErrInstanceNotFound    = errors.New("template instance not found")
	ErrAlreadyMaterialized = errors.New("template instance already materialized")

	// Version errors
	ErrVersionNotFound = errors.New("version not found")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrValidation   = errors.New("validation failed")

	// Infrastructure errors
	ErrStorageUnavailable = errors.New("object storage not configured")
)

// MissingVariablesError reports required template variables absent from
// a render call. It carries the offending names for the API response.
type MissingVariablesError struct {
	Names []string
}

func (e *MissingVariablesError) Error() string {
	return fmt.Sprintf("missing required variables: %s", strings.Join(e.Names, ", "))
}

// NewMissingVariablesError builds the error from the missing names.
func NewMissingVariablesError(names []string) *MissingVariablesError {
	return &MissingVariablesError{Names: names}
}
