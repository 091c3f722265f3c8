// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common application errors.
var (
	// Reference data errors.
	ErrUnresolvedReference = errors.New("unresolved reference")
	ErrDuplicateID         = errors.New("duplicate identifier")
	ErrInvalidDataset      = errors.New("invalid dataset")
	ErrUnsupportedFormat   = errors.New("unsupported dataset format")

	// Database errors.
	ErrNotFound          = errors.New("not found")
	ErrDatabaseCorrupted = errors.New("database corrupted")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// IntegrityError reports a reference between records that does not resolve.
type IntegrityError struct {
	Entity   string
	RefKind  string
	EntityID int
	RefID    int
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s %d references unknown %s %d", e.Entity, e.EntityID, e.RefKind, e.RefID)
}

// Unwrap lets callers match with errors.Is(err, ErrUnresolvedReference).
func (e *IntegrityError) Unwrap() error {
	return ErrUnresolvedReference
}

// NewIntegrityError creates an error for an unresolved entity reference.
func NewIntegrityError(entity string, entityID int, refKind string, refID int) error {
	return &IntegrityError{
		Entity:   entity,
		EntityID: entityID,
		RefKind:  refKind,
		RefID:    refID,
	}
}

// ValidationError collects field problems found in a dataset.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "invalid dataset: " + strings.Join(parts, "; ")
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidDataset).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidDataset
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
