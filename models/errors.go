package models

import (
	"fmt"
	"net/http"
)

// NotFoundError reports a lookup for an id with no matching row.
type NotFoundError struct {
	Kind string
	ID   uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such %s: %d", e.Kind, e.ID)
}

func (e *NotFoundError) Status() int { return http.StatusNotFound }

// ValidationError reports malformed or missing request input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Status() int { return http.StatusBadRequest }
