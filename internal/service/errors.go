package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured = errors.New("square API not configured")
	ErrItemNotFound  = errors.New("item not found")
	ErrNoLocation    = errors.New("no Square location found. Please configure a location in your Square account")
)

// ValidationError rejects client input before any gateway call is made
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
