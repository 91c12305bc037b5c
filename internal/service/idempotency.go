package service

import "github.com/google/uuid"

// KeyFunc generates an idempotency key for a write the caller did not key
type KeyFunc func() string

func NewIdempotencyKey() string {
	return uuid.NewString()
}

func idempotencyKey(supplied string, newKey KeyFunc) string {
	if supplied != "" {
		return supplied
	}
	return newKey()
}
