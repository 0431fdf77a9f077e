package storage

import "github.com/google/uuid"

// NewRunID returns a fresh identifier for one played game.
func NewRunID() string {
	return uuid.NewString()
}
