package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a short url-safe identifier of the given size.
func GenerateID(size int) (string, error) {
	return gonanoid.Generate(characters, size)
}

// NewIdempotencyKey is used when a caller does not supply its own key.
func NewIdempotencyKey() string {
	return uuid.NewString()
}
