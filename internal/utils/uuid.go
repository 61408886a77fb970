package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces random identifiers backed by google/uuid.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 string, falling back to v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// Short returns n lowercase hex characters taken from the random tail of a
// v4 UUID (at most 32).
func (g *UUIDGenerator) Short(n int) (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	hex := strings.ReplaceAll(u.String(), "-", "")
	if n > len(hex) {
		n = len(hex)
	}
	return hex[len(hex)-n:], nil
}
