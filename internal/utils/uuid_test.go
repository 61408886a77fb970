package utils

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	id := NewUUIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected valid uuid, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected uuid v7, got v%d", parsed.Version())
	}
}

func TestUUIDGenerator_Short(t *testing.T) {
	g := NewUUIDGenerator()
	hex := regexp.MustCompile(`^[0-9a-f]{9}$`)

	a, err := g.Short(9)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	b, _ := g.Short(9)

	if !hex.MatchString(a) {
		t.Errorf("unexpected short id %q", a)
	}
	if a == b {
		t.Errorf("expected two different ids, got %q twice", a)
	}

	long, _ := g.Short(100)
	if len(long) != 32 {
		t.Errorf("expected length capped at 32, got %d", len(long))
	}
}
