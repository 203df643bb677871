package ids

import (
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	id := Generate("staff-123", 8)

	if len(id) != 8 {
		t.Fatalf("expected ID length 8, got %d: %q", len(id), id)
	}

	for _, c := range id {
		if !((c >= 'a' && c <= 'z') || (c >= '2' && c <= '7')) {
			t.Errorf("ID contains invalid character %q: %q", c, id)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	id1 := Generate("staff-123", 10)
	id2 := Generate("staff-123", 10)

	if id1 != id2 {
		t.Errorf("same inputs should produce same ID: got %q and %q", id1, id2)
	}
}

func TestGenerate_DifferentInputs(t *testing.T) {
	id1 := Generate("staff-123", 10)
	id2 := Generate("staff-999", 10)

	if id1 == id2 {
		t.Error("different inputs should produce different IDs")
	}
}

func TestGenerateUnique_RapidSuccession(t *testing.T) {
	timestamp := time.Date(2026, 3, 2, 9, 12, 0, 0, time.UTC)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateUnique("A1Alice", timestamp, DefaultLength)
		if seen[id] {
			t.Fatalf("duplicate ID %q after %d generations", id, i)
		}
		seen[id] = true
	}
}

func TestGenerateUnique_Length(t *testing.T) {
	id := GenerateUnique("task", time.Now(), DefaultLength)
	if len(id) != DefaultLength {
		t.Errorf("expected ID length %d, got %d: %q", DefaultLength, len(id), id)
	}
}
