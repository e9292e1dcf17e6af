package utils

import "testing"

func TestHashString(t *testing.T) {
	a := HashString(`{"name":"Alice"}`, "key-1")
	b := HashString(`{"name":"Alice"}`, "key-1")
	c := HashString(`{"name":"Bob"}`, "key-1")
	d := HashString(`{"name":"Alice"}`, "key-2")

	if a != b {
		t.Error("expected equal fingerprints for equal input")
	}
	if a == c || a == d {
		t.Error("expected different fingerprints for different input or key")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}
