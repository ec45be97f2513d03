package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/depres/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("org.example")
	is2 := domain.NewInternedString("org.example")

	if is1 != is2 {
		t.Errorf("Expected interned strings to be equal for identical input")
	}
	if is1.String() != "org.example" {
		t.Errorf("Expected String() to return %q, got %q", "org.example", is1.String())
	}
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString

	if !zero.IsZero() {
		t.Error("Expected zero value to report IsZero")
	}
	if zero.String() != "" {
		t.Errorf("Expected empty string for zero value, got %q", zero.String())
	}
	if domain.NewInternedString("").IsZero() {
		t.Error("Expected an interned empty string not to be the zero value")
	}
}

func TestInternedStringJSON(t *testing.T) {
	type coordinates struct {
		Group domain.InternedString `json:"group"`
	}

	original := coordinates{Group: domain.NewInternedString("org.example")}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Failed to marshal struct: %v", err)
	}
	if string(data) != `{"group":"org.example"}` {
		t.Errorf("Unexpected JSON %s", data)
	}

	var decoded coordinates
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal struct: %v", err)
	}
	if decoded.Group != original.Group {
		t.Errorf("Expected %q, got %q", original.Group, decoded.Group)
	}
}
