package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/depres/internal/core/domain"
)

func TestModuleIdentifier_MapKey(t *testing.T) {
	seen := map[domain.ModuleIdentifier]string{}
	seen[domain.NewModuleIdentifier("org", "a")] = "first"
	seen[domain.NewModuleIdentifier("org", "a")] = "second"
	seen[domain.NewModuleIdentifier("org", "b")] = "other"

	assert.Len(t, seen, 2)
	assert.Equal(t, "second", seen[domain.NewModuleIdentifier("org", "a")])
}

func TestModuleIdentifier_Compare(t *testing.T) {
	a := domain.NewModuleIdentifier("org", "a")
	b := domain.NewModuleIdentifier("org", "b")
	c := domain.NewModuleIdentifier("com", "z")

	assert.Negative(t, a.Compare(b))
	assert.Positive(t, a.Compare(c))
	assert.Zero(t, a.Compare(domain.NewModuleIdentifier("org", "a")))
}

func TestModuleVersionSelector_String(t *testing.T) {
	assert.Equal(t, "org:a:1.+", domain.NewModuleVersionSelector("org", "a", "1.+").String())
	assert.Equal(t, "org:a", domain.NewModuleVersionSelector("org", "a", "").String())
}

func TestModuleVersionSelector_WithVersion(t *testing.T) {
	original := domain.NewModuleVersionSelector("org", "a", "1.0")
	changed := original.WithVersion("2.0")

	assert.Equal(t, "1.0", original.Version)
	assert.Equal(t, "2.0", changed.Version)
	assert.Equal(t, original.Module, changed.Module)
}

func TestSelectionReason_String(t *testing.T) {
	tests := []struct {
		reason   domain.SelectionReason
		expected string
	}{
		{domain.ReasonRequested, "REQUESTED"},
		{domain.ReasonForced, "FORCED"},
		{domain.ReasonConflictResolution, "CONFLICT_RESOLUTION"},
		{domain.ReasonSelectedByRule, "SELECTED_BY_RULE"},
		{domain.ReasonRoot, "ROOT"},
		{domain.SelectionReason(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.reason.String())
		})
	}
}

func TestParseSelectionReason(t *testing.T) {
	reason, ok := domain.ParseSelectionReason("forced")
	assert.True(t, ok)
	assert.Equal(t, domain.ReasonForced, reason)

	_, ok = domain.ParseSelectionReason("bogus")
	assert.False(t, ok)
}

func TestConflictResolution_Default(t *testing.T) {
	var mode domain.ConflictResolution
	assert.Equal(t, domain.ConflictResolutionLatest, mode)
	assert.Equal(t, "latest", mode.String())
	assert.Equal(t, "strict", domain.ConflictResolutionStrict.String())
}
