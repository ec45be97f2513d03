package strategy

import (
	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
)

// ForcingRule pins forced modules to their forced version.
type ForcingRule struct {
	// forced is nil when nothing is forced, so Apply returns before touching
	// the details.
	forced map[domain.ModuleIdentifier]string
}

// NewForcingRule creates a rule from forced selectors. For the same module
// the later selector wins.
func NewForcingRule(forced []domain.ModuleVersionSelector) *ForcingRule {
	if len(forced) == 0 {
		return &ForcingRule{}
	}
	m := make(map[domain.ModuleIdentifier]string, len(forced))
	for _, sel := range forced {
		m[sel.Module] = sel.Version
	}
	return &ForcingRule{forced: m}
}

// IsNoOp reports whether the rule forces nothing.
func (r *ForcingRule) IsNoOp() bool {
	return r.forced == nil
}

// Apply redirects a forced module to its forced version.
func (r *ForcingRule) Apply(details ports.DependencyResolveDetails) {
	if r.forced == nil {
		return
	}
	if version, ok := r.forced[details.Requested().Module]; ok {
		details.UseVersion(version, domain.ReasonForced)
	}
}
