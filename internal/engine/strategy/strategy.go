// Package strategy holds the resolution strategy: forced modules, conflict
// mode, dependency resolve rules, component selection rules and cache policy.
//
// A strategy is configured single-threaded and freezes on the first call to
// DependencyResolveRule. Callers resolving concurrently each take a Copy.
package strategy

import (
	"maps"
	"slices"

	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
	"go.trai.ch/zerr"
)

// ResolutionStrategy is the policy applied while resolving one configuration.
type ResolutionStrategy struct {
	parser      ports.NotationParser
	forced      map[domain.ModuleIdentifier]string
	conflict    domain.ConflictResolution
	rules       []DependencyResolveRule
	selection   *ComponentSelectionRules
	cachePolicy *CachePolicy

	composed DependencyResolveRule
}

// New creates an empty strategy: nothing forced, latest-wins conflict
// resolution, default cache timeouts.
func New(parser ports.NotationParser) *ResolutionStrategy {
	return &ResolutionStrategy{
		parser:      parser,
		forced:      make(map[domain.ModuleIdentifier]string),
		selection:   newComponentSelectionRules(parser),
		cachePolicy: NewCachePolicy(),
	}
}

// Force adds forced modules. Notations must carry a version. Forcing a module
// again replaces its version.
func (s *ResolutionStrategy) Force(notations ...any) error {
	if err := s.mutable(); err != nil {
		return err
	}
	selectors, err := s.parseForced(notations)
	if err != nil {
		return err
	}
	for _, sel := range selectors {
		s.forced[sel.Module] = sel.Version
	}
	return nil
}

// SetForcedModules replaces the forced modules.
func (s *ResolutionStrategy) SetForcedModules(notations ...any) error {
	if err := s.mutable(); err != nil {
		return err
	}
	selectors, err := s.parseForced(notations)
	if err != nil {
		return err
	}
	forced := make(map[domain.ModuleIdentifier]string, len(selectors))
	for _, sel := range selectors {
		forced[sel.Module] = sel.Version
	}
	s.forced = forced
	return nil
}

// ForcedModules returns the forced modules ordered by group and name.
func (s *ResolutionStrategy) ForcedModules() []domain.ModuleVersionSelector {
	modules := slices.SortedFunc(maps.Keys(s.forced), domain.ModuleIdentifier.Compare)
	out := make([]domain.ModuleVersionSelector, 0, len(modules))
	for _, m := range modules {
		out = append(out, domain.ModuleVersionSelector{Module: m, Version: s.forced[m]})
	}
	return out
}

// FailOnVersionConflict switches to strict conflict resolution.
func (s *ResolutionStrategy) FailOnVersionConflict() error {
	if err := s.mutable(); err != nil {
		return err
	}
	s.conflict = domain.ConflictResolutionStrict
	return nil
}

// ConflictResolution returns the active conflict resolution mode.
func (s *ResolutionStrategy) ConflictResolution() domain.ConflictResolution {
	return s.conflict
}

// EachDependency appends a rule. Rules run after forcing, in registration
// order.
func (s *ResolutionStrategy) EachDependency(rule DependencyResolveRule) error {
	if err := s.mutable(); err != nil {
		return err
	}
	s.rules = append(s.rules, rule)
	return nil
}

// DependencyResolveRule returns the forcing rule followed by every user rule.
// The first call fixes the chain and freezes the strategy.
func (s *ResolutionStrategy) DependencyResolveRule() DependencyResolveRule {
	if s.composed == nil {
		s.composed = compose(NewForcingRule(s.ForcedModules()), slices.Clone(s.rules))
	}
	return s.composed
}

// IsFrozen reports whether resolution has started with this strategy.
func (s *ResolutionStrategy) IsFrozen() bool {
	return s.composed != nil
}

// CacheDynamicVersionsFor sets how long version listings stay fresh.
func (s *ResolutionStrategy) CacheDynamicVersionsFor(value int, unit string) error {
	if err := s.mutable(); err != nil {
		return err
	}
	ttl, err := ParseDuration(value, unit)
	if err != nil {
		return err
	}
	s.cachePolicy.CacheDynamicVersionsFor(ttl)
	return nil
}

// CacheChangingModulesFor sets how long changing-module metadata stays fresh.
func (s *ResolutionStrategy) CacheChangingModulesFor(value int, unit string) error {
	if err := s.mutable(); err != nil {
		return err
	}
	ttl, err := ParseDuration(value, unit)
	if err != nil {
		return err
	}
	s.cachePolicy.CacheChangingModulesFor(ttl)
	return nil
}

// SetOffline makes every cached listing count as fresh.
func (s *ResolutionStrategy) SetOffline(offline bool) error {
	if err := s.mutable(); err != nil {
		return err
	}
	s.cachePolicy.SetOffline(offline)
	return nil
}

// ComponentSelection hands the component selection rules to configure.
func (s *ResolutionStrategy) ComponentSelection(configure func(*ComponentSelectionRules) error) error {
	if err := s.mutable(); err != nil {
		return err
	}
	return configure(s.selection)
}

// Selection returns the component selection rules consulted for candidates.
func (s *ResolutionStrategy) Selection() *ComponentSelectionRules {
	return s.selection
}

// CachePolicy returns the cache policy.
func (s *ResolutionStrategy) CachePolicy() *CachePolicy {
	return s.cachePolicy
}

// Copy returns an independent, unfrozen strategy with the same settings.
func (s *ResolutionStrategy) Copy() *ResolutionStrategy {
	return &ResolutionStrategy{
		parser:      s.parser,
		forced:      maps.Clone(s.forced),
		conflict:    s.conflict,
		rules:       slices.Clone(s.rules),
		selection:   s.selection.copy(),
		cachePolicy: s.cachePolicy.Copy(),
	}
}

func (s *ResolutionStrategy) mutable() error {
	if s.IsFrozen() {
		return domain.ErrStrategyFrozen
	}
	return nil
}

func (s *ResolutionStrategy) parseForced(notations []any) ([]domain.ModuleVersionSelector, error) {
	selectors := make([]domain.ModuleVersionSelector, 0, len(notations))
	for _, n := range notations {
		sel, err := s.parser.ParseSelector(n)
		if err != nil {
			return nil, err
		}
		if sel.Version == "" {
			err := zerr.With(domain.ErrInvalidNotation, "notation", sel.String())
			return nil, zerr.With(err, "reason", "forced module requires a version")
		}
		selectors = append(selectors, sel)
	}
	return selectors, nil
}
