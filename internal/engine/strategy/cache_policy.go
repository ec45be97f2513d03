package strategy

import (
	"slices"
	"time"

	"go.trai.ch/depres/internal/core/domain"
)

// DefaultCacheTimeout applies when no rule matches.
const DefaultCacheTimeout = 24 * time.Hour

// ModulePredicate selects the modules a cache rule applies to.
type ModulePredicate func(domain.ModuleIdentifier) bool

// AllModules matches every module.
func AllModules(domain.ModuleIdentifier) bool { return true }

// ModuleEquals matches one module.
func ModuleEquals(module domain.ModuleIdentifier) ModulePredicate {
	return func(m domain.ModuleIdentifier) bool { return m == module }
}

type ttlRule struct {
	matches ModulePredicate
	ttl     time.Duration
}

// CachePolicy decides when cached version listings and changing-module
// metadata must be refreshed. Rules are consulted newest first.
type CachePolicy struct {
	dynamicVersions []ttlRule
	changingModules []ttlRule
	offline         bool
}

// NewCachePolicy creates a policy with the default timeouts.
func NewCachePolicy() *CachePolicy {
	return &CachePolicy{
		dynamicVersions: []ttlRule{{matches: AllModules, ttl: DefaultCacheTimeout}},
		changingModules: []ttlRule{{matches: AllModules, ttl: DefaultCacheTimeout}},
	}
}

// CacheDynamicVersionsFor sets the timeout of every version listing.
func (p *CachePolicy) CacheDynamicVersionsFor(ttl time.Duration) {
	p.EachVersionList(AllModules, ttl)
}

// CacheChangingModulesFor sets the timeout of every changing module.
func (p *CachePolicy) CacheChangingModulesFor(ttl time.Duration) {
	p.EachChangingModule(AllModules, ttl)
}

// EachVersionList sets the listing timeout for the modules matched by predicate.
func (p *CachePolicy) EachVersionList(predicate ModulePredicate, ttl time.Duration) {
	p.dynamicVersions = append(p.dynamicVersions, ttlRule{matches: predicate, ttl: ttl})
}

// EachChangingModule sets the changing-module timeout for the modules matched
// by predicate.
func (p *CachePolicy) EachChangingModule(predicate ModulePredicate, ttl time.Duration) {
	p.changingModules = append(p.changingModules, ttlRule{matches: predicate, ttl: ttl})
}

// SetOffline makes every cached entry fresh regardless of age.
func (p *CachePolicy) SetOffline(offline bool) {
	p.offline = offline
}

// Offline reports whether the policy never asks for a refresh.
func (p *CachePolicy) Offline() bool {
	return p.offline
}

// VersionListTimeout returns the listing timeout that applies to module.
func (p *CachePolicy) VersionListTimeout(module domain.ModuleIdentifier) time.Duration {
	return lookup(p.dynamicVersions, module)
}

// ChangingModuleTimeout returns the changing-module timeout that applies to module.
func (p *CachePolicy) ChangingModuleTimeout(module domain.ModuleIdentifier) time.Duration {
	return lookup(p.changingModules, module)
}

// MustRefreshVersionList reports whether a listing of the given age is stale.
func (p *CachePolicy) MustRefreshVersionList(module domain.ModuleIdentifier, age time.Duration) bool {
	if p.offline {
		return false
	}
	return age >= p.VersionListTimeout(module)
}

// MustRefreshChangingModule reports whether metadata of a changing module of
// the given age is stale.
func (p *CachePolicy) MustRefreshChangingModule(id domain.ModuleVersionIdentifier, age time.Duration) bool {
	if p.offline {
		return false
	}
	return age >= p.ChangingModuleTimeout(id.Module)
}

// Copy returns an independent policy with the same rules.
func (p *CachePolicy) Copy() *CachePolicy {
	return &CachePolicy{
		dynamicVersions: slices.Clone(p.dynamicVersions),
		changingModules: slices.Clone(p.changingModules),
		offline:         p.offline,
	}
}

func lookup(rules []ttlRule, module domain.ModuleIdentifier) time.Duration {
	for i := len(rules) - 1; i >= 0; i-- {
		if rules[i].matches(module) {
			return rules[i].ttl
		}
	}
	return DefaultCacheTimeout
}
