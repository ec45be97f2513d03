package strategy

import (
	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
	"go.trai.ch/zerr"
)

// DependencyResolveRule observes a requested dependency and may redirect it
// with UseVersion. A returned error aborts resolution of the dependency.
type DependencyResolveRule func(details ports.DependencyResolveDetails) error

// compose chains the forcing rule and user rules. They run in order against
// the same details, so the last UseVersion call wins.
func compose(forcing *ForcingRule, rules []DependencyResolveRule) DependencyResolveRule {
	return func(details ports.DependencyResolveDetails) error {
		forcing.Apply(details)
		for _, rule := range rules {
			if err := rule(details); err != nil {
				requested := details.Requested()
				err = zerr.Wrap(err, domain.ErrRuleFailed.Error())
				err = zerr.With(err, "module", requested.Module.String())
				return zerr.With(err, "requested", requested.String())
			}
		}
		return nil
	}
}

// UseVersionFor returns a rule that redirects every request for module to
// version, recorded as selected by rule.
func UseVersionFor(module domain.ModuleIdentifier, version string) DependencyResolveRule {
	return func(details ports.DependencyResolveDetails) error {
		if details.Requested().Module == module {
			details.UseVersion(version, domain.ReasonSelectedByRule)
		}
		return nil
	}
}
