package app

import (
	"go.trai.ch/depres/internal/adapters/config"
	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
	"go.trai.ch/depres/internal/engine/strategy"
	"go.trai.ch/zerr"
)

// BuildStrategy creates the project strategy from its configuration.
func BuildStrategy(
	dto config.StrategyDTO,
	parser ports.NotationParser,
	scheme ports.VersionScheme,
) (*strategy.ResolutionStrategy, error) {
	s := strategy.New(parser)

	if dto.FailOnVersionConflict {
		if err := s.FailOnVersionConflict(); err != nil {
			return nil, err
		}
	}

	forced := make([]any, len(dto.Force))
	for i, n := range dto.Force {
		forced[i] = n
	}
	if err := s.Force(forced...); err != nil {
		return nil, err
	}

	if d := dto.CacheDynamicVersionsFor; d != nil {
		if err := s.CacheDynamicVersionsFor(d.Value, d.Unit); err != nil {
			return nil, err
		}
	}
	if d := dto.CacheChangingModulesFor; d != nil {
		if err := s.CacheChangingModulesFor(d.Value, d.Unit); err != nil {
			return nil, err
		}
	}

	for _, sub := range dto.Substitutions {
		module, err := parseModule(parser, sub.Module)
		if err != nil {
			return nil, err
		}
		if sub.UseVersion == "" {
			return nil, zerr.With(domain.ErrSubstitutionVersionMissing, "module", sub.Module)
		}
		if err := s.EachDependency(strategy.UseVersionFor(module, sub.UseVersion)); err != nil {
			return nil, err
		}
	}

	if err := s.ComponentSelection(func(rules *strategy.ComponentSelectionRules) error {
		for _, rej := range dto.Reject {
			vs, err := scheme.Parse(rej.Versions)
			if err != nil {
				return zerr.With(err, "module", rej.Module)
			}
			reason := "rejected by configuration: " + rej.Versions
			err = rules.Module(rej.Module, func(sel *strategy.ComponentSelection) {
				if vs.Accept(sel.Candidate().Version) {
					sel.Reject(reason)
				}
			})
			if err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	policy := s.CachePolicy()
	for _, o := range dto.Overrides {
		module, err := parseModule(parser, o.Module)
		if err != nil {
			return nil, err
		}
		if d := o.CacheDynamicVersionsFor; d != nil {
			ttl, err := strategy.ParseDuration(d.Value, d.Unit)
			if err != nil {
				return nil, zerr.With(err, "module", o.Module)
			}
			policy.EachVersionList(strategy.ModuleEquals(module), ttl)
		}
		if d := o.CacheChangingModulesFor; d != nil {
			ttl, err := strategy.ParseDuration(d.Value, d.Unit)
			if err != nil {
				return nil, zerr.With(err, "module", o.Module)
			}
			policy.EachChangingModule(strategy.ModuleEquals(module), ttl)
		}
	}

	return s, nil
}

func parseModule(parser ports.NotationParser, notation string) (domain.ModuleIdentifier, error) {
	sel, err := parser.ParseSelector(notation)
	if err != nil {
		return domain.ModuleIdentifier{}, err
	}
	if sel.Version != "" {
		err := zerr.With(domain.ErrInvalidNotation, "notation", notation)
		return domain.ModuleIdentifier{}, zerr.With(err, "reason", "module notation must not carry a version")
	}
	return sel.Module, nil
}
