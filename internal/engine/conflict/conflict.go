// Package conflict decides between divergent versions requested for the same
// module.
package conflict

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
	"go.trai.ch/zerr"
)

// Candidate is one version requested for a module and the path of selected
// modules through which the request was reached.
type Candidate struct {
	Version string
	Path    []domain.ModuleVersionIdentifier
}

// PathString renders the path as "a:b:1.0 -> c:d:2.0", or "<root>" when the
// request is a direct dependency.
func (c Candidate) PathString() string {
	if len(c.Path) == 0 {
		return "<root>"
	}
	parts := make([]string, len(c.Path))
	for i, id := range c.Path {
		parts[i] = id.String()
	}
	return strings.Join(parts, " -> ")
}

// ModuleConflict lists every candidate of a module whose requests diverged.
type ModuleConflict struct {
	Module     domain.ModuleIdentifier
	Candidates []Candidate
}

// Versions returns the distinct candidate versions in first-seen order.
func (c ModuleConflict) Versions() []string {
	var versions []string
	for _, cand := range c.Candidates {
		if !slices.Contains(versions, cand.Version) {
			versions = append(versions, cand.Version)
		}
	}
	return versions
}

// VersionConflictError reports the modules that strict resolution refused to
// reconcile.
type VersionConflictError struct {
	Conflicts []ModuleConflict
}

func (e *VersionConflictError) Error() string {
	var b strings.Builder
	b.WriteString(domain.ErrVersionConflict.Error())
	for _, c := range e.Conflicts {
		fmt.Fprintf(&b, "\n  %s: %s", c.Module, strings.Join(c.Versions(), ", "))
		for _, cand := range c.Candidates {
			fmt.Fprintf(&b, "\n    %s via %s", cand.Version, cand.PathString())
		}
	}
	return b.String()
}

// Unwrap returns domain.ErrVersionConflict.
func (e *VersionConflictError) Unwrap() error {
	return domain.ErrVersionConflict
}

// Resolution is the outcome for one module.
type Resolution struct {
	Version string
	// Conflicted is true when candidates disagreed on the version.
	Conflicted bool
}

// Resolver applies a conflict resolution mode using a version ordering.
type Resolver struct {
	scheme ports.VersionScheme
	mode   domain.ConflictResolution
}

// NewResolver creates a resolver for mode.
func NewResolver(scheme ports.VersionScheme, mode domain.ConflictResolution) *Resolver {
	return &Resolver{scheme: scheme, mode: mode}
}

// Mode returns the conflict resolution mode.
func (r *Resolver) Mode() domain.ConflictResolution {
	return r.mode
}

// Resolve picks a version for module among candidates. Candidates that agree
// on a version never conflict. Under latest resolution the highest version
// wins; under strict resolution divergence yields a *VersionConflictError.
func (r *Resolver) Resolve(module domain.ModuleIdentifier, candidates []Candidate) (Resolution, error) {
	if len(candidates) == 0 {
		return Resolution{}, zerr.With(domain.ErrNoMatchingVersion, "module", module.String())
	}

	best := candidates[0].Version
	conflicted := false
	for _, c := range candidates[1:] {
		if c.Version == best {
			continue
		}
		conflicted = true
		if r.scheme.Compare(c.Version, best) > 0 {
			best = c.Version
		}
	}

	if conflicted && r.mode == domain.ConflictResolutionStrict {
		return Resolution{}, &VersionConflictError{
			Conflicts: []ModuleConflict{{Module: module, Candidates: slices.Clone(candidates)}},
		}
	}
	return Resolution{Version: best, Conflicted: conflicted}, nil
}

// ResolveAll resolves every module in candidates. Under strict resolution all
// conflicts are collected into one *VersionConflictError, ordered by module.
func (r *Resolver) ResolveAll(
	candidates map[domain.ModuleIdentifier][]Candidate,
) (map[domain.ModuleIdentifier]Resolution, error) {
	modules := make([]domain.ModuleIdentifier, 0, len(candidates))
	for m := range candidates {
		modules = append(modules, m)
	}
	slices.SortFunc(modules, domain.ModuleIdentifier.Compare)

	out := make(map[domain.ModuleIdentifier]Resolution, len(candidates))
	var conflicts []ModuleConflict
	for _, m := range modules {
		res, err := r.Resolve(m, candidates[m])
		if err != nil {
			var vce *VersionConflictError
			if errors.As(err, &vce) {
				conflicts = append(conflicts, vce.Conflicts...)
				continue
			}
			return nil, err
		}
		out[m] = res
	}
	if len(conflicts) > 0 {
		return nil, &VersionConflictError{Conflicts: conflicts}
	}
	return out, nil
}
