// Package resolver walks the dependency graph of a configuration and selects
// one version per module.
//
// The walk runs in passes. Each pass expands the graph breadth-first from the
// roots using the selection of the previous pass, runs every declared
// dependency through the strategy's rule chain and records the resulting
// candidates. Conflicts are then collapsed into a new selection. The walk ends
// when a pass reproduces the selection it started from, so edges declared only
// by evicted versions never reach the result. Selections that cycle without
// settling are merged by highest version, after which versions only move up.
package resolver

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
	"go.trai.ch/depres/internal/engine/conflict"
	"go.trai.ch/depres/internal/engine/lister"
	"go.trai.ch/depres/internal/engine/strategy"
	"go.trai.ch/zerr"
)

// maxPasses bounds the fixpoint iteration.
const maxPasses = 64

// Options tune a single resolution.
type Options struct {
	// Refresh ignores cached version listings.
	Refresh bool
}

// Resolver resolves configurations against an ordered list of repositories.
type Resolver struct {
	repositories []ports.Repository
	scheme       ports.VersionScheme
	lister       *lister.Lister
	metrics      ports.ResolutionMetrics
	logger       ports.Logger
}

// New creates a Resolver. Repositories are consulted in order.
func New(
	repositories []ports.Repository,
	scheme ports.VersionScheme,
	versionLister *lister.Lister,
	metrics ports.ResolutionMetrics,
	logger ports.Logger,
) *Resolver {
	return &Resolver{
		repositories: slices.Clone(repositories),
		scheme:       scheme,
		lister:       versionLister,
		metrics:      metrics,
		logger:       logger,
	}
}

// Resolve selects a version for every module reachable from roots. The
// strategy is frozen by the call.
func (r *Resolver) Resolve(
	ctx context.Context,
	roots []domain.ModuleVersionSelector,
	s *strategy.ResolutionStrategy,
	opts Options,
) (*domain.Graph, error) {
	w := &walk{
		Resolver:   r,
		rule:       s.DependencyResolveRule(),
		selection:  s.Selection(),
		policy:     s.CachePolicy(),
		conflicts:  conflict.NewResolver(r.scheme, s.ConflictResolution()),
		refresh:    opts.Refresh,
		selections: make(map[domain.ModuleVersionSelector]selected),
		metadata:   make(map[domain.ModuleVersionIdentifier]domain.ModuleMetadata),
		repoOf:     make(map[domain.ModuleVersionIdentifier]string),
		listings:   make(map[listingKey]lister.Listing),
	}

	current := make(map[domain.ModuleIdentifier]string)
	seen := make(map[string]int)
	var history []map[domain.ModuleIdentifier]string
	monotonic := false
	for pass := 1; pass <= maxPasses; pass++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		state, err := w.expand(ctx, roots, current)
		if err != nil {
			return nil, err
		}

		resolutions, err := w.conflicts.ResolveAll(state.candidates)
		if err != nil {
			return nil, err
		}

		next := selectionOf(resolutions)
		if monotonic {
			next = w.maxSelection(current, next)
		}
		if equalSelections(current, next) {
			r.logger.Debug("resolution converged", "passes", pass, "modules", len(next))
			ports.VertexFromContext(ctx).Log(domain.LogLevelInfo,
				fmt.Sprintf("selected %d modules in %d passes", len(next), pass))
			return w.buildGraph(roots, state, resolutions)
		}
		key := selectionKey(next)
		if start, ok := seen[key]; ok {
			// The selections repeat without settling. Continue from the
			// highest version each module took within the cycle and stop
			// letting versions move down.
			cycle := history[start:]
			w.logger.Debug("selection oscillates", "pass", pass, "cycle", len(cycle))
			next = cycle[0]
			for _, sel := range cycle[1:] {
				next = w.maxSelection(next, sel)
			}
			monotonic = true
		}
		seen[key] = len(history)
		history = append(history, next)
		current = next
	}

	return nil, zerr.With(domain.ErrResolutionFailed, "reason", "selection did not converge")
}

func selectionOf(resolutions map[domain.ModuleIdentifier]conflict.Resolution) map[domain.ModuleIdentifier]string {
	sel := make(map[domain.ModuleIdentifier]string, len(resolutions))
	for module, res := range resolutions {
		sel[module] = res.Version
	}
	return sel
}

// maxSelection merges two selections, keeping the higher version of every
// module that b selects. Modules only a selects are dropped.
func (w *walk) maxSelection(a, b map[domain.ModuleIdentifier]string) map[domain.ModuleIdentifier]string {
	merged := make(map[domain.ModuleIdentifier]string, len(b))
	for module, version := range b {
		if prev, ok := a[module]; ok && w.scheme.Compare(prev, version) > 0 {
			version = prev
		}
		merged[module] = version
	}
	return merged
}

func selectionKey(sel map[domain.ModuleIdentifier]string) string {
	modules := slices.SortedFunc(maps.Keys(sel), domain.ModuleIdentifier.Compare)
	var b strings.Builder
	for _, module := range modules {
		b.WriteString(module.String())
		b.WriteByte('=')
		b.WriteString(sel[module])
		b.WriteByte(';')
	}
	return b.String()
}

func equalSelections(a, b map[domain.ModuleIdentifier]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
