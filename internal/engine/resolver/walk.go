package resolver

import (
	"context"

	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
	"go.trai.ch/depres/internal/engine/conflict"
	"go.trai.ch/depres/internal/engine/lister"
	"go.trai.ch/depres/internal/engine/strategy"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

type selected struct {
	version    string
	repository string
}

type listingKey struct {
	repository string
	module     domain.ModuleIdentifier
}

// walk holds the memoized lookups of one Resolve call. Rule chain results are
// not memoized: rules run once per declared edge.
type walk struct {
	*Resolver

	rule      strategy.DependencyResolveRule
	selection *strategy.ComponentSelectionRules
	policy    *strategy.CachePolicy
	conflicts *conflict.Resolver
	refresh   bool

	selections map[domain.ModuleVersionSelector]selected
	metadata   map[domain.ModuleVersionIdentifier]domain.ModuleMetadata
	repoOf     map[domain.ModuleVersionIdentifier]string
	listings   map[listingKey]lister.Listing
}

// passState is what one breadth-first expansion observed.
type passState struct {
	candidates map[domain.ModuleIdentifier][]conflict.Candidate
	requests   map[domain.ModuleIdentifier][]domain.RequestedVersion
	expanded   map[domain.ModuleIdentifier]domain.ModuleVersionIdentifier
	rootSet    map[domain.ModuleIdentifier]bool
}

type edge struct {
	selector domain.ModuleVersionSelector
	path     []domain.ModuleVersionIdentifier
}

// expand walks the graph once. A module is expanded at most once per pass,
// at the version selected by the previous pass or, for modules seen for the
// first time, at the version of its first request.
func (w *walk) expand(
	ctx context.Context,
	roots []domain.ModuleVersionSelector,
	current map[domain.ModuleIdentifier]string,
) (*passState, error) {
	state := &passState{
		candidates: make(map[domain.ModuleIdentifier][]conflict.Candidate),
		requests:   make(map[domain.ModuleIdentifier][]domain.RequestedVersion),
		expanded:   make(map[domain.ModuleIdentifier]domain.ModuleVersionIdentifier),
		rootSet:    make(map[domain.ModuleIdentifier]bool),
	}

	queue := make([]edge, 0, len(roots))
	for _, root := range roots {
		state.rootSet[root.Module] = true
		queue = append(queue, edge{selector: root})
	}

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]

		details := domain.NewResolveDetails(e.selector)
		if err := w.rule(details); err != nil {
			return nil, err
		}
		target := details.Target()
		if details.Reason() == domain.ReasonForced && e.selector.Version != target.Version {
			w.logger.Debug("forced module version",
				"module", target.Module.String(), "requested", e.selector.Version, "forced", target.Version)
		}

		sel, err := w.selectVersion(ctx, target)
		if err != nil {
			return nil, err
		}

		module := target.Module
		state.candidates[module] = append(state.candidates[module], conflict.Candidate{
			Version: sel.version,
			Path:    e.path,
		})
		state.requests[module] = append(state.requests[module], domain.RequestedVersion{
			Selector: e.selector,
			Version:  sel.version,
			Reason:   details.Reason(),
			Path:     e.path,
		})

		if _, seen := state.expanded[module]; seen {
			continue
		}
		version := sel.version
		if prev, ok := current[module]; ok {
			version = prev
		}
		id := domain.ModuleVersionIdentifier{Module: module, Version: version}
		state.expanded[module] = id

		meta, err := w.metadataFor(ctx, id)
		if err != nil {
			return nil, err
		}
		childPath := append(append(make([]domain.ModuleVersionIdentifier, 0, len(e.path)+1), e.path...), id)
		for _, dep := range meta.Dependencies {
			queue = append(queue, edge{selector: dep, path: childPath})
		}
	}

	return state, nil
}

// selectVersion resolves a target selector to a concrete version.
func (w *walk) selectVersion(ctx context.Context, target domain.ModuleVersionSelector) (selected, error) {
	if s, ok := w.selections[target]; ok {
		return s, nil
	}

	vs, err := w.scheme.Parse(target.Version)
	if err != nil {
		return selected{}, zerr.With(err, "module", target.Module.String())
	}

	var s selected
	if vs.IsDynamic() {
		s, err = w.selectDynamic(ctx, target, vs)
	} else {
		s, err = w.selectExact(ctx, target)
	}
	if err != nil {
		return selected{}, err
	}
	w.selections[target] = s
	return s, nil
}

func (w *walk) selectExact(ctx context.Context, target domain.ModuleVersionSelector) (selected, error) {
	id := domain.ModuleVersionIdentifier{Module: target.Module, Version: target.Version}
	if accepted, reason := w.selection.Apply(id); !accepted {
		err := zerr.With(domain.ErrNoMatchingVersion, "module", target.Module.String())
		err = zerr.With(err, "version", target.Version)
		return selected{}, zerr.With(err, "rejected", reason)
	}
	if _, err := w.metadataFor(ctx, id); err != nil {
		return selected{}, err
	}
	return selected{version: target.Version, repository: w.repoOf[id]}, nil
}

func (w *walk) selectDynamic(
	ctx context.Context,
	target domain.ModuleVersionSelector,
	vs ports.VersionSelector,
) (selected, error) {
	best, listed, err := w.bestCandidate(ctx, target.Module, vs, false)
	if err != nil {
		return selected{}, err
	}
	if best.version == "" {
		return selected{}, w.noCandidate(target, listed)
	}

	// A changing module served from a stale listing is listed again.
	id := domain.ModuleVersionIdentifier{Module: target.Module, Version: best.version}
	meta, err := w.metadataFor(ctx, id)
	if err != nil {
		return selected{}, err
	}
	listing := w.listings[listingKey{repository: best.repository, module: target.Module}]
	if meta.Changing && listing.FromCache && w.policy.MustRefreshChangingModule(id, listing.Age) {
		w.logger.Debug("refreshing changing module", "module", id.String(), "age", listing.Age)
		best, listed, err = w.bestCandidate(ctx, target.Module, vs, true)
		if err != nil {
			return selected{}, err
		}
		if best.version == "" {
			return selected{}, w.noCandidate(target, listed)
		}
	}
	return best, nil
}

// bestCandidate returns the highest accepted version over every repository.
// Repositories are listed concurrently; on equal versions the earlier
// repository wins.
func (w *walk) bestCandidate(
	ctx context.Context,
	module domain.ModuleIdentifier,
	vs ports.VersionSelector,
	refresh bool,
) (best selected, listed bool, err error) {
	listings, err := w.listAll(ctx, module, refresh)
	if err != nil {
		return selected{}, false, err
	}
	for i, listing := range listings {
		listed = listed || len(listing.Versions) > 0
		for _, v := range listing.Versions {
			if !vs.Accept(v) {
				continue
			}
			if best.version != "" && w.scheme.Compare(v, best.version) <= 0 {
				continue
			}
			if accepted, _ := w.selection.Apply(domain.ModuleVersionIdentifier{Module: module, Version: v}); !accepted {
				continue
			}
			best = selected{version: v, repository: w.repositories[i].ID()}
		}
	}
	return best, listed, nil
}

func (w *walk) noCandidate(target domain.ModuleVersionSelector, listed bool) error {
	if !listed {
		return zerr.With(domain.ErrModuleNotFound, "module", target.Module.String())
	}
	err := zerr.With(domain.ErrNoMatchingVersion, "module", target.Module.String())
	return zerr.With(err, "selector", target.Version)
}

// listAll lists module in every repository, in repository order.
func (w *walk) listAll(ctx context.Context, module domain.ModuleIdentifier, refresh bool) ([]lister.Listing, error) {
	listings := make([]lister.Listing, len(w.repositories))
	pending := make([]bool, len(w.repositories))
	for i, repo := range w.repositories {
		listing, ok := w.listings[listingKey{repository: repo.ID(), module: module}]
		if ok && !refresh {
			listings[i] = listing
			continue
		}
		pending[i] = true
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, repo := range w.repositories {
		if !pending[i] {
			continue
		}
		g.Go(func() error {
			listing, err := w.lister.ListVersions(gctx, repo, module, w.policy, w.refresh || refresh)
			if err != nil {
				return err
			}
			listings[i] = listing
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, repo := range w.repositories {
		if pending[i] {
			w.listings[listingKey{repository: repo.ID(), module: module}] = listings[i]
		}
	}
	return listings, nil
}

// metadataFor returns the metadata of id from the first repository that
// publishes it.
func (w *walk) metadataFor(ctx context.Context, id domain.ModuleVersionIdentifier) (domain.ModuleMetadata, error) {
	if meta, ok := w.metadata[id]; ok {
		return meta, nil
	}
	for _, repo := range w.repositories {
		meta, found, err := repo.Metadata(ctx, id)
		if err != nil {
			err = zerr.Wrap(err, "reading module metadata failed")
			err = zerr.With(err, "repository", repo.ID())
			return domain.ModuleMetadata{}, zerr.With(err, "module", id.String())
		}
		if found {
			w.metadata[id] = meta
			w.repoOf[id] = repo.ID()
			return meta, nil
		}
	}
	return domain.ModuleMetadata{}, zerr.With(domain.ErrModuleNotFound, "module", id.String())
}
