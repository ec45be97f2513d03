package resolver

import (
	"slices"

	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/engine/conflict"
)

// buildGraph turns the last pass into a graph. Every expanded module is at
// its selected version once the walk has converged.
func (w *walk) buildGraph(
	roots []domain.ModuleVersionSelector,
	state *passState,
	resolutions map[domain.ModuleIdentifier]conflict.Resolution,
) (*domain.Graph, error) {
	mode := w.conflicts.Mode().String()
	graph := domain.NewGraph()
	for module, id := range state.expanded {
		res := resolutions[module]
		if res.Conflicted {
			w.metrics.ConflictResolved(mode)
		}

		var deps []domain.ModuleIdentifier
		for _, dep := range w.metadata[id].Dependencies {
			if !slices.Contains(deps, dep.Module) {
				deps = append(deps, dep.Module)
			}
		}

		err := graph.AddModule(domain.ResolvedModule{
			ID:           id,
			Reason:       nodeReason(state.requests[module], id.Version, res.Conflicted, state.rootSet[module]),
			Repository:   w.repoOf[id],
			Requested:    state.requests[module],
			Dependencies: deps,
		})
		if err != nil {
			return nil, err
		}
	}
	for _, root := range roots {
		graph.AddRoot(root.Module)
	}
	if err := graph.Validate(); err != nil {
		return nil, err
	}
	return graph, nil
}

// nodeReason explains a selection. A rule that produced the selected version
// outranks conflict resolution, which outranks a plain request.
func nodeReason(requests []domain.RequestedVersion, version string, conflicted, root bool) domain.SelectionReason {
	for _, want := range []domain.SelectionReason{domain.ReasonForced, domain.ReasonSelectedByRule} {
		for _, r := range requests {
			if r.Reason == want && r.Version == version {
				return want
			}
		}
	}
	switch {
	case conflicted:
		return domain.ReasonConflictResolution
	case root:
		return domain.ReasonRoot
	default:
		return domain.ReasonRequested
	}
}
