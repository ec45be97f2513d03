package domain

import (
	"iter"
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// RequestedVersion is one request for a module, reached through Path.
// Path lists the selected modules from the configuration down to the module
// that declared the request; it is empty for direct dependencies.
type RequestedVersion struct {
	Selector ModuleVersionSelector
	Version  string
	Reason   SelectionReason
	Path     []ModuleVersionIdentifier
}

// ResolvedModule is a node of the resolved graph.
type ResolvedModule struct {
	ID           ModuleVersionIdentifier
	Reason       SelectionReason
	Repository   string
	Requested    []RequestedVersion
	Dependencies []ModuleIdentifier
}

// Graph is the resolved dependency graph of one configuration. It holds
// exactly one version per module.
type Graph struct {
	modules map[ModuleIdentifier]ResolvedModule
	roots   []ModuleIdentifier
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		modules: make(map[ModuleIdentifier]ResolvedModule),
	}
}

// AddModule adds a resolved module.
// It returns an error if the module already has a selected version.
func (g *Graph) AddModule(m ResolvedModule) error {
	if existing, exists := g.modules[m.ID.Module]; exists {
		err := zerr.With(ErrModuleAlreadySelected, "module", m.ID.Module.String())
		return zerr.With(err, "selected", existing.ID.Version)
	}
	g.modules[m.ID.Module] = m
	return nil
}

// AddRoot marks a module as a direct dependency of the configuration.
func (g *Graph) AddRoot(id ModuleIdentifier) {
	if !slices.Contains(g.roots, id) {
		g.roots = append(g.roots, id)
	}
}

// Roots returns the direct dependencies in declaration order.
func (g *Graph) Roots() []ModuleIdentifier {
	return slices.Clone(g.roots)
}

// Module returns the selected node for a module.
func (g *Graph) Module(id ModuleIdentifier) (ResolvedModule, bool) {
	m, ok := g.modules[id]
	return m, ok
}

// Len returns the number of selected modules.
func (g *Graph) Len() int {
	return len(g.modules)
}

// Validate checks that every edge and root points at a selected module.
// Cycles are allowed.
func (g *Graph) Validate() error {
	for _, root := range g.roots {
		if _, ok := g.modules[root]; !ok {
			return zerr.With(ErrMissingDependency, "dependency", root.String())
		}
	}
	for m := range g.Walk() {
		for _, dep := range m.Dependencies {
			if _, ok := g.modules[dep]; !ok {
				err := zerr.With(ErrMissingDependency, "dependency", dep.String())
				return zerr.With(err, "dependent", m.ID.String())
			}
		}
	}
	return nil
}

// Walk yields the selected modules ordered by group and name.
func (g *Graph) Walk() iter.Seq[ResolvedModule] {
	return func(yield func(ResolvedModule) bool) {
		keys := slices.SortedFunc(maps.Keys(g.modules), ModuleIdentifier.Compare)
		for _, key := range keys {
			if !yield(g.modules[key]) {
				return
			}
		}
	}
}
