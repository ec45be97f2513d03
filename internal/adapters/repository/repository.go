// Package repository provides module repositories described by YAML files.
package repository

import (
	"context"
	"maps"
	"os"
	"slices"

	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Document is the structure of a repository file.
//
//	modules:
//	  "org:a":
//	    "1.0": ["org:b:1.0"]
//	changing: ["org:a:1.1-SNAPSHOT"]
type Document struct {
	Modules  map[string]map[string][]string `yaml:"modules"`
	Changing []string                       `yaml:"changing"`
}

// Repository implements ports.Repository over an in-memory module table.
type Repository struct {
	id       string
	modules  map[domain.ModuleIdentifier]map[string][]domain.ModuleVersionSelector
	changing map[domain.ModuleVersionIdentifier]bool
}

var _ ports.Repository = (*Repository)(nil)

// Load reads a repository file.
func Load(id, path string, parser ports.NotationParser) (*Repository, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		err = zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		return nil, zerr.With(err, "repository", id)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		err = zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		return nil, zerr.With(err, "repository", id)
	}
	return New(id, doc, parser)
}

// New builds a repository from a decoded document.
func New(id string, doc Document, parser ports.NotationParser) (*Repository, error) {
	r := &Repository{
		id:       id,
		modules:  make(map[domain.ModuleIdentifier]map[string][]domain.ModuleVersionSelector, len(doc.Modules)),
		changing: make(map[domain.ModuleVersionIdentifier]bool, len(doc.Changing)),
	}

	for moduleNotation, published := range doc.Modules {
		sel, err := parser.ParseSelector(moduleNotation)
		if err != nil {
			return nil, zerr.With(err, "repository", id)
		}
		byVersion := make(map[string][]domain.ModuleVersionSelector, len(published))
		for version, deps := range published {
			selectors := make([]domain.ModuleVersionSelector, 0, len(deps))
			for _, dep := range deps {
				depSel, err := parser.ParseSelector(dep)
				if err != nil {
					err = zerr.With(err, "repository", id)
					return nil, zerr.With(err, "module", moduleNotation+":"+version)
				}
				selectors = append(selectors, depSel)
			}
			byVersion[version] = selectors
		}
		r.modules[sel.Module] = byVersion
	}

	for _, notation := range doc.Changing {
		sel, err := parser.ParseSelector(notation)
		if err != nil {
			return nil, zerr.With(err, "repository", id)
		}
		r.changing[domain.ModuleVersionIdentifier{Module: sel.Module, Version: sel.Version}] = true
	}
	return r, nil
}

// ID returns the repository id.
func (r *Repository) ID() string {
	return r.id
}

// ListVersions returns the published versions of module in lexical order.
func (r *Repository) ListVersions(ctx context.Context, module domain.ModuleIdentifier) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(r.modules[module])), nil
}

// Metadata returns the dependencies declared by one version.
func (r *Repository) Metadata(ctx context.Context, id domain.ModuleVersionIdentifier) (domain.ModuleMetadata, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.ModuleMetadata{}, false, err
	}
	deps, ok := r.modules[id.Module][id.Version]
	if !ok {
		return domain.ModuleMetadata{}, false, nil
	}
	return domain.ModuleMetadata{
		ID:           id,
		Dependencies: slices.Clone(deps),
		Changing:     r.changing[id],
	}, true, nil
}
