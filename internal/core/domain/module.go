// Package domain contains the value types of dependency resolution: module
// coordinates, selection reasons, resolve details and cached version listings.
package domain

import (
	"cmp"
	"strings"
)

// ModuleIdentifier identifies a module independently of its version.
// It is comparable and safe to use as a map key.
type ModuleIdentifier struct {
	Group InternedString
	Name  InternedString
}

// NewModuleIdentifier creates a ModuleIdentifier from a group and a name.
func NewModuleIdentifier(group, name string) ModuleIdentifier {
	return ModuleIdentifier{
		Group: NewInternedString(group),
		Name:  NewInternedString(name),
	}
}

// String returns the "group:name" form.
func (m ModuleIdentifier) String() string {
	return m.Group.String() + ":" + m.Name.String()
}

// Compare orders identifiers by group, then name.
func (m ModuleIdentifier) Compare(other ModuleIdentifier) int {
	if c := strings.Compare(m.Group.String(), other.Group.String()); c != 0 {
		return c
	}
	return strings.Compare(m.Name.String(), other.Name.String())
}

// ModuleVersionSelector is a request for a module with an optional version
// constraint: exact ("1.2"), a range ("[1.0,2.0)"), a prefix ("1.+") or a
// dynamic marker ("latest.release"). An empty version means no constraint.
type ModuleVersionSelector struct {
	Module  ModuleIdentifier
	Version string
}

// NewModuleVersionSelector creates a selector for group:name at version.
func NewModuleVersionSelector(group, name, version string) ModuleVersionSelector {
	return ModuleVersionSelector{
		Module:  NewModuleIdentifier(group, name),
		Version: version,
	}
}

// WithVersion returns a copy of the selector that requests version instead.
func (s ModuleVersionSelector) WithVersion(version string) ModuleVersionSelector {
	s.Version = version
	return s
}

// String returns "group:name:version", or "group:name" without a constraint.
func (s ModuleVersionSelector) String() string {
	if s.Version == "" {
		return s.Module.String()
	}
	return s.Module.String() + ":" + s.Version
}

// ModuleVersionIdentifier identifies one concrete version of a module.
type ModuleVersionIdentifier struct {
	Module  ModuleIdentifier
	Version string
}

// NewModuleVersionIdentifier creates an identifier for group:name:version.
func NewModuleVersionIdentifier(group, name, version string) ModuleVersionIdentifier {
	return ModuleVersionIdentifier{
		Module:  NewModuleIdentifier(group, name),
		Version: version,
	}
}

// String returns "group:name:version".
func (id ModuleVersionIdentifier) String() string {
	return id.Module.String() + ":" + id.Version
}

// Compare orders identifiers by module, then lexically by version.
func (id ModuleVersionIdentifier) Compare(other ModuleVersionIdentifier) int {
	return cmp.Or(id.Module.Compare(other.Module), strings.Compare(id.Version, other.Version))
}

// ModuleMetadata describes one module version as published by a repository.
type ModuleMetadata struct {
	ID           ModuleVersionIdentifier
	Dependencies []ModuleVersionSelector
	// Changing marks a module whose content can change without a version bump.
	Changing bool
}
