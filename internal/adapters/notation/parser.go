// Package notation parses user-facing module notations into selectors.
package notation

import (
	"fmt"
	"strings"

	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
	"go.trai.ch/zerr"
)

// Parser implements ports.NotationParser.
//
// Accepted notations:
//   - "group:name" and "group:name:version" strings
//   - map[string]string or map[string]any with "group", "name" and optional "version" keys
//   - domain.ModuleVersionSelector and domain.ModuleVersionIdentifier values
type Parser struct{}

var _ ports.NotationParser = Parser{}

// New creates a Parser.
func New() Parser {
	return Parser{}
}

// ParseSelector converts notation into a selector.
func (Parser) ParseSelector(notation any) (domain.ModuleVersionSelector, error) {
	switch n := notation.(type) {
	case string:
		return parseString(n)
	case domain.ModuleVersionSelector:
		return n, validate(n, n.String())
	case domain.ModuleVersionIdentifier:
		sel := domain.ModuleVersionSelector{Module: n.Module, Version: n.Version}
		return sel, validate(sel, n.String())
	case map[string]string:
		return parseFields(n["group"], n["name"], n["version"], n)
	case map[string]any:
		group, err := field(n, "group")
		if err != nil {
			return domain.ModuleVersionSelector{}, err
		}
		name, err := field(n, "name")
		if err != nil {
			return domain.ModuleVersionSelector{}, err
		}
		version, err := field(n, "version")
		if err != nil {
			return domain.ModuleVersionSelector{}, err
		}
		return parseFields(group, name, version, n)
	}
	return domain.ModuleVersionSelector{}, zerr.With(domain.ErrInvalidNotation, "type", fmt.Sprintf("%T", notation))
}

// ParseModule converts a "group:name" string into a module identifier.
func (p Parser) ParseModule(notation string) (domain.ModuleIdentifier, error) {
	sel, err := parseString(notation)
	if err != nil {
		return domain.ModuleIdentifier{}, err
	}
	if sel.Version != "" {
		return domain.ModuleIdentifier{}, zerr.With(
			zerr.With(domain.ErrInvalidNotation, "notation", notation),
			"reason", "module notation must not carry a version",
		)
	}
	return sel.Module, nil
}

func parseString(s string) (domain.ModuleVersionSelector, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return domain.ModuleVersionSelector{}, zerr.With(domain.ErrInvalidNotation, "notation", s)
	}
	version := ""
	if len(parts) == 3 {
		version = strings.TrimSpace(parts[2])
	}
	sel := domain.NewModuleVersionSelector(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), version)
	return sel, validate(sel, s)
}

func parseFields(group, name, version string, raw any) (domain.ModuleVersionSelector, error) {
	sel := domain.NewModuleVersionSelector(strings.TrimSpace(group), strings.TrimSpace(name), strings.TrimSpace(version))
	return sel, validate(sel, fmt.Sprint(raw))
}

func field(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	}
	err := zerr.With(domain.ErrInvalidNotation, "key", key)
	return "", zerr.With(err, "type", fmt.Sprintf("%T", v))
}

func validate(sel domain.ModuleVersionSelector, raw string) error {
	if sel.Module.Group.String() == "" || sel.Module.Name.String() == "" {
		return zerr.With(domain.ErrInvalidNotation, "notation", raw)
	}
	return nil
}
