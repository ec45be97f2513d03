package ports

import "go.trai.ch/depres/internal/core/domain"

// NotationParser converts user-facing notations into selectors.
type NotationParser interface {
	// ParseSelector accepts "group:name[:version]" strings, maps with
	// group/name/version keys, and selectors.
	ParseSelector(notation any) (domain.ModuleVersionSelector, error)
}
