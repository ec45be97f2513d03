package ports

import "go.trai.ch/depres/internal/core/domain"

// DependencyResolveDetails is the per-dependency context a resolve rule
// observes and may redirect to another version.
//
//go:generate go run go.uber.org/mock/mockgen -source=details.go -destination=mocks/mock_details.go -package=mocks
type DependencyResolveDetails interface {
	// Requested returns the selector as declared.
	Requested() domain.ModuleVersionSelector
	// Target returns the selector that will be resolved.
	Target() domain.ModuleVersionSelector
	// UseVersion redirects the request to version, recording reason.
	UseVersion(version string, reason domain.SelectionReason)
}
