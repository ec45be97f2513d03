package ports

import (
	"context"

	"go.trai.ch/depres/internal/core/domain"
)

// Repository is a source of module versions and their metadata.
//
//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type Repository interface {
	// ID identifies the repository. Cache entries are scoped by it.
	ID() string

	// ListVersions returns every version the repository holds for module.
	// An unknown module yields an empty listing.
	ListVersions(ctx context.Context, module domain.ModuleIdentifier) ([]string, error)

	// Metadata returns the metadata of one version. The boolean is false when
	// the version is not published here.
	Metadata(ctx context.Context, id domain.ModuleVersionIdentifier) (domain.ModuleMetadata, bool, error)
}
