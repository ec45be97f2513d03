// Package config provides the configuration loader for depres.
package config

import (
	"maps"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Project is a loaded configuration file.
type Project struct {
	// Dir is the directory holding the configuration file. Repository files
	// are resolved against it.
	Dir  string
	File Depresfile
}

// RepositoryPath returns the absolute or Dir-relative path of a repository file.
func (p *Project) RepositoryPath(repo RepositoryDTO) string {
	if filepath.IsAbs(repo.File) {
		return repo.File
	}
	return filepath.Join(p.Dir, repo.File)
}

// ConfigurationNames returns the declared configurations in lexical order.
func (p *Project) ConfigurationNames() []string {
	return slices.Sorted(maps.Keys(p.File.Configurations))
}

// Loader reads depres.yaml files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads and validates the configuration at path.
func (l *Loader) Load(path string) (*Project, error) {
	project, err := Load(path)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("loaded configuration",
		"path", path,
		"repositories", len(project.File.Repositories),
		"configurations", len(project.File.Configurations),
	)
	return project, nil
}

// Load reads a configuration file from the given path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		err = zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		return nil, zerr.With(err, "path", path)
	}

	var file Depresfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		err = zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		return nil, zerr.With(err, "path", path)
	}

	if err := validate(&file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return &Project{
		Dir:  filepath.Dir(path),
		File: file,
	}, nil
}

func validate(file *Depresfile) error {
	seen := make(map[string]bool, len(file.Repositories))
	for i, repo := range file.Repositories {
		if repo.ID == "" {
			return zerr.With(zerr.New("repository id is required"), "index", i)
		}
		if seen[repo.ID] {
			return zerr.With(zerr.New("duplicate repository id"), "repository", repo.ID)
		}
		seen[repo.ID] = true
		if repo.File == "" {
			return zerr.With(zerr.New("repository file is required"), "repository", repo.ID)
		}
	}
	for name := range file.Configurations {
		if name == "" {
			return zerr.New("configuration name must not be empty")
		}
	}
	return nil
}
