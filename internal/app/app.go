// Package app implements the application layer for depres.
package app

import (
	"context"
	"io"
	"slices"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/depres/internal/adapters/config"
	"go.trai.ch/depres/internal/adapters/notation"
	"go.trai.ch/depres/internal/adapters/repository"
	"go.trai.ch/depres/internal/adapters/semver"
	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
	"go.trai.ch/depres/internal/engine/lister"
	"go.trai.ch/depres/internal/engine/resolver"
	"go.trai.ch/depres/internal/engine/strategy"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// MetricsWriter exposes the collected resolution metrics as a Prometheus
// textfile.
type MetricsWriter interface {
	ports.ResolutionMetrics
	WriteTextfile(path string) error
}

// App represents the main application logic.
type App struct {
	configLoader *config.Loader
	store        ports.ModuleVersionsStore
	settings     config.Settings
	logger       ports.Logger
	metrics      MetricsWriter
	telemetry    ports.Telemetry
	parser       notation.Parser
	scheme       semver.Scheme
	clock        clockwork.Clock
}

// New creates a new App instance.
func New(
	loader *config.Loader,
	store ports.ModuleVersionsStore,
	settings config.Settings,
	log ports.Logger,
	metrics MetricsWriter,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		store:        store,
		settings:     settings,
		logger:       log,
		metrics:      metrics,
		telemetry:    telemetry,
		parser:       notation.New(),
		scheme:       semver.New(),
		clock:        clockwork.NewRealClock(),
	}
}

// WithClock replaces the clock used to time resolutions.
// This is primarily used for testing.
func (a *App) WithClock(c clockwork.Clock) *App {
	a.clock = c
	return a
}

// SetVerbose lowers the logger and telemetry thresholds to debug.
func (a *App) SetVerbose(verbose bool) {
	level := domain.LogLevelInfo
	if verbose {
		level = domain.LogLevelDebug
	}
	type leveled interface{ SetLevel(domain.LogLevel) }
	if l, ok := a.logger.(leveled); ok {
		l.SetLevel(level)
	}
	if t, ok := a.telemetry.(leveled); ok {
		t.SetLevel(level)
	}
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	// ConfigPath is the project file; domain.ConfigFileName when empty.
	ConfigPath string
	// Configurations to resolve; every declared configuration when empty.
	Configurations []string
	Offline        bool
	Refresh        bool
	// MetricsFile receives a Prometheus textfile snapshot when set.
	MetricsFile string
}

// Resolution is the resolved graph of one configuration.
type Resolution struct {
	Configuration string
	Graph         *domain.Graph
}

// Resolve loads the project and resolves the requested configurations
// concurrently, each with its own copy of the project strategy.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) ([]Resolution, error) {
	path := opts.ConfigPath
	if path == "" {
		path = domain.ConfigFileName
	}
	project, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	names, err := selectConfigurations(project, opts.Configurations)
	if err != nil {
		return nil, err
	}

	repos, err := a.loadRepositories(project)
	if err != nil {
		return nil, err
	}

	base, err := BuildStrategy(project.File.Strategy, a.parser, a.scheme)
	if err != nil {
		return nil, err
	}
	if err := base.SetOffline(a.settings.Offline || opts.Offline); err != nil {
		return nil, err
	}

	versionLister := lister.New(a.store, a.metrics, a.logger)
	res := resolver.New(repos, a.scheme, versionLister, a.metrics, a.logger)

	defer func() {
		_ = a.telemetry.Close()
	}()

	roots := make([][]domain.ModuleVersionSelector, len(names))
	for i, name := range names {
		if roots[i], err = a.parseRoots(name, project.File.Configurations[name]); err != nil {
			return nil, err
		}
	}

	results := make([]Resolution, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		s := base.Copy()
		g.Go(func() error {
			graph, err := a.resolveOne(ctx, res, name, roots[i], s, opts.Refresh)
			if err != nil {
				return err
			}
			results[i] = Resolution{Configuration: name, Graph: graph}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.MetricsFile != "" {
		if err := a.metrics.WriteTextfile(opts.MetricsFile); err != nil {
			a.logger.Warn("writing metrics failed", "path", opts.MetricsFile, "error", err)
		}
	}
	return results, nil
}

func (a *App) resolveOne(
	ctx context.Context,
	res *resolver.Resolver,
	name string,
	roots []domain.ModuleVersionSelector,
	s *strategy.ResolutionStrategy,
	refresh bool,
) (*domain.Graph, error) {
	ctx, vertex := a.telemetry.Record(ctx, "resolve "+name)
	start := a.clock.Now()

	graph, err := res.Resolve(ctx, roots, s, resolver.Options{Refresh: refresh})
	a.metrics.ObserveResolution(name, a.clock.Since(start))
	vertex.Complete(err)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrResolutionFailed.Error())
		return nil, zerr.With(err, "configuration", name)
	}

	a.logger.Debug("resolved configuration", "configuration", name, "modules", graph.Len())
	return graph, nil
}

func selectConfigurations(project *config.Project, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return project.ConfigurationNames(), nil
	}
	names := make([]string, 0, len(requested))
	for _, name := range requested {
		if _, ok := project.File.Configurations[name]; !ok {
			return nil, zerr.With(domain.ErrUnknownConfiguration, "configuration", name)
		}
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names, nil
}

func (a *App) loadRepositories(project *config.Project) ([]ports.Repository, error) {
	repos := make([]ports.Repository, 0, len(project.File.Repositories))
	for _, dto := range project.File.Repositories {
		repo, err := repository.Load(dto.ID, project.RepositoryPath(dto), a.parser)
		if err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

func (a *App) parseRoots(configuration string, notations []string) ([]domain.ModuleVersionSelector, error) {
	roots := make([]domain.ModuleVersionSelector, 0, len(notations))
	for _, n := range notations {
		sel, err := a.parser.ParseSelector(n)
		if err != nil {
			return nil, zerr.With(err, "configuration", configuration)
		}
		roots = append(roots, sel)
	}
	return roots, nil
}

// CachedListing is a version listing read back from the cache.
type CachedListing struct {
	Versions []string
	Age      time.Duration
}

// ShowCache returns the cached listing of module in the repository repoID.
func (a *App) ShowCache(_ context.Context, repoID, module string) (CachedListing, bool, error) {
	id, err := a.parser.ParseModule(module)
	if err != nil {
		return CachedListing{}, false, err
	}
	cached, ok, err := a.store.GetCachedModuleResolution(repoID, id)
	if err != nil || !ok {
		return CachedListing{}, false, err
	}
	return CachedListing{Versions: cached.Versions(), Age: cached.Age()}, true, nil
}

// ClearCache removes every writable cache entry.
func (a *App) ClearCache(_ context.Context) error {
	a.logger.Info("removing module versions cache...", "dir", a.settings.CacheDir)
	if err := a.store.Clear(); err != nil {
		return zerr.Wrap(err, "failed to remove module versions cache")
	}
	a.logger.Info("removed module versions cache")
	return nil
}

// WriteGraph prints a resolved graph as "group:name:version (REASON)" lines.
func WriteGraph(w io.Writer, r Resolution) error {
	if _, err := io.WriteString(w, r.Configuration+":\n"); err != nil {
		return err
	}
	for m := range r.Graph.Walk() {
		line := "  " + m.ID.String() + " (" + m.Reason.String() + ")\n"
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
