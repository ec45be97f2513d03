package resolver_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depres/internal/adapters/clock"
	"go.trai.ch/depres/internal/adapters/logger"
	"go.trai.ch/depres/internal/adapters/metrics"
	"go.trai.ch/depres/internal/adapters/notation"
	"go.trai.ch/depres/internal/adapters/repository"
	"go.trai.ch/depres/internal/adapters/semver"
	"go.trai.ch/depres/internal/adapters/versions"
	"go.trai.ch/depres/internal/core/domain"
	"go.trai.ch/depres/internal/core/ports"
	"go.trai.ch/depres/internal/core/ports/mocks"
	"go.trai.ch/depres/internal/engine/conflict"
	"go.trai.ch/depres/internal/engine/lister"
	"go.trai.ch/depres/internal/engine/resolver"
	"go.trai.ch/depres/internal/engine/strategy"
	"go.uber.org/mock/gomock"
)

var parser = notation.New()

func mustRepo(t *testing.T, id string, modules map[string]map[string][]string) *repository.Repository {
	t.Helper()
	repo, err := repository.New(id, repository.Document{Modules: modules}, parser)
	require.NoError(t, err)
	return repo
}

func quietLogger() *logger.Logger {
	l := logger.New()
	l.SetOutput(io.Discard)
	return l
}

func newResolver(t *testing.T, m ports.ResolutionMetrics, repos ...ports.Repository) *resolver.Resolver {
	t.Helper()
	cache, err := versions.NewInMemoryCache(64, clock.New(clockwork.NewFakeClock()), nil)
	require.NoError(t, err)
	log := quietLogger()
	return resolver.New(repos, semver.New(), lister.New(cache, m, log), m, log)
}

func roots(t *testing.T, notations ...string) []domain.ModuleVersionSelector {
	t.Helper()
	out := make([]domain.ModuleVersionSelector, 0, len(notations))
	for _, n := range notations {
		sel, err := parser.ParseSelector(n)
		require.NoError(t, err)
		out = append(out, sel)
	}
	return out
}

func id(notation string) domain.ModuleIdentifier {
	sel, err := parser.ParseSelector(notation)
	if err != nil {
		panic(err)
	}
	return sel.Module
}

// diamond publishes three modules that each request a different version of
// org:x.
func diamond(t *testing.T) *repository.Repository {
	return mustRepo(t, "central", map[string]map[string][]string{
		"org:a": {"1.0": {"org:x:1.0"}},
		"org:b": {"1.0": {"org:x:1.2"}},
		"org:c": {"1.0": {"org:d:0.1"}},
		"org:d": {"0.1": {"org:x:1.1"}},
		"org:x": {"1.0": nil, "1.1": nil, "1.2": nil},
	})
}

func TestResolve_LatestConflict(t *testing.T) {
	r := newResolver(t, metrics.NoOp{}, diamond(t))

	graph, err := r.Resolve(context.Background(), roots(t, "org:a:1.0", "org:b:1.0", "org:c:1.0"), strategy.New(parser), resolver.Options{})
	require.NoError(t, err)

	x, ok := graph.Module(id("org:x"))
	require.True(t, ok)
	assert.Equal(t, "1.2", x.ID.Version)
	assert.Equal(t, domain.ReasonConflictResolution, x.Reason)
	assert.Equal(t, "central", x.Repository)
	require.Len(t, x.Requested, 3)

	a, ok := graph.Module(id("org:a"))
	require.True(t, ok)
	assert.Equal(t, domain.ReasonRoot, a.Reason)
	assert.Equal(t, []domain.ModuleIdentifier{id("org:x")}, a.Dependencies)

	d, ok := graph.Module(id("org:d"))
	require.True(t, ok)
	assert.Equal(t, domain.ReasonRequested, d.Reason)

	assert.Equal(t, 5, graph.Len())
	assert.Equal(t, []domain.ModuleIdentifier{id("org:a"), id("org:b"), id("org:c")}, graph.Roots())
}

func TestResolve_StrictConflictListsPaths(t *testing.T) {
	s := strategy.New(parser)
	require.NoError(t, s.FailOnVersionConflict())
	r := newResolver(t, metrics.NoOp{}, diamond(t))

	_, err := r.Resolve(context.Background(), roots(t, "org:a:1.0", "org:b:1.0", "org:c:1.0"), s, resolver.Options{})
	require.Error(t, err)

	var vce *conflict.VersionConflictError
	require.ErrorAs(t, err, &vce)
	require.Len(t, vce.Conflicts, 1)
	assert.ElementsMatch(t, []string{"1.0", "1.1", "1.2"}, vce.Conflicts[0].Versions())

	msg := err.Error()
	assert.Contains(t, msg, "1.0 via org:a:1.0")
	assert.Contains(t, msg, "1.2 via org:b:1.0")
	assert.Contains(t, msg, "1.1 via org:c:1.0 -> org:d:0.1")
}

func TestResolve_ForcedVersionNeverConflicts(t *testing.T) {
	s := strategy.New(parser)
	require.NoError(t, s.FailOnVersionConflict())
	require.NoError(t, s.Force("org:x:1.0"))
	r := newResolver(t, metrics.NoOp{}, diamond(t))

	graph, err := r.Resolve(context.Background(), roots(t, "org:a:1.0", "org:b:1.0", "org:c:1.0"), s, resolver.Options{})
	require.NoError(t, err)

	x, _ := graph.Module(id("org:x"))
	assert.Equal(t, "1.0", x.ID.Version)
	assert.Equal(t, domain.ReasonForced, x.Reason)
	for _, req := range x.Requested {
		assert.Equal(t, domain.ReasonForced, req.Reason)
	}
}

func TestResolve_SubstitutionRule(t *testing.T) {
	s := strategy.New(parser)
	require.NoError(t, s.EachDependency(strategy.UseVersionFor(id("org:x"), "1.1")))
	r := newResolver(t, metrics.NoOp{}, diamond(t))

	graph, err := r.Resolve(context.Background(), roots(t, "org:a:1.0", "org:b:1.0"), s, resolver.Options{})
	require.NoError(t, err)

	x, _ := graph.Module(id("org:x"))
	assert.Equal(t, "1.1", x.ID.Version)
	assert.Equal(t, domain.ReasonSelectedByRule, x.Reason)
}

func TestResolve_EvictedVersionEdgesDropped(t *testing.T) {
	repo := mustRepo(t, "central", map[string]map[string][]string{
		"org:a": {"1.0": {"org:y:1.0"}, "2.0": nil},
		"org:b": {"1.0": {"org:a:2.0"}},
		"org:y": {"1.0": nil},
	})
	r := newResolver(t, metrics.NoOp{}, repo)

	graph, err := r.Resolve(context.Background(), roots(t, "org:a:1.0", "org:b:1.0"), strategy.New(parser), resolver.Options{})
	require.NoError(t, err)

	a, _ := graph.Module(id("org:a"))
	assert.Equal(t, "2.0", a.ID.Version)
	_, ok := graph.Module(id("org:y"))
	assert.False(t, ok, "org:y is only required by the evicted org:a:1.0")
	assert.Equal(t, 2, graph.Len())
}

func TestResolve_RequestFromEvictedVersionDoesNotPinVersion(t *testing.T) {
	repo := mustRepo(t, "central", map[string]map[string][]string{
		"org:p": {"1.0": {"org:q:2.0"}},
		"org:q": {"1.0": {"org:x:2.0"}, "2.0": {"org:x:1.0"}},
		"org:x": {"1.0": nil, "2.0": nil},
	})
	r := newResolver(t, metrics.NoOp{}, repo)

	graph, err := r.Resolve(context.Background(), roots(t, "org:p:1.0", "org:q:1.0"), strategy.New(parser), resolver.Options{})
	require.NoError(t, err)
	require.NoError(t, graph.Validate())

	q, _ := graph.Module(id("org:q"))
	assert.Equal(t, "2.0", q.ID.Version)
	assert.Equal(t, domain.ReasonConflictResolution, q.Reason)

	x, ok := graph.Module(id("org:x"))
	require.True(t, ok)
	assert.Equal(t, "1.0", x.ID.Version, "org:x:2.0 is only required by the evicted org:q:1.0")
	assert.Equal(t, domain.ReasonRequested, x.Reason)
	require.Len(t, x.Requested, 1)
	assert.Equal(t, []domain.ModuleVersionIdentifier{
		{Module: id("org:q"), Version: "2.0"},
	}, x.Requested[0].Path)
}

func TestResolve_ChangingModuleRelistedWhenStale(t *testing.T) {
	fake := clockwork.NewFakeClock()
	cache, err := versions.NewInMemoryCache(64, clock.NewLive(fake), nil)
	require.NoError(t, err)
	log := quietLogger()
	resolveWith := func(t *testing.T, repo ports.Repository) string {
		t.Helper()
		s := strategy.New(parser)
		require.NoError(t, s.CacheChangingModulesFor(1, "hours"))
		r := resolver.New([]ports.Repository{repo}, semver.New(), lister.New(cache, metrics.NoOp{}, log), metrics.NoOp{}, log)
		graph, err := r.Resolve(context.Background(), roots(t, "org:lib:latest.integration"), s, resolver.Options{})
		require.NoError(t, err)
		lib, ok := graph.Module(id("org:lib"))
		require.True(t, ok)
		return lib.ID.Version
	}
	republished := func(changing ...string) *repository.Repository {
		repo, err := repository.New("central", repository.Document{
			Modules:  map[string]map[string][]string{"org:lib": {"1.0": nil, "1.1": nil}},
			Changing: changing,
		}, parser)
		require.NoError(t, err)
		return repo
	}

	first := mustRepo(t, "central", map[string]map[string][]string{"org:lib": {"1.0": nil}})
	assert.Equal(t, "1.0", resolveWith(t, first))

	fake.Advance(30 * time.Minute)
	assert.Equal(t, "1.0", resolveWith(t, republished("org:lib:1.0")), "cached listing is still fresh for changing modules")
	assert.Equal(t, "1.0", resolveWith(t, republished()), "stable modules follow the version list TTL")

	fake.Advance(90 * time.Minute)
	assert.Equal(t, "1.1", resolveWith(t, republished("org:lib:1.0")))
}

func TestResolve_DynamicSelectors(t *testing.T) {
	repo := mustRepo(t, "central", map[string]map[string][]string{
		"org:lib": {"1.0": nil, "1.4": nil, "1.5": nil, "2.0": nil, "2.1-rc1": nil},
	})

	tests := []struct {
		selector string
		want     string
	}{
		{selector: "org:lib:1.+", want: "1.5"},
		{selector: "org:lib:[1.0,2.0)", want: "1.5"},
		{selector: "org:lib:latest.release", want: "2.0"},
		{selector: "org:lib:latest.integration", want: "2.1-rc1"},
		{selector: "org:lib", want: "2.1-rc1"},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			r := newResolver(t, metrics.NoOp{}, repo)
			graph, err := r.Resolve(context.Background(), roots(t, tt.selector), strategy.New(parser), resolver.Options{})
			require.NoError(t, err)
			lib, _ := graph.Module(id("org:lib"))
			assert.Equal(t, tt.want, lib.ID.Version)
		})
	}
}

func TestResolve_ComponentSelectionFiltersCandidates(t *testing.T) {
	repo := mustRepo(t, "central", map[string]map[string][]string{
		"org:lib": {"1.0": nil, "1.4": nil, "1.5": nil},
	})
	s := strategy.New(parser)
	require.NoError(t, s.ComponentSelection(func(rules *strategy.ComponentSelectionRules) error {
		return rules.Module("org:lib", func(sel *strategy.ComponentSelection) {
			if sel.Candidate().Version == "1.5" {
				sel.Reject("known bad")
			}
		})
	}))
	r := newResolver(t, metrics.NoOp{}, repo)

	graph, err := r.Resolve(context.Background(), roots(t, "org:lib:1.+"), s, resolver.Options{})
	require.NoError(t, err)
	lib, _ := graph.Module(id("org:lib"))
	assert.Equal(t, "1.4", lib.ID.Version)
}

func TestResolve_ComponentSelectionRejectsExactVersion(t *testing.T) {
	repo := mustRepo(t, "central", map[string]map[string][]string{
		"org:lib": {"1.5": nil},
	})
	s := strategy.New(parser)
	require.NoError(t, s.ComponentSelection(func(rules *strategy.ComponentSelectionRules) error {
		rules.All(func(sel *strategy.ComponentSelection) { sel.Reject("frozen") })
		return nil
	}))
	r := newResolver(t, metrics.NoOp{}, repo)

	_, err := r.Resolve(context.Background(), roots(t, "org:lib:1.5"), s, resolver.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrNoMatchingVersion.Error())
}

func TestResolve_MissingModules(t *testing.T) {
	repo := mustRepo(t, "central", map[string]map[string][]string{
		"org:lib": {"1.0": nil},
	})

	tests := []struct {
		root string
		want error
	}{
		{root: "org:ghost:1.0", want: domain.ErrModuleNotFound},
		{root: "org:ghost:1.+", want: domain.ErrModuleNotFound},
		{root: "org:lib:2.0", want: domain.ErrModuleNotFound},
		{root: "org:lib:2.+", want: domain.ErrNoMatchingVersion},
	}

	for _, tt := range tests {
		t.Run(tt.root, func(t *testing.T) {
			r := newResolver(t, metrics.NoOp{}, repo)
			_, err := r.Resolve(context.Background(), roots(t, tt.root), strategy.New(parser), resolver.Options{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want.Error())
		})
	}
}

func TestResolve_Cycle(t *testing.T) {
	repo := mustRepo(t, "central", map[string]map[string][]string{
		"org:a": {"1.0": {"org:b:1.0"}},
		"org:b": {"1.0": {"org:a:1.0"}},
	})
	r := newResolver(t, metrics.NoOp{}, repo)

	graph, err := r.Resolve(context.Background(), roots(t, "org:a:1.0"), strategy.New(parser), resolver.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, graph.Len())

	b, _ := graph.Module(id("org:b"))
	assert.Equal(t, []domain.ModuleIdentifier{id("org:a")}, b.Dependencies)
}

func TestResolve_RepositoryOrder(t *testing.T) {
	first := mustRepo(t, "first", map[string]map[string][]string{
		"org:lib": {"1.0": nil, "1.1": nil},
	})
	second := mustRepo(t, "second", map[string]map[string][]string{
		"org:lib": {"1.1": nil, "1.2": nil},
	})

	r := newResolver(t, metrics.NoOp{}, first, second)
	graph, err := r.Resolve(context.Background(), roots(t, "org:lib:1.+"), strategy.New(parser), resolver.Options{})
	require.NoError(t, err)
	lib, _ := graph.Module(id("org:lib"))
	assert.Equal(t, "1.2", lib.ID.Version)
	assert.Equal(t, "second", lib.Repository)

	r = newResolver(t, metrics.NoOp{}, first, second)
	graph, err = r.Resolve(context.Background(), roots(t, "org:lib:1.1"), strategy.New(parser), resolver.Options{})
	require.NoError(t, err)
	lib, _ = graph.Module(id("org:lib"))
	assert.Equal(t, "first", lib.Repository)
}

func TestResolve_RuleFailure(t *testing.T) {
	s := strategy.New(parser)
	require.NoError(t, s.EachDependency(func(ports.DependencyResolveDetails) error {
		return errors.New("not allowed")
	}))
	r := newResolver(t, metrics.NoOp{}, diamond(t))

	_, err := r.Resolve(context.Background(), roots(t, "org:a:1.0"), s, resolver.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrRuleFailed.Error())
}

func TestResolve_FreezesStrategy(t *testing.T) {
	s := strategy.New(parser)
	r := newResolver(t, metrics.NoOp{}, diamond(t))

	_, err := r.Resolve(context.Background(), roots(t, "org:a:1.0"), s, resolver.Options{})
	require.NoError(t, err)
	assert.True(t, s.IsFrozen())
}

func TestResolve_CountsConflictsAndCacheUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockResolutionMetrics(ctrl)
	repo := mustRepo(t, "central", map[string]map[string][]string{
		"org:a":   {"1.0": {"org:lib:1.+"}},
		"org:b":   {"1.0": {"org:lib:1.0"}},
		"org:lib": {"1.0": nil, "1.1": nil},
	})

	cache, err := versions.NewInMemoryCache(8, clock.New(clockwork.NewFakeClock()), nil)
	require.NoError(t, err)
	log := quietLogger()
	r := resolver.New([]ports.Repository{repo}, semver.New(), lister.New(cache, m, log), m, log)

	gomock.InOrder(
		m.EXPECT().VersionListMiss("central"),
		m.EXPECT().ConflictResolved("latest"),
		m.EXPECT().VersionListHit("central"),
		m.EXPECT().ConflictResolved("latest"),
	)

	for range 2 {
		graph, err := r.Resolve(context.Background(), roots(t, "org:a:1.0", "org:b:1.0"), strategy.New(parser), resolver.Options{})
		require.NoError(t, err)
		lib, _ := graph.Module(id("org:lib"))
		assert.Equal(t, "1.1", lib.ID.Version)
	}
}

func TestResolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newResolver(t, metrics.NoOp{}, diamond(t))
	_, err := r.Resolve(ctx, roots(t, "org:a:1.0"), strategy.New(parser), resolver.Options{})
	require.ErrorIs(t, err, context.Canceled)
}
