package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hdlc/internal/adapters/telemetry/progrock"
	"go.trai.ch/hdlc/internal/app"
	"go.trai.ch/hdlc/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func msimFingerprint() string {
	return domain.BuilderConfig{Name: "msim"}.Fingerprint()
}

func singleLibrary(flags ...string) *domain.Project {
	return &domain.Project{
		Builder: domain.BuilderConfig{Name: "msim"},
		Libraries: []domain.LibrarySpec{
			{Name: "work", Sources: []string{"rtl/**/*.vhd"}, Flags: flags},
		},
	}
}

func TestApp_Build_FreshLibraryBuildsPackagesFirst(t *testing.T) {
	top := &fakeSource{path: "/proj/rtl/top.vhd", mtime: 5}
	pkg := &fakeSource{path: "/proj/rtl/types.vhd", mtime: 10, pkg: true}
	f := newFixture(t, top, pkg)
	ctx := context.Background()

	f.expectProject(singleLibrary("-2008"))
	f.resolver.EXPECT().ResolveSources([]string{"rtl/**/*.vhd"}, root).Return([]string{top.path, pkg.path}, nil)
	f.store.EXPECT().Load(root, "work").Return(nil, nil)
	f.builder.EXPECT().CreateOrMapLibrary(gomock.Any(), "work").Return(false, nil)
	gomock.InOrder(
		f.builder.EXPECT().Build(gomock.Any(), "work", pkg, []string{"-2008"}).Return(domain.Diagnostics{}, nil),
		f.builder.EXPECT().Build(gomock.Any(), "work", top, []string{"-2008"}).
			Return(domain.Diagnostics{Warnings: []string{"top.vhd(3): unused"}}, nil),
	)
	f.store.EXPECT().Save(root, gomock.Any()).DoAndReturn(func(_ string, state domain.LibraryState) error {
		assert.Equal(t, "work", state.Name)
		assert.Equal(t, "library.work", state.Logger)
		assert.Equal(t, []string{top.path, pkg.path}, state.Sources)
		assert.Equal(t, []string{"-2008"}, state.Flags)
		assert.Equal(t, domain.BuilderConfig{Name: "msim"}.Fingerprint(), state.Builder)
		assert.Equal(t, int64(10), state.Cache[pkg.path].CompileTime)
		assert.Equal(t, int64(5), state.Cache[top.path].CompileTime)
		return nil
	})

	require.NoError(t, f.app.Build(ctx, app.BuildOptions{}))
	assert.Equal(t,
		"/proj/rtl/top.vhd:\n  warning: top.vhd(3): unused\nlibrary work: 2 sources, 0 errors, 1 warning\n",
		f.out.String())
}

func TestApp_Build_CompilationErrors(t *testing.T) {
	top := &fakeSource{path: "/proj/rtl/top.vhd", mtime: 5}
	f := newFixture(t, top)

	f.expectProject(singleLibrary())
	f.resolver.EXPECT().ResolveSources(gomock.Any(), root).Return([]string{top.path}, nil)
	f.store.EXPECT().Load(root, "work").Return(nil, nil)
	f.builder.EXPECT().CreateOrMapLibrary(gomock.Any(), "work").Return(false, nil)
	f.builder.EXPECT().Build(gomock.Any(), "work", top, gomock.Any()).
		Return(domain.Diagnostics{Errors: []string{"top.vhd(1): syntax error"}}, nil)
	f.store.EXPECT().Save(root, gomock.Any()).Return(nil)

	err := f.app.Build(context.Background(), app.BuildOptions{})
	require.ErrorIs(t, err, domain.ErrCompilationFailed)
	assert.Contains(t, f.out.String(), "  error: top.vhd(1): syntax error\n")
	assert.Contains(t, f.out.String(), "library work: 1 source, 1 error, 0 warnings\n")
}

func TestApp_Build_RestoresUnchangedLibrary(t *testing.T) {
	top := &fakeSource{path: "/proj/rtl/top.vhd", mtime: 5}
	f := newFixture(t, top)

	f.expectProject(singleLibrary("-2008"))
	f.resolver.EXPECT().ResolveSources(gomock.Any(), root).Return([]string{top.path}, nil)
	f.store.EXPECT().Load(root, "work").Return(&domain.LibraryState{
		Name:    "work",
		Logger:  "library.work",
		Sources: []string{top.path},
		Flags:   []string{"-2008"},
		Builder: msimFingerprint(),
		Cache: map[string]domain.CacheEntry{
			top.path: {CompileTime: 5, Warnings: []string{"old warning"}},
		},
	}, nil)
	f.builder.EXPECT().CreateOrMapLibrary(gomock.Any(), "work").Return(false, nil)
	f.builder.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.store.EXPECT().Save(root, gomock.Any()).Return(nil)

	require.NoError(t, f.app.Build(context.Background(), app.BuildOptions{}))
	assert.Contains(t, f.out.String(), "  warning: old warning\n")
}

func TestApp_Build_SourceListChangeKeepsCache(t *testing.T) {
	top := &fakeSource{path: "/proj/rtl/top.vhd", mtime: 5}
	added := &fakeSource{path: "/proj/rtl/added.vhd", mtime: 7}
	f := newFixture(t, top, added)

	f.expectProject(singleLibrary())
	f.resolver.EXPECT().ResolveSources(gomock.Any(), root).Return([]string{top.path, added.path}, nil)
	f.store.EXPECT().Load(root, "work").Return(&domain.LibraryState{
		Name:    "work",
		Sources: []string{top.path, "/proj/rtl/removed.vhd"},
		Builder: msimFingerprint(),
		Cache: map[string]domain.CacheEntry{
			top.path:                {CompileTime: 5},
			"/proj/rtl/removed.vhd": {CompileTime: 3},
		},
	}, nil)
	f.builder.EXPECT().CreateOrMapLibrary(gomock.Any(), "work").Return(false, nil)
	f.builder.EXPECT().Build(gomock.Any(), "work", added, gomock.Any()).Return(domain.Diagnostics{}, nil)
	f.store.EXPECT().Save(root, gomock.Any()).DoAndReturn(func(_ string, state domain.LibraryState) error {
		assert.Equal(t, []string{top.path, added.path}, state.Sources)
		assert.NotContains(t, state.Cache, "/proj/rtl/removed.vhd")
		assert.Len(t, state.Cache, 2)
		return nil
	})

	require.NoError(t, f.app.Build(context.Background(), app.BuildOptions{}))
}

func TestApp_Build_FlagChangeStartsFresh(t *testing.T) {
	top := &fakeSource{path: "/proj/rtl/top.vhd", mtime: 5}
	f := newFixture(t, top)

	f.expectProject(singleLibrary("-2008"))
	f.resolver.EXPECT().ResolveSources(gomock.Any(), root).Return([]string{top.path}, nil)
	f.store.EXPECT().Load(root, "work").Return(&domain.LibraryState{
		Name:    "work",
		Sources: []string{top.path},
		Flags:   []string{"-93"},
		Builder: msimFingerprint(),
		Cache:   map[string]domain.CacheEntry{top.path: {CompileTime: 5}},
	}, nil)
	f.builder.EXPECT().CreateOrMapLibrary(gomock.Any(), "work").Return(false, nil)
	f.builder.EXPECT().Build(gomock.Any(), "work", top, []string{"-2008"}).Return(domain.Diagnostics{}, nil)
	f.store.EXPECT().Save(root, gomock.Any()).Return(nil)

	require.NoError(t, f.app.Build(context.Background(), app.BuildOptions{}))
}

func TestApp_Build_Force(t *testing.T) {
	top := &fakeSource{path: "/proj/rtl/top.vhd", mtime: 5}
	f := newFixture(t, top)

	f.expectProject(singleLibrary())
	f.resolver.EXPECT().ResolveSources(gomock.Any(), root).Return([]string{top.path}, nil)
	f.store.EXPECT().Load(root, "work").Return(&domain.LibraryState{
		Name:    "work",
		Sources: []string{top.path},
		Builder: msimFingerprint(),
		Cache:   map[string]domain.CacheEntry{top.path: {CompileTime: 5}},
	}, nil)
	f.builder.EXPECT().CreateOrMapLibrary(gomock.Any(), "work").Return(false, nil)
	f.builder.EXPECT().Build(gomock.Any(), "work", top, gomock.Any()).Return(domain.Diagnostics{}, nil)
	f.store.EXPECT().Save(root, gomock.Any()).Return(nil)

	require.NoError(t, f.app.Build(context.Background(), app.BuildOptions{Force: true}))
}

func TestApp_Build_BuilderConfigChangeStartsFresh(t *testing.T) {
	tests := []struct {
		name    string
		builder domain.BuilderConfig
	}{
		{name: "flags", builder: domain.BuilderConfig{Name: "msim", Flags: []string{"-explicit"}}},
		{name: "workdir", builder: domain.BuilderConfig{Name: "msim", WorkDir: "build/msim"}},
		{name: "ini", builder: domain.BuilderConfig{Name: "msim", Ini: "/opt/questa/modelsim.ini"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top := &fakeSource{path: "/proj/rtl/top.vhd", mtime: 5}
			f := newFixture(t, top)

			project := singleLibrary("-2008")
			project.Builder = tt.builder
			f.expectProject(project)
			f.resolver.EXPECT().ResolveSources(gomock.Any(), root).Return([]string{top.path}, nil)
			f.store.EXPECT().Load(root, "work").Return(&domain.LibraryState{
				Name:    "work",
				Sources: []string{top.path},
				Flags:   []string{"-2008"},
				Builder: msimFingerprint(),
				Cache: map[string]domain.CacheEntry{
					top.path: {CompileTime: 5, Errors: []string{"stale error from old builder settings"}},
				},
			}, nil)
			f.builder.EXPECT().CreateOrMapLibrary(gomock.Any(), "work").Return(false, nil)
			f.builder.EXPECT().Build(gomock.Any(), "work", top, []string{"-2008"}).
				Return(domain.Diagnostics{}, nil).Times(1)
			f.store.EXPECT().Save(root, gomock.Any()).DoAndReturn(func(_ string, state domain.LibraryState) error {
				assert.Equal(t, tt.builder.Fingerprint(), state.Builder)
				return nil
			})

			require.NoError(t, f.app.Build(context.Background(), app.BuildOptions{}))
			assert.NotContains(t, f.out.String(), "stale error")
		})
	}
}

func TestApp_Build_StateWithoutBuilderFingerprintStartsFresh(t *testing.T) {
	top := &fakeSource{path: "/proj/rtl/top.vhd", mtime: 5}
	f := newFixture(t, top)

	f.expectProject(singleLibrary())
	f.resolver.EXPECT().ResolveSources(gomock.Any(), root).Return([]string{top.path}, nil)
	f.store.EXPECT().Load(root, "work").Return(&domain.LibraryState{
		Name:    "work",
		Sources: []string{top.path},
		Cache:   map[string]domain.CacheEntry{top.path: {CompileTime: 5}},
	}, nil)
	f.builder.EXPECT().CreateOrMapLibrary(gomock.Any(), "work").Return(false, nil)
	f.builder.EXPECT().Build(gomock.Any(), "work", top, gomock.Any()).Return(domain.Diagnostics{}, nil).Times(1)
	f.store.EXPECT().Save(root, gomock.Any()).Return(nil)

	require.NoError(t, f.app.Build(context.Background(), app.BuildOptions{}))
}

func TestApp_Build_RecreatedPhysicalLibraryRebuilds(t *testing.T) {
	pkg := &fakeSource{path: "/proj/rtl/types.vhd", mtime: 10, pkg: true}
	top := &fakeSource{path: "/proj/rtl/top.vhd", mtime: 5}
	f := newFixture(t, top, pkg)

	f.expectProject(singleLibrary())
	f.resolver.EXPECT().ResolveSources(gomock.Any(), root).Return([]string{top.path, pkg.path}, nil)
	f.store.EXPECT().Load(root, "work").Return(&domain.LibraryState{
		Name:    "work",
		Logger:  "library.work",
		Sources: []string{top.path, pkg.path},
		Builder: msimFingerprint(),
		Cache: map[string]domain.CacheEntry{
			top.path: {CompileTime: 5},
			pkg.path: {CompileTime: 10},
		},
	}, nil)
	// The library directory was deleted, so vlib made an empty one.
	f.builder.EXPECT().CreateOrMapLibrary(gomock.Any(), "work").Return(true, nil)
	gomock.InOrder(
		f.builder.EXPECT().Build(gomock.Any(), "work", pkg, gomock.Any()).Return(domain.Diagnostics{}, nil),
		f.builder.EXPECT().Build(gomock.Any(), "work", top, gomock.Any()).Return(domain.Diagnostics{}, nil),
	)
	f.store.EXPECT().Save(root, gomock.Any()).DoAndReturn(func(_ string, state domain.LibraryState) error {
		assert.Equal(t, int64(10), state.Cache[pkg.path].CompileTime)
		assert.Equal(t, int64(5), state.Cache[top.path].CompileTime)
		return nil
	})

	require.NoError(t, f.app.Build(context.Background(), app.BuildOptions{}))
}

func TestApp_Build_RequestedSources(t *testing.T) {
	a := &fakeSource{path: "/proj/rtl/a.vhd", mtime: 1}
	b := &fakeSource{path: "/proj/rtl/b.vhd", mtime: 1}
	ip := &fakeSource{path: "/proj/ip/fifo.vhd", mtime: 1}
	f := newFixture(t, a, b, ip)

	project := &domain.Project{
		Libraries: []domain.LibrarySpec{
			{Name: "work", Sources: []string{"rtl/"}},
			{Name: "ip", Sources: []string{"ip/"}},
		},
	}
	f.expectProject(project)
	f.resolver.EXPECT().ResolveSources([]string{"rtl/"}, root).Return([]string{a.path, b.path}, nil)
	f.resolver.EXPECT().ResolveSources([]string{"ip/"}, root).Return([]string{ip.path}, nil)
	f.store.EXPECT().Load(root, gomock.Any()).Return(nil, nil).Times(2)

	// Only the library owning the requested file is touched.
	f.builder.EXPECT().CreateOrMapLibrary(gomock.Any(), "work").Return(false, nil)
	f.builder.EXPECT().Build(gomock.Any(), "work", b, gomock.Any()).Return(domain.Diagnostics{}, nil)
	f.store.EXPECT().Save(root, gomock.Any()).Return(nil)

	require.NoError(t, f.app.Build(context.Background(), app.BuildOptions{Sources: []string{b.path}}))
	assert.Equal(t, "library work: 1 source, 0 errors, 0 warnings\n", f.out.String())
}

func TestApp_Build_RequestedSourceNotInAnyLibrary(t *testing.T) {
	a := &fakeSource{path: "/proj/rtl/a.vhd", mtime: 1}
	f := newFixture(t, a)

	f.expectProject(singleLibrary())
	f.resolver.EXPECT().ResolveSources(gomock.Any(), root).Return([]string{a.path}, nil)
	f.store.EXPECT().Load(root, "work").Return(nil, nil)
	f.builder.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := f.app.Build(context.Background(), app.BuildOptions{Sources: []string{"/elsewhere/x.vhd"}})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSourceNotFound.Error())
}

func TestApp_Build_UnknownLibrary(t *testing.T) {
	f := newFixture(t)

	f.expectProject(singleLibrary())

	err := f.app.Build(context.Background(), app.BuildOptions{Libraries: []string{"nope"}})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLibraryNotFound.Error())
}

func TestApp_Build_ConfigError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(".").Return(nil, domain.ErrConfigNotFound)

	err := f.app.Build(context.Background(), app.BuildOptions{})
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestApp_Build_BuilderFailureStillSaves(t *testing.T) {
	top := &fakeSource{path: "/proj/rtl/top.vhd", mtime: 5}
	f := newFixture(t, top)

	f.expectProject(singleLibrary())
	f.resolver.EXPECT().ResolveSources(gomock.Any(), root).Return([]string{top.path}, nil)
	f.store.EXPECT().Load(root, "work").Return(nil, nil)
	f.builder.EXPECT().CreateOrMapLibrary(gomock.Any(), "work").Return(false, domain.ErrLibraryCreateFailed)
	f.store.EXPECT().Save(root, gomock.Any()).Return(nil)

	err := f.app.Build(context.Background(), app.BuildOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLibraryCreateFailed.Error())
}

func TestApp_Deps(t *testing.T) {
	pkg := &fakeSource{path: "/proj/rtl/types.vhd", pkg: true, deps: []domain.Dependency{
		domain.NewDependency("ieee", "std_logic_1164"),
	}}
	top := &fakeSource{path: "/proj/rtl/top.vhd", deps: []domain.Dependency{
		domain.NewDependency("work", "types"),
	}}
	fifo := &fakeSource{path: "/proj/ip/fifo.vhd", deps: []domain.Dependency{
		domain.NewDependency("work", "fifo_pkg"),
	}}
	f := newFixture(t, pkg, top, fifo)

	f.expectProject(&domain.Project{
		Libraries: []domain.LibrarySpec{
			{Name: "work", Sources: []string{"rtl/"}},
			{Name: "ip", Sources: []string{"ip/"}},
		},
	})
	f.resolver.EXPECT().ResolveSources([]string{"rtl/"}, root).Return([]string{pkg.path, top.path}, nil)
	f.resolver.EXPECT().ResolveSources([]string{"ip/"}, root).Return([]string{fifo.path}, nil)

	deps, err := f.app.Deps(context.Background(), app.DepsOptions{})
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.Equal(t, "work", deps[0].Library)
	assert.Equal(t, "ip", deps[1].Library)
	assert.Equal(t, []domain.Dependency{domain.NewDependency("ip", "fifo_pkg")}, deps[1].Sources[0].Dependencies)

	assert.Equal(t, `library work:
  /proj/rtl/types.vhd:
    ieee.std_logic_1164
  /proj/rtl/top.vhd:
    work.types
library ip:
  /proj/ip/fifo.vhd:
    ip.fifo_pkg
`, f.out.String())
}

func TestApp_Deps_ResolveError(t *testing.T) {
	f := newFixture(t)

	f.expectProject(singleLibrary())
	f.resolver.EXPECT().ResolveSources(gomock.Any(), root).Return(nil, domain.ErrInputNotFound)

	_, err := f.app.Deps(context.Background(), app.DepsOptions{Libraries: []string{"work"}})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInputNotFound.Error())
}

func TestApp_Clean(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(&domain.Project{Root: root}, nil)
	f.store.EXPECT().Clean(root).Return(nil)
	f.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, f.app.Clean(context.Background()))
}

func TestApp_Clean_Failure(t *testing.T) {
	f := newFixture(t)
	cause := errors.New("busy")

	f.loader.EXPECT().Load(".").Return(&domain.Project{Root: root}, nil)
	f.store.EXPECT().Clean(root).Return(cause)

	require.ErrorIs(t, f.app.Clean(context.Background()), cause)
}

func TestApp_Build_ReportsCompiledAndReusedCounts(t *testing.T) {
	pkg := &fakeSource{path: "/proj/rtl/types.vhd", mtime: 10, pkg: true}
	top := &fakeSource{path: "/proj/rtl/top.vhd", mtime: 5}
	f := newFixture(t, top, pkg)
	recorder := progrock.New()
	f.app = app.New(f.loader, f.builders, f.factory, f.resolver, f.store, f.logger, recorder).WithOutput(f.out)
	ctx := context.Background()

	project := singleLibrary()
	project.Root = root
	f.loader.EXPECT().Load(".").Return(project, nil).Times(2)
	f.builders.EXPECT().NewBuilder(project.Builder, root).Return(f.builder, nil).Times(2)
	f.resolver.EXPECT().ResolveSources(gomock.Any(), root).Return([]string{top.path, pkg.path}, nil).Times(2)
	f.builder.EXPECT().CreateOrMapLibrary(gomock.Any(), "work").Return(false, nil).Times(2)
	f.builder.EXPECT().Build(gomock.Any(), "work", pkg, gomock.Any()).Return(domain.Diagnostics{}, nil)
	f.builder.EXPECT().Build(gomock.Any(), "work", top, gomock.Any()).
		Return(domain.Diagnostics{Errors: []string{"top.vhd(2): syntax error"}}, nil)

	var saved domain.LibraryState
	gomock.InOrder(
		f.store.EXPECT().Load(root, "work").Return(nil, nil),
		f.store.EXPECT().Load(root, "work").DoAndReturn(func(string, string) (*domain.LibraryState, error) {
			return &saved, nil
		}),
	)
	f.store.EXPECT().Save(root, gomock.Any()).DoAndReturn(func(_ string, state domain.LibraryState) error {
		saved = state
		return nil
	}).Times(2)

	require.ErrorIs(t, f.app.Build(ctx, app.BuildOptions{}), domain.ErrCompilationFailed)
	assert.True(t, strings.HasSuffix(f.out.String(), "2 compiled, 0 reused, 1 with errors\n"), f.out.String())

	f.out.Reset()
	require.ErrorIs(t, f.app.Build(ctx, app.BuildOptions{}), domain.ErrCompilationFailed)
	assert.True(t, strings.HasSuffix(f.out.String(), "0 compiled, 2 reused, 1 with errors\n"), f.out.String())

	require.NoError(t, recorder.Close())
}
