// Package app implements the application layer for hdlc.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/hdlc/internal/core/domain"
	"go.trai.ch/hdlc/internal/core/ports"
	"go.trai.ch/hdlc/internal/engine/library"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	builders     ports.BuilderFactory
	sources      ports.SourceFactory
	resolver     ports.SourceResolver
	store        ports.CacheStore
	logger       ports.Logger
	telemetry    ports.Telemetry
	out          io.Writer
}

// New creates a new App instance writing reports to stdout.
func New(
	loader ports.ConfigLoader,
	builders ports.BuilderFactory,
	sources ports.SourceFactory,
	resolver ports.SourceResolver,
	store ports.CacheStore,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		builders:     builders,
		sources:      sources,
		resolver:     resolver,
		store:        store,
		logger:       logger,
		telemetry:    telemetry,
		out:          os.Stdout,
	}
}

// WithOutput sets the writer receiving build reports and dependency listings.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// BuildOptions configures a build.
type BuildOptions struct {
	// Libraries restricts the build to the named libraries. Empty means all.
	Libraries []string
	// Sources restricts the build to the given files. Empty means every source.
	Sources []string
	// Force rebuilds sources even when the cache says they are up to date.
	Force bool
}

// Build compiles the selected libraries in declaration order.
// When telemetry is configured, a final line counts compiled and reused sources.
//
// Every library is built and its cache saved even when an earlier library
// reported errors. If any source has errors, domain.ErrCompilationFailed is
// returned after all libraries were processed.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	project, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	specs, err := selectLibraries(project, opts.Libraries)
	if err != nil {
		return err
	}

	builder, err := a.builders.NewBuilder(project.Builder, project.Root)
	if err != nil {
		return err
	}

	libs := make([]*library.Cache, 0, len(specs))
	for _, spec := range specs {
		lib, err := a.openLibrary(project, spec, builder)
		if err != nil {
			return err
		}
		libs = append(libs, lib)
	}

	requested, err := a.requestedSources(libs, opts.Sources)
	if err != nil {
		return err
	}

	var before domain.BuildStats
	if a.telemetry != nil {
		before = a.telemetry.Stats()
	}

	failed := false
	for _, lib := range libs {
		var subset []ports.SourceUnit
		if requested != nil {
			subset = requested[lib.Name()]
			if len(subset) == 0 {
				continue
			}
		}

		reports, err := a.buildLibrary(ctx, lib, subset, opts.Force)
		state := lib.Snapshot()
		state.Builder = project.Builder.Fingerprint()
		if saveErr := a.store.Save(project.Root, state); saveErr != nil {
			return saveErr
		}
		if err != nil {
			return zerr.With(err, "library", lib.Name())
		}

		if s := renderReports(a.out, lib.Name(), reports); s.errors > 0 {
			failed = true
		}
	}

	if a.telemetry != nil {
		renderStats(a.out, a.telemetry.Stats().Sub(before))
	}

	if failed {
		return domain.ErrCompilationFailed
	}
	return nil
}

func (a *App) buildLibrary(
	ctx context.Context,
	lib *library.Cache,
	subset []ports.SourceUnit,
	force bool,
) ([]library.Report, error) {
	if err := lib.CreateOrMapLibrary(ctx); err != nil {
		return nil, err
	}

	if subset != nil {
		return lib.BuildSources(ctx, subset, force)
	}

	reports, err := lib.BuildPackages(ctx, force)
	if err != nil {
		return reports, err
	}
	rest, err := lib.BuildAllButPackages(ctx, force)
	return append(reports, rest...), err
}

// openLibrary brings back the library from the store when its configuration
// did not change. Cached entries survive a change of the source list but not
// a change of library flags or builder configuration.
func (a *App) openLibrary(
	project *domain.Project,
	spec domain.LibrarySpec,
	builder ports.Builder,
) (*library.Cache, error) {
	paths, err := a.resolver.ResolveSources(spec.Sources, project.Root)
	if err != nil {
		return nil, zerr.With(err, "library", spec.Name)
	}

	state, err := a.store.Load(project.Root, spec.Name)
	if err != nil {
		return nil, err
	}

	opts := []library.Option{library.WithTelemetry(a.telemetry)}
	flags := uniqueStrings(spec.Flags)

	if state != nil && state.Builder == project.Builder.Fingerprint() && slices.Equal(state.Flags, flags) {
		if slices.Equal(state.Sources, paths) {
			return library.Restore(*state, builder, a.sources, a.logger, opts...), nil
		}

		entries := state.CloneCache()
		for path := range entries {
			if !slices.Contains(paths, path) {
				delete(entries, path)
			}
		}
		opts = append(opts, library.WithCache(entries))
	}

	lib := library.New(spec.Name, builder, a.sources, a.logger, opts...)
	lib.AddSources(paths...)
	lib.AddBuildFlags(flags...)
	return lib, nil
}

// requestedSources assigns each requested file to the libraries containing
// it. It returns nil when no files were requested.
func (a *App) requestedSources(libs []*library.Cache, paths []string) (map[string][]ports.SourceUnit, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	requested := make(map[string][]ports.SourceUnit, len(libs))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", p)
		}
		src := a.sources.NewSource(abs)

		found := false
		for _, lib := range libs {
			if containsSource(lib, src.Path()) {
				requested[lib.Name()] = append(requested[lib.Name()], src)
				found = true
			}
		}
		if !found {
			return nil, zerr.With(domain.ErrSourceNotFound, "source", src.Path())
		}
	}
	return requested, nil
}

func containsSource(lib *library.Cache, path string) bool {
	for _, src := range lib.Sources() {
		if src.Path() == path {
			return true
		}
	}
	return false
}

// DepsOptions configures a dependency listing.
type DepsOptions struct {
	// Libraries restricts the listing to the named libraries. Empty means all.
	Libraries []string
}

// LibraryDependencies is the dependency listing of one library.
type LibraryDependencies struct {
	Library string
	Sources []library.SourceDependencies
}

// Deps lists the dependencies of every source of the selected libraries.
// Libraries are scanned concurrently; the result keeps declaration order.
func (a *App) Deps(ctx context.Context, opts DepsOptions) ([]LibraryDependencies, error) {
	project, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	specs, err := selectLibraries(project, opts.Libraries)
	if err != nil {
		return nil, err
	}

	builder, err := a.builders.NewBuilder(project.Builder, project.Root)
	if err != nil {
		return nil, err
	}

	results := make([]LibraryDependencies, len(specs))
	g, ctx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			paths, err := a.resolver.ResolveSources(spec.Sources, project.Root)
			if err != nil {
				return zerr.With(err, "library", spec.Name)
			}

			lib := library.New(spec.Name, builder, a.sources, a.logger)
			lib.AddSources(paths...)

			deps, err := lib.Dependencies()
			if err != nil {
				return zerr.With(err, "library", spec.Name)
			}
			results[i] = LibraryDependencies{Library: spec.Name, Sources: deps}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	renderDependencies(a.out, results)
	return results, nil
}

// Clean removes the persisted library caches of the project.
func (a *App) Clean(_ context.Context) error {
	project, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if err := a.store.Clean(project.Root); err != nil {
		return err
	}
	a.logger.Info("removed library caches")
	return nil
}

func selectLibraries(project *domain.Project, names []string) ([]domain.LibrarySpec, error) {
	if len(names) == 0 {
		return project.Libraries, nil
	}

	specs := make([]domain.LibrarySpec, 0, len(names))
	for _, name := range uniqueStrings(names) {
		spec, ok := project.Library(name)
		if !ok {
			return nil, zerr.With(domain.ErrLibraryNotFound, "library", name)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func uniqueStrings(in []string) []string {
	var out []string
	for _, s := range in {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
