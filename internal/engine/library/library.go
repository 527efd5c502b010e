// Package library implements the incremental build cache of a single HDL library.
package library

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/hdlc/internal/core/domain"
	"go.trai.ch/hdlc/internal/core/ports"
)

// Report is the outcome of one source in a build call, whether it was
// rebuilt or answered from the cache.
type Report struct {
	Source   ports.SourceUnit
	Errors   []string
	Warnings []string
}

// SourceDependencies pairs a source with its dependencies after "work" substitution.
type SourceDependencies struct {
	Source       ports.SourceUnit
	Dependencies []domain.Dependency
}

// Option configures a Cache.
type Option func(*Cache)

// WithTelemetry records one vertex per build decision.
func WithTelemetry(t ports.Telemetry) Option {
	return func(c *Cache) {
		if t != nil {
			c.telemetry = t
		}
	}
}

// WithCache seeds the cache with previously recorded entries.
// The entries are copied.
func WithCache(entries map[string]domain.CacheEntry) Option {
	return func(c *Cache) {
		for path, entry := range entries {
			c.cache[path] = entry.Clone()
		}
	}
}

// Cache tracks the sources of one library and the last build outcome of each.
//
// A Cache is not safe for concurrent use. Build calls process their sources
// sequentially and read-modify-write the per-path entries without locking.
type Cache struct {
	name      string
	builder   ports.Builder
	factory   ports.SourceFactory
	logger    ports.Logger
	telemetry ports.Telemetry

	sources []ports.SourceUnit
	flags   []string
	cache   map[string]domain.CacheEntry
}

// LoggerName returns the name of the logger used by the library called name.
func LoggerName(name string) string {
	return "library." + name
}

// New creates an empty library cache. The library logger is acquired from log by name.
func New(
	name string,
	builder ports.Builder,
	factory ports.SourceFactory,
	log ports.Logger,
	opts ...Option,
) *Cache {
	return newCache(name, log.Named(LoggerName(name)), builder, factory, opts)
}

// Restore rebuilds a cache from persisted state. Every field is restored as
// stored; source paths are wrapped again through factory and the logger is
// re-acquired from log by its stored name.
func Restore(
	state domain.LibraryState,
	builder ports.Builder,
	factory ports.SourceFactory,
	log ports.Logger,
	opts ...Option,
) *Cache {
	loggerName := state.Logger
	if loggerName == "" {
		loggerName = LoggerName(state.Name)
	}

	c := newCache(state.Name, log.Named(loggerName), builder, factory, opts)
	for _, path := range state.Sources {
		c.sources = append(c.sources, factory.NewSource(path))
	}
	c.flags = slices.Clone(state.Flags)
	for path, entry := range state.Cache {
		c.cache[path] = entry.Clone()
	}
	return c
}

func newCache(
	name string,
	log ports.Logger,
	builder ports.Builder,
	factory ports.SourceFactory,
	opts []Option,
) *Cache {
	c := &Cache{
		name:      name,
		builder:   builder,
		factory:   factory,
		logger:    log,
		telemetry: nopTelemetry{},
		cache:     make(map[string]domain.CacheEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the library name.
func (c *Cache) Name() string {
	return c.name
}

// String implements fmt.Stringer.
func (c *Cache) String() string {
	return fmt.Sprintf("Library(name=%q)", c.name)
}

// Sources returns the library sources in insertion order.
func (c *Cache) Sources() []ports.SourceUnit {
	return slices.Clone(c.sources)
}

// Flags returns the extra compiler flags in insertion order.
func (c *Cache) Flags() []string {
	return slices.Clone(c.flags)
}

// Entry returns a copy of the cache entry recorded for path.
func (c *Cache) Entry(path string) (domain.CacheEntry, bool) {
	entry, ok := c.cache[path]
	if !ok {
		return domain.CacheEntry{}, false
	}
	return entry.Clone(), true
}

// AddSources wraps each path into a source unit and appends it.
// Paths already present are appended again.
func (c *Cache) AddSources(paths ...string) {
	for _, path := range paths {
		c.sources = append(c.sources, c.factory.NewSource(path))
	}
}

// AddSourceUnits appends already wrapped source units.
func (c *Cache) AddSourceUnits(units ...ports.SourceUnit) {
	c.sources = append(c.sources, units...)
}

// AddBuildFlag appends a single flag, even when it is already present.
func (c *Cache) AddBuildFlag(flag string) {
	c.flags = append(c.flags, flag)
}

// AddBuildFlags appends every flag that is not already present.
func (c *Cache) AddBuildFlags(flags ...string) {
	for _, flag := range flags {
		if !slices.Contains(c.flags, flag) {
			c.flags = append(c.flags, flag)
		}
	}
}

// CreateOrMapLibrary makes sure the physical library exists for the builder.
//
// A freshly created library holds no compiled units, so every cache entry is
// reset to compile time 0 and rebuilt by the next build call. Recorded
// diagnostics stay until then.
func (c *Cache) CreateOrMapLibrary(ctx context.Context) error {
	created, err := c.builder.CreateOrMapLibrary(ctx, c.name)
	if err != nil {
		return err
	}
	if !created || len(c.cache) == 0 {
		return nil
	}

	c.logger.Info(fmt.Sprintf("library %s was created, discarding %d cached results", c.name, len(c.cache)))
	for path, entry := range c.cache {
		entry.CompileTime = 0
		c.cache[path] = entry
	}
	return nil
}

// Snapshot returns the persistable state of the cache.
func (c *Cache) Snapshot() domain.LibraryState {
	state := domain.LibraryState{
		Name:   c.name,
		Logger: c.logger.Name(),
		Flags:  slices.Clone(c.flags),
		Cache:  make(map[string]domain.CacheEntry, len(c.cache)),
	}
	for _, src := range c.sources {
		state.Sources = append(state.Sources, src.Path())
	}
	for path, entry := range c.cache {
		state.Cache[path] = entry.Clone()
	}
	return state
}
