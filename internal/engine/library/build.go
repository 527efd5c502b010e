package library

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/hdlc/internal/core/domain"
	"go.trai.ch/hdlc/internal/core/ports"
	"go.trai.ch/zerr"
)

// BuildPackages builds or reuses every source that declares a package.
func (c *Cache) BuildPackages(ctx context.Context, forced bool) ([]Report, error) {
	return c.buildMatching(ctx, forced, func(isPackage bool) bool { return isPackage })
}

// BuildAllButPackages builds or reuses every source that does not declare a package.
func (c *Cache) BuildAllButPackages(ctx context.Context, forced bool) ([]Report, error) {
	return c.buildMatching(ctx, forced, func(isPackage bool) bool { return !isPackage })
}

// BuildAll builds or reuses every source in insertion order.
func (c *Cache) BuildAll(ctx context.Context, forced bool) ([]Report, error) {
	reports := make([]Report, 0, len(c.sources))
	for _, src := range c.sources {
		report, err := c.buildSource(ctx, src, forced)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// BuildSources builds or reuses the given sources in the given order.
//
// Every source must belong to the library. If one does not, nothing is built
// and an error wrapping domain.ErrSourceNotFound is returned.
func (c *Cache) BuildSources(ctx context.Context, subset []ports.SourceUnit, forced bool) ([]Report, error) {
	known := make(map[string]struct{}, len(c.sources))
	for _, src := range c.sources {
		known[src.Path()] = struct{}{}
	}
	for _, src := range subset {
		if _, ok := known[src.Path()]; !ok {
			err := zerr.With(domain.ErrSourceNotFound, "source", src.Path())
			return nil, zerr.With(err, "library", c.name)
		}
	}

	reports := make([]Report, 0, len(subset))
	for _, src := range subset {
		report, err := c.buildSource(ctx, src, forced)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (c *Cache) buildMatching(ctx context.Context, forced bool, match func(isPackage bool) bool) ([]Report, error) {
	var reports []Report
	for _, src := range c.sources {
		isPackage, err := src.IsPackage()
		if err != nil {
			return reports, err
		}
		if !match(isPackage) {
			continue
		}
		report, err := c.buildSource(ctx, src, forced)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// buildSource decides whether src needs a rebuild, runs the builder if so and
// records the outcome.
//
// A source is rebuilt when it changed after the cached compile time or when
// forced. Whatever the path taken, a result containing the unresolved
// reference marker resets the compile time to 0 so the next call retries.
func (c *Cache) buildSource(ctx context.Context, src ports.SourceUnit, forced bool) (Report, error) {
	path := src.Path()
	ctx, vertex := c.telemetry.Record(ctx, c.name+": "+path)

	if forced {
		c.logger.Info(fmt.Sprintf("forcing build of %s", path))
	}

	entry, ok := c.cache[path]
	if !ok {
		entry = domain.CacheEntry{}
		c.cache[path] = entry
	}

	mtime, err := src.ModTime()
	if err != nil {
		vertex.Complete(err)
		return Report{}, err
	}

	built := false
	if mtime > entry.CompileTime || forced {
		diags, err := c.builder.Build(ctx, c.name, src, slices.Clone(c.flags))
		if err != nil {
			err = zerr.With(zerr.With(err, "source", path), "library", c.name)
			vertex.Complete(err)
			return Report{}, err
		}
		entry = domain.CacheEntry{
			CompileTime: mtime,
			Errors:      diags.Errors,
			Warnings:    diags.Warnings,
		}
		built = true
	}

	if domain.HasUnresolvedReference(entry.Errors) {
		entry.CompileTime = 0
		vertex.Log(domain.LogLevelWarn, "unresolved reference, result will not be reused")
	}
	c.cache[path] = entry

	if !built {
		vertex.Cached()
	}
	vertex.Complete(diagnosticsError(entry.Errors))

	return Report{
		Source:   src,
		Errors:   slices.Clone(entry.Errors),
		Warnings: slices.Clone(entry.Warnings),
	}, nil
}

func diagnosticsError(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return zerr.With(domain.ErrCompilationFailed, "errors", len(errs))
}
