package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/hdlc/internal/core/domain"
	"go.trai.ch/hdlc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceResolver = (*Resolver)(nil)

// sourceExtensions are the file extensions picked up when a directory is listed as a source.
var sourceExtensions = []string{".vhd", ".vhdl"}

// Resolver implements ports.SourceResolver with doublestar patterns.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// ResolveSources expands each entry relative to root:
//   - a pattern such as "rtl/**/*.vhd" matches files below root;
//   - a directory contributes every VHDL file below it;
//   - a file contributes itself.
//
// An entry that matches nothing fails with domain.ErrInputNotFound.
func (r *Resolver) ResolveSources(patterns []string, root string) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", root)
	}

	seen := make(map[string]struct{})
	var result []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		result = append(result, path)
	}

	for _, pattern := range patterns {
		if pattern == "" {
			return nil, domain.ErrEmptySourcePattern
		}

		matches, err := r.resolve(pattern, root)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, zerr.With(domain.ErrInputNotFound, "pattern", pattern)
		}
		for _, match := range matches {
			add(match)
		}
	}
	return result, nil
}

func (r *Resolver) resolve(pattern, root string) ([]string, error) {
	if hasMeta(pattern) {
		return r.glob(pattern, root)
	}

	path := pattern
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}
	if !info.IsDir() {
		return []string{filepath.Clean(path)}, nil
	}

	var files []string
	for file := range r.walker.WalkFiles(path) {
		if isSource(file) {
			files = append(files, file)
		}
	}
	return files, nil
}

func (r *Resolver) glob(pattern, root string) ([]string, error) {
	pattern = filepath.ToSlash(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, zerr.With(zerr.Wrap(doublestar.ErrBadPattern, "invalid source pattern"), "pattern", pattern)
	}

	var files []string
	for file := range r.walker.WalkFiles(root) {
		rel, err := filepath.Rel(root, file)
		if err != nil {
			continue
		}
		if ok, _ := doublestar.Match(pattern, filepath.ToSlash(rel)); ok {
			files = append(files, file)
		}
	}
	return files, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

func isSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, candidate := range sourceExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}
