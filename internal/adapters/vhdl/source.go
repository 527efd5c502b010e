// Package vhdl implements source units for VHDL files.
package vhdl

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"go.trai.ch/hdlc/internal/core/domain"
	"go.trai.ch/hdlc/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	commentPattern = regexp.MustCompile(`--[^\n]*`)
	packagePattern = regexp.MustCompile(`\bpackage\s+(\w+)\s+is\b`)
	usePattern     = regexp.MustCompile(`\buse\s+(\w+)\s*\.\s*(\w+)`)
)

// SourceFile is a VHDL file on disk. The file is parsed lazily and parsed
// again only when its modification time changes.
type SourceFile struct {
	path string

	mu        sync.Mutex
	parsedAt  int64
	parsed    bool
	isPackage bool
	deps      []domain.Dependency
}

var _ ports.SourceUnit = (*SourceFile)(nil)

// NewSourceFile returns the source unit for path. Relative paths are made absolute.
func NewSourceFile(path string) *SourceFile {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &SourceFile{path: filepath.Clean(path)}
}

// Path returns the absolute path of the file.
func (s *SourceFile) Path() string {
	return s.path
}

// String implements fmt.Stringer.
func (s *SourceFile) String() string {
	return s.path
}

// ModTime returns the modification time of the file in UnixNano.
func (s *SourceFile) ModTime() (int64, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", s.path)
	}
	return info.ModTime().UnixNano(), nil
}

// IsPackage reports whether the file declares a package.
func (s *SourceFile) IsPackage() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.parse(); err != nil {
		return false, err
	}
	return s.isPackage, nil
}

// Dependencies returns the libraries and units named by use clauses, in
// order of first appearance.
func (s *SourceFile) Dependencies() ([]domain.Dependency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.parse(); err != nil {
		return nil, err
	}
	out := make([]domain.Dependency, len(s.deps))
	copy(out, s.deps)
	return out, nil
}

func (s *SourceFile) parse() error {
	mtime, err := s.ModTime()
	if err != nil {
		return err
	}
	if s.parsed && mtime == s.parsedAt {
		return nil
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", s.path)
	}

	s.isPackage, s.deps = parseSource(string(content))
	s.parsedAt = mtime
	s.parsed = true
	return nil
}

// parseSource extracts the design facts from VHDL text. VHDL is case
// insensitive, so the text is folded to lower case before matching.
func parseSource(text string) (bool, []domain.Dependency) {
	text = strings.ToLower(commentPattern.ReplaceAllString(text, ""))

	isPackage := packagePattern.MatchString(text)

	var deps []domain.Dependency
	seen := make(map[string]struct{})
	for _, m := range usePattern.FindAllStringSubmatch(text, -1) {
		lib, unit := m[1], m[2]
		if unit == "all" {
			continue
		}
		key := lib + "." + unit
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deps = append(deps, domain.NewDependency(lib, unit))
	}
	return isPackage, deps
}
