// Package fs provides file system adapters for locating source files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/hdlc/internal/core/domain"
)

// skippedDirs are never descended into.
var skippedDirs = []string{".git", ".jj", domain.HdlcDirName}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file below root in lexical order, skipping VCS and
// workspace directories. Yielded paths start with root.
func (w *Walker) WalkFiles(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && w.shouldSkipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) shouldSkipDir(name string) bool {
	for _, skipped := range skippedDirs {
		if name == skipped {
			return true
		}
	}
	return false
}
