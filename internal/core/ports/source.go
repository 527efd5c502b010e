// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/hdlc/internal/core/domain"

// SourceUnit is a single HDL source file tracked by a library.
//
//go:generate go run go.uber.org/mock/mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type SourceUnit interface {
	// Path returns the canonical absolute path. It is the identity key of the unit.
	Path() string

	// ModTime returns the last modification time of the file in UnixNano.
	ModTime() (int64, error)

	// IsPackage reports whether the unit declares a package.
	IsPackage() (bool, error)

	// Dependencies returns the (library, unit) pairs the source refers to,
	// in order of appearance and exactly as written (no "work" substitution).
	Dependencies() ([]domain.Dependency, error)
}

// SourceFactory wraps raw file paths into SourceUnits.
type SourceFactory interface {
	// NewSource returns the SourceUnit for path.
	NewSource(path string) SourceUnit
}
