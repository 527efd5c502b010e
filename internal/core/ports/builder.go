package ports

import (
	"context"

	"go.trai.ch/hdlc/internal/core/domain"
)

// Builder compiles source units with an external compiler toolchain.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type Builder interface {
	// Build compiles source into library using the given extra flags.
	//
	// Compiler errors and warnings are returned as Diagnostics, not as an error.
	// The error return is reserved for failures to run the compiler at all.
	Build(ctx context.Context, library string, source SourceUnit, flags []string) (domain.Diagnostics, error)

	// CreateOrMapLibrary ensures the physical library exists and is mapped.
	// created is true when the library did not exist and was created empty.
	CreateOrMapLibrary(ctx context.Context, library string) (created bool, err error)
}

// BuilderFactory creates the Builder configured for a project.
type BuilderFactory interface {
	// NewBuilder returns the builder named by cfg. Relative paths in cfg are
	// resolved against root.
	NewBuilder(cfg domain.BuilderConfig, root string) (Builder, error)
}
