package ports

import "go.trai.ch/hdlc/internal/core/domain"

// CacheStore persists library build caches between runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Load retrieves the stored state of a library.
	// Returns nil, nil if not found.
	Load(root, library string) (*domain.LibraryState, error)

	// Save stores the state of a library.
	Save(root string, state domain.LibraryState) error

	// Clean removes every stored state under root.
	Clean(root string) error
}
