// Package cas implements persistent storage of library cache state.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/hdlc/internal/core/domain"
	"go.trai.ch/hdlc/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.CacheStore with one JSON file per library under
// <root>/.hdlc/store.
type Store struct {
	mu sync.Mutex
}

var _ ports.CacheStore = (*Store)(nil)

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Dir returns the store directory of the project at root.
func Dir(root string) string {
	return filepath.Join(root, domain.DefaultStorePath())
}

// fileName maps a library name to a file name that is safe on every file system.
func fileName(library string) string {
	return strconv.FormatUint(xxhash.Sum64String(library), 16) + ".json"
}

// Load returns the stored state of library, or nil when none was saved.
func (s *Store) Load(root, library string) (*domain.LibraryState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(Dir(root), fileName(library))

	//nolint:gosec // Path is derived from the project root and a hashed name
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "library", library)
	}

	var state domain.LibraryState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "library", library)
	}

	// A hash collision would hand out another library's state.
	if state.Name != library {
		return nil, nil
	}
	return &state, nil
}

// Save writes the state of one library, replacing any previous state.
func (s *Store) Save(root string, state domain.LibraryState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error()), "library", state.Name)
	}

	dir := Dir(root)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, "state-*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "library", state.Name)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "library", state.Name)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "library", state.Name)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "library", state.Name)
	}
	if err := os.Rename(tmpName, filepath.Join(dir, fileName(state.Name))); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "library", state.Name)
	}
	return nil
}

// Clean removes every stored state of the project at root.
func (s *Store) Clean(root string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.RemoveAll(Dir(root)); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCleanFailed.Error())
	}
	return nil
}
