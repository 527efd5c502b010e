// Package domain contains the core domain types for the library build cache.
package domain

// CacheEntry is the last known build outcome of a single source unit.
//
// CompileTime is either 0, which forces the next build, or the source
// modification time (UnixNano) observed when Errors and Warnings were recorded.
type CacheEntry struct {
	CompileTime int64    `json:"compile_time"`
	Errors      []string `json:"errors,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
}

// Clone returns a deep copy of the entry.
func (e CacheEntry) Clone() CacheEntry {
	return CacheEntry{
		CompileTime: e.CompileTime,
		Errors:      cloneStrings(e.Errors),
		Warnings:    cloneStrings(e.Warnings),
	}
}

// LibraryState is the persistable part of a library cache.
// Runtime handles (the logger) are stored by name only and re-acquired on restore.
type LibraryState struct {
	Name    string                `json:"name"`
	Logger  string                `json:"logger,omitzero"`
	Sources []string              `json:"sources,omitempty"`
	Flags   []string              `json:"flags,omitempty"`
	Cache   map[string]CacheEntry `json:"cache,omitempty"`
	// Builder is the fingerprint of the builder configuration the entries were
	// recorded with. See BuilderConfig.Fingerprint.
	Builder string `json:"builder,omitempty"`
}

// CloneCache returns a deep copy of the state's cache entries.
func (s *LibraryState) CloneCache() map[string]CacheEntry {
	out := make(map[string]CacheEntry, len(s.Cache))
	for path, entry := range s.Cache {
		out[path] = entry.Clone()
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
