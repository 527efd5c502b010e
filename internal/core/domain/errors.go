package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceNotFound is returned when a build is requested for a source that is not part of the library.
	ErrSourceNotFound = zerr.New("source not found in library")

	// ErrLibraryNotFound is returned when a requested library is not declared in the project.
	ErrLibraryNotFound = zerr.New("library not found")

	// ErrNoLibraries is returned when the project declares no libraries.
	ErrNoLibraries = zerr.New("no libraries declared")

	// ErrInvalidLibraryName is returned when a library name contains invalid characters.
	ErrInvalidLibraryName = zerr.New("library name can only contain letters, digits and underscores")

	// ErrDuplicateLibraryName is returned when two libraries share the same name.
	ErrDuplicateLibraryName = zerr.New("duplicate library name")

	// ErrEmptySourcePattern is returned when a library lists an empty source entry.
	ErrEmptySourcePattern = zerr.New("empty source pattern")

	// ErrUnsupportedBuilder is returned when the configured builder is unknown.
	ErrUnsupportedBuilder = zerr.New("unsupported builder")

	// ErrCompilationFailed is returned when at least one source compiled with errors.
	ErrCompilationFailed = zerr.New("compilation failed")

	// ErrCompilerInvocationFailed is returned when the compiler process could not be run.
	ErrCompilerInvocationFailed = zerr.New("failed to invoke compiler")

	// ErrLibraryCreateFailed is returned when the physical library cannot be created or mapped.
	ErrLibraryCreateFailed = zerr.New("failed to create or map library")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrInputNotFound is returned when a declared source file or pattern matches nothing.
	ErrInputNotFound = zerr.New("input not found")

	// ErrSourceReadFailed is returned when a source file cannot be read for parsing.
	ErrSourceReadFailed = zerr.New("failed to read source file")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrStoreCreateFailed is returned when the cache store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create cache store directory")

	// ErrStoreReadFailed is returned when the library state cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read library state")

	// ErrStoreUnmarshalFailed is returned when the library state cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal library state")

	// ErrStoreMarshalFailed is returned when the library state cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal library state")

	// ErrStoreWriteFailed is returned when the library state cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write library state")

	// ErrStoreCleanFailed is returned when the cache store cannot be removed.
	ErrStoreCleanFailed = zerr.New("failed to remove cache store")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no project file is found.
	ErrConfigNotFound = zerr.New("could not find hdlc.yaml")
)
