package domain

import "path/filepath"

const (
	// HdlcDirName is the name of the internal workspace directory.
	HdlcDirName = ".hdlc"

	// StoreDirName is the name of the cache store directory.
	StoreDirName = "store"

	// MsimDirName is the default directory for ModelSim physical libraries.
	MsimDirName = "msim"

	// ProjectFileName is the name of the project configuration file.
	ProjectFileName = "hdlc.yaml"

	// ModelsimIniName is the default ModelSim ini file name.
	ModelsimIniName = "modelsim.ini"

	// DefaultBuilderName is the builder used when the project does not name one.
	DefaultBuilderName = "msim"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the default path for the cache store.
// It joins .hdlc and store.
func DefaultStorePath() string {
	return filepath.Join(HdlcDirName, StoreDirName)
}

// DefaultBuilderWorkDir returns the default directory for physical libraries.
// It joins .hdlc and msim.
func DefaultBuilderWorkDir() string {
	return filepath.Join(HdlcDirName, MsimDirName)
}
