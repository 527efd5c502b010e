package domain

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// BuilderConfig selects and configures the compiler toolchain.
type BuilderConfig struct {
	// Name identifies the toolchain. Only "msim" is supported.
	Name string
	// WorkDir is the directory holding the physical libraries, relative to the project root.
	WorkDir string
	// Ini is the ModelSim ini file, relative to WorkDir.
	Ini string
	// Flags are passed to every compiler invocation before the library flags.
	Flags []string
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c BuilderConfig) WithDefaults() BuilderConfig {
	if c.Name == "" {
		c.Name = DefaultBuilderName
	}
	if c.WorkDir == "" {
		c.WorkDir = DefaultBuilderWorkDir()
	}
	if c.Ini == "" {
		c.Ini = ModelsimIniName
	}
	return c
}

// Fingerprint identifies the settings that influence compiler output.
// Configurations that only differ by spelling out a default share a fingerprint.
func (c BuilderConfig) Fingerprint() string {
	c = c.WithDefaults()

	h := xxhash.New()
	_, _ = h.WriteString(c.Name)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(c.WorkDir)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(c.Ini)
	for _, flag := range c.Flags {
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(flag)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// LibrarySpec declares one library of the project.
type LibrarySpec struct {
	Name string
	// Sources are file paths, directories or doublestar patterns relative to the project root.
	Sources []string
	// Flags are extra compiler flags for this library.
	Flags []string
}

// Project is the loaded project configuration.
type Project struct {
	// Root is the absolute directory containing the project file.
	Root      string
	Builder   BuilderConfig
	Libraries []LibrarySpec
}

// Library returns the library spec with the given name.
func (p *Project) Library(name string) (LibrarySpec, bool) {
	for _, lib := range p.Libraries {
		if lib.Name == name {
			return lib, true
		}
	}
	return LibrarySpec{}, false
}
