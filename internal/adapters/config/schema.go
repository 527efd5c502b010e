package config

// Projectfile represents the structure of the hdlc.yaml configuration file.
type Projectfile struct {
	Version   string       `yaml:"version"`
	Builder   BuilderDTO   `yaml:"builder"`
	Libraries []LibraryDTO `yaml:"libraries"`
}

// BuilderDTO represents the compiler toolchain section.
type BuilderDTO struct {
	Name    string   `yaml:"name"`
	WorkDir string   `yaml:"workdir"`
	Ini     string   `yaml:"ini"`
	Flags   []string `yaml:"flags"`
}

// LibraryDTO represents a library definition in the configuration.
type LibraryDTO struct {
	Name    string   `yaml:"name"`
	Sources []string `yaml:"sources"`
	Flags   []string `yaml:"flags"`
}
