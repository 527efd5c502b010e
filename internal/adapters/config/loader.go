// Package config provides the project configuration loader.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"go.trai.ch/hdlc/internal/core/domain"
	"go.trai.ch/hdlc/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var libraryNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load finds hdlc.yaml in cwd or the closest parent directory and loads it.
// The project root is the directory holding the file.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", cwd)
	}

	path, err := findProjectFile(dir, cwd)
	if err != nil {
		return nil, err
	}

	project, err := Load(path)
	if err != nil {
		return nil, err
	}

	if l.logger != nil && project.Root != dir {
		l.logger.Info(fmt.Sprintf("using project %s", path))
	}
	return project, nil
}

func findProjectFile(dir, cwd string) (string, error) {
	for {
		candidate := filepath.Join(dir, domain.ProjectFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", candidate)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
		}
		dir = parent
	}
}

// Load reads the project file at path and validates it.
func Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Projectfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	root, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	return toProject(&file, root)
}

func toProject(file *Projectfile, root string) (*domain.Project, error) {
	builderName := file.Builder.Name
	if builderName == "" {
		builderName = domain.DefaultBuilderName
	}
	if builderName != domain.DefaultBuilderName {
		return nil, zerr.With(domain.ErrUnsupportedBuilder, "builder", builderName)
	}

	if len(file.Libraries) == 0 {
		return nil, domain.ErrNoLibraries
	}

	project := &domain.Project{
		Root: root,
		Builder: domain.BuilderConfig{
			Name:    builderName,
			WorkDir: file.Builder.WorkDir,
			Ini:     file.Builder.Ini,
			Flags:   file.Builder.Flags,
		},
		Libraries: make([]domain.LibrarySpec, 0, len(file.Libraries)),
	}

	seen := make(map[string]struct{}, len(file.Libraries))
	for _, dto := range file.Libraries {
		if !libraryNamePattern.MatchString(dto.Name) {
			return nil, zerr.With(domain.ErrInvalidLibraryName, "library", dto.Name)
		}
		if _, ok := seen[dto.Name]; ok {
			return nil, zerr.With(domain.ErrDuplicateLibraryName, "library", dto.Name)
		}
		seen[dto.Name] = struct{}{}

		for _, source := range dto.Sources {
			if source == "" {
				return nil, zerr.With(domain.ErrEmptySourcePattern, "library", dto.Name)
			}
		}

		project.Libraries = append(project.Libraries, domain.LibrarySpec{
			Name:    dto.Name,
			Sources: dto.Sources,
			Flags:   dto.Flags,
		})
	}

	return project, nil
}
