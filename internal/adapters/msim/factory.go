package msim

import (
	"path/filepath"

	"go.trai.ch/hdlc/internal/core/domain"
	"go.trai.ch/hdlc/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory creates ModelSim builders from project configuration.
type Factory struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewFactory creates a Factory running tools through executor.
func NewFactory(executor ports.Executor, logger ports.Logger) *Factory {
	return &Factory{executor: executor, logger: logger}
}

// NewBuilder implements ports.BuilderFactory.
func (f *Factory) NewBuilder(cfg domain.BuilderConfig, root string) (ports.Builder, error) {
	cfg = cfg.WithDefaults()
	if cfg.Name != domain.DefaultBuilderName {
		return nil, zerr.With(domain.ErrUnsupportedBuilder, "builder", cfg.Name)
	}

	workDir := cfg.WorkDir
	if !filepath.IsAbs(workDir) {
		workDir = filepath.Join(root, workDir)
	}

	ini := cfg.Ini
	if !filepath.IsAbs(ini) {
		ini = filepath.Join(workDir, ini)
	}

	return NewBuilder(f.executor, f.logger, workDir, ini, cfg.Flags), nil
}
