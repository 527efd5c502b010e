// Package msim implements the ModelSim/Questa compiler adapter.
package msim

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/hdlc/internal/core/domain"
	"go.trai.ch/hdlc/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	vcomTool = "vcom"
	vlibTool = "vlib"
	vmapTool = "vmap"
)

var diagnosticPattern = regexp.MustCompile(`^\*\* (Error|Fatal|Warning)(?: \([^)]*\))?:\s*(.*)$`)

// Builder compiles VHDL sources with vcom.
type Builder struct {
	executor ports.Executor
	logger   ports.Logger
	workDir  string
	ini      string
	flags    []string
}

var _ ports.Builder = (*Builder)(nil)

// NewBuilder creates a Builder keeping physical libraries in workDir.
// ini is the ModelSim ini file used for every invocation.
func NewBuilder(executor ports.Executor, logger ports.Logger, workDir, ini string, flags []string) *Builder {
	return &Builder{
		executor: executor,
		logger:   logger,
		workDir:  workDir,
		ini:      ini,
		flags:    append([]string(nil), flags...),
	}
}

// Build runs vcom on source and collects its diagnostics.
func (b *Builder) Build(
	ctx context.Context,
	library string,
	source ports.SourceUnit,
	flags []string,
) (domain.Diagnostics, error) {
	args := make([]string, 0, 5+len(b.flags)+len(flags))
	args = append(args, "-modelsimini", b.ini, "-work", library)
	args = append(args, b.flags...)
	args = append(args, flags...)
	args = append(args, source.Path())

	var stdout, stderr bytes.Buffer
	var outW, errW io.Writer = &stdout, &stderr
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		outW = io.MultiWriter(&stdout, vertex.Stdout())
		errW = io.MultiWriter(&stderr, vertex.Stderr())
	}

	runErr := b.executor.Execute(ctx, &domain.Command{
		Name: vcomTool,
		Args: args,
		Dir:  b.workDir,
	}, outW, errW)

	diags := ParseOutput(stdout.String())
	fromStderr := ParseOutput(stderr.String())
	diags.Errors = append(diags.Errors, fromStderr.Errors...)
	diags.Warnings = append(diags.Warnings, fromStderr.Warnings...)

	if runErr == nil {
		return diags, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(runErr, &exitErr) {
		err := zerr.Wrap(runErr, domain.ErrCompilerInvocationFailed.Error())
		return domain.Diagnostics{}, zerr.With(err, "tool", vcomTool)
	}
	if len(diags.Errors) == 0 {
		diags.Errors = append(diags.Errors, fmt.Sprintf("%s exited with code %d", vcomTool, exitErr.ExitCode()))
	}
	return diags, nil
}

// CreateOrMapLibrary creates the physical library directory with vlib when
// it does not exist yet and maps it into the ini file with vmap. It reports
// whether the library was created, in which case it holds no compiled units.
func (b *Builder) CreateOrMapLibrary(ctx context.Context, library string) (bool, error) {
	wrap := func(err error) error {
		return zerr.With(zerr.Wrap(err, domain.ErrLibraryCreateFailed.Error()), "library", library)
	}

	if err := os.MkdirAll(b.workDir, domain.DirPerm); err != nil {
		return false, wrap(err)
	}

	if _, err := os.Stat(b.ini); errors.Is(err, os.ErrNotExist) {
		// vmap -c copies the installation's modelsim.ini into the working directory.
		b.logger.Info(fmt.Sprintf("creating %s", b.ini))
		if err := b.run(ctx, filepath.Dir(b.ini), vmapTool, "-c"); err != nil {
			return false, wrap(err)
		}
	}

	created := false
	libDir := filepath.Join(b.workDir, library)
	if _, err := os.Stat(libDir); errors.Is(err, os.ErrNotExist) {
		b.logger.Info(fmt.Sprintf("creating library %s", libDir))
		if err := b.run(ctx, b.workDir, vlibTool, libDir); err != nil {
			return false, wrap(err)
		}
		created = true
	}

	if err := b.run(ctx, b.workDir, vmapTool, "-modelsimini", b.ini, library, libDir); err != nil {
		return created, wrap(err)
	}
	return created, nil
}

func (b *Builder) run(ctx context.Context, dir, tool string, args ...string) error {
	return b.executor.Execute(ctx, &domain.Command{
		Name: tool,
		Args: args,
		Dir:  dir,
	}, io.Discard, io.Discard)
}

// ParseOutput extracts errors and warnings from compiler output. The
// "** Error: " style prefix is removed; any other line is ignored.
func ParseOutput(output string) domain.Diagnostics {
	var diags domain.Diagnostics
	for line := range strings.Lines(output) {
		m := diagnosticPattern.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
		if m == nil {
			continue
		}
		switch m[1] {
		case "Warning":
			diags.Warnings = append(diags.Warnings, m[2])
		default:
			diags.Errors = append(diags.Errors, m[2])
		}
	}
	return diags
}
