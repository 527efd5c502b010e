package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hdlc/internal/adapters/config"
	"go.trai.ch/hdlc/internal/core/domain"
	"go.trai.ch/hdlc/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const validProject = `version: "1"
builder:
  name: msim
  workdir: build/msim
  ini: questa.ini
  flags: ["-explicit"]
libraries:
  - name: work
    sources: ["rtl/**/*.vhd", "pkg/"]
    flags: ["-2008"]
  - name: ip_lib
    sources: ["ip/fifo.vhd"]
`

func writeProject(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ProjectFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestLoad_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeProject(t, dir, validProject)

	project, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, dir, project.Root)
	assert.Equal(t, domain.BuilderConfig{
		Name:    "msim",
		WorkDir: "build/msim",
		Ini:     "questa.ini",
		Flags:   []string{"-explicit"},
	}, project.Builder)
	assert.Equal(t, []domain.LibrarySpec{
		{Name: "work", Sources: []string{"rtl/**/*.vhd", "pkg/"}, Flags: []string{"-2008"}},
		{Name: "ip_lib", Sources: []string{"ip/fifo.vhd"}},
	}, project.Libraries)
}

func TestLoad_DefaultBuilder(t *testing.T) {
	path := writeProject(t, t.TempDir(), "libraries:\n  - name: work\n    sources: [a.vhd]\n")

	project, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBuilderName, project.Builder.Name)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "malformed yaml",
			content: "libraries: [",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "no libraries",
			content: "version: \"1\"\n",
			wantErr: domain.ErrNoLibraries,
		},
		{
			name:    "unsupported builder",
			content: "builder:\n  name: ghdl\nlibraries:\n  - name: work\n",
			wantErr: domain.ErrUnsupportedBuilder,
		},
		{
			name:    "invalid library name",
			content: "libraries:\n  - name: my-lib\n",
			wantErr: domain.ErrInvalidLibraryName,
		},
		{
			name:    "empty library name",
			content: "libraries:\n  - sources: [a.vhd]\n",
			wantErr: domain.ErrInvalidLibraryName,
		},
		{
			name:    "duplicate library",
			content: "libraries:\n  - name: work\n  - name: work\n",
			wantErr: domain.ErrDuplicateLibraryName,
		},
		{
			name:    "empty source",
			content: "libraries:\n  - name: work\n    sources: [\"\"]\n",
			wantErr: domain.ErrEmptySourcePattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeProject(t, t.TempDir(), tt.content)

			_, err := config.Load(path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), domain.ProjectFileName))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestLoader_Load_WalksUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).Times(1)

	root := t.TempDir()
	writeProject(t, root, validProject)
	nested := filepath.Join(root, "rtl", "core")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	project, err := config.NewLoader(log).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, root, project.Root)
	assert.Len(t, project.Libraries, 2)
}

func TestLoader_Load_InRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	writeProject(t, root, validProject)

	project, err := config.NewLoader(log).Load(root)
	require.NoError(t, err)
	assert.Equal(t, root, project.Root)
}

func TestLoader_Load_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}
