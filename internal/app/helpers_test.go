package app_test

import (
	"bytes"
	"testing"

	"go.trai.ch/hdlc/internal/app"
	"go.trai.ch/hdlc/internal/core/domain"
	"go.trai.ch/hdlc/internal/core/ports"
	"go.trai.ch/hdlc/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const root = "/proj"

type fakeSource struct {
	path  string
	mtime int64
	pkg   bool
	deps  []domain.Dependency
}

func (s *fakeSource) Path() string { return s.path }

func (s *fakeSource) ModTime() (int64, error) { return s.mtime, nil }

func (s *fakeSource) IsPackage() (bool, error) { return s.pkg, nil }

func (s *fakeSource) Dependencies() ([]domain.Dependency, error) { return s.deps, nil }

type fakeFactory struct {
	sources map[string]*fakeSource
}

func (f *fakeFactory) NewSource(path string) ports.SourceUnit {
	if s, ok := f.sources[path]; ok {
		return s
	}
	s := &fakeSource{path: path}
	f.sources[path] = s
	return s
}

type fixture struct {
	ctrl     *gomock.Controller
	loader   *mocks.MockConfigLoader
	builders *mocks.MockBuilderFactory
	builder  *mocks.MockBuilder
	resolver *mocks.MockSourceResolver
	store    *mocks.MockCacheStore
	logger   *mocks.MockLogger
	factory  *fakeFactory
	out      *bytes.Buffer
	app      *app.App
}

func newFixture(t *testing.T, sources ...*fakeSource) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		ctrl:     ctrl,
		loader:   mocks.NewMockConfigLoader(ctrl),
		builders: mocks.NewMockBuilderFactory(ctrl),
		builder:  mocks.NewMockBuilder(ctrl),
		resolver: mocks.NewMockSourceResolver(ctrl),
		store:    mocks.NewMockCacheStore(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		factory:  &fakeFactory{sources: make(map[string]*fakeSource)},
		out:      &bytes.Buffer{},
	}
	for _, s := range sources {
		f.factory.sources[s.path] = s
	}

	f.logger.EXPECT().Named(gomock.Any()).DoAndReturn(func(name string) ports.Logger {
		child := mocks.NewMockLogger(ctrl)
		child.EXPECT().Name().Return(name).AnyTimes()
		child.EXPECT().Info(gomock.Any()).AnyTimes()
		child.EXPECT().Warn(gomock.Any()).AnyTimes()
		return child
	}).AnyTimes()

	f.app = app.New(f.loader, f.builders, f.factory, f.resolver, f.store, f.logger, nil).WithOutput(f.out)
	return f
}

// expectProject makes the loader return project and the factory return the mock builder.
func (f *fixture) expectProject(project *domain.Project) {
	project.Root = root
	f.loader.EXPECT().Load(".").Return(project, nil)
	f.builders.EXPECT().NewBuilder(project.Builder, root).Return(f.builder, nil).AnyTimes()
}
