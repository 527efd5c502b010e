package library_test

import (
	"go.trai.ch/hdlc/internal/core/domain"
	"go.trai.ch/hdlc/internal/core/ports"
	"go.trai.ch/hdlc/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fakeSource struct {
	path    string
	mtime   int64
	pkg     bool
	deps    []domain.Dependency
	statErr error
}

func (s *fakeSource) Path() string { return s.path }

func (s *fakeSource) ModTime() (int64, error) { return s.mtime, s.statErr }

func (s *fakeSource) IsPackage() (bool, error) { return s.pkg, nil }

func (s *fakeSource) Dependencies() ([]domain.Dependency, error) { return s.deps, nil }

// fakeFactory hands out the registered source for a path, or a fresh one.
type fakeFactory struct {
	sources map[string]*fakeSource
}

func newFakeFactory(sources ...*fakeSource) *fakeFactory {
	f := &fakeFactory{sources: make(map[string]*fakeSource)}
	for _, s := range sources {
		f.sources[s.path] = s
	}
	return f
}

func (f *fakeFactory) NewSource(path string) ports.SourceUnit {
	if s, ok := f.sources[path]; ok {
		return s
	}
	s := &fakeSource{path: path}
	f.sources[path] = s
	return s
}

// newLogger returns a root logger mock whose named children accept any message.
func newLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	root := mocks.NewMockLogger(ctrl)
	root.EXPECT().Named(gomock.Any()).DoAndReturn(func(name string) ports.Logger {
		child := mocks.NewMockLogger(ctrl)
		child.EXPECT().Name().Return(name).AnyTimes()
		child.EXPECT().Info(gomock.Any()).AnyTimes()
		child.EXPECT().Warn(gomock.Any()).AnyTimes()
		child.EXPECT().Error(gomock.Any()).AnyTimes()
		return child
	}).AnyTimes()
	return root
}
