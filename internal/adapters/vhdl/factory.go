package vhdl

import (
	"sync"

	"go.trai.ch/hdlc/internal/core/ports"
)

// Factory hands out one SourceFile per path so parse results are shared
// between libraries and build calls.
type Factory struct {
	mu      sync.Mutex
	sources map[string]*SourceFile
}

// NewFactory creates an empty Factory.
func NewFactory() *Factory {
	return &Factory{sources: make(map[string]*SourceFile)}
}

// NewSource returns the source unit for path.
func (f *Factory) NewSource(path string) ports.SourceUnit {
	src := NewSourceFile(path)

	f.mu.Lock()
	defer f.mu.Unlock()

	if existing, ok := f.sources[src.Path()]; ok {
		return existing
	}
	f.sources[src.Path()] = src
	return src
}
