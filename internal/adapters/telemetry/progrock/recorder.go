// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/hdlc/internal/core/domain"
	"go.trai.ch/hdlc/internal/core/ports"
)

// Recorder implements ports.Telemetry using a progrock recorder.
// Every update lands on an in-memory tape, which backs Stats.
type Recorder struct {
	tape *progrock.Tape
	w    progrock.Writer
	rec  *progrock.Recorder
	seq  atomic.Uint64

	closeOnce sync.Once
	closeErr  error
}

var _ ports.Telemetry = (*Recorder)(nil)

// New creates a new Recorder writing to an in-memory tape only.
func New() *Recorder {
	return NewRecorder(nil)
}

// NewRecorder creates a new Recorder that also forwards every update to w.
// w may be nil.
func NewRecorder(w progrock.Writer) *Recorder {
	tape := progrock.NewTape()

	var out progrock.Writer = tape
	if w != nil {
		out = progrock.MultiWriter{tape, w}
	}

	return &Recorder{
		tape: tape,
		w:    out,
		rec:  progrock.NewRecorder(out),
	}
}

// Record starts recording a new vertex. Every call gets its own digest, so
// the same source built twice yields two vertices.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name + "#" + strconv.FormatUint(r.seq.Add(1), 10))
	vertex := &Vertex{vertex: r.rec.Vertex(d, name)}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Stats counts the completed vertices on the tape.
func (r *Recorder) Stats() domain.BuildStats {
	return domain.BuildStats{
		Built:  r.tape.UncachedCount(),
		Cached: r.tape.CachedCount(),
		Failed: r.tape.ErroredCount(),
	}
}

// Close flushes and closes the recording session. Later calls return the
// result of the first.
func (r *Recorder) Close() error {
	r.closeOnce.Do(func() {
		r.closeErr = r.w.Close()
	})
	return r.closeErr
}
