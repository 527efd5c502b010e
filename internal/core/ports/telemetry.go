package ports

import (
	"context"
	"io"

	"go.trai.ch/hdlc/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of build work.
type Telemetry interface {
	// Record starts a new vertex and returns a context carrying it.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Stats counts the outcomes of the completed vertices recorded so far.
	Stats() domain.BuildStats
	// Close flushes the recording.
	Close() error
}

// Vertex is one recorded unit of work, e.g. the build decision for a source.
type Vertex interface {
	// Stdout returns a writer for standard output of the work.
	Stdout() io.Writer
	// Stderr returns a writer for error output of the work.
	Stderr() io.Writer
	// Log records a message on the vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished. err is nil on success.
	Complete(err error)
	// Cached marks the vertex as satisfied from cache.
	Cached()
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex carried by ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
