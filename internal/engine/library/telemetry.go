package library

import (
	"context"
	"io"

	"go.trai.ch/hdlc/internal/core/domain"
	"go.trai.ch/hdlc/internal/core/ports"
)

type nopTelemetry struct{}

func (nopTelemetry) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, nopVertex{}
}

func (nopTelemetry) Stats() domain.BuildStats { return domain.BuildStats{} }

func (nopTelemetry) Close() error { return nil }

type nopVertex struct{}

func (nopVertex) Stdout() io.Writer               { return io.Discard }
func (nopVertex) Stderr() io.Writer               { return io.Discard }
func (nopVertex) Log(_ domain.LogLevel, _ string) {}
func (nopVertex) Complete(_ error)                {}
func (nopVertex) Cached()                         {}
