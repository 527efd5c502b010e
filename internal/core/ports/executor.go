package ports

import (
	"context"
	"io"

	"go.trai.ch/hdlc/internal/core/domain"
)

// Executor runs external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd, streaming its output to stdout and stderr.
	//
	// A non-zero exit status is reported as an error carrying the exit code.
	Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error
}
