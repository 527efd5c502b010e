package msim

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hdlc/internal/adapters/logger"
	"go.trai.ch/hdlc/internal/adapters/shell"
	"go.trai.ch/hdlc/internal/core/ports"
)

// NodeID is the unique identifier for the builder factory Graft node.
const NodeID graft.ID = "adapter.builder"

func init() {
	graft.Register(graft.Node[ports.BuilderFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.BuilderFactory, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(executor, log.Named("msim")), nil
		},
	})
}
