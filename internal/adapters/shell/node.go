package shell

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/rake/internal/adapters/logger"
	"go.trai.ch/rake/internal/core/ports"
)

// NodeID is the unique identifier for the process runner Graft node.
const NodeID graft.ID = "adapter.process_runner"

func init() {
	graft.Register(graft.Node[ports.ProcessRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ProcessRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log, os.Stdout, os.Stderr), nil
		},
	})
}
