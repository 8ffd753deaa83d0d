package rakefile

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/rake/internal/adapters/logger"
	"go.trai.ch/rake/internal/core/ports"
)

// NodeID is the unique identifier for the rakefile loader Graft node.
const NodeID graft.ID = "adapter.rakefile_loader"

func init() {
	graft.Register(graft.Node[ports.RakefileLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RakefileLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(afero.NewOsFs(), log), nil
		},
	})
}
