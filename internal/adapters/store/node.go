package store

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/tsprops/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the property store Graft node.
	NodeID graft.ID = "adapter.store"
	// PathEnv names the environment variable holding the store file path.
	// When unset or empty the store is kept in memory.
	PathEnv = "TSPROPS_STORE"
)

func init() {
	graft.Register(graft.Node[ports.DataAccess]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DataAccess, error) {
			return NewFromEnv()
		},
	})
}

// NewFromEnv creates a Store backed by the file named in PathEnv.
func NewFromEnv() (*Store, error) {
	return NewStore(os.Getenv(PathEnv))
}
