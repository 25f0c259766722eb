package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reform/internal/core/ports"
)

const (
	WalkerNodeID   graft.ID = "adapter.fs.walker"
	SelectorNodeID graft.ID = "adapter.fs.selector"
	HasherNodeID   graft.ID = "adapter.fs.hasher"
	FilesNodeID    graft.ID = "adapter.fs.files"
)

func init() {
	// Walker Node (Concrete implementation needed by Selector)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// Selector Node
	graft.Register(graft.Node[ports.FileSelector]{
		ID:        SelectorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.FileSelector, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewSelector(walker), nil
		},
	})

	// Hasher Node
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	// Files Node
	graft.Register(graft.Node[ports.SourceFiles]{
		ID:        FilesNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceFiles, error) {
			return NewFiles(), nil
		},
	})
}
