package backend

import (
	"github.com/funvibe/gocsl/internal/runtree"
	"github.com/funvibe/gocsl/internal/style"
)

// TreeWalkBackend renders a style.Node by walking it directly, with
// no memoization between items or macro calls.
type TreeWalkBackend struct{}

// NewTreeWalk creates a new tree-walk backend.
func NewTreeWalk() *TreeWalkBackend {
	return &TreeWalkBackend{}
}

// Render evaluates node against ctx.
func (b *TreeWalkBackend) Render(ctx style.Context, node style.Node) (runtree.Result, error) {
	return node.Render(ctx)
}

// Name returns the backend name.
func (b *TreeWalkBackend) Name() string {
	return "tree-walk"
}
