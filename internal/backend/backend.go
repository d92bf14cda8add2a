// Package backend provides an interface for different rendering
// backends. This allows swapping a direct tree-walk for a decorated
// one (caching macro output) without the pipeline Stage caring which
// it got.
package backend

import (
	"github.com/funvibe/gocsl/internal/runtree"
	"github.com/funvibe/gocsl/internal/style"
)

// Renderer is the interface for rendering backends.
type Renderer interface {
	// Render evaluates node against ctx and returns its Result.
	Render(ctx style.Context, node style.Node) (runtree.Result, error)

	// Name returns the backend name for display.
	Name() string
}
