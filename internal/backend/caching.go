package backend

import (
	"github.com/funvibe/gocsl/internal/runtree"
	"github.com/funvibe/gocsl/internal/style"
)

// CachingRenderer decorates another Renderer, giving the style.Context
// it renders through a fresh macro cache per call. A style that
// references the same macro from several places — a "year-suffix"
// disambiguation macro pulled in by both the author and the date
// layout, say — only evaluates that macro's subtree once.
type CachingRenderer struct {
	inner Renderer
}

// NewCaching wraps inner with macro-level memoization.
func NewCaching(inner Renderer) *CachingRenderer {
	return &CachingRenderer{inner: inner}
}

// Render installs a fresh cache on ctx, then delegates to inner.
func (b *CachingRenderer) Render(ctx style.Context, node style.Node) (runtree.Result, error) {
	ctx.Cache = make(map[string]runtree.Result)
	return b.inner.Render(ctx, node)
}

// Name returns the backend name.
func (b *CachingRenderer) Name() string {
	return "caching(" + b.inner.Name() + ")"
}
