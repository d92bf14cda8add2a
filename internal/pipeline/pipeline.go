// Package pipeline runs a batch of items through a fixed sequence of
// Stages (the orchestrator builds one with a single render stage),
// collecting the errors each stage records on the shared Context.
package pipeline

import (
	"github.com/funvibe/gocsl/internal/locale"
	"github.com/funvibe/gocsl/internal/params"
	"github.com/funvibe/gocsl/internal/runtree"
	"github.com/funvibe/gocsl/internal/style"
	"github.com/funvibe/gocsl/internal/value"
)

// Mode selects which half of the compiled Style a Context renders.
type Mode int

const (
	ModeCitation Mode = iota
	ModeBibliography
)

// Entry is one item carried through the pipeline alongside its
// rendered output, once a render Stage has run.
type Entry struct {
	Item   value.Item
	Result runtree.Result
}

// Context is the pipeline's shared, mutable state: the input batch,
// the compiled style and locale driving every Stage, and the errors
// accumulated so far. A Stage reads and returns the same Context,
// appending to Errors rather than stopping the run.
type Context struct {
	Mode   Mode
	Style  *style.Style
	Locale locale.Provider
	Params params.Parameters

	Entries []Entry
	Errors  []error
}

// NewContext seeds a Context from an item batch.
func NewContext(mode Mode, st *style.Style, loc locale.Provider, p params.Parameters, items []value.Item) *Context {
	entries := make([]Entry, len(items))
	for i, it := range items {
		entries[i] = Entry{Item: it}
	}
	return &Context{Mode: mode, Style: st, Locale: loc, Params: p, Entries: entries}
}

// Stage is one step of the pipeline: sorting, rendering, or a
// caller-supplied post-processing step.
type Stage interface {
	Process(ctx *Context) *Context
}

// Pipeline runs a fixed ordered sequence of Stages.
type Pipeline struct {
	stages []Stage
}

// New builds a Pipeline from its stages, run in order.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run drives every stage in order, always passing the previous
// stage's Context to the next even when it recorded errors — later
// stages decide for themselves whether an errored entry should still
// be processed. Within a stage, ExecutionProcessor stops at the first
// item that fails to render.
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, stage := range p.stages {
		ctx = stage.Process(ctx)
	}
	return ctx
}
