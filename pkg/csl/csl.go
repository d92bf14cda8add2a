// Package csl is the top-level orchestrator (spec §4.1/§6.3): the two
// public entry points a caller actually uses, generate_bibliography
// and generate_citation, wired on top of the internal rendering
// pipeline.
package csl

import (
	"github.com/google/uuid"

	"github.com/funvibe/gocsl/internal/backend"
	"github.com/funvibe/gocsl/internal/locale"
	"github.com/funvibe/gocsl/internal/params"
	"github.com/funvibe/gocsl/internal/pipeline"
	"github.com/funvibe/gocsl/internal/runtree"
	"github.com/funvibe/gocsl/internal/sortkey"
	"github.com/funvibe/gocsl/internal/style"
	"github.com/funvibe/gocsl/internal/value"
)

const defaultLocale = "en-US"

// KeyFunc produces an item's sort keys for the Sort Layer (§4.11).
// Which variables or macros make up those keys is a style-compiler
// concern (out of scope, §1); the orchestrator only knows how to use
// whatever the caller hands it.
type KeyFunc func(item value.Item) []string

// Orchestrator wires a compiled Style, a locale registry, and a
// rendering backend into the two generate_* entry points.
type Orchestrator struct {
	Style    *style.Style
	Locales  *locale.Registry
	Renderer backend.Renderer
	SortKeys KeyFunc
}

// New builds an Orchestrator with the direct tree-walk backend.
func New(st *style.Style, locales *locale.Registry) *Orchestrator {
	return &Orchestrator{Style: st, Locales: locales, Renderer: backend.NewTreeWalk()}
}

func (o *Orchestrator) resolveLocale(requested string, forceLocale bool) (locale.Provider, error) {
	code := defaultLocale
	if forceLocale && requested != "" {
		code = requested
	}
	loc, err := o.Locales.Resolve(code)
	if err != nil {
		return nil, err
	}
	return loc, nil
}

func (o *Orchestrator) sortEntries(entries []pipeline.Entry, cmp sortkey.Comparator) {
	if o.SortKeys == nil || cmp == nil {
		return
	}
	skEntries := make([]sortkey.Entry, len(entries))
	for i, e := range entries {
		skEntries[i] = sortkey.Entry{Payload: i, Keys: o.SortKeys(e.Item)}
	}
	sortkey.Sort(skEntries, cmp)
	sorted := make([]pipeline.Entry, len(entries))
	for i, sk := range skEntries {
		sorted[i] = entries[sk.Payload.(int)]
	}
	copy(entries, sorted)
}

func (o *Orchestrator) run(mode pipeline.Mode, items []value.Item, p params.Parameters, requestedLocale string, forceLocale bool) (*pipeline.Context, error) {
	loc, err := o.resolveLocale(requestedLocale, forceLocale)
	if err != nil {
		return nil, err
	}

	ctx := pipeline.NewContext(mode, o.Style, loc, p, items)
	pl := pipeline.New(backend.NewExecutionProcessor(o.Renderer))
	ctx = pl.Run(ctx)
	if len(ctx.Errors) > 0 {
		return nil, ctx.Errors[0]
	}
	return ctx, nil
}

// GenerateBibliography renders every item's bibliography entry,
// stably sorted by cmp over each item's sort keys.
func (o *Orchestrator) GenerateBibliography(items []value.Item, p params.Parameters, requestedLocale string, forceLocale bool, cmp sortkey.Comparator) ([]*runtree.ComposedRun, error) {
	ctx, err := o.run(pipeline.ModeBibliography, items, p, requestedLocale, forceLocale)
	if err != nil {
		return nil, err
	}
	o.sortEntries(ctx.Entries, cmp)

	out := make([]*runtree.ComposedRun, len(ctx.Entries))
	for i, e := range ctx.Entries {
		out[i] = runtree.ToComposedRun(e.Result, ctx.Locale, 0)
	}
	return out, nil
}

// Citation pairs a generated citation with a stable identifier a
// caller can correlate back to an in-text marker.
type Citation struct {
	ID  uuid.UUID
	Run *runtree.ComposedRun
}

// GenerateCitation renders a citation covering every item, sorted by
// cmp and joined with delimiter per §4.10. A zero-item batch returns
// (nil, nil); a single item skips both sorting and the
// delimiter.
func (o *Orchestrator) GenerateCitation(items []value.Item, p params.Parameters, requestedLocale string, forceLocale bool, delimiter string, cmp sortkey.Comparator) (*Citation, error) {
	if len(items) == 0 {
		return nil, nil
	}

	ctx, err := o.run(pipeline.ModeCitation, items, p, requestedLocale, forceLocale)
	if err != nil {
		return nil, err
	}
	o.sortEntries(ctx.Entries, cmp)

	if len(ctx.Entries) == 1 {
		return &Citation{ID: uuid.New(), Run: runtree.ToComposedRun(ctx.Entries[0].Result, ctx.Locale, 0)}, nil
	}

	results := make([]runtree.Result, len(ctx.Entries))
	for i, e := range ctx.Entries {
		results[i] = e.Result
	}
	joined := runtree.JoinWithDelimiter(results, delimiter, runtree.Formatting{})
	merged := runtree.Result{Tag: "citation", Children: joined}
	return &Citation{ID: uuid.New(), Run: runtree.ToComposedRun(merged, ctx.Locale, 0)}, nil
}
