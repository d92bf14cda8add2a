package runtree

import "github.com/funvibe/gocsl/internal/locale"

// ToComposedRun performs the §4.4 composition of a Result into an
// immutable ComposedRun: children compose first, text-case applies to
// the flattened children, quotes wrap non-empty content (using inner
// quote glyphs when nested inside another quoted ancestor), and
// prefix/suffix are dropped entirely when the result is empty.
//
// quoteDepth counts how many quoted ancestors contain this Result; it
// is 0 at the top of a render call.
func ToComposedRun(r Result, loc locale.Provider, quoteDepth int) *ComposedRun {
	var children []Run

	switch {
	case len(r.Children) > 0:
		childDepth := quoteDepth
		if r.Quotes {
			childDepth++
		}
		children = make([]Run, 0, len(r.Children))
		for _, c := range r.Children {
			children = append(children, ToComposedRun(c, loc, childDepth))
		}
	case r.Text != "" || r.ByVariable:
		children = []Run{NewTextRun(r.Text, r.Formatting, r.ByVariable)}
	}

	if r.TextCase != "" {
		children = ApplyTextCase(children, r.TextCase)
	}

	empty := true
	byVariable := r.ByVariable
	for _, ch := range children {
		if !ch.IsEmpty() {
			empty = false
		}
		if ch.IsByVariable() {
			byVariable = true
		}
	}

	cr := &ComposedRun{
		Tag:        r.Tag,
		Children:   children,
		TextCase:   r.TextCase,
		ByVariable: byVariable,
		Formatting: r.Formatting,
		empty:      empty,
	}
	if empty {
		return cr
	}

	cr.Prefix = r.Prefix
	cr.Suffix = r.Suffix

	if r.Quotes {
		cr.Quotes = true
		openName, closeName := "open-quote", "close-quote"
		if quoteDepth > 0 {
			openName, closeName = "open-inner-quote", "close-inner-quote"
		}
		open, _ := loc.Term(openName, locale.Long, false)
		closeGlyph, _ := loc.Term(closeName, locale.Long, false)
		wrapped := make([]Run, 0, len(cr.Children)+2)
		wrapped = append(wrapped, NewTextRun(open, r.Formatting, false))
		wrapped = append(wrapped, cr.Children...)
		wrapped = append(wrapped, NewTextRun(closeGlyph, r.Formatting, false))
		cr.Children = wrapped
	}

	return cr
}
