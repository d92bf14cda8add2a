package logic

import (
	"github.com/funvibe/gocsl/internal/runtree"
	"github.com/funvibe/gocsl/internal/value"
)

// Context is the per-render execution context a Choose condition
// tests against: the item plus the citation-scoped attributes that
// don't live on the item itself.
type Context struct {
	Item         value.Item
	Locator      string // locator type label, e.g. "page", "paragraph"
	Position     string // "first", "subsequent", "ibid", "ibid-with-locator", "near-note"
	Disambiguate bool
}

// Condition is one if/else-if test set. An empty slice field means
// that test is not applied; multiple values in a field match on any
// (OR semantics, as CSL's default match="any").
type Condition struct {
	Variable        []string
	IsNumeric       []string
	IsUncertainDate []string
	Type            []string
	Locator         []string
	Position        []string
	Disambiguate    bool
	DisambiguateSet bool
}

// Matches evaluates the condition against ctx. An empty Condition
// (no fields set) matches unconditionally — the Choose "else" arm.
func (c Condition) Matches(ctx Context) bool {
	if len(c.Variable) > 0 {
		ok := false
		for _, v := range c.Variable {
			if _, present := ctx.Item.Get(v); present {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if len(c.IsNumeric) > 0 {
		ok := false
		for _, v := range c.IsNumeric {
			if _, present := ctx.Item.GetAsNumber(v); present {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if len(c.IsUncertainDate) > 0 {
		ok := false
		for _, v := range c.IsUncertainDate {
			if val, present := ctx.Item.GetAsDate(v); present && val.Kind == value.KindDate && val.Date.Uncertain {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if len(c.Type) > 0 {
		ok := false
		if tv, present := ctx.Item.Get("type"); present && tv.Kind == value.KindText {
			for _, t := range c.Type {
				if t == tv.Text {
					ok = true
					break
				}
			}
		}
		if !ok {
			return false
		}
	}
	if len(c.Locator) > 0 {
		ok := false
		for _, l := range c.Locator {
			if l == ctx.Locator {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if len(c.Position) > 0 {
		ok := false
		for _, p := range c.Position {
			if p == ctx.Position {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if c.DisambiguateSet && c.Disambiguate != ctx.Disambiguate {
		return false
	}
	return true
}

// Branch pairs a Condition with the rendering function for its body.
// The if/else-if/else chain is just a slice of Branches evaluated in
// order; the else arm is an unconditional Condition{}.
type Branch struct {
	Condition Condition
	Render    func(Context) (runtree.Result, error)
}

// Select implements Choose: the first branch whose condition matches
// is rendered and returned; later branches are never evaluated.
func Select(ctx Context, branches []Branch) (runtree.Result, error) {
	for _, b := range branches {
		if b.Condition.Matches(ctx) {
			return b.Render(ctx)
		}
	}
	return runtree.Empty("choose"), nil
}
