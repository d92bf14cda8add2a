// Package style implements the compiled-style AST this core renders:
// a tree of Nodes produced by a (not-in-scope) CSL XML compiler, and
// the tree-walk Render dispatcher that evaluates it against an item.
// Parsing CSL/locale XML is out of scope (§1); this package only
// consumes the compiled shape.
package style

import (
	"github.com/funvibe/gocsl/internal/dates"
	"github.com/funvibe/gocsl/internal/diagnostics"
	"github.com/funvibe/gocsl/internal/locale"
	"github.com/funvibe/gocsl/internal/logic"
	"github.com/funvibe/gocsl/internal/names"
	"github.com/funvibe/gocsl/internal/numbers"
	"github.com/funvibe/gocsl/internal/params"
	"github.com/funvibe/gocsl/internal/runtree"
	"github.com/funvibe/gocsl/internal/value"
)

// Context is the per-render execution context threaded down the
// Node tree: the item being rendered, the resolved locale, the
// current (possibly locally-overridden) Parameters, the Choose
// condition context, and the Style the macros belong to.
type Context struct {
	Item       value.Item
	Locale     locale.Provider
	Params     params.Parameters
	Choose     logic.Context
	Style      *Style
	inProgress map[string]bool

	// Cache memoizes macro Results by name for the lifetime of one
	// top-level Render call. Left nil, MacroRefNode re-renders the
	// macro body on every reference (the direct tree-walk backend's
	// behavior); a caching backend sets it to a fresh map.
	Cache map[string]runtree.Result
}

// withMacro returns a derived Context for evaluating macro name,
// recording it as in-progress for cycle detection. A
// CycleDetectedError is returned when the macro is already being
// evaluated higher up the same call (a cycle).
func (c Context) withMacro(name string) (Context, error) {
	if c.inProgress[name] {
		chain := make([]string, 0, len(c.inProgress)+1)
		for k := range c.inProgress {
			chain = append(chain, k)
		}
		chain = append(chain, name)
		return Context{}, diagnostics.NewCycleDetectedError(name, chain)
	}
	next := c
	next.inProgress = make(map[string]bool, len(c.inProgress)+1)
	for k := range c.inProgress {
		next.inProgress[k] = true
	}
	next.inProgress[name] = true
	return next, nil
}

// Node is one element of a compiled style: text, number, date, names,
// group, choose, label, or a macro reference.
type Node interface {
	Render(ctx Context) (runtree.Result, error)
}

// Style is a compiled CSL style: its named macros plus the citation
// and bibliography entry layouts.
type Style struct {
	Macros       map[string]Node
	Citation     Node
	Bibliography Node
}

// Macro looks up a macro by name; ok is false when no macro of that
// name is defined. MacroRefNode reports that case as a
// diagnostics.StyleCompileError (macro resolution is a style
// compile-time concern; a missing macro at render time indicates a
// malformed compiled style).
func (s *Style) Macro(name string) (Node, bool) {
	n, ok := s.Macros[name]
	return n, ok
}

// ConstNode renders fixed text, ignoring the item entirely — used for
// punctuation and other style-authored literals.
type ConstNode struct {
	Text       string
	Prefix     string
	Suffix     string
	Quotes     bool
	TextCase   string
	Formatting runtree.Formatting
}

func (n ConstNode) Render(ctx Context) (runtree.Result, error) {
	return runtree.Result{
		Tag: "text", Text: n.Text, Prefix: n.Prefix, Suffix: n.Suffix,
		Quotes: n.Quotes, TextCase: n.TextCase, Formatting: n.Formatting,
	}, nil
}

// TermNode renders a localized term — "Text by term" in §4.6 — and is
// not by-variable.
type TermNode struct {
	Term       string
	Form       locale.TermFormat
	Plural     bool
	Prefix     string
	Suffix     string
	TextCase   string
	Formatting runtree.Formatting
}

func (n TermNode) Render(ctx Context) (runtree.Result, error) {
	text, _ := ctx.Locale.Term(n.Term, n.Form, n.Plural)
	return runtree.Result{
		Tag: "term", Text: text, Prefix: n.Prefix, Suffix: n.Suffix,
		TextCase: n.TextCase, Formatting: n.Formatting,
	}, nil
}

// VariableNode renders "Text by variable": prefers -short form, number
// variables go through the Number Renderer with Numeric format,
// everything else stringifies. Marked by-variable.
type VariableNode struct {
	Variable   string
	Short      bool
	Prefix     string
	Suffix     string
	Quotes     bool
	TextCase   string
	Formatting runtree.Formatting
}

func (n VariableNode) Render(ctx Context) (runtree.Result, error) {
	v, ok := value.GetVariant(ctx.Item, n.Variable, n.Short)
	if !ok {
		return runtree.Result{Tag: "text", ByVariable: true}, nil
	}
	text := v.String()
	if v.Kind == value.KindNumber {
		s, err := numbers.Format(v.Num, locale.Numeric, locale.GenderUnspecified, ctx.Locale, n.Variable == "page", ctx.Params.PageRangeFormat)
		if err != nil {
			return runtree.Result{}, err
		}
		text = s
	}
	return runtree.Result{
		Tag: "text", Text: text, ByVariable: true,
		Prefix: n.Prefix, Suffix: n.Suffix, Quotes: n.Quotes, TextCase: n.TextCase, Formatting: n.Formatting,
	}, nil
}

// MacroRefNode evaluates a named macro. Not by-variable itself; it
// inherits the flag from the macro's rendered children.
type MacroRefNode struct {
	Name string
}

func (n MacroRefNode) Render(ctx Context) (runtree.Result, error) {
	if ctx.Cache != nil {
		if cached, ok := ctx.Cache[n.Name]; ok {
			return cached, nil
		}
	}
	next, err := ctx.withMacro(n.Name)
	if err != nil {
		return runtree.Result{}, err
	}
	macro, ok := ctx.Style.Macro(n.Name)
	if !ok {
		return runtree.Result{}, diagnostics.NewStyleCompileError("macro \"" + n.Name + "\" is not defined")
	}
	res, err := macro.Render(next)
	if err != nil {
		return runtree.Result{}, err
	}
	if ctx.Cache != nil {
		ctx.Cache[n.Name] = res
	}
	return res, nil
}

// LabelNode renders §4.6's Label element: looks up a variable,
// decides pluralization, and renders the localized term. Marked
// by-variable.
type LabelNode struct {
	Variable  string
	Term      string
	Pluralize LabelPlural
	Prefix    string
	Suffix    string
	TextCase  string
}

type LabelPlural int

const (
	LabelAlways LabelPlural = iota
	LabelContextual
	LabelNever
)

func (n LabelNode) Render(ctx Context) (runtree.Result, error) {
	if _, ok := value.GetVariant(ctx.Item, n.Variable, false); !ok {
		return runtree.Result{Tag: "label", ByVariable: true}, nil
	}
	plural := false
	switch n.Pluralize {
	case LabelAlways:
		plural = true
	case LabelContextual:
		if nv, ok := ctx.Item.GetAsNumber(n.Variable); ok && nv.Kind == value.KindNumber {
			plural = nv.Num.Min != nv.Num.Max
		}
	}
	text, _ := ctx.Locale.Term(n.Term, locale.Long, plural)
	return runtree.Result{Tag: "label", Text: text, ByVariable: true, Prefix: n.Prefix, Suffix: n.Suffix, TextCase: n.TextCase}, nil
}

// NumberNode renders a number variable through the Number Renderer.
type NumberNode struct {
	Variable   string
	Term       string
	Format     locale.NumberFormat
	IsPage     bool
	Prefix     string
	Suffix     string
	TextCase   string
	Formatting runtree.Formatting
}

func (n NumberNode) Render(ctx Context) (runtree.Result, error) {
	v, ok := ctx.Item.GetAsNumber(n.Variable)
	if !ok || v.Kind != value.KindNumber {
		return runtree.Result{Tag: "number", ByVariable: true}, nil
	}
	text, err := numbers.Format(v.Num, n.Format, locale.GenderUnspecified, ctx.Locale, n.IsPage, ctx.Params.PageRangeFormat)
	if err != nil {
		return runtree.Result{}, err
	}
	return runtree.Result{
		Tag: "number", Text: text, ByVariable: true,
		Prefix: n.Prefix, Suffix: n.Suffix, TextCase: n.TextCase, Formatting: n.Formatting,
	}, nil
}

// DateNode renders a date variable through the Date Renderer.
type DateNode struct {
	Variable  string
	Parts     []locale.DatePart
	Precision dates.Precision
	Prefix    string
	Suffix    string
	TextCase  string
}

func (n DateNode) Render(ctx Context) (runtree.Result, error) {
	v, ok := ctx.Item.GetAsDate(n.Variable)
	if !ok || v.Kind != value.KindDate {
		return runtree.Result{Tag: "date", ByVariable: true}, nil
	}
	res, err := dates.Render(ctx.Locale, n.Parts, v.Date, n.Precision)
	if err != nil {
		return runtree.Result{}, err
	}
	res.Prefix, res.Suffix, res.TextCase = n.Prefix, n.Suffix, n.TextCase
	return res, nil
}

// NamesNode renders one or more name-list variables through the Name
// Renderer, with optional editor-translator merge and a trailing
// label.
type NamesNode struct {
	Variables []string
	Merge     bool
	Label     *LabelNode
	Prefix    string
	Suffix    string
	TextCase  string
}

func (n NamesNode) Render(ctx Context) (runtree.Result, error) {
	groups := make([]names.VariableGroup, 0, len(n.Variables))
	for _, v := range n.Variables {
		val, ok := ctx.Item.GetAsNames(v)
		if !ok || val.Kind != value.KindNames {
			continue
		}
		groups = append(groups, names.VariableGroup{Variable: v, Term: v, Names: val.Names})
	}
	if n.Merge {
		groups = names.MergeEditorTranslator(groups)
	}
	if len(groups) == 0 {
		return runtree.Result{Tag: "names", ByVariable: true}, nil
	}

	children := make([]runtree.Result, 0, len(groups)+1)
	count := 0
	for _, g := range groups {
		if ctx.Params.NameFormat == params.NameCount {
			count += names.RenderCount(ctx.Params, g.Names)
			continue
		}
		res, err := names.RenderNameList(ctx.Locale, ctx.Params, g.Names)
		if err != nil {
			return runtree.Result{}, err
		}
		children = append(children, res)
		if n.Label != nil {
			label := names.RenderLabel(ctx.Locale, g.Term, len(g.Names), namesLabelMode(n.Label.Pluralize), n.Label.Prefix, n.Label.Suffix, n.Label.TextCase)
			children = append(children, runtree.Result{
				Tag: label.Tag, Text: label.Text, Prefix: label.Prefix, Suffix: label.Suffix,
				TextCase: label.TextCase, ByVariable: label.ByVariable,
			})
		}
	}
	if ctx.Params.NameFormat == params.NameCount {
		if count == 0 {
			return runtree.Result{Tag: "names", ByVariable: true}, nil
		}
		return runtree.Result{Tag: "names", Text: itoa(count), ByVariable: true, Prefix: n.Prefix, Suffix: n.Suffix, TextCase: n.TextCase}, nil
	}

	joined := runtree.JoinWithDelimiter(children, ctx.Params.NamesDelimiter, runtree.Formatting{})
	return runtree.Result{Tag: "names", Children: joined, ByVariable: true, Prefix: n.Prefix, Suffix: n.Suffix, TextCase: n.TextCase}, nil
}

func namesLabelMode(p LabelPlural) names.LabelPluralMode {
	switch p {
	case LabelAlways:
		return names.LabelAlways
	case LabelNever:
		return names.LabelNever
	default:
		return names.LabelContextual
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// GroupNode renders §4.5's Group element: child Nodes, suppression,
// delimiter interleaving, prefix/suffix wrapping.
type GroupNode struct {
	Children   []Node
	Delimiter  string
	Prefix     string
	Suffix     string
	Formatting runtree.Formatting
}

func (n GroupNode) Render(ctx Context) (runtree.Result, error) {
	rendered := make([]runtree.Result, 0, len(n.Children))
	for _, c := range n.Children {
		r, err := c.Render(ctx)
		if err != nil {
			return runtree.Result{}, err
		}
		rendered = append(rendered, r)
	}
	return logic.BuildGroup(rendered, n.Delimiter, n.Prefix, n.Suffix, n.Formatting), nil
}

// ChooseBranch pairs a logic.Condition with the Nodes to render when
// it matches.
type ChooseBranch struct {
	Condition logic.Condition
	Children  []Node
}

// ChooseNode renders §4.5's Choose element.
type ChooseNode struct {
	Branches []ChooseBranch
}

func (n ChooseNode) Render(ctx Context) (runtree.Result, error) {
	branches := make([]logic.Branch, len(n.Branches))
	for i, b := range n.Branches {
		b := b
		branches[i] = logic.Branch{
			Condition: b.Condition,
			Render: func(logic.Context) (runtree.Result, error) {
				children := make([]runtree.Result, 0, len(b.Children))
				for _, c := range b.Children {
					r, err := c.Render(ctx)
					if err != nil {
						return runtree.Result{}, err
					}
					children = append(children, r)
				}
				return runtree.Result{Tag: "choose", Children: children, ByVariable: anyByVariable(children)}, nil
			},
		}
	}
	return logic.Select(ctx.Choose, branches)
}

func anyByVariable(children []runtree.Result) bool {
	for _, c := range children {
		if c.ByVariable {
			return true
		}
	}
	return false
}
