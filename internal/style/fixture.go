package style

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/gocsl/internal/dates"
	"github.com/funvibe/gocsl/internal/locale"
	"github.com/funvibe/gocsl/internal/logic"
)

// rawNode is the YAML-friendly shape of one compiled-style Node. Only
// the fields relevant to Type are meaningful; this stands in for the
// external CSL XML compiler's output (out of scope per spec.md §1) so
// tests and the CLI can build styles without Go literals.
type rawNode struct {
	Type string `yaml:"type"`

	Text     string `yaml:"text,omitempty"`
	Term     string `yaml:"term,omitempty"`
	Form     string `yaml:"form,omitempty"`
	Variable string `yaml:"variable,omitempty"`
	Macro    string `yaml:"macro,omitempty"`

	Prefix   string `yaml:"prefix,omitempty"`
	Suffix   string `yaml:"suffix,omitempty"`
	TextCase string `yaml:"text-case,omitempty"`
	Quotes   bool   `yaml:"quotes,omitempty"`
	Plural   bool   `yaml:"plural,omitempty"`
	Short    bool   `yaml:"short,omitempty"`

	Pluralize string `yaml:"pluralize,omitempty"` // always|contextual|never
	Format    string `yaml:"format,omitempty"`    // numeric|ordinal|long-ordinal|roman
	IsPage    bool   `yaml:"is-page,omitempty"`

	Precision string   `yaml:"precision,omitempty"` // year|year-month|year-month-day
	DateForm  string   `yaml:"date-form,omitempty"` // numeric|text
	Variables []string `yaml:"variables,omitempty"`
	Merge     bool     `yaml:"merge,omitempty"`
	Label     *rawNode `yaml:"label,omitempty"`

	Delimiter string        `yaml:"delimiter,omitempty"`
	Children  []rawNode     `yaml:"children,omitempty"`
	Branches  []rawBranch   `yaml:"branches,omitempty"`
}

type rawBranch struct {
	Variable        []string  `yaml:"variable,omitempty"`
	IsNumeric       []string  `yaml:"is-numeric,omitempty"`
	IsUncertainDate []string  `yaml:"is-uncertain-date,omitempty"`
	Type            []string  `yaml:"type,omitempty"`
	Locator         []string  `yaml:"locator,omitempty"`
	Position        []string  `yaml:"position,omitempty"`
	Disambiguate    *bool     `yaml:"disambiguate,omitempty"`
	Children        []rawNode `yaml:"children,omitempty"`
}

type rawStyle struct {
	Macros       map[string]rawNode `yaml:"macros,omitempty"`
	Citation     rawNode            `yaml:"citation"`
	Bibliography rawNode            `yaml:"bibliography"`
}

func termFormat(s string) locale.TermFormat {
	switch s {
	case "short":
		return locale.Short
	case "symbol":
		return locale.Symbol
	case "verb":
		return locale.Verb
	case "verb-short":
		return locale.VerbShort
	default:
		return locale.Long
	}
}

func numberFormat(s string) locale.NumberFormat {
	switch s {
	case "ordinal":
		return locale.Ordinal
	case "long-ordinal":
		return locale.LongOrdinal
	case "roman":
		return locale.Roman
	default:
		return locale.Numeric
	}
}

func precision(s string) dates.Precision {
	switch s {
	case "year-month":
		return dates.PrecisionYearMonth
	case "year-month-day":
		return dates.PrecisionYearMonthDay
	default:
		return dates.PrecisionYear
	}
}

func datePartFormat(s string) locale.DatePartFormat {
	if s == "text" {
		return locale.TextDate
	}
	return locale.NumericDate
}

func pluralMode(s string) LabelPlural {
	switch s {
	case "always":
		return LabelAlways
	case "never":
		return LabelNever
	default:
		return LabelContextual
	}
}

// buildNode compiles one rawNode into a Node, recursively compiling
// its children. loc supplies the date-part defaults a date node's
// locale-form requests.
func buildNode(n rawNode, loc locale.Provider) (Node, error) {
	switch n.Type {
	case "text":
		return ConstNode{Text: n.Text, Prefix: n.Prefix, Suffix: n.Suffix, Quotes: n.Quotes, TextCase: n.TextCase}, nil
	case "term":
		return TermNode{Term: n.Term, Form: termFormat(n.Form), Plural: n.Plural, Prefix: n.Prefix, Suffix: n.Suffix, TextCase: n.TextCase}, nil
	case "variable":
		return VariableNode{Variable: n.Variable, Short: n.Short, Prefix: n.Prefix, Suffix: n.Suffix, Quotes: n.Quotes, TextCase: n.TextCase}, nil
	case "macro":
		if n.Macro == "" {
			return nil, fmt.Errorf("style: macro node missing \"macro\" name")
		}
		return MacroRefNode{Name: n.Macro}, nil
	case "label":
		return LabelNode{Variable: n.Variable, Term: n.Term, Pluralize: pluralMode(n.Pluralize), Prefix: n.Prefix, Suffix: n.Suffix, TextCase: n.TextCase}, nil
	case "number":
		return NumberNode{Variable: n.Variable, Term: n.Term, Format: numberFormat(n.Format), IsPage: n.IsPage, Prefix: n.Prefix, Suffix: n.Suffix, TextCase: n.TextCase}, nil
	case "date":
		return DateNode{
			Variable:  n.Variable,
			Parts:     loc.DateParts(datePartFormat(n.DateForm)),
			Precision: precision(n.Precision),
			Prefix:    n.Prefix, Suffix: n.Suffix, TextCase: n.TextCase,
		}, nil
	case "names":
		var label *LabelNode
		if n.Label != nil {
			label = &LabelNode{Variable: n.Label.Variable, Term: n.Label.Term, Pluralize: pluralMode(n.Label.Pluralize), Prefix: n.Label.Prefix, Suffix: n.Label.Suffix, TextCase: n.Label.TextCase}
		}
		return NamesNode{Variables: n.Variables, Merge: n.Merge, Label: label, Prefix: n.Prefix, Suffix: n.Suffix, TextCase: n.TextCase}, nil
	case "group":
		children, err := buildNodes(n.Children, loc)
		if err != nil {
			return nil, err
		}
		return GroupNode{Children: children, Delimiter: n.Delimiter, Prefix: n.Prefix, Suffix: n.Suffix}, nil
	case "choose":
		branches := make([]ChooseBranch, len(n.Branches))
		for i, b := range n.Branches {
			children, err := buildNodes(b.Children, loc)
			if err != nil {
				return nil, err
			}
			branches[i] = ChooseBranch{Condition: branchCondition(b), Children: children}
		}
		return ChooseNode{Branches: branches}, nil
	default:
		return nil, fmt.Errorf("style: unknown node type %q", n.Type)
	}
}

// branchCondition adapts a rawBranch's YAML fields to logic.Condition.
func branchCondition(b rawBranch) logic.Condition {
	c := logic.Condition{
		Variable: b.Variable, IsNumeric: b.IsNumeric, IsUncertainDate: b.IsUncertainDate,
		Type: b.Type, Locator: b.Locator, Position: b.Position,
	}
	if b.Disambiguate != nil {
		c.Disambiguate = *b.Disambiguate
		c.DisambiguateSet = true
	}
	return c
}

func buildNodes(raw []rawNode, loc locale.Provider) ([]Node, error) {
	out := make([]Node, len(raw))
	for i, r := range raw {
		n, err := buildNode(r, loc)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// LoadFixture reads a YAML-encoded compiled style from path and
// resolves it into a *Style. loc supplies locale-dependent date-part
// defaults for date nodes.
func LoadFixture(path string, loc locale.Provider) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("style: read fixture: %w", err)
	}
	var rs rawStyle
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("style: parse fixture %s: %w", path, err)
	}

	macros := make(map[string]Node, len(rs.Macros))
	for name, rn := range rs.Macros {
		n, err := buildNode(rn, loc)
		if err != nil {
			return nil, fmt.Errorf("style: macro %q: %w", name, err)
		}
		macros[name] = n
	}

	citation, err := buildNode(rs.Citation, loc)
	if err != nil {
		return nil, fmt.Errorf("style: citation layout: %w", err)
	}
	bibliography, err := buildNode(rs.Bibliography, loc)
	if err != nil {
		return nil, fmt.Errorf("style: bibliography layout: %w", err)
	}

	return &Style{Macros: macros, Citation: citation, Bibliography: bibliography}, nil
}
