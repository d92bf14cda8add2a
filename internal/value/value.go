// Package value implements the variable model: a tagged sum of the
// value kinds an item variable can hold, and the typed accessors over
// an opaque item.
package value

import "fmt"

// Kind tags a Value's underlying representation.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindDate
	KindNames
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindNames:
		return "names"
	default:
		return "unknown"
	}
}

// Separator is the glyph joining a number range's min and max.
type Separator byte

const (
	SepHyphen    Separator = '-'
	SepAmpersand Separator = '&'
	SepComma     Separator = ','
)

// NumberVar is a single number (Min == Max) or a range.
type NumberVar struct {
	Min       uint32
	Max       uint32
	Separator Separator
}

func (n NumberVar) IsRange() bool { return n.Min != n.Max }

// Season names an astronomical season used when a date has no month.
type Season int

const (
	SeasonNone Season = iota
	SeasonSpring
	SeasonSummer
	SeasonAutumn
	SeasonWinter
)

// DateVar is either a literal, unparsed date string or a structured
// range (a single date has equal from/to components).
type DateVar struct {
	Literal   string
	IsRange   bool
	Uncertain bool // "circa" — the is-uncertain-date choose condition tests this

	YearFrom   int32
	MonthFrom  int // 0 means absent, else 1..12
	DayFrom    int // 0 means absent, else 1..31
	SeasonFrom Season

	YearTo   int32
	MonthTo  int
	DayTo    int
	SeasonTo Season
}

// IsLiteral reports whether this DateVar carries only an unparsed string.
func (d DateVar) IsLiteral() bool { return d.Literal != "" && d.YearFrom == 0 && d.YearTo == 0 && !d.IsRange }

// Name is a structured personal name. Literal (organizational) names
// are represented as NameOrLiteral.Literal instead.
type Name struct {
	Family               string
	Given                string
	DroppingParticles    string
	NonDroppingParticles string
	Suffix               string
	PrecedeSuffixByComma bool
}

// NameOrLiteral is one entry in a name-list variable.
type NameOrLiteral struct {
	Literal   string // non-empty iff this entry is a literal, not a Name
	Name      Name
	IsLiteral bool
}

// Value is the tagged sum returned by Item.Get. Exactly one of the
// typed fields is meaningful, selected by Kind.
type Value struct {
	Kind  Kind
	Text  string
	Num   NumberVar
	Date  DateVar
	Names []NameOrLiteral
}

func Text(s string) Value { return Value{Kind: KindText, Text: s} }
func Number(n NumberVar) Value { return Value{Kind: KindNumber, Num: n} }
func Date(d DateVar) Value { return Value{Kind: KindDate, Date: d} }
func Names(n []NameOrLiteral) Value { return Value{Kind: KindNames, Names: n} }

func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return fmt.Sprintf("%d-%d", v.Num.Min, v.Num.Max)
	case KindDate:
		if v.Date.IsLiteral() {
			return v.Date.Literal
		}
		return fmt.Sprintf("%d..%d", v.Date.YearFrom, v.Date.YearTo)
	case KindNames:
		return fmt.Sprintf("%d names", len(v.Names))
	default:
		return ""
	}
}
