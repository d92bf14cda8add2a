package locale

import (
	"fmt"
	"strconv"

	"github.com/funvibe/gocsl/internal/diagnostics"
)

type termKey struct {
	name   string
	format TermFormat
	plural bool
}

// BuiltinProvider is a locale bundle held entirely in memory: a term
// table, an optional gender table, and the two date-part layouts. It
// is the only Provider shipped with gocsl; real deployments normally
// load these tables from CSL locale XML (out of scope for this core).
type BuiltinProvider struct {
	code    string
	terms   map[termKey]string
	genders map[string]Gender

	numericParts []DatePart
	textParts    []DatePart

	limitDayOrdinalsToDay1 bool
}

func NewBuiltinProvider(code string) *BuiltinProvider {
	return &BuiltinProvider{
		code:    code,
		terms:   make(map[termKey]string),
		genders: make(map[string]Gender),
	}
}

// SetTerm registers name/format/plural -> value. Use format values
// from this package (Long, Short, Symbol, Verb, VerbShort).
func (p *BuiltinProvider) SetTerm(name string, format TermFormat, plural bool, value string) *BuiltinProvider {
	p.terms[termKey{name, format, plural}] = value
	return p
}

// SetTermBoth registers the same value for singular and plural.
func (p *BuiltinProvider) SetTermBoth(name string, format TermFormat, value string) *BuiltinProvider {
	p.SetTerm(name, format, false, value)
	p.SetTerm(name, format, true, value)
	return p
}

func (p *BuiltinProvider) SetGender(name string, g Gender) *BuiltinProvider {
	p.genders[name] = g
	return p
}

func (p *BuiltinProvider) SetDateParts(format DatePartFormat, parts []DatePart) *BuiltinProvider {
	if format == NumericDate {
		p.numericParts = parts
	} else {
		p.textParts = parts
	}
	return p
}

func (p *BuiltinProvider) SetLimitDayOrdinalsToDay1(v bool) *BuiltinProvider {
	p.limitDayOrdinalsToDay1 = v
	return p
}

func (p *BuiltinProvider) Code() string { return p.code }

func (p *BuiltinProvider) Term(name string, format TermFormat, plural bool) (string, bool) {
	if v, ok := p.terms[termKey{name, format, plural}]; ok {
		return v, true
	}
	// Fall back to the Long form of the same plurality, then to
	// singular, the way a CSL locale's term resolution degrades when a
	// style asks for a form the locale didn't register.
	if format != Long {
		if v, ok := p.terms[termKey{name, Long, plural}]; ok {
			return v, true
		}
	}
	if plural {
		if v, ok := p.terms[termKey{name, format, false}]; ok {
			return v, true
		}
	}
	return "", false
}

func (p *BuiltinProvider) TermGender(name string) (Gender, bool) {
	g, ok := p.genders[name]
	return g, ok
}

func (p *BuiltinProvider) LimitDayOrdinalsToDay1() bool { return p.limitDayOrdinalsToDay1 }

func (p *BuiltinProvider) DateParts(format DatePartFormat) []DatePart {
	if format == NumericDate {
		return p.numericParts
	}
	return p.textParts
}

func (p *BuiltinProvider) FormatNumber(n uint32, format NumberFormat, gender Gender) (string, error) {
	switch format {
	case Numeric:
		return strconv.FormatUint(uint64(n), 10), nil
	case Ordinal:
		return p.FormatOrdinal(n, gender), nil
	case LongOrdinal:
		if s, ok := longOrdinalWords[n]; ok {
			return s, nil
		}
		return p.FormatOrdinal(n, gender), nil
	case Roman:
		return toRoman(n), nil
	default:
		return "", diagnostics.NewUnsupportedFormatError("number", fmt.Sprintf("%d", format))
	}
}

// FormatOrdinal applies the English CSL ordinal suffix rule: 1st, 2nd,
// 3rd, 4th.. with 11th/12th/13th as irregular regardless of final
// digit. Other locales would register their own gendered suffix rules;
// this builtin applies the same table to every locale instance since
// English is the only one gocsl ships.
func (p *BuiltinProvider) FormatOrdinal(n uint32, gender Gender) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
		suffix = "th"
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.FormatUint(uint64(n), 10) + suffix
}

var longOrdinalWords = map[uint32]string{
	1: "first", 2: "second", 3: "third", 4: "fourth", 5: "fifth",
	6: "sixth", 7: "seventh", 8: "eighth", 9: "ninth", 10: "tenth",
}

var romanTable = []struct {
	value  uint32
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func toRoman(n uint32) string {
	if n == 0 {
		return "N" // CSL has no zero case; this is defensive only.
	}
	var sb []byte
	for _, entry := range romanTable {
		for n >= entry.value {
			sb = append(sb, entry.symbol...)
			n -= entry.value
		}
	}
	return string(sb)
}
