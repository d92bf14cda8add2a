package value

import (
	"regexp"
	"strconv"
	"strings"
)

// Item is the external, opaque bibliographic record. The core only
// ever reads through this capability; it never mutates or introspects
// item data any other way.
type Item interface {
	Get(name string) (Value, bool)
	GetAsNumber(name string) (Value, bool)
	GetAsDate(name string) (Value, bool)
	GetAsNames(name string) (Value, bool)
}

// GetVariant resolves a (possibly short-form) variable request. If
// short is true, "<name>-short" is tried first; when absent, the full
// variable is returned instead. This is the accessor-level contract
// behind a style's "form=short" variable reference.
func GetVariant(item Item, name string, short bool) (Value, bool) {
	if short {
		if v, ok := item.Get(name + "-short"); ok {
			return v, true
		}
	}
	return item.Get(name)
}

var numberPattern = regexp.MustCompile(`^\s*(\d+)\s*([-&,])?\s*(\d+)?\s*$`)

// ParseNumber parses a string into a NumberVar when its content is
// numeric with an optional single separator from {'-', '&', ','}. It
// returns ok=false when the string does not match that shape.
func ParseNumber(s string) (NumberVar, bool) {
	m := numberPattern.FindStringSubmatch(s)
	if m == nil {
		return NumberVar{}, false
	}
	min64, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return NumberVar{}, false
	}
	nv := NumberVar{Min: uint32(min64), Max: uint32(min64), Separator: SepHyphen}
	if m[2] != "" && m[3] != "" {
		nv.Separator = Separator(m[2][0])
		max64, err := strconv.ParseUint(m[3], 10, 32)
		if err != nil {
			return NumberVar{}, false
		}
		nv.Max = uint32(max64)
	}
	return nv, true
}

// DefaultGetAsNumber implements the §4.3 contract for GetAsNumber in
// terms of Get: a Number value is returned as is, a Text value is
// parsed as a NumberVar, and any other kind (or unparsable text)
// reports ok=false. Item implementations that already hold
// structured numeric data should overload this behavior directly.
func DefaultGetAsNumber(item Item, name string) (Value, bool) {
	v, ok := item.Get(name)
	if !ok {
		return Value{}, false
	}
	if v.Kind == KindNumber {
		return v, true
	}
	if v.Kind != KindText {
		return Value{}, false
	}
	nv, ok := ParseNumber(v.Text)
	if !ok {
		return Value{}, false
	}
	return Number(nv), true
}

// DefaultGetAsDate returns the item's date variable as either a
// structured DateVar (when the item holds a Date value) or, for a
// Text value, the unparsed string as a literal DateVar, per §4.3.
func DefaultGetAsDate(item Item, name string) (Value, bool) {
	v, ok := item.Get(name)
	if !ok {
		return Value{}, false
	}
	if v.Kind == KindDate {
		return v, true
	}
	if v.Kind != KindText {
		return Value{}, false
	}
	return Date(DateVar{Literal: v.Text}), true
}

// DefaultGetAsNames returns the item's name-list variable, preserving
// literal (organizational) entries as such.
func DefaultGetAsNames(item Item, name string) (Value, bool) {
	v, ok := item.Get(name)
	if !ok {
		return Value{}, false
	}
	if v.Kind == KindNames {
		return v, true
	}
	if v.Kind != KindText {
		return Value{}, false
	}
	parts := strings.Split(v.Text, ";")
	out := make([]NameOrLiteral, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, NameOrLiteral{Literal: p, IsLiteral: true})
	}
	return Names(out), true
}
