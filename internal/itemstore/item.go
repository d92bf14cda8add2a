// Package itemstore supplements the core's out-of-scope Item Data
// Provider (§1) with two concrete backings: an in-memory store loaded
// from YAML fixtures, and a SQLite-backed store for larger libraries.
// Both hand out *Item values, which implement value.Item, so the
// rendering core never knows which store an item came from.
package itemstore

import (
	"strconv"
	"strings"

	"github.com/funvibe/gocsl/internal/value"
)

// RawName is the YAML-friendly shape of a structured or literal name.
type RawName struct {
	Literal              string `yaml:"literal,omitempty"`
	Family               string `yaml:"family,omitempty"`
	Given                string `yaml:"given,omitempty"`
	DroppingParticles    string `yaml:"dropping-particles,omitempty"`
	NonDroppingParticles string `yaml:"non-dropping-particles,omitempty"`
	Suffix               string `yaml:"suffix,omitempty"`
	PrecedeSuffixComma   bool   `yaml:"comma-suffix,omitempty"`
}

func (n RawName) toValue() value.NameOrLiteral {
	if n.Literal != "" {
		return value.NameOrLiteral{Literal: n.Literal, IsLiteral: true}
	}
	return value.NameOrLiteral{Name: value.Name{
		Family:               n.Family,
		Given:                n.Given,
		DroppingParticles:    n.DroppingParticles,
		NonDroppingParticles: n.NonDroppingParticles,
		Suffix:               n.Suffix,
		PrecedeSuffixByComma: n.PrecedeSuffixComma,
	}}
}

// RawDate is the YAML-friendly shape of a date variable.
type RawDate struct {
	Literal   string `yaml:"literal,omitempty"`
	Raw       string `yaml:"raw,omitempty"` // "YYYY-MM-DD" or "YYYY-MM-DD/YYYY-MM-DD"
	Uncertain bool   `yaml:"circa,omitempty"`
}

// Record is one bibliographic item as loaded from a YAML fixture: a
// flat map of variable name to its raw value, plus typed name/date
// fields that need richer shapes than a bare string or number.
type Record struct {
	ID     string             `yaml:"id"`
	Type   string             `yaml:"type"`
	Text   map[string]string  `yaml:"text,omitempty"`
	Names  map[string][]RawName `yaml:"names,omitempty"`
	Dates  map[string]RawDate `yaml:"dates,omitempty"`
	Numbers map[string]string `yaml:"numbers,omitempty"`
}

// Item adapts a Record to value.Item.
type Item struct {
	rec Record
}

// NewItem wraps a Record as a value.Item.
func NewItem(rec Record) *Item { return &Item{rec: rec} }

// ID returns the item's citation key.
func (it *Item) ID() string { return it.rec.ID }

func (it *Item) Get(name string) (value.Value, bool) {
	if name == "type" {
		if it.rec.Type == "" {
			return value.Value{}, false
		}
		return value.Text(it.rec.Type), true
	}
	if s, ok := it.rec.Text[name]; ok {
		return value.Text(s), true
	}
	if s, ok := it.rec.Numbers[name]; ok {
		if nv, ok := value.ParseNumber(s); ok {
			return value.Number(nv), true
		}
		return value.Text(s), true
	}
	if d, ok := it.rec.Dates[name]; ok {
		return value.Date(parseRawDate(d)), true
	}
	if ns, ok := it.rec.Names[name]; ok {
		out := make([]value.NameOrLiteral, len(ns))
		for i, n := range ns {
			out[i] = n.toValue()
		}
		return value.Names(out), true
	}
	return value.Value{}, false
}

func (it *Item) GetAsNumber(name string) (value.Value, bool) {
	return value.DefaultGetAsNumber(it, name)
}

func (it *Item) GetAsDate(name string) (value.Value, bool) {
	return value.DefaultGetAsDate(it, name)
}

func (it *Item) GetAsNames(name string) (value.Value, bool) {
	return value.DefaultGetAsNames(it, name)
}

func parseRawDate(d RawDate) value.DateVar {
	if d.Literal != "" {
		return value.DateVar{Literal: d.Literal, Uncertain: d.Uncertain}
	}
	if d.Raw == "" {
		return value.DateVar{Uncertain: d.Uncertain}
	}
	sides := strings.SplitN(d.Raw, "/", 2)
	from := parseDateComponents(sides[0])
	dv := value.DateVar{
		YearFrom: from.year, MonthFrom: from.month, DayFrom: from.day,
		YearTo: from.year, MonthTo: from.month, DayTo: from.day,
		Uncertain: d.Uncertain,
	}
	if len(sides) == 2 {
		to := parseDateComponents(sides[1])
		dv.YearTo, dv.MonthTo, dv.DayTo = to.year, to.month, to.day
		dv.IsRange = true
	}
	return dv
}

type dateComponents struct {
	year  int32
	month int
	day   int
}

func parseDateComponents(s string) dateComponents {
	parts := strings.Split(s, "-")
	var dc dateComponents
	if len(parts) > 0 {
		dc.year = atoi32(parts[0])
	}
	if len(parts) > 1 {
		dc.month = atoi(parts[1])
	}
	if len(parts) > 2 {
		dc.day = atoi(parts[2])
	}
	return dc
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atoi32(s string) int32 { return int32(atoi(s)) }
