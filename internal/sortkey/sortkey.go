// Package sortkey implements §4.11: per-item sort-key generation from
// a variable or macro, and the stable sort built on top of it.
package sortkey

import (
	"fmt"
	"sort"
	"strings"

	"github.com/funvibe/gocsl/internal/runtree"
	"github.com/funvibe/gocsl/internal/value"
)

// FromText implements the Text-variable sort key: the text itself.
func FromText(s string) string { return s }

// FromDate implements the Date-variable sort key: "YYYYMMDD-YYYYMMDD"
// with zeroes for unknown parts.
func FromDate(d value.DateVar) string {
	if d.IsLiteral() {
		return d.Literal
	}
	return fmt.Sprintf("%04d%02d%02d-%04d%02d%02d",
		clampYear(d.YearFrom), d.MonthFrom, d.DayFrom,
		clampYear(d.YearTo), d.MonthTo, d.DayTo)
}

func clampYear(y int32) int32 {
	if y < 0 {
		return 0
	}
	return y
}

// FromNumber implements the open-question default for a Number
// sort key: zero-padded decimal of min, then max, since the source
// left numeric sort keys unspecified (§9).
func FromNumber(n value.NumberVar) string {
	return fmt.Sprintf("%010d-%010d", n.Min, n.Max)
}

// FromNames implements the Names-variable sort key: comma-separated
// per-name "family given droppingParticles nonDroppingParticles
// suffix", skipping empty components, joined by spaces.
func FromNames(names []value.NameOrLiteral) string {
	parts := make([]string, len(names))
	for i, n := range names {
		if n.IsLiteral {
			parts[i] = n.Literal
			continue
		}
		fields := []string{n.Name.Family, n.Name.Given, n.Name.DroppingParticles, n.Name.NonDroppingParticles, n.Name.Suffix}
		nonEmpty := make([]string, 0, len(fields))
		for _, f := range fields {
			if f != "" {
				nonEmpty = append(nonEmpty, f)
			}
		}
		parts[i] = strings.Join(nonEmpty, " ")
	}
	return strings.Join(parts, ", ")
}

// FromValue dispatches a resolved Value to its sort-key string, or
// "" when v is the zero value of a missing variable.
func FromValue(v value.Value, present bool) string {
	if !present {
		return ""
	}
	switch v.Kind {
	case value.KindText:
		return FromText(v.Text)
	case value.KindNumber:
		return FromNumber(v.Num)
	case value.KindDate:
		return FromDate(v.Date)
	case value.KindNames:
		return FromNames(v.Names)
	default:
		return ""
	}
}

// FromComposedMacro strips formatting from an already-composed macro
// run and returns its plain text, per the by-macro sort-key rule.
func FromComposedMacro(cr *runtree.ComposedRun) string {
	return cr.PlainText()
}

// Comparator is a user-supplied, typically locale-aware collator over
// sort-key strings.
type Comparator func(a, b string) int

// Entry pairs an opaque payload with its generated sort keys (most
// significant first).
type Entry struct {
	Payload any
	Keys    []string
}

// Sort stably orders entries by comparing their Keys lexicographically
// (key 0 first, falling through to key 1 on ties, and so on), using
// cmp for each individual key comparison. Entries with identical keys
// retain their input order (invariant 6 / scenario "sort stability").
func Sort(entries []Entry, cmp Comparator) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Keys, entries[j].Keys
		for k := 0; k < len(a) && k < len(b); k++ {
			if c := cmp(a[k], b[k]); c != 0 {
				return c < 0
			}
		}
		return false
	})
}
