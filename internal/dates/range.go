package dates

import (
	"github.com/funvibe/gocsl/internal/locale"
	"github.com/funvibe/gocsl/internal/runtree"
	"github.com/funvibe/gocsl/internal/value"
)

// enDash is the literal glyph §4.8 mandates between the from and to
// sides of a collapsed date range.
const enDash = "–"

var calendarOrder = []locale.DatePartName{locale.PartYear, locale.PartMonth, locale.PartDay}

func componentValue(name locale.DatePartName, ep dateEndpoint) int {
	switch name {
	case locale.PartYear:
		return int(ep.Year)
	case locale.PartMonth:
		if ep.Month != 0 {
			return ep.Month
		}
		return int(ep.Season) + 100 // seasons and months never compare equal by accident
	case locale.PartDay:
		return ep.Day
	default:
		return 0
	}
}

// availableParts returns, among parts present in the date-parts list,
// those whose component is present (non-zero) in both endpoints.
func availableParts(parts []locale.DatePart, from, to dateEndpoint) map[locale.DatePartName]bool {
	present := make(map[locale.DatePartName]bool)
	for _, p := range parts {
		present[p.Name] = true
	}
	out := make(map[locale.DatePartName]bool)
	for _, name := range calendarOrder {
		if !present[name] {
			continue
		}
		switch name {
		case locale.PartYear:
			out[name] = from.Year != 0 && to.Year != 0
		case locale.PartMonth:
			out[name] = (from.Month != 0 || from.Season != value.SeasonNone) && (to.Month != 0 || to.Season != value.SeasonNone)
		case locale.PartDay:
			out[name] = from.Day != 0 && to.Day != 0
		}
	}
	return out
}

// differingParts returns the set of date-part names that must render
// on both sides of a collapsed range: the highest-significance unit
// (scanning Year, Month, Day) that differs between endpoints, plus
// every finer unit present in available.
func differingParts(available map[locale.DatePartName]bool, from, to dateEndpoint) map[locale.DatePartName]bool {
	highest := -1
	for i, name := range calendarOrder {
		if !available[name] {
			continue
		}
		if componentValue(name, from) != componentValue(name, to) {
			highest = i
			break
		}
	}
	out := make(map[locale.DatePartName]bool)
	if highest == -1 {
		return out
	}
	for j := highest; j < len(calendarOrder); j++ {
		name := calendarOrder[j]
		if available[name] {
			out[name] = true
		}
	}
	return out
}

func renderRange(loc locale.Provider, parts []locale.DatePart, d value.DateVar) (runtree.Result, error) {
	from := fromEndpoint(d)
	to := toEndpoint(d)

	available := availableParts(parts, from, to)
	differing := differingParts(available, from, to)

	if len(differing) == 0 {
		children, err := renderParts(loc, parts, from)
		if err != nil {
			return runtree.Result{}, err
		}
		return runtree.Result{Tag: "date", Children: children, ByVariable: true}, nil
	}

	// Shortest prefix of parts containing every differing name.
	seen := make(map[locale.DatePartName]bool)
	prefixEnd := len(parts) - 1
	for i, p := range parts {
		seen[p.Name] = true
		if containsAll(seen, differing) {
			prefixEnd = i
			break
		}
	}

	fromPrefix := parts[:prefixEnd+1]
	trailing := parts[prefixEnd+1:]

	var toParts []locale.DatePart
	for _, p := range fromPrefix {
		if differing[p.Name] {
			toParts = append(toParts, p)
		}
	}

	fromResults, err := renderParts(loc, fromPrefix, from)
	if err != nil {
		return runtree.Result{}, err
	}
	if len(fromResults) > 0 {
		fromResults[len(fromResults)-1].Suffix = ""
	}

	toResults, err := renderParts(loc, toParts, to)
	if err != nil {
		return runtree.Result{}, err
	}
	if len(toResults) > 0 {
		toResults[0].Prefix = ""
	}

	trailingResults, err := renderParts(loc, trailing, from)
	if err != nil {
		return runtree.Result{}, err
	}

	children := make([]runtree.Result, 0, len(fromResults)+1+len(toResults)+len(trailingResults))
	children = append(children, fromResults...)
	children = append(children, runtree.Result{Tag: "date-range-dash", Text: enDash})
	children = append(children, toResults...)
	children = append(children, trailingResults...)

	return runtree.Result{Tag: "date", Children: children, ByVariable: true}, nil
}

func containsAll(have, want map[locale.DatePartName]bool) bool {
	for name := range want {
		if !have[name] {
			return false
		}
	}
	return true
}
