// Package dates implements §4.8: localized and non-localized date
// rendering, precision filtering, and date-range collapsing.
package dates

import (
	"strconv"

	"github.com/funvibe/gocsl/internal/diagnostics"
	"github.com/funvibe/gocsl/internal/locale"
	"github.com/funvibe/gocsl/internal/runtree"
	"github.com/funvibe/gocsl/internal/value"
)

// Precision controls which date parts are eligible to render.
type Precision int

const (
	PrecisionYear Precision = iota
	PrecisionYearMonth
	PrecisionYearMonthDay
)

// PartOverride overrides a locale date part's format/text-case by
// name; the locale keeps ownership of that part's prefix/suffix.
type PartOverride struct {
	Name      locale.DatePartName
	Format    locale.DatePartRenderFormat
	TextCase  string
	HasFormat bool
}

// MergeParts combines a locale's date-part layout with scope-local
// overrides: overrides replace Format/TextCase for the named part;
// the locale's Prefix/Suffix are always kept.
func MergeParts(localeParts []locale.DatePart, overrides []PartOverride) []locale.DatePart {
	out := make([]locale.DatePart, len(localeParts))
	copy(out, localeParts)
	for i, p := range out {
		for _, o := range overrides {
			if o.Name != p.Name {
				continue
			}
			if o.HasFormat {
				p.Format = o.Format
			}
			p.TextCase = o.TextCase
			out[i] = p
		}
	}
	return out
}

// FilterByPrecision drops date parts finer than the date's known
// precision.
func FilterByPrecision(parts []locale.DatePart, precision Precision) []locale.DatePart {
	out := make([]locale.DatePart, 0, len(parts))
	for _, p := range parts {
		switch p.Name {
		case locale.PartYear:
			out = append(out, p)
		case locale.PartMonth:
			if precision >= PrecisionYearMonth {
				out = append(out, p)
			}
		case locale.PartDay:
			if precision >= PrecisionYearMonthDay {
				out = append(out, p)
			}
		}
	}
	return out
}

// dateEndpoint is one side (from or to) of a DateVar, normalized to
// plain ints/season so both non-range and range dates share the same
// rendering path.
type dateEndpoint struct {
	Year   int32
	Month  int
	Day    int
	Season value.Season
}

func fromEndpoint(d value.DateVar) dateEndpoint {
	return dateEndpoint{Year: d.YearFrom, Month: d.MonthFrom, Day: d.DayFrom, Season: d.SeasonFrom}
}

func toEndpoint(d value.DateVar) dateEndpoint {
	return dateEndpoint{Year: d.YearTo, Month: d.MonthTo, Day: d.DayTo, Season: d.SeasonTo}
}

// Render renders a structured DateVar (literal dates are rendered as
// a single by-variable text leaf) using parts, honoring precision and
// collapsing ranges per §4.8.
func Render(loc locale.Provider, parts []locale.DatePart, d value.DateVar, precision Precision) (runtree.Result, error) {
	if d.IsLiteral() {
		return runtree.Result{Tag: "date", Text: d.Literal, ByVariable: true}, nil
	}

	kept := FilterByPrecision(parts, precision)

	if !d.IsRange {
		children, err := renderParts(loc, kept, fromEndpoint(d))
		if err != nil {
			return runtree.Result{}, err
		}
		return runtree.Result{Tag: "date", Children: children, ByVariable: true}, nil
	}

	return renderRange(loc, kept, d)
}

func renderParts(loc locale.Provider, parts []locale.DatePart, ep dateEndpoint) ([]runtree.Result, error) {
	out := make([]runtree.Result, 0, len(parts))
	for _, p := range parts {
		text, err := formatPart(loc, p, ep)
		if err != nil {
			return nil, err
		}
		out = append(out, runtree.Result{
			Tag:        "date-part",
			Text:       text,
			Prefix:     p.Prefix,
			Suffix:     p.Suffix,
			TextCase:   p.TextCase,
			ByVariable: true,
		})
	}
	return out, nil
}

func formatPart(loc locale.Provider, p locale.DatePart, ep dateEndpoint) (string, error) {
	switch p.Name {
	case locale.PartYear:
		return formatYear(loc, p, ep.Year)
	case locale.PartMonth:
		return formatMonth(loc, p, ep.Month, ep.Season)
	case locale.PartDay:
		return formatDay(loc, p, ep.Day, ep.Month)
	default:
		return "", diagnostics.NewUnsupportedFormatError("date-part", "unknown")
	}
}

func formatYear(loc locale.Provider, p locale.DatePart, year int32) (string, error) {
	if year == 0 {
		return "", nil
	}
	abs := year
	if abs < 0 {
		abs = -abs
	}
	if p.Format == locale.PartShort {
		s := strconv.FormatInt(int64(abs%100), 10)
		if len(s) < 2 {
			s = "0" + s
		}
		return s, nil
	}
	text := strconv.FormatInt(int64(abs), 10)
	if year < 0 {
		if term, ok := loc.Term("bc", locale.Long, false); ok {
			text += " " + term
		}
	} else if year > 0 && year < 1000 {
		if term, ok := loc.Term("ad", locale.Long, false); ok {
			text += " " + term
		}
	}
	return text, nil
}

func monthTermName(n int) string {
	names := [...]string{
		1: "month-01", 2: "month-02", 3: "month-03", 4: "month-04",
		5: "month-05", 6: "month-06", 7: "month-07", 8: "month-08",
		9: "month-09", 10: "month-10", 11: "month-11", 12: "month-12",
	}
	return names[n]
}

func seasonTermName(s value.Season) string {
	switch s {
	case value.SeasonSpring:
		return "season-01"
	case value.SeasonSummer:
		return "season-02"
	case value.SeasonAutumn:
		return "season-03"
	case value.SeasonWinter:
		return "season-04"
	default:
		return ""
	}
}

func formatMonth(loc locale.Provider, p locale.DatePart, month int, season value.Season) (string, error) {
	if month == 0 {
		if season == value.SeasonNone {
			return "", nil
		}
		name := seasonTermName(season)
		if name == "" {
			return "", nil
		}
		term, _ := loc.Term(name, locale.Long, false)
		return term, nil
	}
	switch p.Format {
	case locale.PartNumeric:
		return strconv.Itoa(month), nil
	case locale.PartNumericLeadingZeros:
		if month < 10 {
			return "0" + strconv.Itoa(month), nil
		}
		return strconv.Itoa(month), nil
	case locale.PartShort:
		term, ok := loc.Term(monthTermName(month), locale.Short, false)
		if !ok {
			term, _ = loc.Term(monthTermName(month), locale.Long, false)
		}
		return term, nil
	default: // Long (and Ordinal, which months don't meaningfully use)
		term, _ := loc.Term(monthTermName(month), locale.Long, false)
		return term, nil
	}
}

func formatDay(loc locale.Provider, p locale.DatePart, day int, month int) (string, error) {
	if day == 0 {
		return "", nil
	}
	switch p.Format {
	case locale.PartNumericLeadingZeros:
		if day < 10 {
			return "0" + strconv.Itoa(day), nil
		}
		return strconv.Itoa(day), nil
	case locale.PartOrdinal:
		if loc.LimitDayOrdinalsToDay1() && day != 1 {
			return strconv.Itoa(day), nil
		}
		gender := locale.GenderUnspecified
		if month != 0 {
			if g, ok := loc.TermGender(monthTermName(month)); ok {
				gender = g
			}
		}
		return loc.FormatOrdinal(uint32(day), gender), nil
	default:
		return strconv.Itoa(day), nil
	}
}
