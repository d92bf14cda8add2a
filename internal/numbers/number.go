// Package numbers implements §4.7: single-number formatting, generic
// number ranges, and page-range collapsing.
package numbers

import (
	"github.com/funvibe/gocsl/internal/locale"
	"github.com/funvibe/gocsl/internal/params"
	"github.com/funvibe/gocsl/internal/value"
)

// Format renders a NumberVar. isPageTerm selects the page-range
// collapsing path (§4.7) when the number is a hyphen-separated range
// associated with the "page" variable.
func Format(nv value.NumberVar, format locale.NumberFormat, gender locale.Gender, loc locale.Provider, isPageTerm bool, pageRangeFormat params.PageRangeFormat) (string, error) {
	if !nv.IsRange() {
		return loc.FormatNumber(nv.Min, format, gender)
	}

	if nv.Separator == value.SepHyphen && isPageTerm {
		delim, ok := loc.Term("page-range-delimiter", locale.Long, true)
		if !ok || delim == "" {
			delim = "-"
		}
		return CollapsePageRange(nv.Min, nv.Max, pageRangeFormat, delim), nil
	}

	minStr, err := loc.FormatNumber(nv.Min, format, gender)
	if err != nil {
		return "", err
	}
	maxStr, err := loc.FormatNumber(nv.Max, format, gender)
	if err != nil {
		return "", err
	}

	var sep string
	switch nv.Separator {
	case value.SepAmpersand:
		sep = " & "
	case value.SepComma:
		sep = ", "
	default:
		sep = "-"
	}
	return minStr + sep + maxStr, nil
}
