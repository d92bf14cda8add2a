package names

import (
	"strings"

	"github.com/funvibe/gocsl/internal/locale"
	"github.com/funvibe/gocsl/internal/params"
	"github.com/funvibe/gocsl/internal/runtree"
	"github.com/funvibe/gocsl/internal/value"
)

func isApostrophe(r rune) bool { return r == '\'' || r == '’' || r == '‘' }

// joinTokens space-joins non-empty tokens, except it omits the space
// when the preceding token ends with an apostrophe-like character or
// the following token begins with a comma (a comma-prefixed suffix).
func joinTokens(tokens ...string) string {
	var kept []string
	for _, t := range tokens {
		if t != "" {
			kept = append(kept, t)
		}
	}
	var sb strings.Builder
	for i, t := range kept {
		if i > 0 {
			prevRunes := []rune(kept[i-1])
			prevLast := prevRunes[len(prevRunes)-1]
			if !isApostrophe(prevLast) && !strings.HasPrefix(t, ",") {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(t)
	}
	return sb.String()
}

func literalOrFormatted(entry value.NameOrLiteral, p params.Parameters, invert bool) string {
	if entry.IsLiteral {
		return entry.Literal
	}
	return FormatOneName(entry.Name, p, invert)
}

// FormatOneName renders a single structured Name per §4.9's Long/Short
// form and inversion rules. Name-part text-case is intentionally left
// to the caller (a names element may request text-case on the whole
// rendered name, applied afterward by the Result's own TextCase).
func FormatOneName(n value.Name, p params.Parameters, invert bool) string {
	given := n.Given
	if p.InitializeWith != "" && n.Family != "" && given != "" {
		given = Initialize(given, p.InitializeWith, p.Initialize, p.InitializeWithHyphen)
	}

	suffixToken := n.Suffix
	if n.PrecedeSuffixByComma && suffixToken != "" {
		suffixToken = ", " + suffixToken
	}

	if p.NameFormat == params.NameShort {
		return joinTokens(n.NonDroppingParticles, n.Family)
	}

	if !invert {
		return joinTokens(given, n.DroppingParticles, n.NonDroppingParticles, n.Family, suffixToken)
	}

	sortSep := p.SortSeparator
	if sortSep == "" {
		sortSep = ", "
	}
	if p.DemoteNonDroppingParticle == params.DemoteDisplayAndSort {
		rest := joinTokens(given, n.DroppingParticles, n.NonDroppingParticles)
		out := n.Family + sortSep + rest
		if suffixToken != "" {
			out += sortSep + strings.TrimPrefix(suffixToken, ", ")
		}
		return out
	}
	famPart := joinTokens(n.NonDroppingParticles, n.Family)
	rest := joinTokens(given, n.DroppingParticles)
	out := famPart + sortSep + rest
	if suffixToken != "" {
		out += sortSep + strings.TrimPrefix(suffixToken, ", ")
	}
	return out
}

// shouldInvert reports whether the name at index i (0-based) inverts,
// per name_as_sort_order.
func shouldInvert(order params.NameAsSortOrder, i int) bool {
	switch order {
	case params.SortOrderAll:
		return true
	case params.SortOrderFirst:
		return i == 0
	default:
		return false
	}
}

// RenderCount implements the Count mode of §4.9: the contribution of
// one variable group when et al. truncation would apply, summed by
// the caller across groups.
func RenderCount(p params.Parameters, names []value.NameOrLiteral) int {
	n := len(names)
	if uint(n) >= p.EtAlMin && p.EtAlMin > 0 {
		shown := int(p.EtAlUseFirst)
		if shown < n {
			return shown
		}
	}
	return n
}

// RenderNameList implements the regular (Long/Short) rendering of
// §4.9: et al. truncation, inversion, delimiters, "and", and the
// ellipsis form of et_al_use_last.
func RenderNameList(loc locale.Provider, p params.Parameters, list []value.NameOrLiteral) (runtree.Result, error) {
	n := len(list)
	if n == 0 {
		return runtree.Result{Tag: "names", ByVariable: true}, nil
	}

	etAlActive := p.EtAlMin > 0 && uint(n) >= p.EtAlMin
	delta := 0
	shown := n
	if etAlActive {
		shown = int(p.EtAlUseFirst) + 1
		delta = 1
		if shown > n {
			shown = n
		}
	}
	displayCount := shown - delta
	if displayCount < 0 {
		displayCount = 0
	}
	if displayCount > n {
		displayCount = n
	}

	type rendered struct {
		text     string
		inverted bool
	}
	items := make([]rendered, 0, displayCount+1)
	for i := 0; i < displayCount; i++ {
		inv := shouldInvert(p.NameAsSortOrder, i)
		items = append(items, rendered{text: literalOrFormatted(list[i], p, inv), inverted: inv})
	}

	includeLast := etAlActive && p.EtAlUseLast && n > displayCount
	if includeLast {
		inv := shouldInvert(p.NameAsSortOrder, n-1)
		items = append(items, rendered{text: literalOrFormatted(list[n-1], p, inv), inverted: inv})
	}

	var sb strings.Builder
	for i, it := range items {
		if i == 0 {
			sb.WriteString(it.text)
			continue
		}
		isLastItem := i == len(items)-1
		prevInverted := items[i-1].inverted

		switch {
		case isLastItem && includeLast && etAlActive:
			sb.WriteString(" … ")
			sb.WriteString(it.text)
		case isLastItem && etAlActive && !includeLast:
			// Truncated list: the last shown name is followed by "et
			// al.", not "and", so it only gets the plain delimiter.
			sb.WriteString(p.NameDelimiter)
			sb.WriteString(it.text)
		case isLastItem && !etAlActive:
			writeJoin(&sb, loc, p, shown, prevInverted)
			sb.WriteString(it.text)
		default:
			sb.WriteString(p.NameDelimiter)
			sb.WriteString(it.text)
		}
	}

	if etAlActive && !includeLast {
		precedes := precedesDelimiter(p.DelimiterPrecedesEtAl, shown, items[len(items)-1].inverted)
		if precedes {
			sb.WriteString(p.NameDelimiter)
		} else {
			sb.WriteString(" ")
		}
		etAl, _ := loc.Term("et-al", locale.Long, false)
		if etAl == "" {
			etAl = "et al."
		}
		sb.WriteString(etAl)
	}

	return runtree.Result{Tag: "names", Text: sb.String(), ByVariable: true}, nil
}

// writeJoin emits the delimiter/and-term sequence joining the final
// shown name (not et al., not et_al_use_last), per §4.9.
func writeJoin(sb *strings.Builder, loc locale.Provider, p params.Parameters, totalCount int, prevInverted bool) {
	if p.And == params.AndNone {
		sb.WriteString(p.NameDelimiter)
		return
	}
	precedes := precedesDelimiter(p.DelimiterPrecedesLast, totalCount, prevInverted)
	if precedes {
		sb.WriteString(p.NameDelimiter)
	} else {
		sb.WriteString(" ")
	}
	if p.And == params.AndSymbol {
		and, _ := loc.Term("and", locale.Symbol, false)
		if and == "" {
			and = "&"
		}
		sb.WriteString(and + " ")
	} else {
		and, _ := loc.Term("and", locale.Long, false)
		if and == "" {
			and = "and"
		}
		sb.WriteString(and + " ")
	}
}

// precedesDelimiter evaluates a DelimiterPrecedence against
// (count > 2, previous-name-inverted) as defined in §4.9 for both
// delimiter_precedes_last and delimiter_precedes_et_al. count is the
// "shown" value (et_al_use_first+1 when et al. is active, else N) —
// not the raw length of the name list.
func precedesDelimiter(mode params.DelimiterPrecedence, count int, prevInverted bool) bool {
	switch mode {
	case params.PrecedenceAlways:
		return true
	case params.PrecedenceNever:
		return false
	case params.PrecedenceAfterInvertedName:
		return prevInverted
	default: // Contextual
		return count > 2
	}
}

// RenderLabel implements the "Label on the Group" rule: a localized,
// pluralized term appended after a rendered name list.
func RenderLabel(loc locale.Provider, term string, n int, pluralMode LabelPluralMode, prefix, suffix, textCase string) runtree.Result {
	plural := false
	switch pluralMode {
	case LabelAlways:
		plural = true
	case LabelContextual:
		plural = n != 1
	case LabelNever:
		plural = false
	}
	text, _ := loc.Term(term, locale.Long, plural)
	return runtree.Result{Tag: "names-label", Text: text, Prefix: prefix, Suffix: suffix, TextCase: textCase, ByVariable: true}
}

// LabelPluralMode mirrors the Label element's pluralize attribute.
type LabelPluralMode int

const (
	LabelAlways LabelPluralMode = iota
	LabelContextual
	LabelNever
)
