// Package params defines the immutable formatting parameter context
// threaded down the rendering tree: font, quotes, case, delimiters,
// and name settings. A Parameters value is cheap to copy; each
// rendering element that needs to override a setting for its
// descendants does so by copying and mutating a local value, never by
// mutating a shared instance.
package params

// AndMode selects how the Name Renderer joins the last name.
type AndMode int

const (
	AndNone AndMode = iota
	AndText
	AndSymbol
)

// NameAsSortOrder controls which names in a list get inverted
// ("Family, Given").
type NameAsSortOrder int

const (
	SortOrderNone NameAsSortOrder = iota
	SortOrderFirst
	SortOrderAll
)

// NameFormat selects the overall shape of a names element's output.
type NameFormat int

const (
	NameLong NameFormat = iota
	NameShort
	NameCount
)

// DelimiterPrecedence controls whether a delimiter is inserted before
// the last name or before "et al.".
type DelimiterPrecedence int

const (
	PrecedenceAlways DelimiterPrecedence = iota
	PrecedenceNever
	PrecedenceContextual
	PrecedenceAfterInvertedName
)

// DemoteMode controls whether a non-dropping particle is demoted to
// after the given name when a name is inverted.
type DemoteMode int

const (
	DemoteDisplayAndSort DemoteMode = iota
	DemoteSortOnly
	DemoteNever
)

// PageRangeFormat selects a page-range collapsing policy (§4.7).
type PageRangeFormat int

const (
	PageRangeExpanded PageRangeFormat = iota
	PageRangeMinimal
	PageRangeMinimalTwo
	PageRangeChicago
)

// Parameters is the full set of inherited formatting/name/delimiter
// settings in effect at a point in the render tree.
type Parameters struct {
	// Formatting, inherited down the tree by child elements that don't
	// override it.
	FontStyle      string
	FontVariant    string
	FontWeight     string
	TextDecoration string
	VerticalAlign  string

	// Delimiters.
	NamesDelimiter string
	NameDelimiter  string
	SortSeparator  string

	// Name settings.
	NameFormat                NameFormat
	NameAsSortOrder           NameAsSortOrder
	And                       AndMode
	EtAlMin                   uint
	EtAlUseFirst              uint
	EtAlUseLast               bool
	DelimiterPrecedesLast     DelimiterPrecedence
	DelimiterPrecedesEtAl     DelimiterPrecedence
	Initialize                bool
	InitializeWith            string
	InitializeWithHyphen      bool
	DemoteNonDroppingParticle DemoteMode

	PageRangeFormat PageRangeFormat
}

// Default returns CSL 1.0.1's baseline parameter values.
func Default() Parameters {
	return Parameters{
		NamesDelimiter:            ", ",
		NameDelimiter:             ", ",
		SortSeparator:             ", ",
		NameFormat:                NameLong,
		NameAsSortOrder:           SortOrderNone,
		And:                       AndNone,
		EtAlMin:                   0,
		EtAlUseFirst:              1,
		DelimiterPrecedesLast:     PrecedenceContextual,
		DelimiterPrecedesEtAl:     PrecedenceContextual,
		InitializeWith:            "",
		DemoteNonDroppingParticle: DemoteDisplayAndSort,
		PageRangeFormat:           PageRangeExpanded,
	}
}

// WithFormatting returns a copy with the four inherited font
// attributes and vertical-align overridden; an empty string leaves
// the inherited value unchanged.
func (p Parameters) WithFormatting(fontStyle, fontVariant, fontWeight, textDecoration, verticalAlign string) Parameters {
	out := p
	if fontStyle != "" {
		out.FontStyle = fontStyle
	}
	if fontVariant != "" {
		out.FontVariant = fontVariant
	}
	if fontWeight != "" {
		out.FontWeight = fontWeight
	}
	if textDecoration != "" {
		out.TextDecoration = textDecoration
	}
	if verticalAlign != "" {
		out.VerticalAlign = verticalAlign
	}
	return out
}
