package runtree

import "unicode"

// Text-case mode names, matching CSL 1.0.1's text-case attribute
// values exactly so a style compiler can pass them through unchanged.
const (
	CaseLowercase       = "lowercase"
	CaseUppercase       = "uppercase"
	CaseCapitalizeFirst = "capitalize-first"
	CaseCapitalizeAll   = "capitalize-all"
	CaseTitle           = "title"
	CaseSentence        = "sentence"
)

// smallWords are skipped by English title-casing unless they are the
// first or last word of the whole run. CSL 1.0.1 gates title-case to
// English-language content; gocsl ships only English locales, so the
// gate is always open here.
var smallWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true,
	"but": true, "by": true, "down": true, "for": true, "from": true,
	"in": true, "into": true, "nor": true, "of": true, "on": true,
	"onto": true, "or": true, "over": true, "so": true, "the": true,
	"till": true, "to": true, "up": true, "via": true, "with": true,
	"yet": true,
}

// caseState tracks word-boundary and first-character state across a
// sequence of runs, so capitalize-first/title/sentence casing behave
// consistently even when the text to transform spans several
// TextRuns glued together by a macro or group.
type caseState struct {
	mode         string
	atWordStart  bool
	sawFirstChar bool
	wordBuf      []rune

	// lastRun is the final non-empty TextRun title-casing will ever
	// see, so its last word can be exempted from small-word
	// lowercasing even when isLastRun is otherwise indistinguishable
	// from any other run.
	lastRun   *TextRun
	isLastRun bool
}

func newCaseState(mode string) *caseState {
	return &caseState{mode: mode, atWordStart: true}
}

// lastTextRun finds the final non-empty, non-quoted TextRun reachable
// from children, so title-casing knows which run's trailing word is
// the last word of the whole run.
func lastTextRun(children []Run) *TextRun {
	var last *TextRun
	var walk func(r Run)
	walk = func(r Run) {
		switch v := r.(type) {
		case *TextRun:
			if v.Text != "" {
				last = v
			}
		case *ComposedRun:
			if v.Quotes {
				return
			}
			for _, ch := range v.Children {
				walk(ch)
			}
		}
	}
	for _, c := range children {
		walk(c)
	}
	return last
}

// ApplyTextCase rewrites the text of every leaf TextRun in children
// according to mode, preserving structure. Nested ComposedRuns that
// are themselves quoted are left untouched (their content is assumed
// already correctly cased, e.g. a quoted title), per §4.4's
// quote-skip rule — their raw text still advances the word-boundary
// state so casing resumes correctly afterward.
func ApplyTextCase(children []Run, mode string) []Run {
	if mode == "" {
		return children
	}
	st := newCaseState(mode)
	if mode == CaseTitle {
		st.lastRun = lastTextRun(children)
	}
	out := make([]Run, len(children))
	for i, c := range children {
		out[i] = transformRun(c, st)
	}
	return out
}

func transformRun(r Run, st *caseState) Run {
	switch v := r.(type) {
	case *TextRun:
		nv := *v
		st.isLastRun = v == st.lastRun
		nv.Text = st.transform(v.Text)
		return &nv
	case *ComposedRun:
		if v.Quotes {
			st.observe(v.PlainText())
			return v
		}
		newChildren := make([]Run, len(v.Children))
		for i, ch := range v.Children {
			newChildren[i] = transformRun(ch, st)
		}
		nv := *v
		nv.Children = newChildren
		return &nv
	default:
		return r
	}
}

// observe advances boundary state without transforming s, used for
// content whose case must not change (quoted spans).
func (st *caseState) observe(s string) {
	for _, r := range s {
		st.atWordStart = unicode.IsSpace(r) || isWordBreak(r)
		if !unicode.IsSpace(r) {
			st.sawFirstChar = true
		}
	}
}

func isWordBreak(r rune) bool {
	return r == '-' || r == '–' || r == '—' || r == '/'
}

func (st *caseState) transform(s string) string {
	switch st.mode {
	case CaseLowercase:
		return toLower(s)
	case CaseUppercase:
		return toUpper(s)
	case CaseCapitalizeFirst:
		return st.transformRunes(s, false, true)
	case CaseSentence:
		return st.transformRunes(s, true, true)
	case CaseCapitalizeAll:
		return st.transformRunes(s, false, false)
	case CaseTitle:
		return st.transformRunes(s, false, false)
	default:
		return s
	}
}

// transformRunes is the shared per-rune engine for the word-aware
// modes. lowercaseRest forces non-capitalized letters to lowercase
// (sentence case); onlyFirstEver capitalizes only the very first
// letter of the whole text (capitalize-first/sentence) rather than
// every word start (capitalize-all/title).
func (st *caseState) transformRunes(s string, lowercaseRest, onlyFirstEver bool) string {
	runes := []rune(s)

	// Split into (word, delimiter-that-follows) pieces first, so the
	// last non-empty word of the run is known up front instead of only
	// in hindsight once the loop reaches the end of the string.
	type piece struct {
		word     []rune
		delim    rune
		hasDelim bool
	}
	var pieces []piece
	var word []rune
	for _, r := range runes {
		if unicode.IsSpace(r) || isWordBreak(r) {
			pieces = append(pieces, piece{word: word, delim: r, hasDelim: true})
			word = nil
			continue
		}
		word = append(word, r)
	}
	pieces = append(pieces, piece{word: word})

	lastWordIdx := -1
	for i, p := range pieces {
		if len(p.word) > 0 {
			lastWordIdx = i
		}
	}

	skipTitle := st.mode == CaseTitle
	out := make([]rune, 0, len(runes))
	for i, p := range pieces {
		w := p.word
		if len(w) > 0 {
			isFirstWordEver := !st.sawFirstChar
			isLastWordEver := st.isLastRun && i == lastWordIdx
			capitalize := st.atWordStart
			if onlyFirstEver {
				capitalize = isFirstWordEver && st.atWordStart
			}
			if skipTitle && !isFirstWordEver && !isLastWordEver && capitalize {
				lw := string(toLowerRunes(w))
				if smallWords[lw] {
					capitalize = false
				}
			}
			if capitalize {
				w[0] = unicode.ToUpper(w[0])
				if lowercaseRest {
					for j := 1; j < len(w); j++ {
						w[j] = unicode.ToLower(w[j])
					}
				}
			} else if lowercaseRest {
				for j := range w {
					w[j] = unicode.ToLower(w[j])
				}
			}
			st.sawFirstChar = true
			st.atWordStart = false
			out = append(out, w...)
		}
		if p.hasDelim {
			out = append(out, p.delim)
			st.atWordStart = true
		}
	}
	return string(out)
}

func toLower(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return string(runes)
}

func toUpper(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToUpper(r)
	}
	return string(runes)
}

func toLowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}
