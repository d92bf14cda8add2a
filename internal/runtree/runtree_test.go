package runtree

import (
	"testing"

	"github.com/funvibe/gocsl/internal/locale"
)

func testLocale(t *testing.T) locale.Provider {
	t.Helper()
	return locale.NewEnUS(locale.InvariantCode)
}

func TestEmptyAffixesSuppressed(t *testing.T) {
	r := Result{
		Tag:    "group",
		Prefix: "(",
		Suffix: ")",
		Children: []Result{
			Leaf("text", "", true, Formatting{}),
		},
	}
	cr := ToComposedRun(r, testLocale(t), 0)
	if !cr.IsEmpty() {
		t.Fatalf("expected empty ComposedRun")
	}
	if cr.Prefix != "" || cr.Suffix != "" {
		t.Errorf("expected no affixes on empty content, got prefix=%q suffix=%q", cr.Prefix, cr.Suffix)
	}
}

func TestNonEmptyAffixesApplied(t *testing.T) {
	r := Result{
		Tag:    "group",
		Prefix: "(",
		Suffix: ")",
		Children: []Result{
			Leaf("text", "hello", true, Formatting{}),
		},
	}
	cr := ToComposedRun(r, testLocale(t), 0)
	if cr.IsEmpty() {
		t.Fatalf("expected non-empty ComposedRun")
	}
	if cr.Prefix != "(" || cr.Suffix != ")" {
		t.Errorf("expected affixes preserved, got prefix=%q suffix=%q", cr.Prefix, cr.Suffix)
	}
}

func TestByVariablePropagatesUpward(t *testing.T) {
	r := Result{
		Tag: "group",
		Children: []Result{
			Leaf("text", "literal", false, Formatting{}),
			Leaf("text", "var", true, Formatting{}),
		},
	}
	cr := ToComposedRun(r, testLocale(t), 0)
	if !cr.ByVariable {
		t.Errorf("expected ByVariable to propagate as OR of children")
	}
}

func TestQuoteWrapping(t *testing.T) {
	r := Result{
		Tag:    "text",
		Quotes: true,
		Children: []Result{
			Leaf("text", "A Title", true, Formatting{}),
		},
	}
	cr := ToComposedRun(r, testLocale(t), 0)
	if cr.PlainText() != "“A Title”" {
		t.Errorf("PlainText() = %q, want curly-quoted", cr.PlainText())
	}
}

func TestNestedQuoteUsesInnerGlyphs(t *testing.T) {
	inner := Result{
		Tag:    "text",
		Quotes: true,
		Children: []Result{
			Leaf("text", "inner", true, Formatting{}),
		},
	}
	outer := Result{
		Tag:      "group",
		Quotes:   true,
		Children: []Result{inner},
	}
	cr := ToComposedRun(outer, testLocale(t), 0)
	if cr.PlainText() != "“‘inner’”" {
		t.Errorf("PlainText() = %q, want nested quote glyphs", cr.PlainText())
	}
}

func TestJoinWithDelimiterCount(t *testing.T) {
	items := []Result{
		Leaf("x", "a", false, Formatting{}),
		Empty("x"),
		Leaf("x", "b", false, Formatting{}),
		Leaf("x", "c", false, Formatting{}),
	}
	joined := JoinWithDelimiter(items, ", ", Formatting{})
	delimCount := 0
	for _, it := range joined {
		if it.Tag == "delimiter" {
			delimCount++
		}
	}
	want := CountNonEmpty(items) - 1
	if delimCount != want {
		t.Errorf("got %d delimiters, want %d", delimCount, want)
	}
}

func TestApplyTextCaseTitle(t *testing.T) {
	children := []Run{NewTextRun("the lord of the rings", Formatting{}, true)}
	out := ApplyTextCase(children, CaseTitle)
	got := out[0].PlainText()
	want := "The Lord of the Rings"
	if got != want {
		t.Errorf("title case = %q, want %q", got, want)
	}
}

func TestApplyTextCaseTitleCapitalizesTrailingSmallWord(t *testing.T) {
	children := []Run{NewTextRun("what are you waiting for", Formatting{}, true)}
	out := ApplyTextCase(children, CaseTitle)
	got := out[0].PlainText()
	want := "What Are You Waiting For"
	if got != want {
		t.Errorf("title case = %q, want %q", got, want)
	}
}

func TestApplyTextCaseSentence(t *testing.T) {
	children := []Run{NewTextRun("THE LORD OF THE RINGS", Formatting{}, true)}
	out := ApplyTextCase(children, CaseSentence)
	got := out[0].PlainText()
	want := "The lord of the rings"
	if got != want {
		t.Errorf("sentence case = %q, want %q", got, want)
	}
}
