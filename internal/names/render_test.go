package names

import (
	"testing"

	"github.com/funvibe/gocsl/internal/locale"
	"github.com/funvibe/gocsl/internal/params"
	"github.com/funvibe/gocsl/internal/value"
)

func familyList(names ...string) []value.NameOrLiteral {
	out := make([]value.NameOrLiteral, len(names))
	for i, n := range names {
		out[i] = value.NameOrLiteral{Name: value.Name{Family: n}}
	}
	return out
}

func TestEtAlTruncationNoDelimiterBeforeEtAl(t *testing.T) {
	loc := locale.NewEnUS(locale.InvariantCode)
	p := params.Default()
	p.EtAlMin = 2
	p.EtAlUseFirst = 1
	p.And = params.AndText
	p.DelimiterPrecedesEtAl = params.PrecedenceContextual

	list := familyList("Smith", "Jones")
	res, err := RenderNameList(loc, p, list)
	if err != nil {
		t.Fatalf("RenderNameList: %v", err)
	}
	want := "Smith et al."
	if res.Text != want {
		t.Errorf("got %q, want %q", res.Text, want)
	}
}

// TestNamesWithEtAlScenario renders the documented scenario verbatim:
// four family names, et_al_min=3, et_al_use_first=1 — the delimiter
// before "et al." is suppressed because the shown count (2) is not
// greater than 2, not because the full name count (4) isn't.
func TestNamesWithEtAlScenario(t *testing.T) {
	loc := locale.NewEnUS(locale.InvariantCode)
	p := params.Default()
	p.EtAlMin = 3
	p.EtAlUseFirst = 1
	p.And = params.AndText
	p.DelimiterPrecedesEtAl = params.PrecedenceContextual
	p.NameDelimiter = ", "

	list := familyList("Smith", "Jones", "Brown", "Green")
	res, err := RenderNameList(loc, p, list)
	if err != nil {
		t.Fatalf("RenderNameList: %v", err)
	}
	want := "Smith et al."
	if res.Text != want {
		t.Errorf("got %q, want %q", res.Text, want)
	}
}

func TestEtAlTruncationDelimiterWhenMoreThanTwo(t *testing.T) {
	loc := locale.NewEnUS(locale.InvariantCode)
	p := params.Default()
	p.EtAlMin = 4
	p.EtAlUseFirst = 3
	p.And = params.AndText
	p.DelimiterPrecedesEtAl = params.PrecedenceContextual

	list := familyList("Smith", "Jones", "Clark", "Adams")
	res, err := RenderNameList(loc, p, list)
	if err != nil {
		t.Fatalf("RenderNameList: %v", err)
	}
	want := "Smith, Jones, Clark, et al."
	if res.Text != want {
		t.Errorf("got %q, want %q", res.Text, want)
	}
}

func TestAndJoinTwoNames(t *testing.T) {
	loc := locale.NewEnUS(locale.InvariantCode)
	p := params.Default()
	p.And = params.AndText
	p.DelimiterPrecedesLast = params.PrecedenceContextual

	list := familyList("Smith", "Jones")
	res, err := RenderNameList(loc, p, list)
	if err != nil {
		t.Fatalf("RenderNameList: %v", err)
	}
	want := "Smith and Jones"
	if res.Text != want {
		t.Errorf("got %q, want %q", res.Text, want)
	}
}

func TestAndJoinThreeNamesGetsDelimiterBeforeAnd(t *testing.T) {
	loc := locale.NewEnUS(locale.InvariantCode)
	p := params.Default()
	p.And = params.AndText
	p.DelimiterPrecedesLast = params.PrecedenceContextual

	list := familyList("Smith", "Jones", "Clark")
	res, err := RenderNameList(loc, p, list)
	if err != nil {
		t.Fatalf("RenderNameList: %v", err)
	}
	want := "Smith, Jones, and Clark"
	if res.Text != want {
		t.Errorf("got %q, want %q", res.Text, want)
	}
}

func TestInvertedNameDisplayAndSortDemote(t *testing.T) {
	p := params.Default()
	p.NameAsSortOrder = params.SortOrderAll
	n := value.Name{Family: "Beethoven", Given: "Ludwig", NonDroppingParticles: "van"}
	got := FormatOneName(n, p, true)
	want := "Beethoven, Ludwig van"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInvertedNameSortOnlyKeepsParticleWithFamily(t *testing.T) {
	p := params.Default()
	p.NameAsSortOrder = params.SortOrderAll
	p.DemoteNonDroppingParticle = params.DemoteSortOnly
	n := value.Name{Family: "Beethoven", Given: "Ludwig", NonDroppingParticles: "van"}
	got := FormatOneName(n, p, true)
	want := "van Beethoven, Ludwig"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLongFormNotInverted(t *testing.T) {
	p := params.Default()
	n := value.Name{Family: "Beethoven", Given: "Ludwig", NonDroppingParticles: "van"}
	got := FormatOneName(n, p, false)
	want := "Ludwig van Beethoven"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestShortFormOmitsGiven(t *testing.T) {
	p := params.Default()
	p.NameFormat = params.NameShort
	n := value.Name{Family: "Beethoven", Given: "Ludwig", NonDroppingParticles: "van"}
	got := FormatOneName(n, p, false)
	want := "van Beethoven"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSuffixPrecededByComma(t *testing.T) {
	p := params.Default()
	n := value.Name{Family: "King", Given: "Martin Luther", Suffix: "Jr.", PrecedeSuffixByComma: true}
	got := FormatOneName(n, p, false)
	want := "Martin Luther King, Jr."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApostropheJoinSkipsSpace(t *testing.T) {
	p := params.Default()
	n := value.Name{Family: "Brien", Given: "Conan", NonDroppingParticles: "O’"}
	got := FormatOneName(n, p, false)
	want := "Conan O’Brien"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInitializeAppliedToGiven(t *testing.T) {
	p := params.Default()
	p.Initialize = true
	p.InitializeWith = ". "
	n := value.Name{Family: "Smith", Given: "John Robert"}
	got := FormatOneName(n, p, false)
	want := "J. R. Smith"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInitializeWithAppliesToSingleLetterGivenEvenWhenInitializeFalse(t *testing.T) {
	p := params.Default()
	p.Initialize = false
	p.InitializeWith = "."
	n := value.Name{Family: "Smith", Given: "J"}
	got := FormatOneName(n, p, false)
	want := "J. Smith"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInitializeFalseKeepsLongerGivenTokensWhole(t *testing.T) {
	p := params.Default()
	p.Initialize = false
	p.InitializeWith = "."
	n := value.Name{Family: "Dupont", Given: "Jean-Paul"}
	got := FormatOneName(n, p, false)
	want := "Jean-Paul Dupont"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCountMode(t *testing.T) {
	p := params.Default()
	p.EtAlMin = 3
	p.EtAlUseFirst = 1
	list := familyList("Smith", "Jones", "Clark")
	if got := RenderCount(p, list); got != 1 {
		t.Errorf("RenderCount = %d, want 1", got)
	}

	small := familyList("Smith", "Jones")
	if got := RenderCount(p, small); got != 2 {
		t.Errorf("RenderCount below et_al_min = %d, want 2", got)
	}
}

func TestMergeEditorTranslatorSamePeople(t *testing.T) {
	shared := []value.NameOrLiteral{{Name: value.Name{Family: "Doe", Given: "Jane"}}}
	groups := []VariableGroup{
		{Variable: "editor", Term: "editor", Names: shared},
		{Variable: "translator", Term: "translator", Names: shared},
	}
	merged := MergeEditorTranslator(groups)
	if len(merged) != 1 {
		t.Fatalf("expected a single merged group, got %d", len(merged))
	}
	if merged[0].Variable != "editor-translator" || merged[0].Term != "editortranslator" {
		t.Errorf("unexpected merged group: %+v", merged[0])
	}
}

func TestMergeEditorTranslatorDifferentPeopleUnmerged(t *testing.T) {
	groups := []VariableGroup{
		{Variable: "editor", Term: "editor", Names: []value.NameOrLiteral{{Name: value.Name{Family: "Doe"}}}},
		{Variable: "translator", Term: "translator", Names: []value.NameOrLiteral{{Name: value.Name{Family: "Roe"}}}},
	}
	merged := MergeEditorTranslator(groups)
	if len(merged) != 2 {
		t.Errorf("expected groups to remain separate, got %d", len(merged))
	}
}

func TestRenderLabelPluralization(t *testing.T) {
	loc := locale.NewEnUS(locale.InvariantCode)
	single := RenderLabel(loc, "editor", 1, LabelContextual, " (", ")", "")
	if single.Text != "editor" {
		t.Errorf("singular label = %q, want editor", single.Text)
	}
	plural := RenderLabel(loc, "editor", 2, LabelContextual, " (", ")", "")
	if plural.Text != "editors" {
		t.Errorf("plural label = %q, want editors", plural.Text)
	}
}
