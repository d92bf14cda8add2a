package style

import (
	"errors"
	"testing"

	"github.com/funvibe/gocsl/internal/dates"
	"github.com/funvibe/gocsl/internal/diagnostics"
	"github.com/funvibe/gocsl/internal/locale"
	"github.com/funvibe/gocsl/internal/logic"
	"github.com/funvibe/gocsl/internal/params"
	"github.com/funvibe/gocsl/internal/runtree"
	"github.com/funvibe/gocsl/internal/value"
)

type fakeItem struct {
	values map[string]value.Value
}

func (f fakeItem) Get(name string) (value.Value, bool) {
	v, ok := f.values[name]
	return v, ok
}
func (f fakeItem) GetAsNumber(name string) (value.Value, bool) { return value.DefaultGetAsNumber(f, name) }
func (f fakeItem) GetAsDate(name string) (value.Value, bool)   { return value.DefaultGetAsDate(f, name) }
func (f fakeItem) GetAsNames(name string) (value.Value, bool)  { return value.DefaultGetAsNames(f, name) }

func plainText(t *testing.T, r runtree.Result) string {
	t.Helper()
	return runtree.ToComposedRun(r, nil, 0).PlainText()
}

func TestConstNodeRendersFixedText(t *testing.T) {
	ctx := Context{Item: fakeItem{}, Locale: locale.NewEnUS("en-US")}
	n := ConstNode{Text: ", "}
	got, err := n.Render(ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got.Text != ", " || got.ByVariable {
		t.Errorf("got %+v", got)
	}
}

func TestVariableNodeMissingIsEmptyButByVariable(t *testing.T) {
	ctx := Context{Item: fakeItem{values: map[string]value.Value{}}, Locale: locale.NewEnUS("en-US")}
	n := VariableNode{Variable: "title"}
	got, err := n.Render(ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !got.ByVariable || got.Text != "" {
		t.Errorf("got %+v, want empty by-variable result", got)
	}
}

func TestVariableNodeRendersText(t *testing.T) {
	item := fakeItem{values: map[string]value.Value{"title": value.Text("A Tale")}}
	ctx := Context{Item: item, Locale: locale.NewEnUS("en-US")}
	n := VariableNode{Variable: "title", Quotes: true}
	got, err := n.Render(ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got.Text != "A Tale" || !got.ByVariable {
		t.Errorf("got %+v", got)
	}
}

func TestMacroRefResolvesAndRenders(t *testing.T) {
	loc := locale.NewEnUS("en-US")
	item := fakeItem{values: map[string]value.Value{"title": value.Text("A Tale")}}
	st := &Style{Macros: map[string]Node{
		"title": VariableNode{Variable: "title"},
	}}
	ctx := Context{Item: item, Locale: loc, Style: st}
	got, err := MacroRefNode{Name: "title"}.Render(ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got.Text != "A Tale" {
		t.Errorf("got %+v", got)
	}
}

func TestMacroRefMissingIsStyleCompileError(t *testing.T) {
	ctx := Context{Item: fakeItem{}, Locale: locale.NewEnUS("en-US"), Style: &Style{Macros: map[string]Node{}}}
	_, err := MacroRefNode{Name: "nope"}.Render(ctx)
	var sce *diagnostics.StyleCompileError
	if !errors.As(err, &sce) {
		t.Fatalf("want StyleCompileError, got %v (%T)", err, err)
	}
}

func TestMacroCycleIsDetected(t *testing.T) {
	loc := locale.NewEnUS("en-US")
	st := &Style{}
	st.Macros = map[string]Node{
		"a": MacroRefNode{Name: "b"},
		"b": MacroRefNode{Name: "a"},
	}
	ctx := Context{Item: fakeItem{}, Locale: loc, Style: st}
	_, err := MacroRefNode{Name: "a"}.Render(ctx)
	var cde *diagnostics.CycleDetectedError
	if !errors.As(err, &cde) {
		t.Fatalf("want CycleDetectedError, got %v (%T)", err, err)
	}
}

func TestLabelNodePluralizesFromNumericVariable(t *testing.T) {
	loc := locale.NewEnUS("en-US")
	item := fakeItem{values: map[string]value.Value{"page": value.Text("3-4")}}
	ctx := Context{Item: item, Locale: loc}
	n := LabelNode{Variable: "page", Term: "page", Pluralize: LabelContextual}
	got, err := n.Render(ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got.Text != "pages" {
		t.Errorf("got %q, want pages", got.Text)
	}
}

func TestLabelNodeSingularFromSinglePage(t *testing.T) {
	loc := locale.NewEnUS("en-US")
	item := fakeItem{values: map[string]value.Value{"page": value.Text("3")}}
	ctx := Context{Item: item, Locale: loc}
	n := LabelNode{Variable: "page", Term: "page", Pluralize: LabelContextual}
	got, err := n.Render(ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got.Text != "page" {
		t.Errorf("got %q, want page", got.Text)
	}
}

func TestGroupNodeSuppressesWhenByVariableEmpty(t *testing.T) {
	loc := locale.NewEnUS("en-US")
	item := fakeItem{values: map[string]value.Value{}}
	ctx := Context{Item: item, Locale: loc}
	n := GroupNode{Children: []Node{
		ConstNode{Text: "p. "},
		VariableNode{Variable: "page"},
	}}
	got, err := n.Render(ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if plainText(t, got) != "" {
		t.Errorf("expected suppressed group, got %q", plainText(t, got))
	}
}

func TestGroupNodeRendersWithDelimiter(t *testing.T) {
	loc := locale.NewEnUS("en-US")
	item := fakeItem{values: map[string]value.Value{
		"volume": value.Text("2"),
		"page":   value.Text("42"),
	}}
	ctx := Context{Item: item, Locale: loc}
	n := GroupNode{
		Delimiter: ", ",
		Children: []Node{
			VariableNode{Variable: "volume"},
			VariableNode{Variable: "page"},
		},
	}
	got, err := n.Render(ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := "2, 42"; plainText(t, got) != want {
		t.Errorf("got %q, want %q", plainText(t, got), want)
	}
}

func TestChooseNodeSelectsTypeBranch(t *testing.T) {
	loc := locale.NewEnUS("en-US")
	item := fakeItem{values: map[string]value.Value{"type": value.Text("chapter")}}
	ctx := Context{Item: item, Locale: loc, Choose: logic.Context{Item: item}}
	n := ChooseNode{Branches: []ChooseBranch{
		{Condition: logic.Condition{Type: []string{"chapter"}}, Children: []Node{ConstNode{Text: "In: "}}},
		{Condition: logic.Condition{}, Children: []Node{ConstNode{Text: ""}}},
	}}
	got, err := n.Render(ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if plainText(t, got) != "In: " {
		t.Errorf("got %q, want %q", plainText(t, got), "In: ")
	}
}

func TestNumberNodeRendersOrdinal(t *testing.T) {
	loc := locale.NewEnUS("en-US")
	item := fakeItem{values: map[string]value.Value{"edition": value.Number(value.NumberVar{Min: 2, Max: 2})}}
	ctx := Context{Item: item, Locale: loc}
	n := NumberNode{Variable: "edition", Format: locale.Ordinal}
	got, err := n.Render(ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got.Text == "" || !got.ByVariable {
		t.Errorf("got %+v", got)
	}
}

func TestDateNodeRendersYearMonthDay(t *testing.T) {
	loc := locale.NewEnUS("en-US")
	d := value.DateVar{YearFrom: 2020, MonthFrom: 3, DayFrom: 15, YearTo: 2020, MonthTo: 3, DayTo: 15}
	item := fakeItem{values: map[string]value.Value{"issued": value.Date(d)}}
	ctx := Context{Item: item, Locale: loc}
	n := DateNode{
		Variable:  "issued",
		Parts:     loc.DateParts(locale.NumericDate),
		Precision: dates.PrecisionYearMonthDay,
	}
	got, err := n.Render(ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if plainText(t, got) == "" {
		t.Errorf("expected non-empty date render")
	}
}

func TestNamesNodeRendersAuthorList(t *testing.T) {
	loc := locale.NewEnUS("en-US")
	item := fakeItem{values: map[string]value.Value{
		"author": value.Names([]value.NameOrLiteral{
			{Name: value.Name{Family: "Smith", Given: "John"}},
			{Name: value.Name{Family: "Doe", Given: "Jane"}},
		}),
	}}
	p := params.Parameters{NameDelimiter: ", ", And: params.AndText, DelimiterPrecedesLast: params.PrecedenceContextual, NamesDelimiter: "; "}
	ctx := Context{Item: item, Locale: loc, Params: p}
	n := NamesNode{Variables: []string{"author"}}
	got, err := n.Render(ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := "John Smith and Jane Doe"; plainText(t, got) != want {
		t.Errorf("got %q, want %q", plainText(t, got), want)
	}
}

func TestNamesNodeCountMode(t *testing.T) {
	loc := locale.NewEnUS("en-US")
	item := fakeItem{values: map[string]value.Value{
		"author": value.Names([]value.NameOrLiteral{
			{Name: value.Name{Family: "Smith"}},
			{Name: value.Name{Family: "Doe"}},
		}),
	}}
	p := params.Parameters{NameFormat: params.NameCount}
	ctx := Context{Item: item, Locale: loc, Params: p}
	n := NamesNode{Variables: []string{"author"}}
	got, err := n.Render(ctx)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got.Text != "2" {
		t.Errorf("got %q, want 2", got.Text)
	}
}
