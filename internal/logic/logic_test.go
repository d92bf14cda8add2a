package logic

import (
	"testing"

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

// TestGroupSuppressionMissingPage mirrors scenario 6: a literal "p. "
// and a by-variable "page" text, with page missing — the whole group
// must suppress, including the literal.
func TestGroupSuppressionMissingPage(t *testing.T) {
	literal := runtree.Leaf("text", "p. ", false, runtree.Formatting{})
	missingVar := runtree.Result{Tag: "text", ByVariable: true} // page absent: empty, but marked by-variable

	children := []runtree.Result{literal, missingVar}
	if !Suppressed(children) {
		t.Fatal("expected group to be suppressed when its only by-variable descendant is empty")
	}

	got := BuildGroup(children, "", "", "", runtree.Formatting{})
	cr := runtree.ToComposedRun(got, nil, 0)
	if !cr.IsEmpty() {
		t.Errorf("expected composed group to be empty, got %q", cr.PlainText())
	}
}

// TestGroupNotSuppressedWithoutByVariableDescendant covers invariant 2's
// second half: a group with no by-variable descendants renders even
// if every child is empty.
func TestGroupNotSuppressedWithoutByVariableDescendant(t *testing.T) {
	children := []runtree.Result{
		{Tag: "text", Text: ""},
		{Tag: "text", Text: ""},
	}
	if Suppressed(children) {
		t.Fatal("group with no by-variable descendants must never be suppressed")
	}
}

// TestGroupRendersWhenByVariableDescendantNonEmpty checks the positive
// case: a present page value keeps the whole group, literal included.
func TestGroupRendersWhenByVariableDescendantNonEmpty(t *testing.T) {
	literal := runtree.Leaf("text", "p. ", false, runtree.Formatting{})
	page := runtree.Leaf("text", "42", true, runtree.Formatting{})

	got := BuildGroup([]runtree.Result{literal, page}, "", "", "", runtree.Formatting{})
	cr := runtree.ToComposedRun(got, nil, 0)
	if cr.IsEmpty() {
		t.Fatal("expected group to render when its by-variable descendant is non-empty")
	}
	if cr.PlainText() != "p. 42" {
		t.Errorf("got %q, want %q", cr.PlainText(), "p. 42")
	}
}

func TestChooseSelectsFirstMatchingBranch(t *testing.T) {
	item := fakeItem{values: map[string]value.Value{
		"type": value.Text("book"),
	}}
	ctx := Context{Item: item}

	branches := []Branch{
		{
			Condition: Condition{Type: []string{"chapter"}},
			Render: func(Context) (runtree.Result, error) {
				return runtree.Leaf("text", "chapter branch", false, runtree.Formatting{}), nil
			},
		},
		{
			Condition: Condition{Type: []string{"book"}},
			Render: func(Context) (runtree.Result, error) {
				return runtree.Leaf("text", "book branch", false, runtree.Formatting{}), nil
			},
		},
		{
			Condition: Condition{}, // else
			Render: func(Context) (runtree.Result, error) {
				return runtree.Leaf("text", "else branch", false, runtree.Formatting{}), nil
			},
		},
	}

	got, err := Select(ctx, branches)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got.Text != "book branch" {
		t.Errorf("got %q, want %q", got.Text, "book branch")
	}
}

func TestChooseFallsThroughToElse(t *testing.T) {
	item := fakeItem{values: map[string]value.Value{"type": value.Text("webpage")}}
	ctx := Context{Item: item}

	branches := []Branch{
		{Condition: Condition{Type: []string{"book"}}, Render: func(Context) (runtree.Result, error) {
			return runtree.Leaf("text", "book", false, runtree.Formatting{}), nil
		}},
		{Condition: Condition{}, Render: func(Context) (runtree.Result, error) {
			return runtree.Leaf("text", "else", false, runtree.Formatting{}), nil
		}},
	}
	got, err := Select(ctx, branches)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got.Text != "else" {
		t.Errorf("got %q, want else", got.Text)
	}
}

func TestChooseIsNumericCondition(t *testing.T) {
	item := fakeItem{values: map[string]value.Value{"volume": value.Text("12")}}
	ctx := Context{Item: item}
	branches := []Branch{
		{Condition: Condition{IsNumeric: []string{"volume"}}, Render: func(Context) (runtree.Result, error) {
			return runtree.Leaf("text", "numeric", false, runtree.Formatting{}), nil
		}},
		{Condition: Condition{}, Render: func(Context) (runtree.Result, error) {
			return runtree.Leaf("text", "not-numeric", false, runtree.Formatting{}), nil
		}},
	}
	got, err := Select(ctx, branches)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got.Text != "numeric" {
		t.Errorf("got %q, want numeric", got.Text)
	}
}

func TestChoosePositionCondition(t *testing.T) {
	ctx := Context{Item: fakeItem{values: map[string]value.Value{}}, Position: "subsequent"}
	branches := []Branch{
		{Condition: Condition{Position: []string{"first"}}, Render: func(Context) (runtree.Result, error) {
			return runtree.Leaf("text", "first", false, runtree.Formatting{}), nil
		}},
		{Condition: Condition{Position: []string{"subsequent", "ibid"}}, Render: func(Context) (runtree.Result, error) {
			return runtree.Leaf("text", "subsequent", false, runtree.Formatting{}), nil
		}},
	}
	got, err := Select(ctx, branches)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got.Text != "subsequent" {
		t.Errorf("got %q, want subsequent", got.Text)
	}
}
