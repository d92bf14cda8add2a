// Package runtree implements the in-memory result tree produced by
// rendering: text runs, composed runs carrying affixes/case/quotes,
// and the pre-composition Result shape that rendering elements build
// bottom-up before §4.4 flattens them.
package runtree

// Formatting carries the four inherited font attributes plus
// vertical-align onto a single run, the minimum a serializer needs to
// turn a run into HTML/RTF/plain text.
type Formatting struct {
	FontStyle      string
	FontVariant    string
	FontWeight     string
	TextDecoration string
	VerticalAlign  string
}

// Run is either a TextRun or a ComposedRun.
type Run interface {
	IsEmpty() bool
	IsByVariable() bool
	PlainText() string
}

// TextRun is an unstructured leaf of rendered text.
type TextRun struct {
	Text       string
	Formatting Formatting
	Empty      bool
	ByVariable bool
}

func NewTextRun(text string, f Formatting, byVariable bool) *TextRun {
	return &TextRun{Text: text, Formatting: f, Empty: text == "", ByVariable: byVariable}
}

func (t *TextRun) IsEmpty() bool      { return t.Empty || t.Text == "" }
func (t *TextRun) IsByVariable() bool { return t.ByVariable }
func (t *TextRun) PlainText() string  { return t.Text }

// ComposedRun is a flattened, immutable node of the result tree: its
// affixes, quotes and text-case have already been applied and cannot
// change.
type ComposedRun struct {
	Tag        string
	Children   []Run
	Prefix     string
	Suffix     string
	Quotes     bool
	TextCase   string
	ByVariable bool
	Formatting Formatting

	empty bool
}

func (c *ComposedRun) IsEmpty() bool      { return c.empty }
func (c *ComposedRun) IsByVariable() bool { return c.ByVariable }

func (c *ComposedRun) PlainText() string {
	var sb []byte
	sb = append(sb, c.Prefix...)
	for _, ch := range c.Children {
		sb = append(sb, ch.PlainText()...)
	}
	sb = append(sb, c.Suffix...)
	return string(sb)
}

// Result is the pre-composition shape of a rendering element's
// output: same fields as ComposedRun, but still pending affix/case/
// quote application. A leaf Result carries Text directly; a
// composite Result carries Children.
type Result struct {
	Tag        string
	Text       string
	Children   []Result
	Prefix     string
	Suffix     string
	Quotes     bool
	TextCase   string
	ByVariable bool
	Formatting Formatting
}

// Leaf builds a leaf Result wrapping literal text.
func Leaf(tag, text string, byVariable bool, f Formatting) Result {
	return Result{Tag: tag, Text: text, ByVariable: byVariable, Formatting: f}
}

// Empty is a Result that renders nothing and triggers no suppression.
func Empty(tag string) Result {
	return Result{Tag: tag}
}
