// Package diagnostics defines the error kinds raised by the rendering
// core, per the error handling design of the citation engine: small
// structs implementing error, not a shared error-code enum.
package diagnostics

import "fmt"

// LocaleNotFoundError is fatal at call start if the invariant locale
// (the final fallback in the resolution chain) is missing.
type LocaleNotFoundError struct {
	Requested string
}

func NewLocaleNotFoundError(requested string) *LocaleNotFoundError {
	return &LocaleNotFoundError{Requested: requested}
}

func (e *LocaleNotFoundError) Error() string {
	return fmt.Sprintf("locale not found: %s (and no invariant locale registered)", e.Requested)
}

// UnsupportedValueTypeError is raised when a variable was expected to
// be of one Value kind but was of another (e.g. ordinal formatting
// requested on a non-numeric variable).
type UnsupportedValueTypeError struct {
	Variable string
	Wanted   string
	Got      string
}

func NewUnsupportedValueTypeError(variable, wanted, got string) *UnsupportedValueTypeError {
	return &UnsupportedValueTypeError{Variable: variable, Wanted: wanted, Got: got}
}

func (e *UnsupportedValueTypeError) Error() string {
	return fmt.Sprintf("variable %q: wanted %s, got %s", e.Variable, e.Wanted, e.Got)
}

// UnsupportedFormatError is raised when a date-part or number format
// was requested that the locale cannot satisfy.
type UnsupportedFormatError struct {
	Kind   string
	Format string
}

func NewUnsupportedFormatError(kind, format string) *UnsupportedFormatError {
	return &UnsupportedFormatError{Kind: kind, Format: format}
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported %s format: %s", e.Kind, e.Format)
}

// CycleDetectedError is raised when the macro graph contains a cycle:
// a macro, directly or transitively, invokes itself on the same
// context.
type CycleDetectedError struct {
	MacroName string
	Chain     []string
}

func NewCycleDetectedError(macroName string, chain []string) *CycleDetectedError {
	return &CycleDetectedError{MacroName: macroName, Chain: chain}
}

func (e *CycleDetectedError) Error() string {
	return fmt.Sprintf("cycle detected evaluating macro %q (chain: %v)", e.MacroName, e.Chain)
}

// StyleCompileError is raised by the external style compiler (outside
// this core) when exactly one independent style was not provided, or
// a dependent style references an independent whose id does not
// match. The core also raises it when a compiled style is malformed:
// a layout missing for the requested mode, or a reference to an
// undefined macro. Callers that embed a compiler can report through
// the same diagnostics surface.
type StyleCompileError struct {
	Reason string
}

func NewStyleCompileError(reason string) *StyleCompileError {
	return &StyleCompileError{Reason: reason}
}

func (e *StyleCompileError) Error() string {
	return fmt.Sprintf("style compile error: %s", e.Reason)
}

// ItemRenderError wraps a failure rendering one item in a batch,
// naming the item that failed. The render stage records it and stops;
// the remaining items are not rendered.
type ItemRenderError struct {
	ItemID string
	Err    error
}

func NewItemRenderError(itemID string, err error) *ItemRenderError {
	return &ItemRenderError{ItemID: itemID, Err: err}
}

func (e *ItemRenderError) Error() string {
	return fmt.Sprintf("item %q: %s", e.ItemID, e.Err)
}

func (e *ItemRenderError) Unwrap() error { return e.Err }
