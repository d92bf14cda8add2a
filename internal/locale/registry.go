package locale

import (
	"strings"

	"github.com/funvibe/gocsl/internal/diagnostics"
)

// InvariantCode names the mandatory fallback locale: CSL's "root"
// bundle, consulted when neither the requested dialect nor its
// language-only form is registered.
const InvariantCode = "root"

// Registry holds a set of locale providers and resolves lookups by
// the exact-dialect → language-only → invariant precedence of §3
// invariant 5.
type Registry struct {
	byCode map[string]Provider
}

// NewRegistry builds a registry from the given providers. It returns
// an error if no provider answers for InvariantCode, since §4.2
// requires the invariant locale to be mandatory.
func NewRegistry(providers ...Provider) (*Registry, error) {
	r := &Registry{byCode: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.byCode[p.Code()] = p
	}
	if _, ok := r.byCode[InvariantCode]; !ok {
		return nil, diagnostics.NewLocaleNotFoundError(InvariantCode)
	}
	return r, nil
}

// Resolve returns the best-matching provider for code: the exact
// dialect if registered, else the language-only prefix, else the
// invariant provider (always present).
func (r *Registry) Resolve(code string) (Provider, error) {
	if code == "" {
		code = InvariantCode
	}
	if p, ok := r.byCode[code]; ok {
		return p, nil
	}
	if lang, _, found := strings.Cut(code, "-"); found {
		if p, ok := r.byCode[lang]; ok {
			return p, nil
		}
	}
	if p, ok := r.byCode[InvariantCode]; ok {
		return p, nil
	}
	return nil, diagnostics.NewLocaleNotFoundError(code)
}
