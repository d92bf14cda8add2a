package locale

// DefaultRegistry builds the registry gocsl ships out of the box:
// "en-US" and "en" as dialect/language bundles plus the mandatory
// "root" invariant, all backed by the same English term table.
func DefaultRegistry() (*Registry, error) {
	return NewRegistry(
		NewEnUS("en-US"),
		NewEnUS("en"),
		NewEnUS(InvariantCode),
	)
}
