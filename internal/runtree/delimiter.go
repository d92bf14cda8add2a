package runtree

// IsEmptyResult reports whether a pre-composition Result would
// compose to an empty ComposedRun, without needing a locale provider
// (text-case and quote glyphs never turn empty content non-empty).
func IsEmptyResult(r Result) bool {
	if len(r.Children) > 0 {
		for _, c := range r.Children {
			if !IsEmptyResult(c) {
				return false
			}
		}
		return true
	}
	return r.Text == ""
}

// JoinWithDelimiter implements §4.10: interleave delimiter runs
// between non-empty items only. Delimiter runs inherit the given
// formatting. An empty delimiter leaves items untouched.
func JoinWithDelimiter(items []Result, delimiter string, formatting Formatting) []Result {
	if delimiter == "" {
		return items
	}
	out := make([]Result, 0, len(items)*2)
	seenNonEmpty := false
	for _, it := range items {
		if IsEmptyResult(it) {
			out = append(out, it)
			continue
		}
		if seenNonEmpty {
			out = append(out, Leaf("delimiter", delimiter, false, formatting))
		}
		out = append(out, it)
		seenNonEmpty = true
	}
	return out
}

// CountNonEmpty reports how many Results in items are non-empty,
// matching the testable property that delimiter count equals
// max(0, nonEmptyCount-1).
func CountNonEmpty(items []Result) int {
	n := 0
	for _, it := range items {
		if !IsEmptyResult(it) {
			n++
		}
	}
	return n
}
