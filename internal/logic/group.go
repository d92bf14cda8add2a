// Package logic implements §4.5: Group's implicit suppression rule
// and Choose's branch selection.
package logic

import "github.com/funvibe/gocsl/internal/runtree"

func hasByVariableDescendant(r runtree.Result) bool {
	if r.ByVariable {
		return true
	}
	for _, c := range r.Children {
		if hasByVariableDescendant(c) {
			return true
		}
	}
	return false
}

func hasNonEmptyByVariableDescendant(r runtree.Result) bool {
	if r.ByVariable && !runtree.IsEmptyResult(r) {
		return true
	}
	for _, c := range r.Children {
		if hasNonEmptyByVariableDescendant(c) {
			return true
		}
	}
	return false
}

// Suppressed reports whether a group's children trigger §4.5's
// suppression rule: at least one by-variable descendant exists, and
// every such descendant is empty.
func Suppressed(children []runtree.Result) bool {
	hasBV := false
	hasNonEmptyBV := false
	for _, c := range children {
		if hasByVariableDescendant(c) {
			hasBV = true
		}
		if hasNonEmptyByVariableDescendant(c) {
			hasNonEmptyBV = true
		}
	}
	return hasBV && !hasNonEmptyBV
}

// BuildGroup implements the Group rendering element: suppression,
// then delimiter interleaving (§4.10), then prefix/suffix wrapping.
func BuildGroup(children []runtree.Result, delimiter, prefix, suffix string, f runtree.Formatting) runtree.Result {
	if Suppressed(children) {
		return runtree.Empty("group")
	}

	byVariable := false
	for _, c := range children {
		if hasNonEmptyByVariableDescendant(c) || (c.ByVariable && hasByVariableDescendant(c)) {
			byVariable = true
			break
		}
	}

	joined := runtree.JoinWithDelimiter(children, delimiter, f)
	return runtree.Result{
		Tag:        "group",
		Children:   joined,
		Prefix:     prefix,
		Suffix:     suffix,
		Formatting: f,
		ByVariable: byVariable,
	}
}
