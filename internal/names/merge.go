// Package names implements §4.9: name-list variable grouping/merging,
// et al. truncation, inversion, particle handling, initialization, and
// the count mode of the Name Renderer.
package names

import (
	"strings"

	"github.com/funvibe/gocsl/internal/value"
)

// VariableGroup is one requested names variable's resolved value:
// which variable it came from, which term names it (for labeling and
// page/gender-style lookups), and its name list.
type VariableGroup struct {
	Variable string
	Term     string
	Names    []value.NameOrLiteral
}

// stringifyForCompare renders a name list the same way the Sort
// Layer does (§4.11), so editor/translator equality checks use the
// same notion of "the same people" as sorting does.
func stringifyForCompare(names []value.NameOrLiteral) string {
	parts := make([]string, len(names))
	for i, n := range names {
		if n.IsLiteral {
			parts[i] = n.Literal
			continue
		}
		fields := []string{n.Name.Family, n.Name.Given, n.Name.DroppingParticles, n.Name.NonDroppingParticles, n.Name.Suffix}
		nonEmpty := make([]string, 0, len(fields))
		for _, f := range fields {
			if f != "" {
				nonEmpty = append(nonEmpty, f)
			}
		}
		parts[i] = strings.Join(nonEmpty, " ")
	}
	return strings.Join(parts, ", ")
}

// MergeEditorTranslator implements the editor-translator merge: when
// both an "editor" and "translator" group are present with identical
// name sequences, they collapse into one "editor-translator"-tagged
// group at the former editor's position.
func MergeEditorTranslator(groups []VariableGroup) []VariableGroup {
	editorIdx, translatorIdx := -1, -1
	for i, g := range groups {
		switch g.Variable {
		case "editor":
			editorIdx = i
		case "translator":
			translatorIdx = i
		}
	}
	if editorIdx == -1 || translatorIdx == -1 {
		return groups
	}
	if stringifyForCompare(groups[editorIdx].Names) != stringifyForCompare(groups[translatorIdx].Names) {
		return groups
	}

	merged := VariableGroup{
		Variable: "editor-translator",
		Term:     "editortranslator",
		Names:    groups[editorIdx].Names,
	}
	out := make([]VariableGroup, 0, len(groups)-1)
	for i, g := range groups {
		switch i {
		case translatorIdx:
			continue
		case editorIdx:
			out = append(out, merged)
		default:
			out = append(out, g)
		}
	}
	return out
}
