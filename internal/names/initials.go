package names

import (
	"strings"
	"unicode"
)

func splitGivenTokens(given string) []string {
	fields := strings.FieldsFunc(given, func(r rune) bool {
		return r == ' ' || r == '.'
	})
	return fields
}

func firstRuneUpper(s string) string {
	for _, r := range s {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// Initialize reduces a given name to initials per §4.9. family and
// given must both be non-empty for a style to invoke this at all; the
// caller is responsible for that guard.
func Initialize(given, initializeWith string, initialize, initializeWithHyphen bool) string {
	tokens := splitGivenTokens(given)
	var sb strings.Builder
	for _, tok := range tokens {
		runeCount := len([]rune(tok))
		switch {
		case runeCount == 1:
			sb.WriteString(strings.ToUpper(tok))
			sb.WriteString(initializeWith)
		case !initialize:
			sb.WriteString(tok)
			sb.WriteString(" ")
		case initializeWithHyphen && containsCompoundSeparator(tok):
			subtokens := splitCompound(tok)
			initials := make([]string, 0, len(subtokens))
			for _, st := range subtokens {
				if st == "" {
					continue
				}
				initials = append(initials, firstRuneUpper(st))
			}
			sb.WriteString(strings.Join(initials, strings.TrimSpace(initializeWith)+"-"))
			sb.WriteString(initializeWith)
		default:
			sb.WriteString(firstRuneUpper(tok))
			sb.WriteString(initializeWith)
		}
	}
	return strings.TrimSpace(sb.String())
}

func containsCompoundSeparator(s string) bool {
	return strings.ContainsAny(s, "-_–")
}

func splitCompound(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == '–'
	})
}
