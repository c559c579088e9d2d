package morse

import (
	"strings"
	"unicode"
)

// Validate accepts raw when it has non-whitespace content and every
// character, in either case, is in the symbol table. Only the emptiness
// check looks at the trimmed text; surrounding whitespace is checked and
// returned as-is.
func Validate(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", newEmptyInput()
	}

	if bad := unsupported(raw); len(bad) > 0 {
		return "", newUnsupported(bad)
	}

	return raw, nil
}

// unsupported collects each distinct character of s that has no code.
func unsupported(s string) []rune {
	var bad []rune
	seen := make(map[rune]struct{})
	for _, c := range s {
		if _, ok := table[unicode.ToUpper(c)]; ok {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		bad = append(bad, c)
	}
	return bad
}
