package elect

import "strings"

// splitSubPatterns implements §4.1's tokenization: a raw pattern
// string is split into sub-pattern strings on unescaped spaces, with
// backslash escaping a single following character.
func splitSubPatterns(raw string) []string {
	raw = strings.TrimLeft(raw, " ")
	if raw == "" {
		return nil
	}

	// Fast path: no space and no backslash means the whole string is a
	// single sub-pattern, untouched.
	if !strings.ContainsAny(raw, " \\") {
		return []string{raw}
	}

	var sub []string
	var cur strings.Builder
	runes := []rune(raw)

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			if i+1 < len(runes) {
				cur.WriteRune(runes[i+1])
				i++
			} else {
				cur.WriteRune('\\')
			}
		case ' ':
			if cur.Len() > 0 {
				sub = append(sub, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(runes[i])
		}
	}
	if cur.Len() > 0 {
		sub = append(sub, cur.String())
	}
	return sub
}

// dispatchKind implements §4.1's prefix dispatch table, returning the
// variant the sub-pattern selects and the remaining text after the
// prefix is stripped.
func dispatchKind(sub string) (PatternKind, string) {
	switch {
	case strings.HasPrefix(sub, "!="):
		return PatternInverseExact, sub[2:]
	case strings.HasPrefix(sub, "!"):
		return PatternInverseFuzzy, sub[1:]
	case strings.HasPrefix(sub, "="):
		return PatternExact, sub[1:]
	case strings.HasPrefix(sub, "@"):
		return PatternRegex, sub[1:]
	default:
		return PatternFuzzy, sub
	}
}

// ParsePatterns turns a raw pattern string into the ordered list of
// Patterns that make up a CompositeMatch (§4.1, §4.2). Malformed
// regexes either abort parsing (returning the BadRegexError) or are
// replaced by an always-matching no-op pattern, depending on
// ignoreBadPatterns.
func ParsePatterns(raw string, ignoreBadPatterns bool) ([]Pattern, error) {
	subs := splitSubPatterns(raw)
	patterns := make([]Pattern, 0, len(subs))
	for _, sub := range subs {
		kind, text := dispatchKind(sub)
		p, err := newPattern(kind, text, ignoreBadPatterns)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}
