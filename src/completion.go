package elect

import "strings"

// LongestCommonPrefix returns the longest common prefix of every term
// whose value begins with prefix (§6.4): prefix itself followed by the
// longest extension all those terms share. It returns prefix
// unchanged, ok=false if no term qualifies.
func LongestCommonPrefix(terms []Term, prefix string) (string, bool) {
	candidate := ""
	found := false

	for _, t := range terms {
		if !strings.HasPrefix(t.Value(), prefix) {
			continue
		}
		rest := t.Value()[len(prefix):]
		if !found {
			candidate = rest
			found = true
			continue
		}
		candidate = commonPrefix(candidate, rest)
	}

	if !found {
		return prefix, false
	}
	return prefix + candidate, true
}

// LongestCommonPrefixUntil is the separator-bounded variant of
// LongestCommonPrefix (§6.4): the extension stops right after (and
// includes) the first occurrence of sep, so completion advances one
// path segment at a time rather than jumping to the end of a shared
// run.
func LongestCommonPrefixUntil(terms []Term, prefix string, sep byte) (string, bool) {
	full, ok := LongestCommonPrefix(terms, prefix)
	if !ok {
		return prefix, false
	}
	extension := full[len(prefix):]
	if idx := strings.IndexByte(extension, sep); idx >= 0 {
		return prefix + extension[:idx+1], true
	}
	return full, true
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
