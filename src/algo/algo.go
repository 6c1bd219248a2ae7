// Package algo implements the low-level rune-scanning algorithms used by
// the matching core: shortest-span fuzzy matching and substring (exact)
// matching.
package algo

/*

Algorithm
---------

FuzzyMatch finds, among all the fuzzy occurrences of a pattern within a
value (all characters of the pattern appearing in the value, in order,
not necessarily contiguous), the one with the smallest span.

    a_____b___abc__  To find "abc"
    *-----*-----*>   1. Forward scan from each occurrence of 'a'
             <***    2. This one wins: "abc" has zero gap

For a pattern `c0 c1 … cn-1`, we enumerate candidates starting at each
occurrence of `c0`. For each start we greedily advance to the next
occurrence of each remaining character; the span is `last - start + 1`.
We track the minimum span seen and short-circuit as soon as a span
equal to the pattern length is found, since that is optimal: no match
can consume fewer than len(pattern) runes.

Unlike the bonus-weighted scoring used by some fuzzy finders, this
algorithm does not rank matches by camelCase/word-boundary heuristics.
Ranking is purely a function of span length and, as a tie breaker,
entry length (see the composite-match rank in the elect package) — the
leftmost-starting minimal span wins ties in span length because the
forward scan visits starts in order and only replaces the current best
on a strictly shorter span.

*/

// Result carries the outcome of a successful match: the half-open
// [Start, End) window that was scanned, and Indices, the exact rune
// offsets that make up the match (always len(Indices) == len(pattern)
// for FuzzyMatch and ExactMatch).
type Result struct {
	Start   int
	End     int
	Indices []int
}

// FuzzyMatch reports whether every rune of pattern occurs in value, in
// order, and if so returns the match with the smallest span. pattern
// must be non-empty; callers handle the empty-pattern case themselves
// (it is not a matching question, see the Unhighlighted match kind).
func FuzzyMatch(value []rune, pattern []rune) (Result, bool) {
	m := len(pattern)
	n := len(value)

	bestSpan := -1
	var best Result

	indices := make([]int, m)
	for start := 0; start < n; start++ {
		if value[start] != pattern[0] {
			continue
		}
		indices[0] = start
		pos := start
		ok := true
		for pidx := 1; pidx < m; pidx++ {
			next := indexOfFrom(value, pattern[pidx], pos+1)
			if next < 0 {
				ok = false
				break
			}
			indices[pidx] = next
			pos = next
		}
		if !ok {
			// No completion exists from this start onward, and none
			// will from any later start either: the same tail is
			// required regardless of where c0 is found.
			break
		}

		span := pos - start + 1
		if bestSpan < 0 || span < bestSpan {
			bestSpan = span
			best = Result{Start: start, End: pos + 1, Indices: append([]int(nil), indices...)}
			if span == m {
				break
			}
		}
	}

	if bestSpan < 0 {
		return Result{}, false
	}
	return best, true
}

func indexOfFrom(value []rune, r rune, from int) int {
	for i := from; i < len(value); i++ {
		if value[i] == r {
			return i
		}
	}
	return -1
}

// ExactMatch reports whether pattern occurs as a contiguous substring
// of value and, if so, returns the first occurrence. pattern must be
// non-empty.
func ExactMatch(value []rune, pattern []rune) (Result, bool) {
	n, m := len(value), len(pattern)
	if n < m {
		return Result{}, false
	}

outer:
	for start := 0; start+m <= n; start++ {
		for j := 0; j < m; j++ {
			if value[start+j] != pattern[j] {
				continue outer
			}
		}
		indices := make([]int, m)
		for j := range indices {
			indices[j] = start + j
		}
		return Result{Start: start, End: start + m, Indices: indices}, true
	}
	return Result{}, false
}
