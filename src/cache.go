package elect

import "strings"

// Cache is the incremental cache described in §4.5. It is keyed per
// pattern variant class (Fuzzy, Exact — the only incremental kinds),
// and within a class by the tuple of that class's pattern values.
//
// A cache entry only ever records terms that matched every pattern of
// its own class; it says nothing about other classes. Narrowing a
// Filter call's candidate set to the union of every class's best
// cached ancestor is always safe: true composite matches are a subset
// of every single class's match set, hence a subset of their union.
type Cache struct {
	buckets map[PatternKind]map[string][]Term
}

func newCache() *Cache {
	return &Cache{buckets: make(map[PatternKind]map[string][]Term)}
}

func (c *Cache) clear() {
	c.buckets = make(map[PatternKind]map[string][]Term)
}

func cacheTupleKey(values []string) string {
	return strings.Join(values, "\x00")
}

// lookup performs the "exhaust" search of §4.5: it tries the exact
// tuple first, then every shorter-or-equal ancestor tuple obtained by
// independently shrinking each value from its full length down to one
// character, enumerated rightmost-coordinate-fastest so the most
// specific ancestors are tried first. The smallest matching entry
// found wins.
func (c *Cache) lookup(kind PatternKind, values []string) ([]Term, bool) {
	bucket, ok := c.buckets[kind]
	if !ok || len(bucket) == 0 {
		return nil, false
	}

	if hit, ok := bucket[cacheTupleKey(values)]; ok {
		return hit, true
	}

	lists := make([][]string, len(values))
	for i, v := range values {
		lists[i] = prefixesDescending(v)
	}

	var best []Term
	found := false
	for _, combo := range cartesianProduct(lists) {
		entry, ok := bucket[cacheTupleKey(combo)]
		if !ok {
			continue
		}
		if !found || len(entry) < len(best) {
			best = entry
			found = true
		}
	}
	return best, found
}

// store records the result of matching values (values of every
// pattern of kind, in composite order) against the full candidate
// universe.
func (c *Cache) store(kind PatternKind, values []string, terms []Term) {
	bucket, ok := c.buckets[kind]
	if !ok {
		bucket = make(map[string][]Term)
		c.buckets[kind] = bucket
	}
	bucket[cacheTupleKey(values)] = terms
}

// prefixesDescending returns every non-empty prefix of v, longest
// first: v itself, then v minus its last rune, and so on down to its
// first rune.
func prefixesDescending(v string) []string {
	runes := []rune(v)
	if len(runes) == 0 {
		return nil
	}
	out := make([]string, 0, len(runes))
	for n := len(runes); n >= 1; n-- {
		out = append(out, string(runes[:n]))
	}
	return out
}

// cartesianProduct enumerates every combination of one element per
// input list, ordered so the last list's choice varies fastest — the
// "rightmost-first" enumeration of §4.5.
func cartesianProduct(lists [][]string) [][]string {
	if len(lists) == 0 {
		return [][]string{{}}
	}
	rest := cartesianProduct(lists[1:])
	out := make([][]string, 0, len(lists[0])*len(rest))
	for _, head := range lists[0] {
		for _, tail := range rest {
			combo := make([]string, 0, 1+len(tail))
			combo = append(combo, head)
			combo = append(combo, tail...)
			out = append(out, combo)
		}
	}
	return out
}

// classGroups buckets a composite's patterns by variant kind,
// restricted to the incremental ones (Fuzzy, Exact), preserving their
// relative order within each class.
func classGroups(patterns []Pattern) map[PatternKind][]Pattern {
	groups := make(map[PatternKind][]Pattern)
	for _, p := range patterns {
		if !p.Incremental() {
			continue
		}
		groups[p.Kind()] = append(groups[p.Kind()], p)
	}
	return groups
}

func patternValues(patterns []Pattern) []string {
	values := make([]string, len(patterns))
	for i, p := range patterns {
		values[i] = p.Value()
	}
	return values
}

// allIncremental reports whether every pattern in the composite
// participates in the incremental cache; §4.5 disables caching
// entirely for the call otherwise.
func allIncremental(patterns []Pattern) bool {
	if len(patterns) == 0 {
		return false
	}
	for _, p := range patterns {
		if !p.Incremental() {
			return false
		}
	}
	return true
}
