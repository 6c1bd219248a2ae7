package elect

import "unicode/utf8"

// Rank orders CompositeMatches ascending per §4.3: the sum of every
// sub-pattern's matched length, then the candidate value's own
// length, both smaller-is-better.
type Rank struct {
	TotalLength int
	ValueLength int
}

// Less reports whether r sorts before other.
func (r Rank) Less(other Rank) bool {
	if r.TotalLength != other.TotalLength {
		return r.TotalLength < other.TotalLength
	}
	return r.ValueLength < other.ValueLength
}

// Partition is one piece of a rendered value: the unmatched text
// immediately preceding a matched span, plus that span's text. A
// trailing partition may have an empty Matched string.
type Partition struct {
	Unmatched string
	Matched   string
}

// CompositeMatch is the result of matching every sub-pattern of a
// composite against a single term (§4.3). It only exists (is ever
// constructed) when all sub-patterns matched.
type CompositeMatch struct {
	Term  Term
	rank  Rank
	spans []Span
}

// newCompositeMatch attempts to match every pattern against term's
// value, returning ok=false the moment any pattern fails.
func newCompositeMatch(term Term, patterns []Pattern) (CompositeMatch, bool) {
	totalLength := 0
	indexSets := make([][]int, 0, len(patterns))

	for _, p := range patterns {
		m, ok := p.BestMatch(term.Value())
		if !ok {
			return CompositeMatch{}, false
		}
		totalLength += m.Length()
		if len(m.Indices()) > 0 {
			indexSets = append(indexSets, m.Indices())
		}
	}

	return CompositeMatch{
		Term: term,
		rank: Rank{
			TotalLength: totalLength,
			ValueLength: utf8.RuneCountInString(term.Value()),
		},
		spans: Streaks(indexSets...),
	}, true
}

// ID returns the matched term's id.
func (c CompositeMatch) ID() int {
	return c.Term.ID()
}

// Value returns the matched term's value.
func (c CompositeMatch) Value() string {
	return c.Term.Value()
}

// Rank returns the composite's sort key.
func (c CompositeMatch) Rank() Rank {
	return c.rank
}

// Spans returns the highlight spans, sorted and disjoint.
func (c CompositeMatch) Spans() []Span {
	return c.spans
}

// Partitions implements §4.3's partitioning-for-rendering walk: the
// concatenation of every partition's Unmatched+Matched reproduces
// Value() exactly (invariant #5).
func (c CompositeMatch) Partitions() []Partition {
	value := []rune(c.Value())
	if len(c.spans) == 0 {
		return []Partition{{Unmatched: string(value)}}
	}

	partitions := make([]Partition, 0, len(c.spans)+1)
	lastEnd := 0
	for _, span := range c.spans {
		partitions = append(partitions, Partition{
			Unmatched: string(value[lastEnd:span.Start]),
			Matched:   string(value[span.Start:span.End]),
		})
		lastEnd = span.End
	}
	if lastEnd < len(value) {
		partitions = append(partitions, Partition{Unmatched: string(value[lastEnd:])})
	}
	return partitions
}

// Render produces the rendering record described in §6.3.
type Render struct {
	ID         int
	Value      string
	Rank       [2]int
	Partitions []Partition
}

// Render builds the §6.3 rendering record for this composite match.
func (c CompositeMatch) Render() Render {
	return Render{
		ID:         c.ID(),
		Value:      c.Value(),
		Rank:       [2]int{c.rank.TotalLength, c.rank.ValueLength},
		Partitions: c.Partitions(),
	}
}
