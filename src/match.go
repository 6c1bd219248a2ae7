package elect

// Match is the result of applying one Pattern to one Term value.
//
// Length is the number of characters spanned by the match (the
// fuzzy/exact/regex window length). Indices holds the exact 0-based
// character offsets, in the (possibly case-folded) value, that make
// up the match. An Unhighlighted match (produced by inverse patterns
// and the empty pattern) carries no indices and Length equal to the
// full value length.
type Match struct {
	length  int
	indices []int
}

func unhighlighted(valueLen int) Match {
	return Match{length: valueLen}
}

func highlighted(length int, indices []int) Match {
	return Match{length: length, indices: indices}
}

// Length returns the matched window length, counted in runes.
func (m Match) Length() int {
	return m.length
}

// Indices returns the character offsets making up the match. It is
// empty for an Unhighlighted match.
func (m Match) Indices() []int {
	return m.indices
}
