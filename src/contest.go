package elect

import (
	"sort"

	"github.com/rcabralc/elect/src/util"
)

// Options configures a single Filter call (§6.2).
type Options struct {
	// Limit truncates the result after sorting, when non-nil.
	Limit *int
	// SortLimit controls whether sorting happens at all (§4.4):
	// nil means always sort; <=0 means never sort; >0 means sort
	// only when the matched count is smaller than SortLimit.
	SortLimit *int
	// Reverse reverses the final sequence, applied after sort and
	// limit.
	Reverse bool
	// IgnoreBadPatterns substitutes a no-op pattern for a Regex
	// sub-pattern that fails to compile, instead of aborting.
	IgnoreBadPatterns bool
	// Incremental enables the incremental cache (§4.5).
	Incremental bool
	// Debug permits diagnostic writes to the log sink.
	Debug bool
}

// Filter implements §4.4/§6.2: parse rawPattern into a composite,
// match it against every term, sort/limit/reverse per opts, and
// return the resulting CompositeMatches.
func Filter(terms []Term, rawPattern string, opts Options) ([]CompositeMatch, error) {
	patterns, err := ParsePatterns(rawPattern, opts.IgnoreBadPatterns)
	if err != nil {
		return nil, err
	}
	return filterWithPatterns(terms, patterns, opts)
}

func filterWithPatterns(terms []Term, patterns []Pattern, opts Options) ([]CompositeMatch, error) {
	matched := make([]CompositeMatch, 0, len(terms))
	for _, term := range terms {
		if cm, ok := newCompositeMatch(term, patterns); ok {
			matched = append(matched, cm)
		}
	}

	matched = applySort(matched, opts.SortLimit)

	if opts.Limit != nil && *opts.Limit < len(matched) {
		matched = matched[:util.Constrain(*opts.Limit, 0, len(matched))]
	}

	if opts.Reverse {
		reverseInPlace(matched)
	}

	return matched, nil
}

func applySort(matched []CompositeMatch, sortLimit *int) []CompositeMatch {
	switch {
	case sortLimit == nil:
		// Always sort.
	case *sortLimit <= 0:
		return matched
	case len(matched) >= *sortLimit:
		return matched
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Rank().Less(matched[j].Rank())
	})
	return matched
}

func reverseInPlace(matched []CompositeMatch) {
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
}
