package elect

import "sort"

// Span is a maximal contiguous half-open run of indices, [Start, End).
type Span struct {
	Start int
	End   int
}

// Streaks views the union of the given index sets as an ascending
// sequence of maximal contiguous spans. It implements §4.3: merging is
// set union followed by re-segmentation, so
// Streaks(a) ∪ Streaks(b) == Streaks(a.indices ∪ b.indices) holds for
// any index sets a, b.
func Streaks(indexSets ...[]int) []Span {
	seen := make(map[int]struct{})
	total := 0
	for _, s := range indexSets {
		total += len(s)
	}
	all := make([]int, 0, total)
	for _, s := range indexSets {
		for _, idx := range s {
			if _, dup := seen[idx]; dup {
				continue
			}
			seen[idx] = struct{}{}
			all = append(all, idx)
		}
	}
	if len(all) == 0 {
		return nil
	}
	sort.Ints(all)

	spans := make([]Span, 0, len(all))
	start := all[0]
	prev := all[0]
	for _, idx := range all[1:] {
		if idx == prev+1 {
			prev = idx
			continue
		}
		spans = append(spans, Span{Start: start, End: prev + 1})
		start, prev = idx, idx
	}
	spans = append(spans, Span{Start: start, End: prev + 1})
	return spans
}
