package elect

import "testing"

func filterOK(t *testing.T, terms []Term, raw string, opts Options) []CompositeMatch {
	t.Helper()
	matches, err := Filter(terms, raw, opts)
	if err != nil {
		t.Fatalf("Filter(%q): %v", raw, err)
	}
	return matches
}

func values(matches []CompositeMatch) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Value()
	}
	return out
}

func TestContestScenario1FuzzyMultipleTerms(t *testing.T) {
	terms := BuildTerms([]string{"foo/bar.txt", "foo/baz.txt", "zoo/bar.txt"})
	matches := filterOK(t, terms, "fb", Options{})
	got := values(matches)
	// zoo/bar.txt has no 'f' at all, so it cannot satisfy a fuzzy "fb"
	// search; only the two foo/ entries qualify, tied on span length
	// and value length, so insertion order breaks the tie.
	want := []string{"foo/bar.txt", "foo/baz.txt"}
	if !stringsEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestContestScenario2SmartCase(t *testing.T) {
	terms := BuildTerms([]string{"README.md", "readme.txt", "readable"})
	matches := filterOK(t, terms, "READ", Options{})
	got := values(matches)
	want := []string{"README.md"}
	if !stringsEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	if matches[0].Rank().TotalLength != 4 {
		t.Errorf("TotalLength = %d, want 4", matches[0].Rank().TotalLength)
	}
}

func TestContestScenario3InverseFuzzy(t *testing.T) {
	// epsilon is the only term without an 'a'.
	terms := BuildTerms([]string{"alpha", "epsilon", "gamma"})
	matches := filterOK(t, terms, "!a", Options{})
	got := values(matches)
	want := []string{"epsilon"}
	if !stringsEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if len(matches[0].Spans()) != 0 {
		t.Errorf("expected unhighlighted match, got spans %v", matches[0].Spans())
	}
}

func TestContestScenario4ExactPlusFuzzy(t *testing.T) {
	terms := BuildTerms([]string{"main.rs", "main.go", "util.rs"})
	matches := filterOK(t, terms, "=main .rs", Options{})
	got := values(matches)
	want := []string{"main.rs"}
	if !stringsEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestContestScenario6BadRegex(t *testing.T) {
	terms := BuildTerms([]string{"one", "two"})

	matches := filterOK(t, terms, "@[", Options{IgnoreBadPatterns: true})
	if len(matches) != 2 {
		t.Errorf("expected all terms to match with bad regex ignored, got %v", values(matches))
	}

	if _, err := Filter(terms, "@[", Options{IgnoreBadPatterns: false}); err == nil {
		t.Errorf("expected BadRegex error")
	}
}

func TestContestSortLimitDisablesSorting(t *testing.T) {
	terms := BuildTerms([]string{"zzz_a", "a"})
	limit := 1
	matches := filterOK(t, terms, "a", Options{SortLimit: &limit})
	got := values(matches)
	want := []string{"zzz_a", "a"}
	if !stringsEqual(got, want) {
		t.Errorf("order = %v, want arrival order %v (count >= sort_limit)", got, want)
	}
}

func TestContestSortLimitNegativeNeverSorts(t *testing.T) {
	terms := BuildTerms([]string{"zzz_a", "a"})
	never := -1
	matches := filterOK(t, terms, "a", Options{SortLimit: &never})
	got := values(matches)
	want := []string{"zzz_a", "a"}
	if !stringsEqual(got, want) {
		t.Errorf("order = %v, want arrival order %v", got, want)
	}
}

func TestContestLimitAndReverse(t *testing.T) {
	terms := BuildTerms([]string{"a", "aa", "aaa"})
	limit := 2
	matches := filterOK(t, terms, "a", Options{Limit: &limit, Reverse: true})
	got := values(matches)
	want := []string{"aa", "a"}
	if !stringsEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestContestDeterministic(t *testing.T) {
	terms := BuildTerms([]string{"foo", "fob", "bar", "foobar"})
	first := filterOK(t, terms, "fo", Options{})
	second := filterOK(t, terms, "fo", Options{})
	if !stringsEqual(values(first), values(second)) {
		t.Errorf("non-deterministic output: %v vs %v", values(first), values(second))
	}
}
