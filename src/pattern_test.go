package elect

import (
	"errors"
	"testing"
)

func TestPatternEmptyAlwaysMatchesUnhighlighted(t *testing.T) {
	for _, kind := range []PatternKind{PatternFuzzy, PatternInverseFuzzy, PatternExact, PatternInverseExact, PatternRegex} {
		p, err := newPattern(kind, "", false)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", kind, err)
		}
		if !p.IsEmpty() {
			t.Fatalf("%v: expected empty pattern", kind)
		}
		m, ok := p.BestMatch("anything")
		if !ok {
			t.Fatalf("%v: expected empty pattern to match", kind)
		}
		if m.Length() != len("anything") || len(m.Indices()) != 0 {
			t.Fatalf("%v: expected unhighlighted full-length match, got %+v", kind, m)
		}
	}
}

func TestPatternFuzzySmartCase(t *testing.T) {
	lower, _ := newPattern(PatternFuzzy, "read", false)
	if !lower.BestMatchOK("README.md") {
		t.Errorf("lowercase pattern should match case-insensitively")
	}

	upper, _ := newPattern(PatternFuzzy, "READ", false)
	if upper.BestMatchOK("readme.md") {
		t.Errorf("mixed-case pattern should match case-sensitively and fail here")
	}
	if !upper.BestMatchOK("READ_ME") {
		t.Errorf("mixed-case pattern should match identical case")
	}
}

func TestPatternFuzzyMatch(t *testing.T) {
	p, _ := newPattern(PatternFuzzy, "fb", false)
	m, ok := p.BestMatch("foo/bar.txt")
	if !ok {
		t.Fatalf("expected match")
	}
	if m.Length() != 5 {
		t.Errorf("Length = %d, want 5", m.Length())
	}
	want := []int{0, 4}
	if !intsEqual(m.Indices(), want) {
		t.Errorf("Indices = %v, want %v", m.Indices(), want)
	}
}

func TestPatternInverseFuzzy(t *testing.T) {
	p, _ := newPattern(PatternInverseFuzzy, "xyz", false)
	m, ok := p.BestMatch("abcdef")
	if !ok {
		t.Fatalf("expected inverse match to succeed when fuzzy pattern fails")
	}
	if m.Length() != len("abcdef") || len(m.Indices()) != 0 {
		t.Errorf("expected unhighlighted full match, got %+v", m)
	}

	if _, ok := p.BestMatch("xaybzc"); ok {
		t.Errorf("expected inverse match to fail when fuzzy pattern succeeds")
	}
}

func TestPatternExactMatch(t *testing.T) {
	p, _ := newPattern(PatternExact, "bar", false)
	m, ok := p.BestMatch("foobarbaz")
	if !ok {
		t.Fatalf("expected match")
	}
	if m.Length() != 3 {
		t.Errorf("Length = %d, want 3", m.Length())
	}
	want := []int{3, 4, 5}
	if !intsEqual(m.Indices(), want) {
		t.Errorf("Indices = %v, want %v", m.Indices(), want)
	}

	if _, ok := p.BestMatch("foobaz"); ok {
		t.Errorf("expected no match")
	}
}

func TestPatternInverseExact(t *testing.T) {
	p, _ := newPattern(PatternInverseExact, "bar", false)
	if _, ok := p.BestMatch("foobarbaz"); ok {
		t.Errorf("expected inverse exact to fail when substring present")
	}
	if _, ok := p.BestMatch("foobaz"); !ok {
		t.Errorf("expected inverse exact to succeed when substring absent")
	}
}

func TestPatternRegexMatch(t *testing.T) {
	p, err := newPattern(PatternRegex, "^foo", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := p.BestMatch("FooBar")
	if !ok {
		t.Fatalf("expected case-insensitive regex match")
	}
	if m.Length() != 3 {
		t.Errorf("Length = %d, want 3", m.Length())
	}
	want := []int{0, 1, 2}
	if !intsEqual(m.Indices(), want) {
		t.Errorf("Indices = %v, want %v", m.Indices(), want)
	}

	if _, ok := p.BestMatch("barfoo"); ok {
		t.Errorf("expected anchored pattern not to match")
	}
}

func TestPatternRegexBadPatternRejected(t *testing.T) {
	_, err := newPattern(PatternRegex, "[", false)
	if err == nil {
		t.Fatalf("expected error for invalid regex")
	}
	var badRegex *BadRegexError
	if !errors.As(err, &badRegex) {
		t.Errorf("expected a *BadRegexError, got %T", err)
	}
}

func TestPatternRegexBadPatternIgnored(t *testing.T) {
	p, err := newPattern(PatternRegex, "[", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := p.BestMatch("anything")
	if !ok {
		t.Fatalf("expected ignored bad regex to match everything")
	}
	if m.Length() != 0 || len(m.Indices()) != 0 {
		t.Errorf("expected zero-length, zero-highlight match, got %+v", m)
	}
}

func (p Pattern) BestMatchOK(value string) bool {
	_, ok := p.BestMatch(value)
	return ok
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
