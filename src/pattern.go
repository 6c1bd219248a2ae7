package elect

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/rcabralc/elect/src/algo"
)

// PatternKind tags the matching semantics of a parsed sub-pattern, per
// §4.1's prefix dispatch table.
type PatternKind int

const (
	PatternFuzzy PatternKind = iota
	PatternInverseFuzzy
	PatternExact
	PatternInverseExact
	PatternRegex
)

// String returns a short name for the pattern kind, mostly useful for
// debug logging and test output.
func (k PatternKind) String() string {
	switch k {
	case PatternFuzzy:
		return "fuzzy"
	case PatternInverseFuzzy:
		return "!fuzzy"
	case PatternExact:
		return "="
	case PatternInverseExact:
		return "!="
	case PatternRegex:
		return "@"
	default:
		return "?"
	}
}

// Pattern is a single parsed sub-pattern: a variant tag plus whatever
// smart-case/compiled-regex metadata its variant needs (§3).
type Pattern struct {
	kind          PatternKind
	value         string // Value(): case-folded if insensitive
	runes         []rune
	length        int // rune count of the pattern text, 0 for the empty pattern
	caseSensitive bool
	re            *regexp.Regexp // only for PatternRegex; nil means "disabled, matches everything"
}

// newPattern builds a Pattern of the given kind from its (already
// prefix-stripped) text. ignoreBadPatterns controls what happens when
// kind is PatternRegex and text fails to compile (§7 BadRegex).
func newPattern(kind PatternKind, text string, ignoreBadPatterns bool) (Pattern, error) {
	if kind == PatternRegex {
		return newRegexPattern(text, ignoreBadPatterns)
	}
	return newTextPattern(kind, text), nil
}

func newTextPattern(kind PatternKind, text string) Pattern {
	length := utf8.RuneCountInString(text)
	if length == 0 {
		return Pattern{kind: kind}
	}

	// Smart case (§3): an all-lowercase pattern matches
	// case-insensitively, and is itself folded to lowercase; anything
	// else matches case-sensitively, unchanged.
	lower := strings.ToLower(text)
	caseSensitive := lower != text
	value := text
	if !caseSensitive {
		value = lower
	}

	return Pattern{
		kind:          kind,
		value:         value,
		runes:         []rune(value),
		length:        length,
		caseSensitive: caseSensitive,
	}
}

func newRegexPattern(text string, ignoreBadPatterns bool) (Pattern, error) {
	length := utf8.RuneCountInString(text)
	if length == 0 {
		return Pattern{kind: PatternRegex}, nil
	}

	// Regex patterns are always case-insensitive and Unicode-aware,
	// regardless of smart case (§4.2).
	re, err := regexp.Compile("(?i)" + text)
	if err != nil {
		if ignoreBadPatterns {
			return Pattern{kind: PatternRegex, value: text, length: length}, nil
		}
		return Pattern{}, &BadRegexError{Pattern: text, cause: err}
	}

	return Pattern{kind: PatternRegex, value: text, length: length, re: re}, nil
}

// Kind returns the pattern's variant tag.
func (p Pattern) Kind() PatternKind {
	return p.kind
}

// Value returns the pattern text as stored (case-folded if the
// pattern matches case-insensitively).
func (p Pattern) Value() string {
	return p.value
}

// Len returns the rune length of the pattern text.
func (p Pattern) Len() int {
	return p.length
}

// IsEmpty reports whether this is the empty pattern, which (per §3 and
// §4.2) matches every non-empty value as a zero-highlight full match,
// for every variant including the inverses.
func (p Pattern) IsEmpty() bool {
	return p.length == 0
}

// Incremental reports whether this pattern class participates in the
// incremental cache (§3, §4.5): Fuzzy and Exact do, because extending
// them can only shrink the result set; the inverses and Regex do not.
func (p Pattern) Incremental() bool {
	switch p.kind {
	case PatternFuzzy, PatternExact:
		return true
	default:
		return false
	}
}

// BestMatch implements §4.2's best_match for whichever variant this
// Pattern is.
func (p Pattern) BestMatch(value string) (Match, bool) {
	if p.IsEmpty() {
		return unhighlighted(utf8.RuneCountInString(value)), true
	}

	switch p.kind {
	case PatternFuzzy:
		return p.fuzzyMatch(value)

	case PatternInverseFuzzy:
		if _, ok := p.fuzzyMatch(value); ok {
			return Match{}, false
		}
		return unhighlighted(utf8.RuneCountInString(value)), true

	case PatternExact:
		return p.exactMatch(value)

	case PatternInverseExact:
		if _, ok := p.exactMatch(value); ok {
			return Match{}, false
		}
		return unhighlighted(utf8.RuneCountInString(value)), true

	case PatternRegex:
		return p.regexMatch(value)
	}

	return Match{}, false
}

func (p Pattern) fold(value string) []rune {
	if !p.caseSensitive {
		value = strings.ToLower(value)
	}
	return []rune(value)
}

func (p Pattern) fuzzyMatch(value string) (Match, bool) {
	res, ok := algo.FuzzyMatch(p.fold(value), p.runes)
	if !ok {
		return Match{}, false
	}
	return highlighted(res.End-res.Start, res.Indices), true
}

func (p Pattern) exactMatch(value string) (Match, bool) {
	res, ok := algo.ExactMatch(p.fold(value), p.runes)
	if !ok {
		return Match{}, false
	}
	return highlighted(p.length, res.Indices), true
}

func (p Pattern) regexMatch(value string) (Match, bool) {
	if p.re == nil {
		// Malformed regex, substituted per ignore_bad_patterns (§7):
		// matches everything, contributes no highlight and no rank
		// weight.
		return Match{}, true
	}

	loc := p.re.FindStringIndex(value)
	if loc == nil {
		return Match{}, false
	}

	start := utf8.RuneCountInString(value[:loc[0]])
	length := utf8.RuneCountInString(value[loc[0]:loc[1]])
	indices := make([]int, length)
	for i := range indices {
		indices[i] = start + i
	}
	return highlighted(length, indices), true
}

// BadRegexError reports that a Regex sub-pattern failed to compile
// (§7). It is only ever returned when ignore_bad_patterns is false.
type BadRegexError struct {
	Pattern string
	cause   error
}

func (e *BadRegexError) Error() string {
	return errors.Wrapf(e.cause, "bad regex pattern %q", e.Pattern).Error()
}

func (e *BadRegexError) Unwrap() error {
	return e.cause
}
