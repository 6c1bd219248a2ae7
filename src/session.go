package elect

// Session owns one immutable candidate list plus the mutable
// incremental cache built up across the keystrokes of a single
// filtering session (§5, §4.5). It is the synchronous entry point a
// caller's event loop drives once per keystroke.
type Session struct {
	terms []Term
	cache *Cache
}

// NewSession builds a Session over the given ordered candidate lines
// (§6.1: empty lines dropped, ids assigned from 1).
func NewSession(lines []string) *Session {
	return &Session{
		terms: BuildTerms(lines),
		cache: newCache(),
	}
}

// Reset replaces the candidate list and purges the incremental cache
// (§4.5 "Clear").
func (s *Session) Reset(lines []string) {
	s.terms = BuildTerms(lines)
	s.cache.clear()
}

// Terms returns the session's current candidate list.
func (s *Session) Terms() []Term {
	return s.terms
}

// Filter implements §6.2 for this session: it parses rawPattern,
// consults the incremental cache to narrow the candidate set when
// eligible, matches, sorts/limits/reverses per opts, and — for an
// eligible composite — records the refreshed per-class cache entries.
func (s *Session) Filter(rawPattern string, opts Options) ([]CompositeMatch, error) {
	patterns, err := ParsePatterns(rawPattern, opts.IgnoreBadPatterns)
	if err != nil {
		return nil, err
	}

	cacheEligible := opts.Incremental && allIncremental(patterns)

	candidates := s.terms
	if cacheEligible {
		candidates = s.narrow(patterns)
		Debugf(opts.Debug, "elect: narrowed %d candidates to %d via incremental cache for %q", len(s.terms), len(candidates), rawPattern)
	}

	matched, err := filterWithPatterns(candidates, patterns, opts)
	if err != nil {
		return nil, err
	}

	if cacheEligible {
		s.refresh(patterns)
	}

	Debugf(opts.Debug, "elect: %q matched %d of %d terms", rawPattern, len(matched), len(s.terms))

	return matched, nil
}

// narrow restricts the candidate set to the union of every present
// variant class's best cached ancestor superset, falling back to the
// full candidate list when no class has anything cached yet.
func (s *Session) narrow(patterns []Pattern) []Term {
	groups := classGroups(patterns)
	if len(groups) == 0 {
		return s.terms
	}

	union := make(map[int]struct{})
	anyHit := false
	for kind, group := range groups {
		terms, found := s.cache.lookup(kind, patternValues(group))
		if !found {
			continue
		}
		anyHit = true
		for _, t := range terms {
			union[t.ID()] = struct{}{}
		}
	}
	if !anyHit {
		return s.terms
	}

	out := make([]Term, 0, len(union))
	for _, t := range s.terms {
		if _, ok := union[t.ID()]; ok {
			out = append(out, t)
		}
	}
	return out
}

// refresh re-evaluates each present variant class against the full
// candidate universe and stores the result under its exact tuple of
// pattern values.
func (s *Session) refresh(patterns []Pattern) {
	groups := classGroups(patterns)
	for kind, group := range groups {
		matched, err := filterWithPatterns(s.terms, group, Options{})
		if err != nil {
			continue
		}
		terms := make([]Term, len(matched))
		for i, m := range matched {
			terms[i] = m.Term
		}
		s.cache.store(kind, patternValues(group), terms)
	}
}
