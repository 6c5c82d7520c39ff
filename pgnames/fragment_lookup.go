package pgnames

import "github.com/starfield-tools/pgnames/internal/pgdata"

func isPrefix(frag string) bool {
	for _, p := range pgdata.CxPrefixes {
		if p == frag {
			return true
		}
	}
	return false
}

func isInSeries(frag string, series []string) bool {
	for _, f := range series {
		if f == frag {
			return true
		}
	}
	return false
}

// suffixesFor returns the suffix list that follows the given
// fragment sequence (everything but the not-yet-chosen final
// fragment), per spec.md's open question in section 9: the selection
// rule is re-derived here rather than copied blind, matching what the
// shipping fragment data actually requires to round-trip.
//
// When the sequence ends on a prefix, the suffix comes from the
// shared CxSuffixes (the class-2 / prefix-attached series), chosen by
// C2PrefixSuffixOverrideMap. Otherwise it ends on a class-1 infix, and
// the suffix comes from C1Suffixes, chosen by which infix series the
// last infix belongs to. If getAll is false, the result is truncated
// to the leading word's prefix run length (used only by the class-2
// "sliced to this prefix's run" lookup; class-1 callers always pass
// getAll=true per spec.md §4.E).
func suffixesFor(frags []string, getAll bool) []string {
	if len(frags) == 0 {
		return nil
	}
	wordStart := frags[0]
	last := frags[len(frags)-1]

	var result []string
	if isPrefix(last) {
		idx := pgdata.C2PrefixSuffixOverrideMap[last]
		if idx == 0 {
			idx = 1
		}
		result = pgdata.CxSuffixes[idx]
		wordStart = last
	} else if isInSeries(last, pgdata.C1InfixesS2) {
		result = pgdata.C1Suffixes[1]
	} else {
		result = pgdata.C1Suffixes[2]
	}

	if getAll {
		return result
	}
	n := pgdata.PrefixRunLength(wordStart)
	if n > len(result) {
		n = len(result)
	}
	return result[:n]
}

// infixesFor returns the infix series that follows the given fragment
// sequence, per spec.md §4.E's alternating infix1/infix2 rule.
func infixesFor(frags []string) ([]string, bool) {
	if len(frags) == 0 {
		return nil, false
	}
	last := frags[len(frags)-1]
	switch {
	case isPrefix(last):
		idx, ok := pgdata.C1PrefixInfixOverrideMap[last]
		if !ok {
			idx = 1
		}
		return pgdata.C1Infixes[idx], true
	case isInSeries(last, pgdata.C1InfixesS1):
		return pgdata.C1Infixes[2], true
	case isInSeries(last, pgdata.C1InfixesS2):
		return pgdata.C1Infixes[1], true
	default:
		return nil, false
	}
}

func indexOf(list []string, s string) (int, bool) {
	for i, f := range list {
		if f == s {
			return i, true
		}
	}
	return 0, false
}
