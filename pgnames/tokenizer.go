package pgnames

import (
	"sort"
	"strings"
	"sync"

	"github.com/starfield-tools/pgnames/internal/pgdata"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// expectedFragmentLimit is the fragment count of an ordinary sector
// name; GetFragments rejects longer sequences unless allowLong is set.
const expectedFragmentLimit = 4

var (
	fragmentAlphabetOnce sync.Once
	fragmentAlphabet     []string
	titleCaser           = cases.Title(language.Und)
)

// buildFragmentAlphabet unions every fragment series and sorts it
// longest-first, so the tokenizer's greedy longest-match-first scan
// never prefers a short fragment ("Eo") over a longer one that shares
// its prefix ("Eoch"). Sorting at load time, once, is mandatory per
// spec.md's design notes.
func buildFragmentAlphabet() {
	var all []string
	all = append(all, pgdata.CxPrefixes...)
	all = append(all, pgdata.C1InfixesS1...)
	all = append(all, pgdata.C1InfixesS2...)
	all = append(all, pgdata.CxSuffixes[1]...)
	all = append(all, pgdata.CxSuffixes[2]...)
	all = append(all, pgdata.C1Suffixes[1]...)
	all = append(all, pgdata.C1Suffixes[2]...)

	seen := make(map[string]bool, len(all))
	dedup := all[:0:0]
	for _, f := range all {
		if seen[f] {
			continue
		}
		seen[f] = true
		dedup = append(dedup, f)
	}
	sort.SliceStable(dedup, func(i, j int) bool {
		return len(dedup[i]) > len(dedup[j])
	})
	fragmentAlphabet = dedup
}

func fragments() []string {
	fragmentAlphabetOnce.Do(buildFragmentAlphabet)
	return fragmentAlphabet
}

// GetFragments splits a sector-name string into its ordered phoneme
// fragments, e.g. "Dryawsy Eoeoe" -> ["Dry","awsy","Eo","eoe"]. It returns
// false if the name cannot be fully consumed by the fragment alphabet,
// or (unless allowLong is set) if doing so takes more than four
// fragments.
func GetFragments(sectorName string, allowLong bool) ([]string, bool) {
	s := strings.ReplaceAll(titleCaser.String(sectorName), " ", "")

	var segments []string
	for len(s) > 0 {
		found := false
		for _, frag := range fragments() {
			if strings.HasPrefix(s, frag) {
				segments = append(segments, frag)
				s = s[len(frag):]
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	if len(segments) == 0 {
		return nil, false
	}
	if !allowLong && len(segments) > expectedFragmentLimit {
		return nil, false
	}
	return segments, true
}
