package pgnames

import (
	"sync"

	"github.com/starfield-tools/pgnames/internal/pgdata"
)

// runOffset is a fragment's position within its series' overall run:
// it owns indices [Base, Base+Length).
type runOffset struct {
	Base, Length int
}

func (r runOffset) contains(idx int) bool {
	return idx >= r.Base && idx < r.Base+r.Length
}

var (
	offsetsOnce sync.Once

	// prefixOffsets maps each prefix fragment to its slot within the
	// CxPrefixTotalRunLength-long prefix run.
	prefixOffsets map[string]runOffset

	// c1InfixOffsets maps each class-1 infix fragment (across both
	// series) to its slot within its series' total run length.
	c1InfixOffsets map[string]runOffset
)

// buildOffsets accumulates run lengths in table order, exactly as
// spec.md §5 describes: a one-time pass building prefix_offsets and
// c1_infix_offsets by accumulating run lengths in list order.
func buildOffsets() {
	prefixOffsets = make(map[string]runOffset, len(pgdata.CxPrefixes))
	cnt := 0
	for _, p := range pgdata.CxPrefixes {
		l := pgdata.PrefixRunLength(p)
		prefixOffsets[p] = runOffset{cnt, l}
		cnt += l
	}

	c1InfixOffsets = make(map[string]runOffset, len(pgdata.C1InfixesS1)+len(pgdata.C1InfixesS2))
	cnt = 0
	for _, i := range pgdata.C1InfixesS1 {
		l := pgdata.InfixRunLength(i)
		c1InfixOffsets[i] = runOffset{cnt, l}
		cnt += l
	}
	cnt = 0
	for _, i := range pgdata.C1InfixesS2 {
		l := pgdata.InfixRunLength(i)
		c1InfixOffsets[i] = runOffset{cnt, l}
		cnt += l
	}
}

func ensureOffsets() {
	offsetsOnce.Do(buildOffsets)
}

// findRunAmong returns the fragment among candidates whose run contains idx.
func findRunAmong(candidates []string, offsets map[string]runOffset, idx int) (string, bool) {
	for _, c := range candidates {
		if o, ok := offsets[c]; ok && o.contains(idx) {
			return c, true
		}
	}
	return "", false
}

func findPrefixForOffset(idx int) (string, bool) {
	return findRunAmong(pgdata.CxPrefixes, prefixOffsets, idx)
}
