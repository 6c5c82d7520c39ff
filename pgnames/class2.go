package pgnames

import "github.com/starfield-tools/pgnames/internal/pgdata"

// c2Name holds the four fragments of a class-2 sector name: two
// two-fragment words, "Prefix0Suffix0 Prefix1Suffix1".
type c2Name struct {
	Prefix0, Suffix0 string
	Prefix1, Suffix1 string
}

// class2Span is the full size of the class-2 address space: every
// combination the four-layer state-table decomposition (spec.md §4.F)
// can reach, following directly from the table sizes (also
// C2GalaxySize's volume, see galaxy.go's doc comment).
func class2Span() int {
	ensureOffsets()
	lVouter := len(pgdata.C2VouterStates)
	lOuter := len(pgdata.C2OuterStates)
	lRun := len(pgdata.C2RunStates)
	return lVouter * lVouter * lOuter * lRun
}

// offsetFromClass2Name implements spec.md §4.F's name->offset
// direction: each word's prefix-run index is peeled into four layers
// (an "off" remainder mod c2_f{0,2}_step, then three digits recovered
// by successive divmod against c2_vouter_diff/c2_outer_diff/
// c2_run_diff), each layer's paired indices across both words are
// looked up in the matching state table, and the resulting four
// indices compose into a single offset — ported from
// original_source/pgnames.py's _c2_get_offset_from_name.
func offsetFromClass2Name(n c2Name) (int, bool) {
	ensureOffsets()

	curIdx0, ok := class2WordPosition(n.Prefix0, n.Suffix0)
	if !ok {
		return 0, false
	}
	curIdx1, ok := class2WordPosition(n.Prefix1, n.Suffix1)
	if !ok {
		return 0, false
	}

	off0 := curIdx0 % pgdata.C2F0Step
	off1 := curIdx1 % pgdata.C2F2Step
	curIdx0 -= off0
	curIdx1 -= off1

	ors0, rem0 := divmod(curIdx0, pgdata.C2VouterDiff)
	oos0, rem0 := divmod(rem0, pgdata.C2OuterDiff)
	os0, _ := divmod(rem0, pgdata.C2RunDiff)

	ors1, rem1 := divmod(curIdx1, pgdata.C2VouterDiff)
	oos1, rem1 := divmod(rem1, pgdata.C2OuterDiff)
	os1, _ := divmod(rem1, pgdata.C2RunDiff)

	vo1, ok := indexOfPair(pgdata.C2VouterStates, ors0, ors1)
	if !ok {
		return 0, false
	}
	vo2, ok := indexOfPair(pgdata.C2VouterStates, oos0, oos1)
	if !ok {
		return 0, false
	}
	oo1, ok := indexOfPair(pgdata.C2OuterStates, os0, os1)
	if !ok {
		return 0, false
	}
	off, ok := indexOfPair(pgdata.C2RunStates, off0, off1)
	if !ok {
		return 0, false
	}

	lVouter := len(pgdata.C2VouterStates)
	lOuter := len(pgdata.C2OuterStates)
	lRun := len(pgdata.C2RunStates)

	offset := (vo1*lVouter+vo2)*lOuter + oo1
	offset = offset*lRun + off
	return offset, true
}

// nameFromClass2Offset inverts offsetFromClass2Name, ported from
// original_source/pgnames.py's _c2_get_name_from_offset.
func nameFromClass2Offset(offset int) (c2Name, bool) {
	ensureOffsets()
	if offset < 0 || offset >= class2Span() {
		return c2Name{}, false
	}

	lRun := len(pgdata.C2RunStates)
	lOuter := len(pgdata.C2OuterStates)
	lVouter := len(pgdata.C2VouterStates)

	line, off := divmod(offset, lRun)
	vo1, line := divmod(line, lVouter*lOuter)
	vo2, oo1 := divmod(line, lOuter)

	orsPair := pgdata.C2VouterStates[vo1]
	oosPair := pgdata.C2VouterStates[vo2]
	osPair := pgdata.C2OuterStates[oo1]
	offPair := pgdata.C2RunStates[off]

	curIdx0 := orsPair[0]*pgdata.C2VouterDiff + oosPair[0]*pgdata.C2OuterDiff + osPair[0]*pgdata.C2RunDiff + offPair[0]
	curIdx1 := orsPair[1]*pgdata.C2VouterDiff + oosPair[1]*pgdata.C2OuterDiff + osPair[1]*pgdata.C2RunDiff + offPair[1]

	prefix0, suffix0, ok := class2WordFromPosition(curIdx0)
	if !ok {
		return c2Name{}, false
	}
	prefix1, suffix1, ok := class2WordFromPosition(curIdx1)
	if !ok {
		return c2Name{}, false
	}

	return c2Name{Prefix0: prefix0, Suffix0: suffix0, Prefix1: prefix1, Suffix1: suffix1}, true
}

// class2WordPosition locates a (prefix, suffix) word within the
// CxPrefixTotalRunLength cycle: the prefix's run base plus the
// suffix's index in the run-length-sliced suffix list. This is the
// "prefix-run index" spec.md §4.F's cur_idx_k refers to.
func class2WordPosition(prefix, suffix string) (int, bool) {
	pOff, ok := prefixOffsets[prefix]
	if !ok {
		return 0, false
	}
	sufs := suffixesFor([]string{prefix}, false)
	i, ok := indexOf(sufs, suffix)
	if !ok {
		return 0, false
	}
	return pOff.Base + i, true
}

// class2WordFromPosition inverts class2WordPosition.
func class2WordFromPosition(within int) (prefix, suffix string, ok bool) {
	prefix, ok = findPrefixForOffset(within)
	if !ok {
		return "", "", false
	}
	local := within - prefixOffsets[prefix].Base
	sufs := suffixesFor([]string{prefix}, false)
	if local < 0 || local >= len(sufs) {
		return "", "", false
	}
	return prefix, sufs[local], true
}

// indexOfPair returns the index of the (a,b) pair within pairs, the
// table-lookup step spec.md §4.F performs against c2_run_states,
// c2_outer_states and c2_vouter_states.
func indexOfPair(pairs [][2]int, a, b int) (int, bool) {
	for i, p := range pairs {
		if p[0] == a && p[1] == b {
			return i, true
		}
	}
	return 0, false
}
