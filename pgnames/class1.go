package pgnames

import "github.com/starfield-tools/pgnames/internal/pgdata"

func divmod(a, b int) (int, int) {
	return a / b, a % b
}

// offsetFromClass1Name implements spec.md §4.E's name->offset
// direction: walk the suffix up through the infix run(s) into
// prefix-run space, then through the prefix run into the flat
// class-1-space offset.
func offsetFromClass1Name(frags []string) (int, bool) {
	ensureOffsets()
	if len(frags) != 3 && len(frags) != 4 {
		return 0, false
	}
	prefix := frags[0]
	infix1 := frags[1]
	suffix := frags[len(frags)-1]

	sufs := suffixesFor(frags[:len(frags)-1], true)
	sufOffset, ok := indexOf(sufs, suffix)
	if !ok {
		return 0, false
	}

	var offset int
	if len(frags) == 4 {
		infix2 := frags[2]
		i2Off, ok := c1InfixOffsets[infix2]
		if !ok {
			return 0, false
		}
		i2RunLen := pgdata.InfixRunLength(infix2)
		f3q, f3r := divmod(sufOffset, i2RunLen)
		f3Offset := f3q*pgdata.InfixTotalRunLength(infix2) + f3r + i2Off.Base

		i1Off, ok := c1InfixOffsets[infix1]
		if !ok {
			return 0, false
		}
		f2q, f2r := divmod(f3Offset, pgdata.InfixRunLength(infix1))
		offset = f2q*pgdata.InfixTotalRunLength(infix1) + f2r + i1Off.Base
	} else {
		i1Off, ok := c1InfixOffsets[infix1]
		if !ok {
			return 0, false
		}
		f2q, f2r := divmod(sufOffset, pgdata.InfixRunLength(infix1))
		offset = f2q*pgdata.InfixTotalRunLength(infix1) + f2r + i1Off.Base
	}

	pOff, ok := prefixOffsets[prefix]
	if !ok {
		return 0, false
	}
	q, r := divmod(offset, pgdata.PrefixRunLength(prefix))
	offset = q*pgdata.CxPrefixTotalRunLength + r - pgdata.C1ArbitraryIndexOffset + pOff.Base
	return offset, true
}

// nameFromClass1Offset implements spec.md §4.E's offset->name
// direction, inverting offsetFromClass1Name step by step.
func nameFromClass1Offset(offset int) ([]string, bool) {
	ensureOffsets()

	prefixCnt, curOffset := divmod(offset+pgdata.C1ArbitraryIndexOffset, pgdata.CxPrefixTotalRunLength)
	prefix, ok := findPrefixForOffset(curOffset)
	if !ok {
		return nil, false
	}
	curOffset -= prefixOffsets[prefix].Base

	infix1s, ok := infixesFor([]string{prefix})
	if !ok {
		return nil, false
	}
	infix1TotalLen := pgdata.InfixTotalRunLength(infix1s[0])
	infix1Cnt, rem := divmod(prefixCnt*pgdata.PrefixRunLength(prefix)+curOffset, infix1TotalLen)
	infix1, ok := findRunAmong(infix1s, c1InfixOffsets, rem)
	if !ok {
		return nil, false
	}
	rem -= c1InfixOffsets[infix1].Base

	infix1RunLen := pgdata.InfixRunLength(infix1)
	sufs := suffixesFor([]string{prefix, infix1}, true)
	nextIdx := infix1RunLen*infix1Cnt + rem

	frags := []string{prefix, infix1}

	if nextIdx >= len(sufs) {
		infix2s, ok := infixesFor(frags)
		if !ok {
			return nil, false
		}
		infix2TotalLen := pgdata.InfixTotalRunLength(infix2s[0])
		infix2Cnt, rem2 := divmod(infix1Cnt*infix1RunLen+rem, infix2TotalLen)
		infix2, ok := findRunAmong(infix2s, c1InfixOffsets, rem2)
		if !ok {
			return nil, false
		}
		rem2 -= c1InfixOffsets[infix2].Base

		infix2RunLen := pgdata.InfixRunLength(infix2)
		frags = append(frags, infix2)
		sufs = suffixesFor(frags, true)
		nextIdx = infix2RunLen*infix2Cnt + rem2
	}

	if nextIdx < 0 || nextIdx >= len(sufs) {
		return nil, false
	}
	frags = append(frags, sufs[nextIdx])
	return frags, true
}
