package pgnames

import "github.com/starfield-tools/pgnames/internal/pgdata"

// offsetFromSector converts an unshifted (non-negative) sector index
// triple into a linear galaxy offset, per spec.md §4.D.
func offsetFromSector(unshifted [3]int, galSize [3]int) int {
	return unshifted[2]*galSize[1]*galSize[0] + unshifted[1]*galSize[0] + unshifted[0]
}

// sectorFromOffset inverts offsetFromSector and recentres the result
// around the origin sector.
func sectorFromOffset(offset int, galSize [3]int) ([3]int, bool) {
	if offset < 0 || offset >= galSize[0]*galSize[1]*galSize[2] {
		return [3]int{}, false
	}
	x := offset % galSize[0]
	y := (offset / galSize[0]) % galSize[1]
	z := offset / (galSize[0] * galSize[1])

	base := pgdata.BaseSectorCoords(galSize)
	return [3]int{x - base[0], y - base[1], z - base[2]}, true
}

// unshiftedIndexFromPosition maps a position to its unshifted sector
// index within the given galaxy box, or false if it falls outside it.
func unshiftedIndexFromPosition(pos Position, galSize [3]int) ([3]int, bool) {
	base := pgdata.BaseSectorCoords(galSize)
	cx := int(floorDiv(pos.X-pgdata.BaseCoords[0], pgdata.CubeSize)) + base[0]
	cy := int(floorDiv(pos.Y-pgdata.BaseCoords[1], pgdata.CubeSize)) + base[1]
	cz := int(floorDiv(pos.Z-pgdata.BaseCoords[2], pgdata.CubeSize)) + base[2]
	if cx < 0 || cx >= galSize[0] || cy < 0 || cy >= galSize[1] || cz < 0 || cz >= galSize[2] {
		return [3]int{}, false
	}
	return [3]int{cx, cy, cz}, true
}

// offsetFromPosition composes unshiftedIndexFromPosition and
// offsetFromSector: position -> linear galaxy offset, for a given
// galaxy-size box. The dispatcher calls those two steps directly.
func offsetFromPosition(pos Position, galSize [3]int) (int, bool) {
	idx, ok := unshiftedIndexFromPosition(pos, galSize)
	if !ok {
		return 0, false
	}
	return offsetFromSector(idx, galSize), true
}

func floorDiv(a, b float64) float64 {
	q := a / b
	if q < 0 {
		// Emulate Python's floor-division semantics for negative
		// quotients: truncation alone rounds toward zero.
		if q != float64(int64(q)) {
			return float64(int64(q) - 1)
		}
	}
	return float64(int64(q))
}
