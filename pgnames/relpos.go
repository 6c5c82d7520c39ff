package pgnames

import (
	"math"

	"github.com/starfield-tools/pgnames/internal/pgdata"
)

// RelPos is a system's coordinate within its sector's mass-code
// sub-cube: the (row, stack, column) triple spec.md §4.G packs a
// system identifier's letters and number1 into. It carries no
// mass-code or number2 information — both are handled separately by
// the callers that convert a RelPos to or from an absolute Position
// (see massCodeCubeWidth) and a system identifier's trailing digit
// (see dispatch.go), per original_source/pgnames.py's
// _get_relpos_from_sysid/_get_sysid_from_relpos (lines 261-311),
// which never reference number2 in their position math at all: the
// source's own comment notes that in "Sector AB-C d3" the "3" is
// number2, a within-cell disambiguator, not a spatial coordinate.
type RelPos struct {
	Row, Stack, Col int
}

// relPosGridSize is the width, in cells, of the abstract row/stack/
// column grid a packed (prefix,centre,suffix,number1) position
// decomposes into — fixed regardless of mass code; only the physical
// Ly size of each cell (massCodeCubeWidth) depends on mass code.
const relPosGridSize = 128

func upperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func letterVal(c byte) int {
	return int(upperByte(c) - 'A')
}

func valLetter(v int) byte {
	return byte('A' + v)
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

// massCodeCubeWidth returns the edge length, in light years, of the
// sub-cube a system's relative position is addressed within for the
// given mass code, per spec.md §4.G: cube_size / 2^(h - m). Mass code
// 'h' addresses the whole sector as one cell; each letter short of
// 'h' halves the cell width.
func massCodeCubeWidth(massCode byte) float64 {
	m := lowerByte(massCode)
	return pgdata.CubeSize / math.Pow(2, float64('h'-m))
}

// relPosFromSysID packs a parsed system identifier's letters and
// number1 into a RelPos, per spec.md §4.G's verbatim formula:
// position = number1*26^3 + index(suffix)*26^2 + index(centre)*26 +
// index(prefix), decomposed into row/stack/column via divmod 128 and
// 128^2. number1 defaults to 0 when absent. number2 plays no part in
// this packing (see RelPos's doc comment) and is not a parameter here.
func relPosFromSysID(prefix, centre, suffix byte, number1 *int) (RelPos, bool) {
	pv, cv, sv := letterVal(prefix), letterVal(centre), letterVal(suffix)
	if pv < 0 || pv > 25 || cv < 0 || cv > 25 || sv < 0 || sv > 25 {
		return RelPos{}, false
	}

	n1 := 0
	if number1 != nil {
		if *number1 < 0 {
			return RelPos{}, false
		}
		n1 = *number1
	}

	position := n1*26*26*26 + sv*26*26 + cv*26 + pv
	row, rem := divmod(position, relPosGridSize*relPosGridSize)
	stack, col := divmod(rem, relPosGridSize)
	if row < 0 || row >= relPosGridSize {
		return RelPos{}, false
	}
	return RelPos{Row: row, Stack: stack, Col: col}, true
}

// sysIDFromRelPos inverts relPosFromSysID. number1 is nil when the
// recovered value is 0, matching the identifier grammar's "N1- group
// present iff N1>0" rule (spec.md §6).
func sysIDFromRelPos(rp RelPos) (prefix, centre, suffix byte, number1 *int, ok bool) {
	if rp.Row < 0 || rp.Stack < 0 || rp.Stack >= relPosGridSize || rp.Col < 0 || rp.Col >= relPosGridSize {
		return 0, 0, 0, nil, false
	}

	position := rp.Col + relPosGridSize*rp.Stack + relPosGridSize*relPosGridSize*rp.Row
	pv := position % 26
	cv := (position / 26) % 26
	sv := (position / (26 * 26)) % 26
	n1 := position / (26 * 26 * 26)

	var n1Ptr *int
	if n1 != 0 {
		v := n1
		n1Ptr = &v
	}
	return valLetter(pv), valLetter(cv), valLetter(sv), n1Ptr, true
}

// positionFromRelPos maps a RelPos within a sector to an absolute
// galactic position, given that sector's origin corner and the system
// identifier's mass code: each cell is massCodeCubeWidth(massCode) Ly
// wide, and the reported point is the cell's centre (spec.md §4.G).
func positionFromRelPos(sectorOrigin Position, rp RelPos, massCode byte) Position {
	cubeside := massCodeCubeWidth(massCode)
	half := cubeside / 2
	return Position{
		X: sectorOrigin.X + float64(rp.Col)*cubeside + half,
		Y: sectorOrigin.Y + float64(rp.Row)*cubeside + half,
		Z: sectorOrigin.Z + float64(rp.Stack)*cubeside + half,
	}
}

// relPosFromPosition inverts positionFromRelPos, reporting false if
// pos falls outside the sector's addressable sub-cube for massCode.
func relPosFromPosition(sectorOrigin, pos Position, massCode byte) (RelPos, bool) {
	return relPosFromPositionWithLeeway(sectorOrigin, pos, massCode, 0)
}

// haRelPosLeeway is the number of grid cells an HA sector's system
// coordinates are allowed to spill past the nominal 128-wide mass-code
// cube before ErrRelPosOverflow is raised. An HA sphere's bounding
// volume isn't an exact multiple of the grid step, so a system near
// its edge can legitimately fall a few steps outside; a PG sector gets
// no such allowance since its cube boundary is exact by construction.
const haRelPosLeeway = 4

// relPosFromPositionWithLeeway is relPosFromPosition with a tolerance
// of leeway grid cells past each axis's bound: an out-of-range index
// within the tolerance clamps to the nearest in-range cell rather than
// failing outright.
func relPosFromPositionWithLeeway(sectorOrigin, pos Position, massCode byte, leeway int) (RelPos, bool) {
	cubeside := massCodeCubeWidth(massCode)
	col := clampWithLeeway(int(floorDiv(pos.X-sectorOrigin.X, cubeside)), relPosGridSize-1, leeway)
	row := clampWithLeeway(int(floorDiv(pos.Y-sectorOrigin.Y, cubeside)), relPosGridSize-1, leeway)
	stack := clampWithLeeway(int(floorDiv(pos.Z-sectorOrigin.Z, cubeside)), relPosGridSize-1, leeway)
	if col < 0 || col >= relPosGridSize || stack < 0 || stack >= relPosGridSize || row < 0 || row >= relPosGridSize {
		return RelPos{}, false
	}
	return RelPos{Row: row, Stack: stack, Col: col}, true
}

// clampWithLeeway snaps v to [0, max] when it overshoots by no more
// than leeway steps, and leaves it untouched otherwise so the caller's
// own bounds check still rejects a genuine overflow.
func clampWithLeeway(v, max, leeway int) int {
	if v < 0 && v >= -leeway {
		return 0
	}
	if v > max && v <= max+leeway {
		return max
	}
	return v
}
