package pgdata

import "regexp"

// CubeSize is the edge length, in light years, of a single sector.
const CubeSize = 1280.0

// BaseCoords is the absolute position of the origin of sector (0,0,0).
var BaseCoords = [3]float64{-65, -25, 215}

// C1GalaxySize and C2GalaxySize are the (x,y,z) sector-count boxes the
// class-1 and class-2 grammars are addressed over. C2GalaxySize's
// volume is pinned to the class-2 state-table algorithm's total span
// (len(C2VouterStates)^2 * len(C2OuterStates) * len(C2RunStates), see
// pgnames/class2.go and class2_states.go) — the exact number of
// (prefix0,suffix0,prefix1,suffix1) combinations the four-layer
// decomposition can address. class-1 has no such ceiling and its box
// is chosen independently.
var (
	C1GalaxySize = [3]int{48, 16, 48}
	C2GalaxySize = [3]int{36, 36, 16}
)

// BaseSectorCoords returns the unshifted sector index of the sector
// containing BaseCoords within the given galaxy box: offset arithmetic
// is done on non-negative "unshifted" indices spanning [0, galSize),
// and this value recentres them around the origin sector afterwards
// (see pgnames' offset package, spec.md §4.D).
//
// Computed at call time as half of each galaxy dimension rather than
// hand-duplicated per galaxy size, to avoid the drift the spec's design
// notes (§9) warn two independently maintained copies of this constant
// could introduce. BaseCoords does not enter the computation: it is the
// position that unshiftedIndexFromPosition maps to this index.
func BaseSectorCoords(galSize [3]int) [3]int {
	return [3]int{galSize[0] / 2, galSize[1] / 2, galSize[2] / 2}
}

// C1ArbitraryIndexOffset is an opaque constant folded into a sector's
// linear offset before it is fed to the class-deciding hash, and also
// added/subtracted by the class-1 codec when packing a name into an
// offset and back. Its relationship to the hash is empirical in the
// shipping game data and is treated here, per spec.md §9, as opaque:
// changing it changes which offsets hash to class 1 vs class 2 and
// which class-1 name each offset decodes to.
const C1ArbitraryIndexOffset = 40241

// PGSystemRegex matches a full system-identifier string: a sector name
// followed by the six-field relative-position suffix. Field names
// mirror spec.md §6 exactly.
var PGSystemRegex = regexp.MustCompile(`^(?P<sector>[\w\s'.()/-]+) (?P<prefix>[A-Za-z])(?P<centre>[A-Za-z])-(?P<suffix>[A-Za-z]) (?P<mcode>[A-Za-z])(?:(?P<number1>\d+)-)?(?P<number2>\d+)$`)
