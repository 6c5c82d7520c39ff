package pgdata

// Class-2 names advance two parallel prefix-run indices (one per
// two-fragment word) through a four-layer state table rather than a
// plain mixed-radix digit string: spec.md §4.A names the tables
// (c2_run_states, c2_outer_states, c2_vouter_states) and step
// constants (c2_run_diff, c2_outer_diff, c2_vouter_diff, c2_f0_step,
// c2_f2_step) as opaque data; §4.F gives the algorithm that consumes
// them, ported from original_source/pgnames.py's
// _c2_get_name_from_offset/_c2_get_offset_from_name (lines 708-790).
//
// The shipping game's actual table values are out of scope (the data,
// not the architecture, is the declared non-goal — see SPEC_FULL.md
// §7), so these are a small placeholder dataset sized to factor this
// package's CxPrefixTotalRunLength (144, the sum of CxPrefixLengthDefault/
// CxPrefixLengthOverrides above) exactly into four layers:
//
//	C2F0Step(2) * c2RunDigit(2) * c2OuterVouterDigit(6)^2 == 144
//
// c2_vouter_states is reused for both the vouter and outer-pair
// lookups in §4.F step 4 (vo1 against (ors0,ors1), vo2 against
// (oos0,oos1)), so its digit size must cover both layers — hence a
// single shared digit (c2OuterVouterDigit) sizes it, while
// c2_outer_states (the innermost paired layer, holding (os0,os1))
// gets its own, independently-sized digit.
const (
	// C2F0Step and C2F2Step bound the innermost "off" digit for each
	// word's prefix-run index (frags[0] and frags[2] respectively, the
	// two words' leading prefixes — hence the f0/f2 naming).
	C2F0Step = 2
	C2F2Step = 2

	c2RunDigit         = 2
	c2OuterVouterDigit = 6
)

// C2RunDiff, C2OuterDiff and C2VouterDiff are the place values of the
// three digits (os, oos, ors) layered above the off digit in each
// word's prefix-run index: cur_idx = off + os*RunDiff + oos*OuterDiff
// + ors*VouterDiff.
const (
	C2RunDiff    = C2F0Step
	C2OuterDiff  = C2RunDiff * c2RunDigit
	C2VouterDiff = C2OuterDiff * c2OuterVouterDigit
)

// C2RunStates holds every (off0,off1) pair: the innermost layer,
// indexed directly by the two words' off-digit remainders.
var C2RunStates = cartesianPairs(C2F0Step, C2F2Step)

// C2OuterStates holds every (os0,os1) pair.
var C2OuterStates = cartesianPairs(c2RunDigit, c2RunDigit)

// C2VouterStates holds every (a,b) pair over the shared
// vouter/outer digit; reused for both the (ors0,ors1) and (oos0,oos1)
// lookups per spec.md §4.F.
var C2VouterStates = cartesianPairs(c2OuterVouterDigit, c2OuterVouterDigit)

func cartesianPairs(n0, n1 int) [][2]int {
	pairs := make([][2]int, 0, n0*n1)
	for a := 0; a < n0; a++ {
		for b := 0; b < n1; b++ {
			pairs = append(pairs, [2]int{a, b})
		}
	}
	return pairs
}
