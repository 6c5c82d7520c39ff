// Package pgdata holds the static fragment tables, run-length overrides,
// and hand-authored sector definitions consumed by the pgnames codec.
//
// These are data inputs, not logic: reconstructing the game's actual
// multi-thousand-entry tables is out of scope (see the repository's
// SPEC_FULL.md, section 7). The tables below are a small, internally
// consistent placeholder dataset big enough to exercise every branch of
// the codec (3- and 4-fragment class-1 names, both suffix-list
// selections, class-2 two-word names, and the HA overlay) without
// claiming to reproduce the shipping galaxy.
package pgdata

// CxPrefixes is the ordered list of prefix fragments. Order is
// significant: prefix offsets are assigned by accumulating run lengths
// in this order (see prefixOffsets in pgnames/offsets_init.go).
var CxPrefixes = []string{"Eo", "Wre", "Dry", "Tz", "Mhu"}

// CxPrefixLengthDefault is the run length assumed for any prefix not
// present in CxPrefixLengthOverrides.
const CxPrefixLengthDefault = 35

// CxPrefixLengthOverrides holds the prefixes whose run length deviates
// from the default.
var CxPrefixLengthOverrides = map[string]int{
	"Tz":  3,
	"Mhu": 36,
}

// CxPrefixTotalRunLength is the sum of every prefix's run length: the
// length of one full rotation through CxPrefixes. It is derived from
// the table above at init time rather than hardcoded, since (unlike
// the shipping game data) this placeholder table does not sum to the
// real constant of 3037.
var CxPrefixTotalRunLength = func() int {
	total := 0
	for _, p := range CxPrefixes {
		total += PrefixRunLength(p)
	}
	return total
}()

// PrefixRunLength returns the run length of the given prefix fragment.
func PrefixRunLength(frag string) int {
	if l, ok := CxPrefixLengthOverrides[frag]; ok {
		return l
	}
	return CxPrefixLengthDefault
}

// CxSuffixes holds the two suffix lists appended directly to a prefix:
// used whenever the preceding fragment is itself a prefix, i.e. by the
// class-2 two-word grammar, and by the class-1 codec in the rare case
// where the fragment preceding the suffix is prefix-shaped rather than
// an infix. Index 1 and index 2 mirror the two parallel series used
// throughout the tables.
var CxSuffixes = map[int][]string{
	1: genFragments(38, "wsy", "oe", "ang", "eang", "ury", "oitl", "illz", "aelz", "oabs", "yuph"),
	2: genFragments(38, "chs", "eass", "oiphs", "arbs", "unz", "ophs", "aitl", "uerz", "yllz", "eings"),
}

// CxPrefixInfixOverrideMap chooses which infix series (1 or 2) follows
// a given prefix. A prefix absent from the map uses series 1.
var CxPrefixInfixOverrideMap = map[string]int{
	"Mhu": 2,
}

// C1PrefixInfixOverrideMap is the spec name for CxPrefixInfixOverrideMap;
// kept as a second exported symbol so callers written against either
// the "cx" (shared) or "c1" (class-1-specific) naming in spec.md §4.A
// resolve to the same table.
var C1PrefixInfixOverrideMap = CxPrefixInfixOverrideMap

// C2PrefixSuffixOverrideMap chooses which CxSuffixes series (1 or 2) a
// class-2 word built on a given prefix draws from. A prefix absent
// from the map uses series 1.
var C2PrefixSuffixOverrideMap = map[string]int{
	"Tz": 2,
}

// C1InfixesS1 is the "vowel-ish" infix series.
var C1InfixesS1 = []string{"au", "ai", "eo", "oi", "ae"}

// C1InfixesS2 is the "consonant-ish" infix series.
var C1InfixesS2 = []string{"re", "th", "ry", "gr", "bl"}

// C1Infixes exposes both series by their spec.md index (1 = vowel-ish,
// 2 = consonant-ish).
var C1Infixes = map[int][]string{
	1: C1InfixesS1,
	2: C1InfixesS2,
}

const (
	C1InfixS1LengthDefault = 8
	C1InfixS2LengthDefault = 7
)

// C1InfixLengthOverrides holds per-infix run-length overrides, shared
// across both series (an infix fragment is unique to its series).
var C1InfixLengthOverrides = map[string]int{
	"ae": 4,
	"bl": 3,
}

// InfixRunLength returns the run length of the given class-1 infix
// fragment, consulting the correct default for its series.
func InfixRunLength(frag string) int {
	if l, ok := C1InfixLengthOverrides[frag]; ok {
		return l
	}
	for _, f := range C1InfixesS1 {
		if f == frag {
			return C1InfixS1LengthDefault
		}
	}
	return C1InfixS2LengthDefault
}

// InfixSeries reports which series (1 or 2) a class-1 infix fragment
// belongs to.
func InfixSeries(frag string) int {
	for _, f := range C1InfixesS1 {
		if f == frag {
			return 1
		}
	}
	return 2
}

// C1InfixS1TotalRunLength and C1InfixS2TotalRunLength are the total
// run lengths of a full rotation through each infix series.
var (
	C1InfixS1TotalRunLength = sumRunLengths(C1InfixesS1)
	C1InfixS2TotalRunLength = sumRunLengths(C1InfixesS2)
)

func sumRunLengths(frags []string) int {
	total := 0
	for _, f := range frags {
		total += InfixRunLength(f)
	}
	return total
}

// InfixTotalRunLength returns the total run length for the series the
// given infix fragment belongs to.
func InfixTotalRunLength(frag string) int {
	if InfixSeries(frag) == 1 {
		return C1InfixS1TotalRunLength
	}
	return C1InfixS2TotalRunLength
}

// C1Suffixes holds the two terminal-suffix series used by class-1
// names, selected by which infix series immediately precedes the
// suffix (see pgnames' suffix-selection rule, carried over unmodified
// from the distilled spec's open question in section 9).
var C1Suffixes = map[int][]string{
	1: genFragments(10, "wsy", "oitl", "angs", "eazi", "oepr", "ury", "ills", "aphs", "orns", "eiss"),
	2: genFragments(8, "chroabs", "oaphs", "uelz", "yssil", "eangz", "orbs", "ivelz", "unoch"),
}

// genFragments deterministically builds a list of n distinct,
// phoneme-shaped strings by cycling a small set of stems against a
// small set of leading letter-groups. This is a placeholder data
// generator, not part of the codec: real fragment tables are a data
// input supplied by the game, not computed.
//
// Generated fragments stay lowercase: a suffix never opens a name
// (only CxPrefixes fragments do), so it is never the word-initial
// letter the tokenizer's title-casing step capitalizes.
func genFragments(n int, stems ...string) []string {
	leadingGroups := []string{"a", "e", "i", "o", "u", "y", "ae", "eo", "oi", "au"}
	out := make([]string, 0, n)
	seen := map[string]bool{}
	for round := 0; len(out) < n; round++ {
		for i, stem := range stems {
			if len(out) >= n {
				break
			}
			group := leadingGroups[(round+i)%len(leadingGroups)]
			if round >= len(leadingGroups) {
				group += group
			}
			frag := group + stem
			if seen[frag] {
				continue
			}
			seen[frag] = true
			out = append(out, frag)
		}
	}
	return out
}
