package pgnames

import (
	"strings"

	"github.com/starfield-tools/pgnames/internal/pgdata"
)

// SectorNameClass is the grammar a sector-name string was resolved as.
type SectorNameClass int

const (
	SectorNameInvalid SectorNameClass = iota
	SectorNameHA
	SectorNameClass1
	SectorNameClass2
)

// ClassifySectorName reports which grammar, if any, a sector-name
// string belongs to, without fully resolving the sector. This
// supplements the distilled is_valid_sector_name, which only ever
// returned a bool: callers that needed to distinguish HA provenance
// from procedural otherwise had no way to do so short of inspecting
// GetSector's error.
func ClassifySectorName(name string) SectorNameClass {
	key := strings.ToLower(strings.TrimSpace(name))
	if _, ok := pgdata.HASectors[key]; ok {
		return SectorNameHA
	}
	_, class, ok := offsetFromSectorName(name)
	if !ok {
		return SectorNameInvalid
	}
	if class == 1 {
		return SectorNameClass1
	}
	return SectorNameClass2
}

// IsValidSectorName reports whether name resolves to a real sector,
// HA or procedural, per spec.md §6's is_valid_sector_name.
func IsValidSectorName(name string) bool {
	return ClassifySectorName(name) != SectorNameInvalid
}

// GetCanonicalName normalizes name to its sector's canonical spelling
// and casing, reporting ok=false (and the name unchanged) if it isn't
// a recognized sector, per spec.md §6's get_canonical_name.
func GetCanonicalName(name string) (string, bool) {
	sec, err := GetSector(name)
	if err != nil {
		return name, false
	}
	return sec.Name, true
}

// FormatName renders a full system identifier from a sector name and
// its relative-position components, per spec.md §6's format_name.
func FormatName(sectorName string, prefix, centre, suffix, massCode byte, number1 *int, number2 int) string {
	return buildSystemName(sectorName, prefix, centre, suffix, massCode, number1, number2)
}
