package pgnames

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/starfield-tools/pgnames/internal/pgdata"
)

// sectorAt resolves the sector containing pos, honouring HA
// precedence over the procedural grid (spec.md §3).
func sectorAt(pos Position) (Sector, error) {
	p := [3]float64{pos.X, pos.Y, pos.Z}
	for _, ha := range pgdata.HASectors {
		if ha.Contains(p) {
			return haSectorToSector(ha), nil
		}
	}

	idx, ok := unshiftedIndexFromPosition(pos, pgdata.C1GalaxySize)
	if !ok {
		return Sector{}, ErrOutOfGalaxy
	}
	offset := offsetFromSector(idx, pgdata.C1GalaxySize)
	name, ok := sectorNameFromOffset(offset)
	if !ok {
		return Sector{}, ErrUnknownSector
	}
	class := ClassifyOffset(offset)
	centred, ok := sectorFromOffset(offset, pgdata.C1GalaxySize)
	if !ok {
		return Sector{}, ErrOutOfGalaxy
	}
	return newPGSector(centred, class, name), nil
}

// GetSectorName resolves the sector name containing pos: a
// hand-authored name if pos falls inside an HA region, otherwise the
// procedural name for pos's sector index (spec.md §6, get_sector_name).
func GetSectorName(pos Position) (string, error) {
	sec, err := sectorAt(pos)
	if err != nil {
		return "", err
	}
	return sec.Name, nil
}

// GetSector resolves a sector by name, PG or HA, per spec.md §6's
// get_sector.
func GetSector(name string) (Sector, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if ha, ok := pgdata.HASectors[key]; ok {
		return haSectorToSector(ha), nil
	}

	offset, class, ok := offsetFromSectorName(name)
	if !ok {
		return Sector{}, ErrNotPG
	}
	idx, ok := sectorFromOffset(offset, pgdata.C1GalaxySize)
	if !ok {
		return Sector{}, ErrOutOfGalaxy
	}
	canonical, ok := sectorNameFromOffset(offset)
	if !ok {
		return Sector{}, ErrUnknownSector
	}
	return newPGSector(idx, class, canonical), nil
}

func sectorNameFromOffset(offset int) (string, bool) {
	if ClassifyOffset(offset) == 1 {
		frags, ok := nameFromClass1Offset(offset)
		if !ok {
			return "", false
		}
		return strings.Join(frags, ""), true
	}
	n, ok := nameFromClass2Offset(offset)
	if !ok {
		return "", false
	}
	return n.Prefix0 + n.Suffix0 + " " + n.Prefix1 + n.Suffix1, true
}

// offsetFromSectorName tokenizes name and resolves it through whichever
// grammar it parses as: a single fragment run (class 1) or two
// two-fragment words (class 2).
func offsetFromSectorName(name string) (offset int, class int, ok bool) {
	trimmed := strings.TrimSpace(name)
	if strings.Contains(trimmed, " ") {
		parts := strings.SplitN(trimmed, " ", 2)
		if len(parts) != 2 {
			return 0, 0, false
		}
		f0, ok := GetFragments(parts[0], false)
		if !ok || len(f0) != 2 {
			return 0, 0, false
		}
		f1, ok := GetFragments(parts[1], false)
		if !ok || len(f1) != 2 {
			return 0, 0, false
		}
		off, ok := offsetFromClass2Name(c2Name{Prefix0: f0[0], Suffix0: f0[1], Prefix1: f1[0], Suffix1: f1[1]})
		if !ok {
			return 0, 0, false
		}
		return off, 2, true
	}

	frags, ok := GetFragments(trimmed, false)
	if !ok {
		return 0, 0, false
	}
	off, ok := offsetFromClass1Name(frags)
	if !ok {
		return 0, 0, false
	}
	return off, 1, true
}

// GetSystem resolves a full system identifier string ("Sector AB-C
// d123-4") to its absolute position, per spec.md §6's get_system.
func GetSystem(name string) (System, error) {
	m := pgdata.PGSystemRegex.FindStringSubmatch(name)
	if m == nil {
		return System{}, ErrNotPG
	}
	groups := make(map[string]string, len(m))
	for i, key := range pgdata.PGSystemRegex.SubexpNames() {
		if i == 0 || key == "" {
			continue
		}
		groups[key] = m[i]
	}

	sec, err := GetSector(groups["sector"])
	if err != nil {
		return System{}, err
	}

	var number1 *int
	if groups["number1"] != "" {
		v, convErr := strconv.Atoi(groups["number1"])
		if convErr != nil {
			return System{}, ErrNotPG
		}
		number1 = &v
	}
	number2, err := strconv.Atoi(groups["number2"])
	if err != nil {
		return System{}, ErrNotPG
	}

	rp, ok := relPosFromSysID(groups["prefix"][0], groups["centre"][0], groups["suffix"][0], number1)
	if !ok {
		return System{}, ErrRelPosOverflow
	}

	massCode := groups["mcode"][0]
	// The decoded cell must lie inside the sector cube; HA sectors get
	// haRelPosLeeway extra cells of tolerance.
	limit := int(pgdata.CubeSize / massCodeCubeWidth(massCode))
	if sec.Kind == SectorHA {
		limit += haRelPosLeeway
	}
	if rp.Col >= limit || rp.Row >= limit || rp.Stack >= limit {
		return System{}, ErrRelPosOverflow
	}
	pos := positionFromRelPos(sec.Origin, rp, massCode)
	return System{
		Name:        buildSystemName(sec.Name, groups["prefix"][0], groups["centre"][0], groups["suffix"][0], massCode, number1, number2),
		Position:    pos,
		Uncertainty: massCodeCubeWidth(massCode) / 2,
		Sector:      sec,
	}, nil
}

// GetSystemName resolves pos to its system-identifier string within
// whichever sector contains it, spec.md §6's reverse direction. A mass
// code is required because the identifier's grammar embeds one (see
// ErrBadMassCode).
func GetSystemName(pos Position, massCode byte) (string, error) {
	if massCode == 0 {
		return "", ErrBadMassCode
	}
	sec, err := sectorAt(pos)
	if err != nil {
		return "", err
	}
	leeway := 0
	if sec.Kind == SectorHA {
		leeway = haRelPosLeeway
	}
	rp, ok := relPosFromPositionWithLeeway(sec.Origin, pos, massCode, leeway)
	if !ok {
		return "", ErrRelPosOverflow
	}
	prefix, centre, suffix, number1, ok := sysIDFromRelPos(rp)
	if !ok {
		return "", ErrRelPosOverflow
	}
	// number1's position digits don't reach far enough to also carry a
	// disambiguator for multiple systems inside the same cell (see
	// relpos.go); original_source/pgnames.py's own reverse direction
	// (_get_sysid_from_relpos, format_output=True) has the same gap —
	// it never appends one either, leaving its formatted string
	// unparseable against its own regex. Emitting "0" keeps this
	// implementation's output always parseable.
	return buildSystemName(sec.Name, prefix, centre, suffix, massCode, number1, 0), nil
}

func buildSystemName(sectorName string, prefix, centre, suffix, massCode byte, number1 *int, number2 int) string {
	var numbers string
	if number1 != nil {
		numbers = fmt.Sprintf("%d-%d", *number1, number2)
	} else {
		numbers = strconv.Itoa(number2)
	}
	return fmt.Sprintf("%s %c%c-%c %c%s", sectorName, prefix, centre, suffix, massCode, numbers)
}
