package pgnames

import "github.com/starfield-tools/pgnames/internal/pgdata"

// SectorKind distinguishes a procedurally generated sector from a
// hand-authored one.
type SectorKind int

const (
	SectorPG SectorKind = iota
	SectorHA
)

// Sector is a value object describing a 1280 Ly region of the galaxy,
// either procedurally generated (PG) or hand-authored (HA). Per
// spec.md §3, sectors are pure values: freely copyable, never mutated
// after construction.
type Sector struct {
	Kind SectorKind
	Name string

	// Class is 1 or 2 for PG sectors, and 0 for HA sectors.
	Class int

	// Index is the centred (x,y,z) sector index; PG only.
	Index [3]int

	// Origin is the absolute position of the sector's low corner, the
	// basis relative-position computations are measured from.
	Origin Position

	// Centre is the sector's geometric centre point.
	Centre Position

	// Size is the sector's full extent on each axis. PG sectors are
	// always CubeSize on every axis; HA box sectors report their full
	// (not half-) extents; HA sphere sectors leave this zero and use
	// Radius instead.
	Size Position

	// Radius is populated for HA sphere sectors only.
	Radius float64

	// MassCode is populated for HA sectors only: the mass code of the
	// sphere/box the HA region encloses.
	MassCode byte
}

// GetOrigin returns the absolute position used as the zero corner for
// relative-position (system-id) addressing within this sector. HA
// sectors are addressed as if they were an ordinary CubeSize sector
// centred on their declared centre point, per spec.md §3's invariant
// that "HA sectors may only assign names; they never change
// positions" — the relpos math underneath is untouched.
func (s Sector) GetOrigin() Position {
	return s.Origin
}

func pgSectorOrigin(index [3]int) Position {
	return Position{
		X: pgdata.BaseCoords[0] + float64(index[0])*pgdata.CubeSize,
		Y: pgdata.BaseCoords[1] + float64(index[1])*pgdata.CubeSize,
		Z: pgdata.BaseCoords[2] + float64(index[2])*pgdata.CubeSize,
	}
}

func newPGSector(index [3]int, class int, name string) Sector {
	origin := pgSectorOrigin(index)
	half := pgdata.CubeSize / 2
	return Sector{
		Kind:   SectorPG,
		Name:   name,
		Class:  class,
		Index:  index,
		Origin: origin,
		Centre: origin.Add(Position{half, half, half}),
		Size:   Position{pgdata.CubeSize, pgdata.CubeSize, pgdata.CubeSize},
	}
}

func haSectorToSector(ha pgdata.HASector) Sector {
	centre := Position{ha.Centre[0], ha.Centre[1], ha.Centre[2]}
	half := pgdata.CubeSize / 2
	sec := Sector{
		Kind:     SectorHA,
		Name:     ha.Name,
		Centre:   centre,
		Origin:   centre.Sub(Position{half, half, half}),
		MassCode: ha.MassCode,
	}
	switch ha.Kind {
	case pgdata.HASphere:
		sec.Radius = ha.Radius
	case pgdata.HABox:
		sec.Size = Position{ha.Extents[0] * 2, ha.Extents[1] * 2, ha.Extents[2] * 2}
	}
	return sec
}
