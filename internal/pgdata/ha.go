package pgdata

// HASectorKind distinguishes the two shapes a hand-authored sector
// region can take.
type HASectorKind int

const (
	HASphere HASectorKind = iota
	HABox
)

// HASector is a hand-authored region overlaying the procedural grid.
// HA sectors only assign names; a position inside one is still named
// by the HA sector, but its system-id suffix is computed against the
// HA sector's own origin (spec.md §3).
type HASector struct {
	Name     string
	Kind     HASectorKind
	Centre   [3]float64
	Radius   float64 // valid when Kind == HASphere
	Extents  [3]float64 // valid when Kind == HABox (half-widths on each axis)
	MassCode byte       // mass code of the sphere/box enclosed, for origin/cube-width purposes
}

// Contains reports whether pos falls within the HA region.
func (s HASector) Contains(pos [3]float64) bool {
	switch s.Kind {
	case HASphere:
		dx := pos[0] - s.Centre[0]
		dy := pos[1] - s.Centre[1]
		dz := pos[2] - s.Centre[2]
		return dx*dx+dy*dy+dz*dz <= s.Radius*s.Radius
	case HABox:
		for i := 0; i < 3; i++ {
			if pos[i] < s.Centre[i]-s.Extents[i] || pos[i] > s.Centre[i]+s.Extents[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// HASectors maps lowercase HA sector name to its region. Mirrors
// pgdata.ha_sectors in the distilled spec's source lineage.
var HASectors = map[string]HASector{
	"myriad's rest": {
		Name:     "Myriad's Rest",
		Kind:     HASphere,
		Centre:   [3]float64{1200, 50, 3400},
		Radius:   60,
		MassCode: 'b',
	},
	"wanderer's end": {
		Name:     "Wanderer's End",
		Kind:     HABox,
		Centre:   [3]float64{-4200, -120, 900},
		Extents:  [3]float64{320, 160, 320},
		MassCode: 'd',
	},
}
