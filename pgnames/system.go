package pgnames

// System is a resolved star-system identifier: a name together with
// its absolute position and the uncertainty inherent in the
// relative-position encoding (spec.md §6).
type System struct {
	Name        string
	Position    Position
	Uncertainty float64
	Sector      Sector
}
