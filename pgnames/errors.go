package pgnames

import "errors"

// Sentinel errors returned by GetSector, GetSectorName, GetSystem and
// GetSystemName alongside a zero value. Codec operations never panic
// and there is no partial result: a lookup either succeeds or returns
// one of these.
var (
	// ErrNotPG means the input does not match the procedural system
	// regex, or the fragment tokenizer could not consume it.
	ErrNotPG = errors.New("pgnames: not a procedurally generated name")

	// ErrUnknownSector means the tokens are syntactically a sector
	// name but no matching offset exists for them (a bad state-pair
	// lookup, or a suffix absent from its expected list).
	ErrUnknownSector = errors.New("pgnames: unknown sector")

	// ErrOutOfGalaxy means a decoded sector index lies outside the
	// galaxy-size box for its class.
	ErrOutOfGalaxy = errors.New("pgnames: sector index out of galaxy bounds")

	// ErrRelPosOverflow means the reconstructed relative position
	// exceeds the sector cube edge (plus HA tolerance, where
	// applicable).
	ErrRelPosOverflow = errors.New("pgnames: relative position overflows its sector cube")

	// ErrBadMassCode means position-to-system lookup was invoked
	// without a mass code.
	ErrBadMassCode = errors.New("pgnames: mass code required")
)
