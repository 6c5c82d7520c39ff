package pgnames

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelPosSysIDRoundTrip(t *testing.T) {
	cases := []struct {
		prefix, centre, suffix byte
		number1                *int
	}{
		{'A', 'B', 'C', nil},
		{'Z', 'Y', 'X', intPtr(2)},
		{'M', 'N', 'O', intPtr(0)},
		// spec.md §8's worked example: "Dryau Aowsy AB-C d3-45".
		{'A', 'B', 'C', intPtr(3)},
	}
	for _, c := range cases {
		rp, ok := relPosFromSysID(c.prefix, c.centre, c.suffix, c.number1)
		require.True(t, ok)
		assert.GreaterOrEqual(t, rp.Row, 0)
		assert.Less(t, rp.Col, relPosGridSize)

		prefix, centre, suffix, number1, ok := sysIDFromRelPos(rp)
		require.True(t, ok)
		assert.Equal(t, c.prefix, prefix)
		assert.Equal(t, c.centre, centre)
		assert.Equal(t, c.suffix, suffix)
		if c.number1 == nil || *c.number1 == 0 {
			assert.Nil(t, number1)
		} else {
			require.NotNil(t, number1)
			assert.Equal(t, *c.number1, *number1)
		}
	}
}

// TestRelPosN1FullDomainRoundTrip exercises spec.md §8's testable
// property 2 for the letters A,B,C across the full N1∈[0,7] domain:
// the packing formula has no N2 term at all (see relpos.go), so only
// N1 and the three letters need to round-trip.
func TestRelPosN1FullDomainRoundTrip(t *testing.T) {
	for n1 := 0; n1 <= 7; n1++ {
		n1 := n1
		rp, ok := relPosFromSysID('A', 'B', 'C', &n1)
		require.True(t, ok, "number1=%d", n1)

		prefix, centre, suffix, number1, ok := sysIDFromRelPos(rp)
		require.True(t, ok, "number1=%d", n1)
		assert.Equal(t, byte('A'), prefix)
		assert.Equal(t, byte('B'), centre)
		assert.Equal(t, byte('C'), suffix)
		if n1 == 0 {
			assert.Nil(t, number1)
		} else {
			require.NotNil(t, number1)
			assert.Equal(t, n1, *number1)
		}
	}
}

func TestRelPosFromSysIDRejectsNegativeNumber1(t *testing.T) {
	neg := -1
	_, ok := relPosFromSysID('A', 'B', 'C', &neg)
	assert.False(t, ok)
}

func TestRelPosFromSysIDRejectsOverflowingNumber1(t *testing.T) {
	// Large enough that row (position / 128^2) exceeds the 128-wide
	// grid: spec.md §4.G lets number1 range "as far as the 128-wide
	// row grid allows", not further.
	huge := 1 << 20
	_, ok := relPosFromSysID('A', 'B', 'C', &huge)
	assert.False(t, ok)
}

func TestRelPosPositionRoundTrip(t *testing.T) {
	origin := Position{X: 100, Y: -200, Z: 300}
	rp := RelPos{Row: 10, Stack: 20, Col: 30}
	pos := positionFromRelPos(origin, rp, 'd')
	got, ok := relPosFromPosition(origin, pos, 'd')
	require.True(t, ok)
	assert.Equal(t, rp, got)
}

func TestMassCodeCubeWidth(t *testing.T) {
	assert.InDelta(t, 1280.0, massCodeCubeWidth('h'), 1e-9)
	assert.InDelta(t, 10.0, massCodeCubeWidth('a'), 1e-9)
	assert.InDelta(t, massCodeCubeWidth('A'), massCodeCubeWidth('a'), 1e-9)
}

func TestRelPosLeewayClampsNearOverflow(t *testing.T) {
	step := massCodeCubeWidth('d')
	origin := Position{X: 0, Y: 0, Z: 0}

	// 2 steps past the Col edge: rejected with no leeway, clamped with it.
	pos := Position{X: float64(relPosGridSize+1) * step, Y: 0, Z: 0}
	_, ok := relPosFromPositionWithLeeway(origin, pos, 'd', 0)
	assert.False(t, ok)

	rp, ok := relPosFromPositionWithLeeway(origin, pos, 'd', haRelPosLeeway)
	require.True(t, ok)
	assert.Equal(t, relPosGridSize-1, rp.Col)

	// Still rejected once the overshoot exceeds the leeway.
	farPos := Position{X: float64(relPosGridSize+haRelPosLeeway+1) * step, Y: 0, Z: 0}
	_, ok = relPosFromPositionWithLeeway(origin, farPos, 'd', haRelPosLeeway)
	assert.False(t, ok)
}

func intPtr(v int) *int { return &v }
