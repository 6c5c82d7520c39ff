package pgnames

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starfield-tools/pgnames/internal/pgdata"
)

func TestSectorOffsetRoundTrip(t *testing.T) {
	galSize := pgdata.C1GalaxySize
	for _, unshifted := range [][3]int{{0, 0, 0}, {5, 3, 10}, {galSize[0] - 1, galSize[1] - 1, galSize[2] - 1}} {
		offset := offsetFromSector(unshifted, galSize)
		centred, ok := sectorFromOffset(offset, galSize)
		require.True(t, ok)
		base := pgdata.BaseSectorCoords(galSize)
		assert.Equal(t, unshifted[0]-base[0], centred[0])
		assert.Equal(t, unshifted[1]-base[1], centred[1])
		assert.Equal(t, unshifted[2]-base[2], centred[2])
	}
}

func TestSectorFromOffsetRejectsOutOfBounds(t *testing.T) {
	galSize := pgdata.C1GalaxySize
	_, ok := sectorFromOffset(-1, galSize)
	assert.False(t, ok)
	_, ok = sectorFromOffset(galSize[0]*galSize[1]*galSize[2], galSize)
	assert.False(t, ok)
}

func TestUnshiftedIndexFromPositionAtBase(t *testing.T) {
	galSize := pgdata.C1GalaxySize
	pos := Position{X: pgdata.BaseCoords[0], Y: pgdata.BaseCoords[1], Z: pgdata.BaseCoords[2]}
	idx, ok := unshiftedIndexFromPosition(pos, galSize)
	require.True(t, ok)
	base := pgdata.BaseSectorCoords(galSize)
	assert.Equal(t, base, idx)
}
