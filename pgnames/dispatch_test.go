package pgnames

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starfield-tools/pgnames/internal/pgdata"
)

func TestGetSectorNameAndBackRoundTrip(t *testing.T) {
	pos := Position{X: pgdata.BaseCoords[0] + 50, Y: pgdata.BaseCoords[1] + 50, Z: pgdata.BaseCoords[2] + 50}
	name, err := GetSectorName(pos)
	require.NoError(t, err)

	sec, err := GetSector(name)
	require.NoError(t, err)
	assert.Equal(t, name, sec.Name)
}

func TestHASectorTakesPrecedence(t *testing.T) {
	pos := Position{X: 1200, Y: 50, Z: 3400}
	name, err := GetSectorName(pos)
	require.NoError(t, err)
	assert.Equal(t, "Myriad's Rest", name)

	sec, err := GetSector("myriad's rest")
	require.NoError(t, err)
	assert.Equal(t, SectorHA, sec.Kind)
	assert.Equal(t, byte('b'), sec.MassCode)
}

func TestGetSystemRoundTrip(t *testing.T) {
	pos := Position{X: pgdata.BaseCoords[0] + 10, Y: pgdata.BaseCoords[1] + 10, Z: pgdata.BaseCoords[2] + 10}
	sectorName, err := GetSectorName(pos)
	require.NoError(t, err)

	sysName, err := GetSystemName(pos, 'd')
	require.NoError(t, err)
	assert.Contains(t, sysName, sectorName)

	sys, err := GetSystem(sysName)
	require.NoError(t, err)

	step := massCodeCubeWidth('d')
	assert.InDelta(t, pos.X, sys.Position.X, step)
	assert.InDelta(t, pos.Y, sys.Position.Y, step)
	assert.InDelta(t, pos.Z, sys.Position.Z, step)
}

func TestGetSystemNameRequiresMassCode(t *testing.T) {
	pos := Position{X: pgdata.BaseCoords[0], Y: pgdata.BaseCoords[1], Z: pgdata.BaseCoords[2]}
	_, err := GetSystemName(pos, 0)
	assert.ErrorIs(t, err, ErrBadMassCode)
}

func TestGetSectorRejectsGarbage(t *testing.T) {
	_, err := GetSector("!!!not a name!!!")
	assert.Error(t, err)
}
