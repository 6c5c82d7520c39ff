package pgnames

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/starfield-tools/pgnames/internal/pgdata"
)

func TestClassifySectorName(t *testing.T) {
	assert.Equal(t, SectorNameHA, ClassifySectorName("Myriad's Rest"))
	assert.Equal(t, SectorNameHA, ClassifySectorName("myriad's rest"))
	assert.Equal(t, SectorNameInvalid, ClassifySectorName("###"))

	pos := Position{X: pgdata.BaseCoords[0] + 5, Y: pgdata.BaseCoords[1] + 5, Z: pgdata.BaseCoords[2] + 5}
	name, err := GetSectorName(pos)
	if err == nil {
		class := ClassifySectorName(name)
		assert.Contains(t, []SectorNameClass{SectorNameClass1, SectorNameClass2}, class)
	}
}

func TestGetCanonicalNameNormalizesCase(t *testing.T) {
	pos := Position{X: pgdata.BaseCoords[0] + 5, Y: pgdata.BaseCoords[1] + 5, Z: pgdata.BaseCoords[2] + 5}
	name, err := GetSectorName(pos)
	if err != nil {
		t.Skip("no procedural sector resolved for the sampled position")
	}
	canon, ok := GetCanonicalName(strings.ToLower(name))
	assert.True(t, ok)
	assert.Equal(t, name, canon)

	_, ok = GetCanonicalName("totally not a sector")
	assert.False(t, ok)
}

func TestFormatName(t *testing.T) {
	n1 := 3
	got := FormatName("Eoauwsy", 'A', 'B', 'C', 'd', &n1, 7)
	assert.Equal(t, "Eoauwsy AB-C d3-7", got)

	got = FormatName("Eoauwsy", 'A', 'B', 'C', 'd', nil, 7)
	assert.Equal(t, "Eoauwsy AB-C d7", got)
}
