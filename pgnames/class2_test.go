package pgnames

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starfield-tools/pgnames/internal/pgdata"
)

func TestClass2OffsetRoundTrip(t *testing.T) {
	ensureOffsets()
	span := class2Span()
	require.Greater(t, span, 0)
	for offset := 0; offset < span; offset++ {
		n, ok := nameFromClass2Offset(offset)
		require.True(t, ok, "offset %d did not decode", offset)

		got, ok := offsetFromClass2Name(n)
		require.True(t, ok, "name %+v did not re-encode", n)
		assert.Equal(t, offset, got, "round trip mismatch for name %+v", n)
	}
}

func TestClass2OffsetOutOfRangeRejected(t *testing.T) {
	ensureOffsets()
	_, ok := nameFromClass2Offset(-1)
	assert.False(t, ok)

	_, ok = nameFromClass2Offset(class2Span())
	assert.False(t, ok)
}

func TestClass2WordPositionRoundTrip(t *testing.T) {
	ensureOffsets()
	for _, prefix := range []string{"Eo", "Wre", "Dry", "Tz", "Mhu"} {
		sufs := suffixesFor([]string{prefix}, false)
		require.NotEmpty(t, sufs)
		for _, suf := range sufs {
			within, ok := class2WordPosition(prefix, suf)
			require.True(t, ok)
			gotPrefix, gotSuf, ok := class2WordFromPosition(within)
			require.True(t, ok)
			assert.Equal(t, prefix, gotPrefix)
			assert.Equal(t, suf, gotSuf)
		}
	}
}

func TestClass2SpanMatchesGalaxyVolume(t *testing.T) {
	// class2Span is the theoretical ceiling on addressable class-2
	// sectors, derived from the four state tables rather than
	// hand-duplicated (see DESIGN.md).
	assert.Greater(t, class2Span(), 0)
	gal := pgdata.C2GalaxySize
	assert.Equal(t, gal[0]*gal[1]*gal[2], class2Span())
}
