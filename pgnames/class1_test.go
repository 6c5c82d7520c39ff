package pgnames

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starfield-tools/pgnames/internal/pgdata"
)

func TestClass1RoundTrip(t *testing.T) {
	ensureOffsets()
	for offset := 0; offset < pgdata.CxPrefixTotalRunLength*20; offset++ {
		if ClassifyOffset(offset) != 1 {
			continue
		}
		frags, ok := nameFromClass1Offset(offset)
		if !ok {
			continue
		}
		got, ok := offsetFromClass1Name(frags)
		require.True(t, ok, "offset %d -> frags %v did not re-decode", offset, frags)
		assert.Equal(t, offset, got, "round trip mismatch for frags %v", frags)
	}
}

func TestClass1NameShape(t *testing.T) {
	ensureOffsets()
	found3, found4 := false, false
	for offset := 0; offset < pgdata.CxPrefixTotalRunLength*20 && !(found3 && found4); offset++ {
		if ClassifyOffset(offset) != 1 {
			continue
		}
		frags, ok := nameFromClass1Offset(offset)
		if !ok {
			continue
		}
		assert.True(t, isPrefix(frags[0]), "first fragment must be a prefix")
		switch len(frags) {
		case 3:
			found3 = true
		case 4:
			found4 = true
		default:
			t.Fatalf("unexpected fragment count %d for offset %d: %v", len(frags), offset, frags)
		}
	}
	assert.True(t, found3, "expected to observe a 3-fragment class-1 name in the sampled range")
	assert.True(t, found4, "expected to observe a 4-fragment class-1 name in the sampled range")
}
