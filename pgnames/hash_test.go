package pgnames

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOffsetIsStable(t *testing.T) {
	for _, offset := range []int{0, 1, 42, 1000, -500} {
		a := ClassifyOffset(offset)
		b := ClassifyOffset(offset)
		assert.Equal(t, a, b, "classification must be deterministic for offset %d", offset)
		assert.Contains(t, []int{1, 2}, a)
	}
}

func TestClassifyOffsetUsesBothClasses(t *testing.T) {
	seen := map[int]bool{}
	for offset := 0; offset < 500 && len(seen) < 2; offset++ {
		seen[ClassifyOffset(offset)] = true
	}
	assert.Len(t, seen, 2, "expected both class 1 and class 2 to appear across a sample of offsets")
}
