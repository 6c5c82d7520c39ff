package pgnames

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFragmentsRoundTripsGeneratedNames(t *testing.T) {
	ensureOffsets()
	checked := 0
	for offset := 0; offset < 2000 && checked < 20; offset++ {
		if ClassifyOffset(offset) != 1 {
			continue
		}
		frags, ok := nameFromClass1Offset(offset)
		if !ok {
			continue
		}
		name := ""
		for _, f := range frags {
			name += f
		}
		got, ok := GetFragments(name, false)
		require.True(t, ok, "could not tokenize generated name %q", name)
		assert.Equal(t, frags, got)
		checked++
	}
	assert.Greater(t, checked, 0)
}

func TestGetFragmentsRejectsGarbage(t *testing.T) {
	_, ok := GetFragments("1234", false)
	assert.False(t, ok)
}

func TestGetFragmentsEnforcesLimitUnlessAllowLong(t *testing.T) {
	ensureOffsets()
	var frags []string
	for offset := 0; offset < 2000; offset++ {
		if ClassifyOffset(offset) != 1 {
			continue
		}
		if f, ok := nameFromClass1Offset(offset); ok {
			frags = f
			break
		}
	}
	require.NotEmpty(t, frags)

	// The copies are space-separated: GetFragments title-cases each word,
	// so a second prefix glued onto the first word would be lowercased.
	name := ""
	for i := 0; i < 2; i++ {
		if i > 0 {
			name += " "
		}
		for _, f := range frags {
			name += f
		}
	}

	_, ok := GetFragments(name, false)
	assert.False(t, ok, "doubled fragment run should exceed the default fragment limit")

	got, ok := GetFragments(name, true)
	require.True(t, ok)
	assert.Len(t, got, 2*len(frags))
}
