package pgcatalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starfield-tools/pgnames/pgnames"
)

func TestMemoryCatalogStoreAndLookup(t *testing.T) {
	cat := NewMemoryCatalog()
	defer cat.Close()

	ctx := context.Background()
	sys := pgnames.System{
		Name:     "Eoauwsy AB-C d1",
		Position: pgnames.Position{X: 1, Y: 2, Z: 3},
		Sector:   pgnames.Sector{Name: "Eoauwsy"},
	}

	_, ok, err := cat.LookupSystem(ctx, sys.Name)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cat.StoreSystem(ctx, &sys))

	got, ok, err := cat.LookupSystem(ctx, sys.Name)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sys.Position, got.Position)

	sec, ok, err := cat.LookupSector(ctx, "Eoauwsy")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Eoauwsy", sec.Name)
}
