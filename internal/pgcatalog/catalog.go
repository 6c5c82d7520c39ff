// Package pgcatalog glues the pgnames codec to a cache store and an
// HTTP façade, mirroring the teacher's claim-store/server split.
package pgcatalog

import (
	"context"

	"github.com/starfield-tools/pgnames/pgnames"
)

// Catalog caches System lookups resolved by the pgnames codec. The
// codec itself is stateless and pure; Catalog exists only so repeated
// lookups of the same name don't re-run the tokenizer and offset math.
type Catalog interface {
	LookupSystem(ctx context.Context, name string) (*pgnames.System, bool, error)
	LookupSector(ctx context.Context, name string) (*pgnames.Sector, bool, error)
	StoreSystem(ctx context.Context, sys *pgnames.System) error
	Close() error
}
