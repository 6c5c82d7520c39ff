package pgcatalog

import (
	"context"
	"sync"

	"github.com/starfield-tools/pgnames/pgnames"
)

// MemoryCatalog is an in-memory Catalog, grounded on the teacher's
// ClaimStore: a mutex-guarded map, no persistence.
type MemoryCatalog struct {
	mutex    sync.RWMutex
	systems  map[string]pgnames.System
	sectors  map[string]pgnames.Sector
}

var _ Catalog = (*MemoryCatalog)(nil)

// NewMemoryCatalog creates an empty in-memory catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		systems: make(map[string]pgnames.System),
		sectors: make(map[string]pgnames.Sector),
	}
}

func (c *MemoryCatalog) LookupSystem(ctx context.Context, name string) (*pgnames.System, bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	sys, ok := c.systems[name]
	if !ok {
		return nil, false, nil
	}
	return &sys, true, nil
}

func (c *MemoryCatalog) LookupSector(ctx context.Context, name string) (*pgnames.Sector, bool, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	sec, ok := c.sectors[name]
	if !ok {
		return nil, false, nil
	}
	return &sec, true, nil
}

func (c *MemoryCatalog) StoreSystem(ctx context.Context, sys *pgnames.System) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.systems[sys.Name] = *sys
	c.sectors[sys.Sector.Name] = sys.Sector
	return nil
}

func (c *MemoryCatalog) Close() error {
	return nil
}
