package pgcatalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/starfield-tools/pgnames/pgnames"
)

// systemTTL bounds how long a resolved system stays cached: the codec
// is a pure function of its input, so a stale cache entry is simply a
// wasted lookup, never a correctness problem.
const systemTTL = 24 * time.Hour

// RedisCatalog is a Redis-backed Catalog, grounded on the teacher's
// RedisClientImpl/RedisStore: a thin wrapper storing JSON-encoded
// values under a namespaced key.
type RedisCatalog struct {
	client *redis.Client
}

var _ Catalog = (*RedisCatalog)(nil)

// NewRedisCatalog dials addr and verifies connectivity before
// returning, exactly as the teacher's NewRedisClient does.
func NewRedisCatalog(addr string) (*RedisCatalog, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	ctx := context.Background()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	return &RedisCatalog{client: client}, nil
}

func systemKey(name string) string { return "pgnames:sys:" + name }
func sectorKey(name string) string { return "pgnames:sector:" + name }

func (c *RedisCatalog) LookupSystem(ctx context.Context, name string) (*pgnames.System, bool, error) {
	val, err := c.client.Get(ctx, systemKey(name)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var sys pgnames.System
	if err := json.Unmarshal([]byte(val), &sys); err != nil {
		return nil, false, err
	}
	return &sys, true, nil
}

func (c *RedisCatalog) LookupSector(ctx context.Context, name string) (*pgnames.Sector, bool, error) {
	val, err := c.client.Get(ctx, sectorKey(name)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var sec pgnames.Sector
	if err := json.Unmarshal([]byte(val), &sec); err != nil {
		return nil, false, err
	}
	return &sec, true, nil
}

func (c *RedisCatalog) StoreSystem(ctx context.Context, sys *pgnames.System) error {
	body, err := json.Marshal(sys)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, systemKey(sys.Name), body, systemTTL).Err(); err != nil {
		return err
	}
	secBody, err := json.Marshal(sys.Sector)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, sectorKey(sys.Sector.Name), secBody, systemTTL).Err()
}

func (c *RedisCatalog) Close() error {
	return c.client.Close()
}
