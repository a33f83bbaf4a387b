package kv

import (
	"context"
	"fmt"
	"path/filepath"
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
	Close() error
}

const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bbolt"
	DriverMemory = "memory"
)

// Open returns the backend named by driver. For file backends the database
// file is dir/file.
func Open(ctx context.Context, driver, dir, file string) (Store, error) {
	switch driver {
	case DriverSQLite, "":
		return OpenSQLite(ctx, filepath.Join(dir, file))
	case DriverBolt:
		return OpenBolt(filepath.Join(dir, file))
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
