// Package storage holds the backends that remember classification results.
package storage

import (
	"fmt"
	"path/filepath"

	"svw.info/mutant/internal/ports"
)

// Store is a ports.Storage that owns resources.
type Store interface {
	ports.Storage
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Driver       string // memory|fs|sqlite
	Path         string
	SQLiteDriver string // sqlite (modernc) | sqlite3 (mattn)
	CacheSize    int
}

// Open builds the backend named by opts.Driver, wrapped in an LRU when
// CacheSize is positive.
func Open(opts Options) (Store, error) {
	var st Store
	switch opts.Driver {
	case "", "memory":
		st = NewMemory()
	case "fs":
		st = NewFS(opts.Path)
	case "sqlite":
		db, err := NewSQLite(filepath.Join(opts.Path, "dna.db"), opts.SQLiteDriver)
		if err != nil {
			return nil, err
		}
		st = db
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
	if opts.CacheSize > 0 {
		st = NewCached(st, opts.CacheSize)
	}
	return st, nil
}
