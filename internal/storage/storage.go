package storage

import (
	"fmt"

	"github.com/tayloree/voicecart/internal/shopping"
)

// Backend persists the three shopping collections.
type Backend interface {
	shopping.Persister
	Load() (shopping.Snapshot, error)
	Close() error
}

const (
	KindJSON   = "json"
	KindSQLite = "sqlite"
)

// Open returns the backend named kind rooted at dir.
func Open(kind, dir string) (Backend, error) {
	switch kind {
	case "", KindJSON:
		return NewFileStore(dir)
	case KindSQLite:
		return NewSQLiteStore(dir)
	default:
		return nil, fmt.Errorf("unknown storage %q (want %s or %s)", kind, KindJSON, KindSQLite)
	}
}
