package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/tayloree/voicecart/internal/shopping"
)

const (
	itemsFile    = "shoppingItems.json"
	historyFile  = "shoppingHistory.json"
	searchesFile = "searchHistory.json"
)

// FileStore keeps each collection in its own JSON file.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory holding the files.
func (f *FileStore) Dir() string {
	return f.dir
}

func (f *FileStore) SaveItems(items []shopping.Item) error {
	return f.write(itemsFile, nonNil(items))
}

func (f *FileStore) SaveHistory(history []shopping.PurchaseRecord) error {
	return f.write(historyFile, nonNil(history))
}

func (f *FileStore) SaveSearches(searches []shopping.SearchEntry) error {
	return f.write(searchesFile, nonNil(searches))
}

// Load reads all three files. Missing files load as empty collections.
func (f *FileStore) Load() (shopping.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var snap shopping.Snapshot
	if err := f.read(itemsFile, &snap.Items); err != nil {
		return shopping.Snapshot{}, err
	}
	if err := f.read(historyFile, &snap.History); err != nil {
		return shopping.Snapshot{}, err
	}
	if err := f.read(searchesFile, &snap.Searches); err != nil {
		return shopping.Snapshot{}, err
	}
	return snap, nil
}

func (f *FileStore) Close() error { return nil }

func (f *FileStore) read(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}

// write replaces name atomically via a temp file and rename.
func (f *FileStore) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(f.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(f.dir, name)); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
