package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tayloree/voicecart/internal/shopping"
)

const dbFile = "voicecart.db"

const schema = `
CREATE TABLE IF NOT EXISTS items (
	position INTEGER PRIMARY KEY,
	id TEXT NOT NULL,
	name TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	category TEXT NOT NULL,
	added_at TEXT NOT NULL,
	completed INTEGER NOT NULL,
	price REAL
);
CREATE TABLE IF NOT EXISTS purchase_history (
	position INTEGER PRIMARY KEY,
	item_name TEXT NOT NULL,
	frequency INTEGER NOT NULL,
	last_purchased TEXT NOT NULL,
	category TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS search_history (
	position INTEGER PRIMARY KEY,
	query TEXT NOT NULL,
	timestamp TEXT NOT NULL
);`

// SQLiteStore keeps the collections in a SQLite database. Each save rewrites
// one table inside a transaction, preserving order in the position column.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore opens (or creates) dir/voicecart.db.
func NewSQLiteStore(dir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	path := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLiteStore{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) SaveItems(items []shopping.Item) error {
	return s.replace("items", func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO items
			(position, id, name, quantity, category, added_at, completed, price)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, it := range items {
			price := sql.NullFloat64{}
			if it.Price != nil {
				price = sql.NullFloat64{Float64: *it.Price, Valid: true}
			}
			if _, err := stmt.Exec(i, it.ID, it.Name, it.Quantity, it.Category,
				formatTime(it.AddedAt), boolToInt(it.Completed), price); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) SaveHistory(history []shopping.PurchaseRecord) error {
	return s.replace("purchase_history", func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO purchase_history
			(position, item_name, frequency, last_purchased, category)
			VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, h := range history {
			if _, err := stmt.Exec(i, h.ItemName, h.Frequency, formatTime(h.LastPurchased), h.Category); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) SaveSearches(searches []shopping.SearchEntry) error {
	return s.replace("search_history", func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO search_history (position, query, timestamp) VALUES (?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, e := range searches {
			if _, err := stmt.Exec(i, e.Query, formatTime(e.Timestamp)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) replace(table string, insert func(*sql.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("saving %s: %w", table, err)
	}
	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		tx.Rollback()
		return fmt.Errorf("saving %s: %w", table, err)
	}
	if err := insert(tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("saving %s: %w", table, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("saving %s: %w", table, err)
	}
	return nil
}

// Load reads every table in position order.
func (s *SQLiteStore) Load() (shopping.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var snap shopping.Snapshot
	var err error
	if snap.Items, err = s.loadItems(); err != nil {
		return shopping.Snapshot{}, fmt.Errorf("loading items: %w", err)
	}
	if snap.History, err = s.loadHistory(); err != nil {
		return shopping.Snapshot{}, fmt.Errorf("loading purchase history: %w", err)
	}
	if snap.Searches, err = s.loadSearches(); err != nil {
		return shopping.Snapshot{}, fmt.Errorf("loading search history: %w", err)
	}
	return snap, nil
}

func (s *SQLiteStore) loadItems() ([]shopping.Item, error) {
	rows, err := s.db.Query(`SELECT id, name, quantity, category, added_at, completed, price
		FROM items ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []shopping.Item
	for rows.Next() {
		var (
			it        shopping.Item
			addedAt   string
			completed int
			price     sql.NullFloat64
		)
		if err := rows.Scan(&it.ID, &it.Name, &it.Quantity, &it.Category, &addedAt, &completed, &price); err != nil {
			return nil, err
		}
		if it.AddedAt, err = parseTime(addedAt); err != nil {
			return nil, err
		}
		it.Completed = completed == 1
		if price.Valid {
			v := price.Float64
			it.Price = &v
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQLiteStore) loadHistory() ([]shopping.PurchaseRecord, error) {
	rows, err := s.db.Query(`SELECT item_name, frequency, last_purchased, category
		FROM purchase_history ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []shopping.PurchaseRecord
	for rows.Next() {
		var (
			h    shopping.PurchaseRecord
			last string
		)
		if err := rows.Scan(&h.ItemName, &h.Frequency, &last, &h.Category); err != nil {
			return nil, err
		}
		if h.LastPurchased, err = parseTime(last); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

func (s *SQLiteStore) loadSearches() ([]shopping.SearchEntry, error) {
	rows, err := s.db.Query(`SELECT query, timestamp FROM search_history ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var searches []shopping.SearchEntry
	for rows.Next() {
		var (
			e  shopping.SearchEntry
			ts string
		)
		if err := rows.Scan(&e.Query, &ts); err != nil {
			return nil, err
		}
		if e.Timestamp, err = parseTime(ts); err != nil {
			return nil, err
		}
		searches = append(searches, e)
	}
	return searches, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
