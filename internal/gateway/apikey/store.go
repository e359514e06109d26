package apikey

import (
	"database/sql"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Store holds API keys in either a JSON file or Postgres, selected at
// construction. All methods are safe for concurrent use.
type Store struct {
	path string
	db   *sql.DB

	loadOnce sync.Once
	mu       sync.RWMutex
	byKey    map[string]Key

	schemaOnce sync.Once
	schemaErr  error
}

func New(path string) *Store {
	return &Store{
		path:  path,
		byKey: make(map[string]Key),
	}
}

func NewPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// NewFromDSN picks Postgres when a DSN is set, falling back to the file
// backend when the DSN is empty or the connection fails.
func NewFromDSN(dsn, path string) *Store {
	if strings.TrimSpace(dsn) == "" {
		return New(path)
	}
	s, err := NewPostgres(dsn)
	if err != nil {
		return New(path)
	}
	return s
}

// Lookup returns the key record when the key exists and is active.
func (s *Store) Lookup(key string) (Key, bool) {
	if s == nil {
		return Key{}, false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return Key{}, false
	}
	if s.db != nil {
		return s.lookupDB(key)
	}
	return s.lookupFile(key)
}

// Put inserts or replaces a key record.
func (s *Store) Put(k Key) {
	if s == nil {
		return
	}
	k = normalizeKey(k)
	if k.Key == "" {
		return
	}
	if s.db != nil {
		s.putDB(k)
		return
	}
	s.putFile(k)
}

// Revoke deactivates a key; unknown keys are a no-op.
func (s *Store) Revoke(key string) {
	if s == nil {
		return
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	if s.db != nil {
		s.revokeDB(key)
		return
	}
	s.revokeFile(key)
}

func (s *Store) Save() {
	if s == nil || s.db != nil {
		return
	}
	s.saveFile()
}
