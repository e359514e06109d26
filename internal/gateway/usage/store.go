package usage

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Record is one logged API request.
type Record struct {
	Key      string    `json:"key"`
	Endpoint string    `json:"endpoint"`
	Status   int       `json:"status"`
	Duration int64     `json:"duration_ms"`
	At       time.Time `json:"at"`
}

// Store appends usage records to a JSON-lines file or a Postgres table.
// Logging is best-effort; failures never surface to the request path.
type Store struct {
	path string
	db   *sql.DB

	mu sync.Mutex

	schemaOnce sync.Once
	schemaErr  error
}

func New(path string) *Store {
	return &Store{path: path}
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

func (s *Store) Append(rec Record) {
	if s == nil {
		return
	}
	if rec.At.IsZero() {
		rec.At = time.Now().UTC()
	}
	if s.db != nil {
		s.appendDB(rec)
		return
	}
	s.appendFile(rec)
}

func (s *Store) appendFile(rec Record) {
	b, err := json.Marshal(rec)
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = os.MkdirAll(filepath.Dir(s.path), 0o755)
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.Write(append(b, '\n'))
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS api_usage (
    id          BIGSERIAL PRIMARY KEY,
    key         TEXT NOT NULL,
    endpoint    TEXT NOT NULL,
    status      INTEGER NOT NULL,
    duration_ms BIGINT NOT NULL,
    at          TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func (s *Store) ensureSchema() error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(schemaSQL)
	})
	return s.schemaErr
}

func (s *Store) appendDB(rec Record) {
	if err := s.ensureSchema(); err != nil {
		return
	}
	_, _ = s.db.Exec(`
INSERT INTO api_usage (key, endpoint, status, duration_ms, at)
VALUES ($1, $2, $3, $4, $5)`,
		rec.Key, rec.Endpoint, rec.Status, rec.Duration, rec.At)
}
