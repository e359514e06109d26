package apikey

import "time"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS api_keys (
    key        TEXT PRIMARY KEY,
    owner      TEXT NOT NULL DEFAULT '',
    active     BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func (s *Store) ensureSchema() error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(schemaSQL)
	})
	return s.schemaErr
}

func (s *Store) lookupDB(key string) (Key, bool) {
	if err := s.ensureSchema(); err != nil {
		return Key{}, false
	}
	row := s.db.QueryRow(`SELECT key, owner, active, created_at FROM api_keys WHERE key = $1`, key)
	var k Key
	var created time.Time
	if err := row.Scan(&k.Key, &k.Owner, &k.Active, &created); err != nil {
		return Key{}, false
	}
	k.CreatedAt = created.UTC()
	if !k.Active {
		return Key{}, false
	}
	return k, true
}

func (s *Store) putDB(k Key) {
	if err := s.ensureSchema(); err != nil {
		return
	}
	_, _ = s.db.Exec(`
INSERT INTO api_keys (key, owner, active, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (key) DO UPDATE SET owner = EXCLUDED.owner, active = EXCLUDED.active`,
		k.Key, k.Owner, k.Active, k.CreatedAt)
}

func (s *Store) revokeDB(key string) {
	if err := s.ensureSchema(); err != nil {
		return
	}
	_, _ = s.db.Exec(`UPDATE api_keys SET active = FALSE WHERE key = $1`, key)
}
