package apikey

import (
	"encoding/json"
	"os"
	"path/filepath"
)

func (s *Store) ensureLoadedFile() {
	s.loadOnce.Do(func() {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return
		}
		var rows []Key
		if err := json.Unmarshal(b, &rows); err != nil {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, row := range rows {
			row = normalizeKey(row)
			if row.Key == "" {
				continue
			}
			s.byKey[row.Key] = row
		}
	})
}

func (s *Store) saveFile() {
	s.ensureLoadedFile()
	s.mu.RLock()
	rows := make([]Key, 0, len(s.byKey))
	for _, k := range s.byKey {
		rows = append(rows, k)
	}
	s.mu.RUnlock()

	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(s.path), 0o755)
	_ = os.WriteFile(s.path, b, 0o644)
}

func (s *Store) lookupFile(key string) (Key, bool) {
	s.ensureLoadedFile()
	s.mu.RLock()
	k, ok := s.byKey[key]
	s.mu.RUnlock()
	if !ok || !k.Active {
		return Key{}, false
	}
	return k, true
}

func (s *Store) putFile(k Key) {
	s.ensureLoadedFile()
	s.mu.Lock()
	s.byKey[k.Key] = k
	s.mu.Unlock()
}

func (s *Store) revokeFile(key string) {
	s.ensureLoadedFile()
	s.mu.Lock()
	if k, ok := s.byKey[key]; ok {
		k.Active = false
		s.byKey[key] = k
	}
	s.mu.Unlock()
}
