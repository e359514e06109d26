package apikey

import (
	"strings"
	"time"
)

// Key is one issued API key. Keys are opaque strings; the gateway never
// derives anything from their shape.
type Key struct {
	Key       string    `json:"key"`
	Owner     string    `json:"owner"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func normalizeKey(k Key) Key {
	k.Key = strings.TrimSpace(k.Key)
	k.Owner = strings.TrimSpace(k.Owner)
	if k.CreatedAt.IsZero() {
		k.CreatedAt = time.Now().UTC()
	}
	return k
}
