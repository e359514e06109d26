package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ResultCache memoizes rendered analysis responses keyed by the request
// shape. Entries expire so a redeployed site is re-analyzed within the TTL.
type ResultCache struct {
	lru *expirable.LRU[string, []byte]
}

func New(entries int, ttl time.Duration) *ResultCache {
	if entries <= 0 {
		entries = 256
	}
	return &ResultCache{
		lru: expirable.NewLRU[string, []byte](entries, nil, ttl),
	}
}

// Key derives a stable cache key from the URLs and rendering options.
func Key(urls []string, parts ...string) string {
	h := sha256.New()
	h.Write([]byte(strings.Join(urls, "\n")))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(parts, "\n")))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *ResultCache) Get(key string) ([]byte, bool) {
	if c == nil || c.lru == nil {
		return nil, false
	}
	return c.lru.Get(key)
}

func (c *ResultCache) Add(key string, value []byte) {
	if c == nil || c.lru == nil {
		return
	}
	c.lru.Add(key, value)
}
