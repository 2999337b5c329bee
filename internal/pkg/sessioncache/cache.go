// Package sessioncache holds the process-wide mapping from active bearer
// tokens to user ids. It exists so logout has an observable effect: a
// signed token is self-verifying and cannot be recalled before expiry.
// The access middleware does not consult it, so a removed entry leaves
// the token independently valid until its own expiration; the cache is
// advisory revocation bookkeeping. Entries do not survive a restart.
package sessioncache

import (
	"sync"
	"time"
)

type entry struct {
	userID    uint
	expiresAt time.Time
}

// Cache is a mutex-protected token → user id map with per-entry expiry.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]entry)}
}

// Set registers a token for userID, expiring after ttl.
func (c *Cache) Set(token string, userID uint, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[token] = entry{userID: userID, expiresAt: time.Now().Add(ttl)}
}

// Get returns the user id bound to token. Expired entries are treated
// as absent and dropped.
func (c *Cache) Get(token string) (uint, bool) {
	c.mu.RLock()
	e, ok := c.entries[token]
	c.mu.RUnlock()
	if !ok {
		return 0, false
	}
	if time.Now().After(e.expiresAt) {
		c.Remove(token)
		return 0, false
	}
	return e.userID, true
}

// Remove deletes the entry for token. Removing an absent token is a no-op.
func (c *Cache) Remove(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, token)
}

// PurgeExpired drops all entries past their expiry and reports how many
// were removed.
func (c *Cache) PurgeExpired() int {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	purged := 0
	for token, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, token)
			purged++
		}
	}
	return purged
}

// Len reports the number of entries, including any not-yet-purged
// expired ones.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
