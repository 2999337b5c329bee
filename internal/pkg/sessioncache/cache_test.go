package sessioncache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	c := New()
	c.Set("tok-1", 7, time.Hour)

	userID, ok := c.Get("tok-1")
	assert.True(t, ok)
	assert.Equal(t, uint(7), userID)

	_, ok = c.Get("tok-2")
	assert.False(t, ok)
}

func TestExpiredEntryIsAbsent(t *testing.T) {
	c := New()
	c.Set("tok-1", 7, -time.Second)

	_, ok := c.Get("tok-1")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := New()
	c.Set("tok-1", 7, time.Hour)

	c.Remove("tok-1")
	_, ok := c.Get("tok-1")
	assert.False(t, ok)

	// Removing an absent key must not panic or error
	c.Remove("tok-1")
	c.Remove("never-existed")
}

func TestPurgeExpired(t *testing.T) {
	c := New()
	c.Set("live", 1, time.Hour)
	c.Set("dead-1", 2, -time.Second)
	c.Set("dead-2", 3, -time.Second)

	assert.Equal(t, 2, c.PurgeExpired())
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("live")
	assert.True(t, ok)
}

func TestConcurrentAccess(t *testing.T) {
	c := New()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(3)
		token := fmt.Sprintf("tok-%d", i)
		go func(token string, id uint) {
			defer wg.Done()
			c.Set(token, id, time.Hour)
		}(token, uint(i))
		go func(token string) {
			defer wg.Done()
			c.Get(token)
		}(token)
		go func(token string) {
			defer wg.Done()
			c.Remove(token)
		}(token)
	}

	wg.Wait()
}
