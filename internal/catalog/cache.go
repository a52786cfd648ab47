package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	megabyte = 1024 * 1024

	// seconds
	popularCacheExpire = 30
)

// Cache keeps popular listings for popularCacheExpire seconds. Catalog
// writes drop them and bump the generation, so a listing loaded before a
// write is never stored after it.
type Cache struct {
	mu         sync.Mutex
	cache      *freecache.Cache
	generation uint64
}

func NewCache(sizeMB int) *Cache {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &Cache{
		cache: freecache.NewCache(sizeMB * megabyte),
	}
}

func popularKey(limit int) []byte {
	return []byte(fmt.Sprintf("popular::%d", limit))
}

func (c *Cache) Popular(limit int) ([]Exercise, bool) {
	popularBytes, err := c.cache.Get(popularKey(limit))
	if err != nil {
		return nil, false
	}
	var exercises []Exercise
	if err := json.Unmarshal(popularBytes, &exercises); err != nil {
		log.Errorf("unmarshal cached popular exercises: %s", err)
		return nil, false
	}
	return exercises, true
}

// Generation is read before loading a listing and handed back to SetPopular.
func (c *Cache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// SetPopular stores the listing unless the cache was invalidated after generation was read.
func (c *Cache) SetPopular(generation uint64, limit int, exercises []Exercise) {
	popularBytes, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("marshal popular exercises: %s", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		log.Tracef("popular exercises, limit %d, loaded before the last write, not cached", limit)
		return
	}
	if err := c.cache.Set(popularKey(limit), popularBytes, popularCacheExpire); err != nil {
		log.Errorf("cache popular exercises, limit %d: %s", limit, err)
	}
}

// Invalidate drops all cached listings.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.cache.Clear()
}
