package cache

import "time"

// LayeredCache combines a short-lived memory layer with the durable
// disk layer. The disk layer carries the 7-day expiry semantics; the
// memory layer only avoids repeat file reads within a session.
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache creates a new layered cache
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, 10*time.Minute),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get retrieves a verse, checking memory first, then disk
func (c *LayeredCache) Get(key string) (string, bool) {
	if text, found := c.memory.Get(key); found {
		return text, true
	}

	if text, found := c.disk.Get(key); found {
		// Promote to memory
		_ = c.memory.Set(key, text)
		return text, true
	}

	return "", false
}

// Set stores a verse in both layers
func (c *LayeredCache) Set(key, text string) error {
	if err := c.memory.Set(key, text); err != nil {
		return err
	}
	return c.disk.Set(key, text)
}

// Delete removes a verse from both layers
func (c *LayeredCache) Delete(key string) error {
	_ = c.memory.Delete(key)
	return c.disk.Delete(key)
}

// Clear removes all verses from both layers
func (c *LayeredCache) Clear() error {
	_ = c.memory.Clear()
	return c.disk.Clear()
}
