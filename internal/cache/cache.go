// Package cache provides the persistent verse-text cache. Caching is
// an optimization, not a correctness requirement: every operation is
// fail-soft and the application functions with caching disabled.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// nowFunc is the clock used for expiry checks (injectable for tests)
var nowFunc = time.Now

// Cache defines the interface for verse-text caching
type Cache interface {
	Get(key string) (string, bool)
	Set(key, text string) error
	Delete(key string) error
	Clear() error
}

// Key hashes a verse cache key (translation:book:chapter:range) into a
// stable store identifier
func Key(verseKey string) string {
	hash := sha256.Sum256([]byte(verseKey))
	return "truthseed:v1:" + hex.EncodeToString(hash[:])
}

// Disabled is a no-op cache used when caching is turned off or the
// backing store is unavailable
type Disabled struct{}

func (Disabled) Get(string) (string, bool) { return "", false }
func (Disabled) Set(string, string) error  { return nil }
func (Disabled) Delete(string) error       { return nil }
func (Disabled) Clear() error              { return nil }
