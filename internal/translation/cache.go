package translation

import "sync"

// Cache stores finished translations keyed by language pair and source text.
type Cache interface {
	Get(source, target, text string) (string, bool, error)
	Put(source, target, text, translation string) error
}

// MemoryCache stores translations in memory for the duration of a run
type MemoryCache struct {
	mu           sync.Mutex
	translations map[string]string
}

// NewMemoryCache creates a new in-memory translation cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		translations: make(map[string]string),
	}
}

// Put adds a translation to the cache
func (c *MemoryCache) Put(source, target, text, translation string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translations[cacheKey(source, target, text)] = translation
	return nil
}

// Get retrieves a translation from the cache
func (c *MemoryCache) Get(source, target, text string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	translation, ok := c.translations[cacheKey(source, target, text)]
	return translation, ok, nil
}

// Len returns the number of cached translations
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.translations)
}

func cacheKey(source, target, text string) string {
	return source + "\x00" + target + "\x00" + text
}
