package texture

import (
	"image"
	"sync"
)

// Resolver resolves an image reference to a decoded NRGBA image.
// A nil result means the artwork has no visual content; callers must
// keep the owning frame in the scene regardless.
type Resolver interface {
	Resolve(ref string) *image.NRGBA
}

// Cache is a concurrency-safe artwork cache.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
	onErr func(ref string, err error)
}

// cacheEntry records one load attempt; img is nil when it failed.
type cacheEntry struct {
	img *image.NRGBA
}

// NewCache creates a new artwork cache backed by the given index.
// onErr, when non-nil, is called once per reference that fails to load.
func NewCache(index *Index, onErr func(ref string, err error)) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
		onErr: onErr,
	}
}

// Resolve loads and caches an image by reference. Returns nil if not found
// or not decodable.
func (c *Cache) Resolve(ref string) *image.NRGBA {
	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[ref]; exists {
		c.mu.RUnlock()
		return entry.img
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	var img *image.NRGBA
	var loadErr error
	if path, ok := c.index.ResolvePath(ref); ok {
		img, loadErr = LoadTexture(path)
	} else {
		loadErr = errNotFound
	}

	// Write lock with double-check
	c.mu.Lock()
	if entry, exists := c.items[ref]; exists {
		c.mu.Unlock()
		return entry.img
	}
	c.items[ref] = &cacheEntry{img: img}
	c.mu.Unlock()

	if loadErr != nil && c.onErr != nil {
		c.onErr(ref, loadErr)
	}
	return img
}

// Len returns the number of references attempted so far.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
