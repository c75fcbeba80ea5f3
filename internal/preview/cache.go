package preview

import (
	"container/list"
	"fmt"
	"sync"
)

const defaultCacheEntries = 16

type cacheKey struct {
	url      string
	protocol Protocol
	width    int
	height   int
}

func (k cacheKey) String() string {
	return fmt.Sprintf("%s:%dx%d:%s", k.protocol, k.width, k.height, k.url)
}

type cacheEntry struct {
	key      cacheKey
	rendered string
}

// Cache is a small LRU of rendered frames, so stepping back through history
// does not download and decode the same image again.
type Cache struct {
	mu     sync.Mutex
	max    int
	items  map[cacheKey]*list.Element
	order  *list.List // front = most recent
	hits   int
	misses int
}

// NewCache creates a cache holding up to max frames.
func NewCache(max int) *Cache {
	if max <= 0 {
		max = defaultCacheEntries
	}
	return &Cache{
		max:   max,
		items: make(map[cacheKey]*list.Element),
		order: list.New(),
	}
}

func (c *Cache) get(k cacheKey) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.items[k]
	if !ok {
		c.misses++
		return "", false
	}
	c.hits++
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).rendered, true
}

func (c *Cache) put(k cacheKey, rendered string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[k]; ok {
		elem.Value.(*cacheEntry).rendered = rendered
		c.order.MoveToFront(elem)
		return
	}
	c.items[k] = c.order.PushFront(&cacheEntry{key: k, rendered: rendered})
	for c.order.Len() > c.max {
		back := c.order.Back()
		delete(c.items, back.Value.(*cacheEntry).key)
		c.order.Remove(back)
	}
}

// Len returns the number of cached frames.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
