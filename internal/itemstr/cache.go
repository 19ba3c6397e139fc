package itemstr

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedDescriptor wraps a grammar result with version metadata so entries
// built by an older Descriptor layout are dropped instead of served.
type cachedDescriptor struct {
	Version    string
	Descriptor Descriptor
	OK         bool
}

// descriptorCache is an LRU of parsed descriptors keyed by the raw string.
// Rejected strings are cached too, since the registry never changes under
// a running engine.
type descriptorCache struct {
	lru *expirable.LRU[string, *cachedDescriptor]
}

func newDescriptorCache(size int, ttl time.Duration) *descriptorCache {
	return &descriptorCache{
		lru: expirable.NewLRU[string, *cachedDescriptor](size, nil, ttl),
	}
}

// Get returns a copy of the cached result. found is false on a miss.
func (c *descriptorCache) Get(raw string) (d Descriptor, ok bool, found bool) {
	entry, hit := c.lru.Get(raw)
	if !hit {
		return Descriptor{}, false, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(raw)
		return Descriptor{}, false, false
	}
	return entry.Descriptor.clone(), entry.OK, true
}

func (c *descriptorCache) Set(raw string, d Descriptor, ok bool) {
	c.lru.Add(raw, &cachedDescriptor{
		Version:    CacheSchemaVersion,
		Descriptor: d.clone(),
		OK:         ok,
	})
}

func (c *descriptorCache) Len() int { return c.lru.Len() }

func (c *descriptorCache) Purge() { c.lru.Purge() }
