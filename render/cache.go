// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"container/list"

	"cogentcore.org/core/base/errors"
)

// DefaultCacheSize is the resource cache capacity used when none is
// specified, in bytes.
const DefaultCacheSize int64 = 250 * 1024 * 1024

// Releaser is implemented by cached resources holding GPU objects that
// must be freed when the resource leaves the cache.
type Releaser interface {
	Release()
}

// ResourceCache is an LRU cache of GPU resources keyed by string, with
// a byte capacity. When an insertion pushes the resident size past the
// capacity, least recently used entries are evicted until the size
// falls to the low water mark, so that a full cache does not evict on
// every subsequent insertion. Evicted, removed, and replaced resources
// that implement [Releaser] are released.
//
// A cache is owned by a single [DrawContext] and accessed only from its
// frame loop, so it does no locking.
type ResourceCache struct {

	// Capacity is the maximum total size of cached resources in bytes.
	Capacity int64

	// LowWater is the size eviction reduces the cache to, in bytes.
	// It defaults to 3/4 of Capacity.
	LowWater int64

	entries   map[string]*list.Element
	lru       *list.List // front is most recently used
	used      int64
	hits      int
	misses    int
	evictions int
}

// cacheEntry is the value stored in each lru element.
type cacheEntry struct {
	key      string
	resource any
	size     int64
}

// CacheStats reports the state and hit counts of a [ResourceCache].
type CacheStats struct {
	Used      int64
	Entries   int
	Hits      int
	Misses    int
	Evictions int
}

// NewResourceCache returns a new cache with the given capacity in
// bytes, or [DefaultCacheSize] if it is not positive.
func NewResourceCache(capacity int64) *ResourceCache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &ResourceCache{
		Capacity: capacity,
		LowWater: capacity / 4 * 3,
		entries:  make(map[string]*list.Element),
		lru:      list.New(),
	}
}

// Resource returns the resource cached under the given key, or nil if
// there is none, marking it as most recently used.
func (rc *ResourceCache) Resource(key string) any {
	el, ok := rc.entries[key]
	if !ok {
		rc.misses++
		return nil
	}
	rc.hits++
	rc.lru.MoveToFront(el)
	return el.Value.(*cacheEntry).resource
}

// Contains reports whether a resource is cached under the given key,
// without marking it used.
func (rc *ResourceCache) Contains(key string) bool {
	_, ok := rc.entries[key]
	return ok
}

// Put caches the given resource under the given key with the given
// size in bytes, replacing and releasing any different resource already
// under that key. A resource larger than the cache capacity, or with a
// size that is not positive, is not cached, and an error is logged.
// Insertion may evict least recently used resources.
func (rc *ResourceCache) Put(key string, resource any, size int64) {
	if size <= 0 || size > rc.Capacity {
		errors.Log(errors.New("render.ResourceCache: resource size not cacheable: " + key))
		rc.Remove(key)
		return
	}
	if el, ok := rc.entries[key]; ok {
		ce := el.Value.(*cacheEntry)
		if ce.resource != resource {
			if rl, ok := ce.resource.(Releaser); ok {
				rl.Release()
			}
		}
		rc.used += size - ce.size
		ce.resource = resource
		ce.size = size
		rc.lru.MoveToFront(el)
	} else {
		el = rc.lru.PushFront(&cacheEntry{key: key, resource: resource, size: size})
		rc.entries[key] = el
		rc.used += size
	}
	if rc.used > rc.Capacity {
		rc.makeSpace(rc.entries[key])
	}
}

// makeSpace evicts from the least recently used end until the resident
// size is at the low water mark, never evicting the given element.
func (rc *ResourceCache) makeSpace(keep *list.Element) {
	for rc.used > rc.LowWater {
		el := rc.lru.Back()
		if el == nil || el == keep {
			return
		}
		rc.evictions++
		rc.remove(el)
	}
}

// Remove removes and releases the resource under the given key, if any.
func (rc *ResourceCache) Remove(key string) {
	if el, ok := rc.entries[key]; ok {
		rc.remove(el)
	}
}

func (rc *ResourceCache) remove(el *list.Element) {
	ce := el.Value.(*cacheEntry)
	delete(rc.entries, ce.key)
	rc.lru.Remove(el)
	rc.used -= ce.size
	if rl, ok := ce.resource.(Releaser); ok {
		rl.Release()
	}
}

// Clear removes and releases all cached resources. Hit and eviction
// statistics are preserved.
func (rc *ResourceCache) Clear() {
	for el := rc.lru.Front(); el != nil; el = el.Next() {
		if rl, ok := el.Value.(*cacheEntry).resource.(Releaser); ok {
			rl.Release()
		}
	}
	clear(rc.entries)
	rc.lru.Init()
	rc.used = 0
}

// Len returns the number of cached resources.
func (rc *ResourceCache) Len() int {
	return rc.lru.Len()
}

// Used returns the total size of cached resources in bytes.
func (rc *ResourceCache) Used() int64 {
	return rc.used
}

// Free returns the remaining capacity in bytes.
func (rc *ResourceCache) Free() int64 {
	return rc.Capacity - rc.used
}

// Stats returns the current cache statistics.
func (rc *ResourceCache) Stats() CacheStats {
	return CacheStats{
		Used:      rc.used,
		Entries:   rc.lru.Len(),
		Hits:      rc.hits,
		Misses:    rc.misses,
		Evictions: rc.evictions,
	}
}
