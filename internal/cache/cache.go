// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache implements a very simple random-replacement cache to
// memoize expensive operations, in particular compiled format templates.
package cache

import "sync"

// MaxEntries bounds the number of memoized entries per cache. Template
// sets are small in practice; the bound only guards against callers
// generating layouts dynamically.
const MaxEntries = 256

// Cache is a simple random-replacement memoization cache.
//
// Its zero value is safe to use. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

// Get the element associated with k from the cache, using fill to populate
// missing elements.
func (c *Cache[K, V]) Get(k K, fill func(K) V) V {
	c.mu.RLock()
	if v, ok := c.m[k]; ok {
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	nv := fill(k)

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.m[k]; ok {
		// another goroutine filled the cache in the meantime
		return v
	}
	if c.m == nil {
		c.m = make(map[K]V)
	}
	for k := range c.m {
		if len(c.m) < MaxEntries {
			break
		}
		delete(c.m, k)
	}
	c.m[k] = nv
	return nv
}

// Flush removes all elements from the cache.
func (c *Cache[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.m)
}
