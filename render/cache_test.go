// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// releaseCounter counts Release calls, standing in for a GPU resource.
type releaseCounter struct {
	n int
}

func (r *releaseCounter) Release() { r.n++ }

func TestCacheBasics(t *testing.T) {
	rc := NewResourceCache(1000)
	assert.Equal(t, int64(1000), rc.Capacity)
	assert.Equal(t, int64(750), rc.LowWater)
	assert.Equal(t, DefaultCacheSize, NewResourceCache(0).Capacity)

	assert.Nil(t, rc.Resource("missing"))
	r1 := &releaseCounter{}
	rc.Put("a", r1, 100)
	assert.Equal(t, 1, rc.Len())
	assert.Equal(t, int64(100), rc.Used())
	assert.Equal(t, int64(900), rc.Free())
	assert.True(t, rc.Contains("a"))
	assert.False(t, rc.Contains("b"))
	assert.Same(t, r1, rc.Resource("a"))

	st := rc.Stats()
	assert.Equal(t, 1, st.Hits)
	assert.Equal(t, 1, st.Misses)
	assert.Equal(t, 1, st.Entries)

	rc.Remove("a")
	assert.Equal(t, 0, rc.Len())
	assert.Equal(t, int64(0), rc.Used())
	assert.Equal(t, 1, r1.n)
	rc.Remove("a") // absent is fine
}

func TestCacheEviction(t *testing.T) {
	rc := NewResourceCache(100)
	a, b, c, d := &releaseCounter{}, &releaseCounter{}, &releaseCounter{}, &releaseCounter{}
	rc.Put("a", a, 30)
	rc.Put("b", b, 30)
	rc.Put("c", c, 30)
	assert.Equal(t, int64(90), rc.Used())

	// touching a keeps it; the insertion evicts down to the low water
	// mark, dropping the two least recently used entries
	rc.Resource("a")
	rc.Put("d", d, 30)
	assert.Equal(t, int64(60), rc.Used())
	assert.True(t, rc.Contains("a"))
	assert.True(t, rc.Contains("d"))
	assert.False(t, rc.Contains("b"))
	assert.False(t, rc.Contains("c"))
	assert.Equal(t, 1, b.n)
	assert.Equal(t, 1, c.n)
	assert.Equal(t, 0, a.n)
	assert.Equal(t, 2, rc.Stats().Evictions)
}

func TestCacheEvictionKeepsNewEntry(t *testing.T) {
	// an entry between the low water mark and capacity survives even
	// when it is the only one left
	rc := NewResourceCache(100)
	a, b := &releaseCounter{}, &releaseCounter{}
	rc.Put("a", a, 30)
	rc.Put("b", b, 90)
	assert.False(t, rc.Contains("a"))
	assert.True(t, rc.Contains("b"))
	assert.Equal(t, int64(90), rc.Used())
	assert.Equal(t, 0, b.n)
}

func TestCacheReplace(t *testing.T) {
	rc := NewResourceCache(1000)
	r1, r2 := &releaseCounter{}, &releaseCounter{}
	rc.Put("k", r1, 10)
	rc.Put("k", r2, 20)
	assert.Equal(t, 1, rc.Len())
	assert.Equal(t, int64(20), rc.Used())
	assert.Equal(t, 1, r1.n)
	assert.Equal(t, 0, r2.n)

	// re-putting the same resource only updates the size
	rc.Put("k", r2, 30)
	assert.Equal(t, int64(30), rc.Used())
	assert.Equal(t, 0, r2.n)
}

func TestCacheOversize(t *testing.T) {
	rc := NewResourceCache(100)
	big := &releaseCounter{}
	rc.Put("big", big, 150)
	assert.Equal(t, 0, rc.Len())
	assert.Equal(t, int64(0), rc.Used())

	// replacing an entry with an oversize resource drops the stale one
	old := &releaseCounter{}
	rc.Put("k", old, 10)
	rc.Put("k", big, 150)
	assert.False(t, rc.Contains("k"))
	assert.Equal(t, 1, old.n)
	assert.Equal(t, int64(0), rc.Used())

	rc.Put("zero", &releaseCounter{}, 0)
	rc.Put("neg", &releaseCounter{}, -5)
	assert.Equal(t, 0, rc.Len())
}

func TestCacheClear(t *testing.T) {
	rc := NewResourceCache(1000)
	a, b := &releaseCounter{}, &releaseCounter{}
	rc.Put("a", a, 10)
	rc.Put("b", b, 20)
	rc.Clear()
	assert.Equal(t, 0, rc.Len())
	assert.Equal(t, int64(0), rc.Used())
	assert.False(t, rc.Contains("a"))
	assert.Equal(t, 1, a.n)
	assert.Equal(t, 1, b.n)
	rc.Clear() // empty is fine

	// the cache remains usable
	rc.Put("a", a, 10)
	assert.Same(t, a, rc.Resource("a"))
}
