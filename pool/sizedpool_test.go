package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/5g-empower/empower-enb-agent/pool"
)

func TestSizedBufferPoolReuse(t *testing.T) {
	p := pool.NewSizedBufferPool(128, 1)
	b1 := p.Acquire()
	b1.Release()
	b2 := p.Acquire()
	assert.Equal(t, 128, b2.Size())
	assert.Equal(t, 1, p.Capacity(), "capacity should not grow when the free list can satisfy Acquire")
}

func TestSizedBufferPoolGrowsWhenExhausted(t *testing.T) {
	p := pool.NewSizedBufferPool(64, 1)
	first := p.Acquire()
	second := p.Acquire() // free list empty: must grow
	assert.Equal(t, 2, p.Capacity(), "capacity should grow by one element")
	first.Release()
	second.Release()
	assert.Equal(t, p.Capacity(), p.FreeCount(), "every acquired element should be back on the free list")
}

func TestSizedBufferPoolReleaseIsIdempotent(t *testing.T) {
	p := pool.NewSizedBufferPool(32, 1)
	b := p.Acquire()
	b.Release()
	b.Release() // must not double-enqueue the same element
	assert.Equal(t, 1, p.FreeCount(), "redundant release must not duplicate the free-list entry")
}
