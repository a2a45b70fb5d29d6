// Package pool implements the sized, pool-allocated message-buffer
// lifecycle (spec §3 "Sized buffer pool", §4 "pool-allocated
// message-buffer lifecycle").
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A SizedBufferPool owns a stable backing vector of fixed-size elements
// (never moved after creation) and a free list of pointers to them.
// Acquire hands out a writable view whose Release returns the element to
// the free list; if the free list is empty the pool grows by one
// element. The free list is backed by github.com/eapache/queue so
// elements are recycled in FIFO order, matching the reference's own
// channel-backed pool (pool.baseBufferPool) in spirit while keeping
// acquire/release a thin wrapper over a single, swappable container
// type. Single-threaded by contract (spec §5); a concurrent caller must
// add its own mutex.
package pool

import (
	"github.com/eapache/queue"

	"github.com/5g-empower/empower-enb-agent/api"
	"github.com/5g-empower/empower-enb-agent/buffer"
	"github.com/5g-empower/empower-enb-agent/logging"
)

// element is one fixed-size slot in the backing vector. It is never
// reallocated once created; only the free-list queue holding its
// pointer churns.
type element struct {
	api.WritableView
	pool *SizedBufferPool
}

// handle is the PooledBuffer returned by Acquire. It embeds the
// element's WritableView and adds the move-only-by-convention Release.
// The released flag belongs to the handle, so a stale handle cannot
// return an element that has since been handed out again.
type handle struct {
	*element
	released bool
}

func (h *handle) Release() {
	if h.released {
		return
	}
	h.released = true
	h.element.pool.free.Add(h.element)
}

var _ api.PooledBuffer = (*handle)(nil)

// SizedBufferPool is a single free-size-class pool of elements of size
// elemSize, as spec §3 describes.
type SizedBufferPool struct {
	elemSize int
	elements []*element // stable backing vector; never shrinks
	free     *queue.Queue
}

// NewSizedBufferPool creates a pool for elements of size elemSize,
// pre-populated with initialCap elements already on the free list.
func NewSizedBufferPool(elemSize, initialCap int) *SizedBufferPool {
	p := &SizedBufferPool{
		elemSize: elemSize,
		free:     queue.New(),
	}
	for i := 0; i < initialCap; i++ {
		p.newInitial()
	}
	return p
}

// grow appends one new element to the backing vector and returns it,
// without touching the free list.
func (p *SizedBufferPool) grow() *element {
	e := &element{
		WritableView: buffer.NewOwning(p.elemSize),
		pool:         p,
	}
	p.elements = append(p.elements, e)
	logging.Sugar.Debugw("pool: grew", "elemSize", p.elemSize, "capacity", len(p.elements))
	return e
}

// newInitial pre-populates the pool with one grown, immediately-freed
// element, used by NewSizedBufferPool to size the initial free list.
func (p *SizedBufferPool) newInitial() {
	e := p.grow()
	p.free.Add(e)
}

// Acquire returns a writable view whose Release returns the element to
// the free list. Grows the pool by one element if the free list is
// empty.
func (p *SizedBufferPool) Acquire() api.PooledBuffer {
	var e *element
	if p.free.Length() > 0 {
		e = p.free.Remove().(*element)
	} else {
		e = p.grow()
	}
	return &handle{element: e}
}

// Capacity returns the number of elements in the backing vector.
func (p *SizedBufferPool) Capacity() int { return len(p.elements) }

// FreeCount returns the number of elements currently on the free list.
func (p *SizedBufferPool) FreeCount() int { return p.free.Length() }

// ElementSize returns the fixed per-element size S.
func (p *SizedBufferPool) ElementSize() int { return p.elemSize }

var _ api.SizedBufferPool = (*SizedBufferPool)(nil)
