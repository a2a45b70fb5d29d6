// Package api
// Author: momentics <momentics@gmail.com>
//
// Pooling abstractions for the sized message-buffer allocator (spec §3
// "Sized buffer pool").

package api

// PooledBuffer is a writable view whose Release returns the backing
// element to its pool's free list. A PooledBuffer must not be used
// after Release.
type PooledBuffer interface {
	WritableView

	// Release returns the underlying element to the pool's free list.
	// Idempotent: a second Release is a no-op, never a double free.
	Release()
}

// SizedBufferPool allocates fixed-size elements from a stable backing
// vector, handing out PooledBuffer handles whose Release recycles the
// element. Acquire/Release are single-threaded by contract; a
// multi-threaded caller must add its own mutex (spec §5).
type SizedBufferPool interface {
	// Acquire returns a writable view over one pool element. Grows the
	// backing vector by one element if the free list is empty.
	Acquire() PooledBuffer

	// Capacity returns the number of elements currently backing the pool.
	Capacity() int

	// FreeCount returns the number of elements currently on the free list.
	FreeCount() int

	// ElementSize returns the fixed size S each element was created with.
	ElementSize() int
}
