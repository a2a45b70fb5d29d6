// Package api
// Author: momentics <momentics@gmail.com>
//
// View and WritableView abstract a bounds-checked, shared-ownership window
// over a byte region. A View is read-only; a WritableView additionally
// exposes mutating typed writers. Both variants share the same underlying
// region: writes through one view are visible to every other view over
// that region (spec §8 invariant 7).

package api

// View is a read-only, bounds-checked window over a byte region.
type View interface {
	// Size returns the number of bytes in the view.
	Size() int

	// Empty reports whether Size() == 0.
	Empty() bool

	// Sub derives a new view over the same region with tighter bounds.
	// Fails with ErrOutOfRange if offset+length exceeds Size().
	Sub(offset, length int) (View, error)

	// SubFrom derives the tail of the view starting at offset.
	SubFrom(offset int) (View, error)

	// U8/I8/.../U64/I64 are bounds-checked big-endian typed readers.
	U8(offset int) (uint8, error)
	I8(offset int) (int8, error)
	U16(offset int) (uint16, error)
	I16(offset int) (int16, error)
	U32(offset int) (uint32, error)
	I32(offset int) (int32, error)
	U64(offset int) (uint64, error)
	I64(offset int) (int64, error)

	// IPv4/MAC are bounds-checked fixed-width domain value readers.
	IPv4(offset int) (IPv4Addr, error)
	MAC(offset int) (MACAddr, error)

	// CString reads a NUL-terminated string starting at offset; fails
	// with ErrMalformed if no NUL byte is found before the view ends.
	CString(offset int) (string, error)

	// Raw copies Size() bytes out as a standalone slice.
	Raw() []byte

	// Checksum16 sums the view as big-endian u16 words (padding a
	// trailing odd byte with zero), returning the unfolded 32-bit sum
	// for later one's-complement folding by the caller.
	Checksum16() uint32

	// UncheckedU8/.../UncheckedI64 read directly off the view's backing
	// region without the bounds check U8/.../I64 perform. Use only when
	// the caller has already proven offset+width is inside bounds — an
	// out-of-range offset here is undefined behavior (most likely a
	// panic from the underlying slice), not a returned error (spec §4.2).
	UncheckedU8(offset int) uint8
	UncheckedI8(offset int) int8
	UncheckedU16(offset int) uint16
	UncheckedI16(offset int) int16
	UncheckedU32(offset int) uint32
	UncheckedI32(offset int) int32
	UncheckedU64(offset int) uint64
	UncheckedI64(offset int) int64
}

// WritableView is a View that additionally exposes mutating typed
// writers. Writes mutate region bytes; they never change the view's own
// (offset, length).
type WritableView interface {
	View

	// SubW derives a writable sub-view with tighter bounds.
	SubW(offset, length int) (WritableView, error)

	// SubFromW derives the writable tail starting at offset.
	SubFromW(offset int) (WritableView, error)

	// ShrinkTo reduces the view's length in place. Fails if n > Size().
	ShrinkTo(n int) error

	PutU8(offset int, v uint8) error
	PutI8(offset int, v int8) error
	PutU16(offset int, v uint16) error
	PutI16(offset int, v int16) error
	PutU32(offset int, v uint32) error
	PutI32(offset int, v int32) error
	PutU64(offset int, v uint64) error
	PutI64(offset int, v int64) error

	PutIPv4(offset int, v IPv4Addr) error
	PutMAC(offset int, v MACAddr) error

	// PutCString writes s followed by a terminating zero byte. Fails if
	// the target range cannot fit len(s)+1 bytes.
	PutCString(offset int, s string) error

	// CopyTo copies min(Size(), dest.Size()) bytes into dest. Fails if
	// dest is smaller than the receiver.
	CopyTo(dest WritableView) error

	// UncheckedPutU8/.../UncheckedPutI64 write directly to the view's
	// backing region without the bounds check Put* perform. Use only
	// when the caller has already proven offset+width is inside bounds
	// (spec §4.2).
	UncheckedPutU8(offset int, v uint8)
	UncheckedPutI8(offset int, v int8)
	UncheckedPutU16(offset int, v uint16)
	UncheckedPutI16(offset int, v int16)
	UncheckedPutU32(offset int, v uint32)
	UncheckedPutI32(offset int, v int32)
	UncheckedPutU64(offset int, v uint64)
	UncheckedPutI64(offset int, v int64)
}
