// Package api
// Author: momentics <momentics@gmail.com>
//
// TLVValue is the capability triple every concrete TLV value object
// exposes (spec §4.4). The registered set is closed and exhaustive, so
// each value object also carries its own TLVType tag rather than relying
// on an open interface registry.

package api

// TLVType is the 16-bit wire type identifier of a TLV. Value 0 (TLVNone)
// is reserved and never appears as a real payload's type.
type TLVType uint16

// TLVNone is the reserved zero type, returned by NextType when no TLV
// can be peeked (buffer exhausted or truncated).
const TLVNone TLVType = 0

// TLVValue is implemented by every concrete TLV value object. Encode
// writes only the value portion (never the 4-byte TLV header) into the
// front of dst and returns the number of bytes written. Decode consumes
// exactly src.Size() bytes and returns the number consumed; a decoder
// that consumes fewer or more bytes than src.Size() is a Malformed
// frame, caught by the caller.
type TLVValue interface {
	// Type returns the TLV's registered wire type.
	Type() TLVType

	// Encode writes the value encoding into dst, starting at offset 0.
	// Fails with ErrBufferTooSmall if dst is smaller than needed.
	Encode(dst WritableView) (int, error)

	// Decode reads the value encoding from the entirety of src. Fails
	// with ErrMalformed if it cannot consume exactly src.Size() bytes.
	Decode(src View) (int, error)
}
