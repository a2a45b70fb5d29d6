// Package buffer implements the readable/writable buffer-view
// abstraction over a shared byte region (spec §3, §4.2).
//
// Author: momentics <momentics@gmail.com>
package buffer

import (
	"github.com/5g-empower/empower-enb-agent/api"
)

// bufView is the single concrete implementation backing both api.View
// and api.WritableView. The two exported constructor families hand out
// the narrower or wider interface; nothing prevents a caller holding a
// WritableView from passing it anywhere a View is expected.
type bufView struct {
	r      *region
	offset int
	length int
}

// Empty constructs a view with no backing region.
func Empty() api.View { return &bufView{} }

// NewOwning allocates a fresh, owned byte region of the given capacity
// and returns a writable view over the whole of it.
func NewOwning(capacity int) api.WritableView {
	r := newOwningRegion(capacity)
	return &bufView{r: r, offset: 0, length: capacity}
}

// NewNonOwning wraps an existing slice without copying. The caller is
// responsible for the slice's lifetime for as long as any view derived
// from it is in use.
func NewNonOwning(data []byte) api.WritableView {
	r := newNonOwningRegion(data)
	return &bufView{r: r, offset: 0, length: len(data)}
}

// NewReadOnly wraps an existing slice as a read-only view, for callers
// that should not be able to mutate the region through this handle.
func NewReadOnly(data []byte) api.View {
	r := newNonOwningRegion(data)
	return &bufView{r: r, offset: 0, length: len(data)}
}

func (v *bufView) Size() int  { return v.length }
func (v *bufView) Empty() bool { return v.length == 0 }

// slice returns the backing byte slice for [offset, offset+length).
func (v *bufView) slice() []byte {
	if v.r == nil {
		return nil
	}
	return v.r.data[v.offset : v.offset+v.length]
}

func (v *bufView) checkRange(method string, offset, width int) error {
	if offset < 0 || width < 0 || offset+width > v.length {
		return api.OutOfRangeError(method, offset, width, v.length)
	}
	return nil
}

func (v *bufView) Sub(offset, length int) (api.View, error) {
	if err := v.checkRange("Sub", offset, length); err != nil {
		return nil, err
	}
	return &bufView{r: v.r, offset: v.offset + offset, length: length}, nil
}

func (v *bufView) SubFrom(offset int) (api.View, error) {
	return v.Sub(offset, v.length-offset)
}

func (v *bufView) SubW(offset, length int) (api.WritableView, error) {
	if err := v.checkRange("SubW", offset, length); err != nil {
		return nil, err
	}
	return &bufView{r: v.r, offset: v.offset + offset, length: length}, nil
}

func (v *bufView) SubFromW(offset int) (api.WritableView, error) {
	return v.SubW(offset, v.length-offset)
}

func (v *bufView) ShrinkTo(n int) error {
	if n < 0 || n > v.length {
		return api.OutOfRangeError("ShrinkTo", 0, n, v.length)
	}
	v.length = n
	return nil
}

func (v *bufView) Raw() []byte {
	out := make([]byte, v.length)
	copy(out, v.slice())
	return out
}

func (v *bufView) Checksum16() uint32 {
	return checksum16(v.slice())
}

// --- typed readers ---

func (v *bufView) U8(offset int) (uint8, error) {
	if err := v.checkRange("U8", offset, 1); err != nil {
		return 0, err
	}
	return GetU8(v.slice(), offset), nil
}

func (v *bufView) I8(offset int) (int8, error) {
	if err := v.checkRange("I8", offset, 1); err != nil {
		return 0, err
	}
	return GetI8(v.slice(), offset), nil
}

func (v *bufView) U16(offset int) (uint16, error) {
	if err := v.checkRange("U16", offset, 2); err != nil {
		return 0, err
	}
	return GetU16(v.slice(), offset), nil
}

func (v *bufView) I16(offset int) (int16, error) {
	if err := v.checkRange("I16", offset, 2); err != nil {
		return 0, err
	}
	return GetI16(v.slice(), offset), nil
}

func (v *bufView) U32(offset int) (uint32, error) {
	if err := v.checkRange("U32", offset, 4); err != nil {
		return 0, err
	}
	return GetU32(v.slice(), offset), nil
}

func (v *bufView) I32(offset int) (int32, error) {
	if err := v.checkRange("I32", offset, 4); err != nil {
		return 0, err
	}
	return GetI32(v.slice(), offset), nil
}

func (v *bufView) U64(offset int) (uint64, error) {
	if err := v.checkRange("U64", offset, 8); err != nil {
		return 0, err
	}
	return GetU64(v.slice(), offset), nil
}

func (v *bufView) I64(offset int) (int64, error) {
	if err := v.checkRange("I64", offset, 8); err != nil {
		return 0, err
	}
	return GetI64(v.slice(), offset), nil
}

func (v *bufView) IPv4(offset int) (api.IPv4Addr, error) {
	if err := v.checkRange("IPv4", offset, 4); err != nil {
		return api.IPv4Addr{}, err
	}
	s := v.slice()
	return api.IPv4Addr{s[offset], s[offset+1], s[offset+2], s[offset+3]}, nil
}

func (v *bufView) MAC(offset int) (api.MACAddr, error) {
	if err := v.checkRange("MAC", offset, 6); err != nil {
		return api.MACAddr{}, err
	}
	s := v.slice()
	var m api.MACAddr
	copy(m[:], s[offset:offset+6])
	return m, nil
}

func (v *bufView) CString(offset int) (string, error) {
	if offset < 0 || offset > v.length {
		return "", api.OutOfRangeError("CString", offset, 0, v.length)
	}
	s := v.slice()
	for i := offset; i < v.length; i++ {
		if s[i] == 0 {
			return string(s[offset:i]), nil
		}
	}
	return "", api.NewCodecError(api.ErrMalformed, "CString: no terminating NUL found").
		WithContext("offset", offset).WithContext("size", v.length)
}

// --- typed writers ---

func (v *bufView) PutU8(offset int, val uint8) error {
	if err := v.checkRange("PutU8", offset, 1); err != nil {
		return err
	}
	PutU8(v.slice(), offset, val)
	return nil
}

func (v *bufView) PutI8(offset int, val int8) error {
	if err := v.checkRange("PutI8", offset, 1); err != nil {
		return err
	}
	PutI8(v.slice(), offset, val)
	return nil
}

func (v *bufView) PutU16(offset int, val uint16) error {
	if err := v.checkRange("PutU16", offset, 2); err != nil {
		return err
	}
	PutU16(v.slice(), offset, val)
	return nil
}

func (v *bufView) PutI16(offset int, val int16) error {
	if err := v.checkRange("PutI16", offset, 2); err != nil {
		return err
	}
	PutI16(v.slice(), offset, val)
	return nil
}

func (v *bufView) PutU32(offset int, val uint32) error {
	if err := v.checkRange("PutU32", offset, 4); err != nil {
		return err
	}
	PutU32(v.slice(), offset, val)
	return nil
}

func (v *bufView) PutI32(offset int, val int32) error {
	if err := v.checkRange("PutI32", offset, 4); err != nil {
		return err
	}
	PutI32(v.slice(), offset, val)
	return nil
}

func (v *bufView) PutU64(offset int, val uint64) error {
	if err := v.checkRange("PutU64", offset, 8); err != nil {
		return err
	}
	PutU64(v.slice(), offset, val)
	return nil
}

func (v *bufView) PutI64(offset int, val int64) error {
	if err := v.checkRange("PutI64", offset, 8); err != nil {
		return err
	}
	PutI64(v.slice(), offset, val)
	return nil
}

func (v *bufView) PutIPv4(offset int, val api.IPv4Addr) error {
	if err := v.checkRange("PutIPv4", offset, 4); err != nil {
		return err
	}
	copy(v.slice()[offset:offset+4], val[:])
	return nil
}

func (v *bufView) PutMAC(offset int, val api.MACAddr) error {
	if err := v.checkRange("PutMAC", offset, 6); err != nil {
		return err
	}
	copy(v.slice()[offset:offset+6], val[:])
	return nil
}

func (v *bufView) PutCString(offset int, s string) error {
	need := len(s) + 1
	if err := v.checkRange("PutCString", offset, need); err != nil {
		return err
	}
	dst := v.slice()
	copy(dst[offset:], s)
	dst[offset+len(s)] = 0
	return nil
}

// --- non-bounds-checked readers (spec §4.2) ---

func (v *bufView) UncheckedU8(offset int) uint8   { return GetU8(v.slice(), offset) }
func (v *bufView) UncheckedI8(offset int) int8    { return GetI8(v.slice(), offset) }
func (v *bufView) UncheckedU16(offset int) uint16 { return GetU16(v.slice(), offset) }
func (v *bufView) UncheckedI16(offset int) int16  { return GetI16(v.slice(), offset) }
func (v *bufView) UncheckedU32(offset int) uint32 { return GetU32(v.slice(), offset) }
func (v *bufView) UncheckedI32(offset int) int32  { return GetI32(v.slice(), offset) }
func (v *bufView) UncheckedU64(offset int) uint64 { return GetU64(v.slice(), offset) }
func (v *bufView) UncheckedI64(offset int) int64  { return GetI64(v.slice(), offset) }

// --- non-bounds-checked writers (spec §4.2) ---

func (v *bufView) UncheckedPutU8(offset int, val uint8)   { PutU8(v.slice(), offset, val) }
func (v *bufView) UncheckedPutI8(offset int, val int8)    { PutI8(v.slice(), offset, val) }
func (v *bufView) UncheckedPutU16(offset int, val uint16) { PutU16(v.slice(), offset, val) }
func (v *bufView) UncheckedPutI16(offset int, val int16)  { PutI16(v.slice(), offset, val) }
func (v *bufView) UncheckedPutU32(offset int, val uint32) { PutU32(v.slice(), offset, val) }
func (v *bufView) UncheckedPutI32(offset int, val int32)  { PutI32(v.slice(), offset, val) }
func (v *bufView) UncheckedPutU64(offset int, val uint64) { PutU64(v.slice(), offset, val) }
func (v *bufView) UncheckedPutI64(offset int, val int64)  { PutI64(v.slice(), offset, val) }

func (v *bufView) CopyTo(dest api.WritableView) error {
	if dest.Size() < v.length {
		return api.NewCodecError(api.ErrBufferTooSmall, "CopyTo: destination smaller than source").
			WithContext("srcSize", v.length).WithContext("dstSize", dest.Size())
	}
	n := v.length
	if dn := dest.Size(); dn < n {
		n = dn
	}
	dv, ok := dest.(*bufView)
	if !ok {
		// Fallback for foreign WritableView implementations: byte-by-byte
		// via the typed accessor pair keeps this correct without relying
		// on concrete-type layout.
		for i := 0; i < n; i++ {
			b, err := v.U8(i)
			if err != nil {
				return err
			}
			if err := dest.PutU8(i, b); err != nil {
				return err
			}
		}
		return nil
	}
	copy(dv.slice()[:n], v.slice()[:n])
	return nil
}

var (
	_ api.View         = (*bufView)(nil)
	_ api.WritableView = (*bufView)(nil)
)
