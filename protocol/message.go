// Package protocol
// Author: momentics <momentics@gmail.com>
//
// MessageEncoder and MessageDecoder are the Open/Closed state machines
// spec §4.4 describes: a common header plus a cursor walking a sequence
// of TLVs, each validated against the caller's expected type.
package protocol

import (
	"github.com/5g-empower/empower-enb-agent/api"
)

// MessageEncoder assembles a common header plus a sequence of TLVs into
// a writable view, finalizing the total length on End.
type MessageEncoder struct {
	v      api.WritableView
	header *HeaderEncoder
	cursor int
	closed bool
}

// NewMessageEncoder constructs an encoder over v, initializing the
// common header and positioning the cursor at byte 24.
func NewMessageEncoder(v api.WritableView) (*MessageEncoder, error) {
	h, err := NewHeaderEncoder(v)
	if err != nil {
		return nil, err
	}
	return &MessageEncoder{v: v, header: h, cursor: CommonHeaderSize}, nil
}

// Header returns the inner common-header encoder for setting message
// class, entity class, element id, sequence and transaction id.
func (e *MessageEncoder) Header() *HeaderEncoder { return e.header }

// Add appends one TLV: it derives a sub-view at the cursor, reserves the
// 4-byte TLV header, invokes tlv.Encode on the remainder, then backfills
// the header's type and total-length fields before advancing the
// cursor.
func (e *MessageEncoder) Add(tlv api.TLVValue) (*MessageEncoder, error) {
	if e.closed {
		return e, api.NewCodecError(api.ErrInvalidArgument, "message encoder is closed")
	}
	frame, err := e.v.SubFromW(e.cursor)
	if err != nil {
		return e, api.NewCodecError(api.ErrBufferTooSmall, "message: no room for TLV header").
			WithContext("cursor", e.cursor).WithContext("size", e.v.Size())
	}
	valueRegion, err := frame.SubFromW(TLVHeaderSize)
	if err != nil {
		return e, api.NewCodecError(api.ErrBufferTooSmall, "message: no room for TLV value").
			WithContext("cursor", e.cursor).WithContext("size", e.v.Size())
	}
	valueLen, err := tlv.Encode(valueRegion)
	if err != nil {
		return e, err
	}
	totalLen := TLVHeaderSize + valueLen
	if err := frame.PutU16(0, uint16(tlv.Type())); err != nil {
		return e, err
	}
	if err := frame.PutU16(2, uint16(totalLen)); err != nil {
		return e, err
	}
	e.cursor += totalLen
	return e, nil
}

// End writes the finalized total_length into the common header and
// transitions the encoder to Closed. Further Add/End calls fail.
func (e *MessageEncoder) End() error {
	if e.closed {
		return api.NewCodecError(api.ErrInvalidArgument, "message encoder already closed")
	}
	if err := e.header.TotalLength(uint32(e.cursor)); err != nil {
		return err
	}
	e.closed = true
	return nil
}

// Data returns the populated prefix of the backing view, [0, cursor).
func (e *MessageEncoder) Data() (api.WritableView, error) {
	return e.v.SubW(0, e.cursor)
}

// MessageDecoder parses the common header, then walks TLVs sequentially
// from a read-only view.
type MessageDecoder struct {
	v      api.View
	header *HeaderDecoder
	cursor int
}

// NewMessageDecoder constructs a decoder over v, validating the common
// header and positioning the cursor at byte 24.
func NewMessageDecoder(v api.View) (*MessageDecoder, error) {
	h, err := NewHeaderDecoder(v)
	if err != nil {
		return nil, err
	}
	return &MessageDecoder{v: v, header: h, cursor: CommonHeaderSize}, nil
}

// Header returns the inner common-header decoder.
func (d *MessageDecoder) Header() *HeaderDecoder { return d.header }

// IsRequest, IsSuccess, IsFailure are message-class introspection
// helpers over the common header (spec §4.4).
func (d *MessageDecoder) IsRequest() (bool, error) {
	mc, err := d.header.MessageClass()
	if err != nil {
		return false, err
	}
	return mc.IsRequest(), nil
}

func (d *MessageDecoder) IsSuccess() (bool, error) {
	mc, err := d.header.MessageClass()
	if err != nil {
		return false, err
	}
	return mc.IsSuccess(), nil
}

func (d *MessageDecoder) IsFailure() (bool, error) {
	mc, err := d.header.MessageClass()
	if err != nil {
		return false, err
	}
	return mc.IsFailure(), nil
}

// NextType peeks the next TLV's type without advancing the cursor. It
// returns TLVNone when fewer than 4 header bytes remain, or when the
// declared total length would overrun the buffer. Per spec §9 Q3, the
// overrun test uses strict '>' so a frame ending exactly at the end of
// its last TLV is not rejected.
func (d *MessageDecoder) NextType() api.TLVType {
	remaining := d.v.Size() - d.cursor
	if remaining < TLVHeaderSize {
		return api.TLVNone
	}
	frame, err := d.v.Sub(d.cursor, remaining)
	if err != nil {
		return api.TLVNone
	}
	typ, err := frame.U16(0)
	if err != nil {
		return api.TLVNone
	}
	totalLen, err := frame.U16(2)
	if err != nil {
		return api.TLVNone
	}
	if int(totalLen) > remaining {
		return api.TLVNone
	}
	return api.TLVType(typ)
}

// Get reads the TLV at the cursor into tlv, failing TypeMismatch if the
// wire type does not match tlv.Type(), and Malformed if the value
// decoder does not consume exactly (total_length - 4) bytes.
func (d *MessageDecoder) Get(tlv api.TLVValue) error {
	remaining := d.v.Size() - d.cursor
	if remaining < TLVHeaderSize {
		return api.NewCodecError(api.ErrMalformed, "message: no room for TLV header at cursor").
			WithContext("cursor", d.cursor)
	}
	frame, err := d.v.Sub(d.cursor, remaining)
	if err != nil {
		return err
	}
	wireType, err := frame.U16(0)
	if err != nil {
		return err
	}
	if api.TLVType(wireType) != tlv.Type() {
		return api.TypeMismatchError(uint16(tlv.Type()), wireType)
	}
	totalLen, err := frame.U16(2)
	if err != nil {
		return err
	}
	if int(totalLen) < TLVHeaderSize || int(totalLen) > remaining {
		return api.NewCodecError(api.ErrMalformed, "message: TLV total length out of range").
			WithContext("totalLength", totalLen).WithContext("remaining", remaining)
	}
	valueView, err := frame.Sub(TLVHeaderSize, int(totalLen)-TLVHeaderSize)
	if err != nil {
		return err
	}
	consumed, err := tlv.Decode(valueView)
	if err != nil {
		return err
	}
	if consumed+TLVHeaderSize != int(totalLen) {
		return api.NewCodecError(api.ErrMalformed, "message: TLV decoder consumed unexpected byte count").
			WithContext("consumed", consumed).WithContext("declared", totalLen)
	}
	d.cursor += int(totalLen)
	return nil
}
