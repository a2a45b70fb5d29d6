// Package protocol
// Author: momentics <momentics@gmail.com>
package protocol

import (
	"github.com/5g-empower/empower-enb-agent/api"
)

// HeaderDecoder parses the 8-byte preamble plus 16-byte common-header
// rest from a read-only view (spec §4.3).
type HeaderDecoder struct {
	v api.View
}

// NewHeaderDecoder validates that v is large enough to hold a common
// header plus room for one TLV header, and that the version byte is 2.
// Both checks happen at construction, matching spec §4.3 and the
// stricter 28-byte guard preserved per spec §9 Q2.
func NewHeaderDecoder(v api.View) (*HeaderDecoder, error) {
	if v.Size() < MinDecoderSize {
		return nil, api.NewCodecError(api.ErrMalformed, "header: view smaller than minimum decodable frame").
			WithContext("size", v.Size()).WithContext("minimum", MinDecoderSize)
	}
	d := &HeaderDecoder{v: v}
	ver, err := d.Version()
	if err != nil {
		return nil, err
	}
	if ver != ProtocolVersion {
		return nil, api.NewCodecError(api.ErrMalformed, "header: unsupported protocol version").
			WithContext("version", ver).WithContext("expected", ProtocolVersion)
	}
	return d, nil
}

func (d *HeaderDecoder) Version() (uint8, error)   { return d.v.U8(0) }
func (d *HeaderDecoder) rawFlags() (uint8, error)  { return d.v.U8(1) }
func (d *HeaderDecoder) rawTsRc() (uint16, error)  { return d.v.U16(2) }

// Length returns the preamble's declared total frame length.
func (d *HeaderDecoder) Length() (uint32, error) { return d.v.U32(4) }

func (d *HeaderDecoder) ElementID() (uint64, error)      { return d.v.U64(8) }
func (d *HeaderDecoder) Sequence() (uint32, error)       { return d.v.U32(16) }
func (d *HeaderDecoder) TransactionID() (uint32, error)  { return d.v.U32(20) }

// IsResponse reports the flags byte's bit-7 discriminator.
func (d *HeaderDecoder) IsResponse() (bool, error) {
	f, err := d.rawFlags()
	if err != nil {
		return false, err
	}
	return f&flagResponseBit != 0, nil
}

// EntityClass decodes the 14 low bits of ts_rc.
func (d *HeaderDecoder) EntityClass() (api.EntityClass, error) {
	ts, err := d.rawTsRc()
	if err != nil {
		return 0, err
	}
	return api.EntityClass(ts & tsRcEntityMask), nil
}

// MessageClass decodes the flags response bit and the two ts_rc
// operation bits into the six-valued sum type (spec §4.3).
func (d *HeaderDecoder) MessageClass() (api.MessageClass, error) {
	isResp, err := d.IsResponse()
	if err != nil {
		return api.MessageClassInvalid, err
	}
	ts, err := d.rawTsRc()
	if err != nil {
		return api.MessageClassInvalid, err
	}
	op := (ts & tsRcOpMask) >> tsRcOpShift
	if isResp {
		// Bit 15 alone (the high op bit) encodes SUCCESS/FAILURE; bit 14
		// is reserved and expected zero.
		if op&0x2 != 0 {
			return api.ResponseFailure, nil
		}
		return api.ResponseSuccess, nil
	}
	switch api.Operation(op) {
	case api.OpSet:
		return api.RequestSet, nil
	case api.OpAdd:
		return api.RequestAdd, nil
	case api.OpDel:
		return api.RequestDel, nil
	case api.OpGet:
		return api.RequestGet, nil
	default:
		return api.MessageClassInvalid, nil
	}
}

// Payload returns the sub-view from byte 24 up to the declared length.
func (d *HeaderDecoder) Payload() (api.View, error) {
	length, err := d.Length()
	if err != nil {
		return nil, err
	}
	if int(length) < CommonHeaderSize {
		return nil, api.NewCodecError(api.ErrMalformed, "header: declared length shorter than common header").
			WithContext("length", length)
	}
	return d.v.Sub(CommonHeaderSize, int(length)-CommonHeaderSize)
}

// HeaderEncoder writes the common header into a writable view (spec §4.3).
type HeaderEncoder struct {
	v api.WritableView
}

// NewHeaderEncoder validates that v is large enough for the common
// header and writes the documented defaults: version=2, flags=0,
// ts_rc=0, length=0 (finalized later by the message encoder's End),
// element_id=sequence=transaction_id=0.
func NewHeaderEncoder(v api.WritableView) (*HeaderEncoder, error) {
	if v.Size() < CommonHeaderSize {
		return nil, api.NewCodecError(api.ErrBufferTooSmall, "header: view smaller than common header").
			WithContext("size", v.Size()).WithContext("required", CommonHeaderSize)
	}
	e := &HeaderEncoder{v: v}
	_ = e.v.PutU8(0, ProtocolVersion)
	_ = e.v.PutU8(1, 0)
	_ = e.v.PutU16(2, 0)
	_ = e.v.PutU32(4, 0)
	_ = e.v.PutU64(8, 0)
	_ = e.v.PutU32(16, 0)
	_ = e.v.PutU32(20, 0)
	return e, nil
}

// MessageClass rewrites the flags response bit and the two ts_rc
// operation bits while preserving the other 14 ts_rc bits and the other
// 7 flag bits. Fails with ErrInvalidArgument for MessageClassInvalid.
func (e *HeaderEncoder) MessageClass(mc api.MessageClass) error {
	ts, err := e.v.U16(2)
	if err != nil {
		return err
	}
	flags, err := e.v.U8(1)
	if err != nil {
		return err
	}
	var op uint16
	var resp bool
	switch mc {
	case api.RequestSet:
		op = uint16(api.OpSet)
	case api.RequestAdd:
		op = uint16(api.OpAdd)
	case api.RequestDel:
		op = uint16(api.OpDel)
	case api.RequestGet:
		op = uint16(api.OpGet)
	case api.ResponseSuccess:
		resp = true
		op = 0
	case api.ResponseFailure:
		resp = true
		op = 0x2
	default:
		return api.NewCodecError(api.ErrInvalidArgument, "header: cannot encode invalid message class")
	}
	newFlags := flags &^ flagResponseBit
	if resp {
		newFlags |= flagResponseBit
	}
	newTs := (ts &^ uint16(tsRcOpMask)) | (op << tsRcOpShift)
	if err := e.v.PutU8(1, newFlags); err != nil {
		return err
	}
	return e.v.PutU16(2, newTs)
}

// EntityClass rewrites the 14 low bits of ts_rc while preserving the two
// operation bits.
func (e *HeaderEncoder) EntityClass(ec api.EntityClass) error {
	if ec > api.MaxEntityClass {
		return api.NewCodecError(api.ErrInvalidArgument, "header: entity class exceeds 14-bit range").
			WithContext("value", ec)
	}
	ts, err := e.v.U16(2)
	if err != nil {
		return err
	}
	newTs := (ts &^ tsRcEntityMask) | (uint16(ec) & tsRcEntityMask)
	return e.v.PutU16(2, newTs)
}

// TotalLength writes the preamble's length field.
func (e *HeaderEncoder) TotalLength(n uint32) error { return e.v.PutU32(4, n) }

// ElementID writes the 64-bit element identifier.
func (e *HeaderEncoder) ElementID(id uint64) error { return e.v.PutU64(8, id) }

// Sequence writes the 32-bit sequence number.
func (e *HeaderEncoder) Sequence(seq uint32) error { return e.v.PutU32(16, seq) }

// TransactionID writes the 32-bit transaction identifier.
func (e *HeaderEncoder) TransactionID(id uint32) error { return e.v.PutU32(20, id) }
