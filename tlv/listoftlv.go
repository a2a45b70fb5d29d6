// Package tlv
// Author: momentics <momentics@gmail.com>
package tlv

import "github.com/5g-empower/empower-enb-agent/api"

// ListOfTLVValue is a header-only descriptor of a homogeneous run of
// inner TLVs: the inner type and a count (spec §4.5). The inner TLVs
// themselves are not part of this value's own encoding; a caller
// wanting the full list appends InnerType-typed TLVs immediately after
// this one in the message.
type ListOfTLVValue struct {
	InnerType api.TLVType
	Count     uint16
}

func (v *ListOfTLVValue) Type() api.TLVType { return ListOfTLV }

func (v *ListOfTLVValue) Encode(dst api.WritableView) (int, error) {
	if dst.Size() < 4 {
		return 0, api.NewCodecError(api.ErrBufferTooSmall, "list_of_tlv: value does not fit").
			WithContext("need", 4).WithContext("have", dst.Size())
	}
	if err := dst.PutU16(0, uint16(v.InnerType)); err != nil {
		return 0, err
	}
	if err := dst.PutU16(2, v.Count); err != nil {
		return 0, err
	}
	return 4, nil
}

func (v *ListOfTLVValue) Decode(src api.View) (int, error) {
	if src.Size() != 4 {
		return 0, api.NewCodecError(api.ErrMalformed, "list_of_tlv: expected 4-byte value").
			WithContext("size", src.Size())
	}
	inner, err := src.U16(0)
	if err != nil {
		return 0, err
	}
	count, err := src.U16(2)
	if err != nil {
		return 0, err
	}
	v.InnerType = api.TLVType(inner)
	v.Count = count
	return 4, nil
}

var _ api.TLVValue = (*ListOfTLVValue)(nil)
