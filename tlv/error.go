// Package tlv
// Author: momentics <momentics@gmail.com>
package tlv

import "github.com/5g-empower/empower-enb-agent/api"

// ErrorValue carries a numeric error code plus a human-readable,
// NUL-terminated message (spec §4.5: 0:2 errcode; 2:N+1 message).
type ErrorValue struct {
	Code    uint16
	Message string
}

func (v *ErrorValue) Type() api.TLVType { return Error }

func (v *ErrorValue) Encode(dst api.WritableView) (int, error) {
	need := 2 + len(v.Message) + 1
	if dst.Size() < need {
		return 0, api.NewCodecError(api.ErrBufferTooSmall, "error tlv: value does not fit").
			WithContext("need", need).WithContext("have", dst.Size())
	}
	if err := dst.PutU16(0, v.Code); err != nil {
		return 0, err
	}
	if err := dst.PutCString(2, v.Message); err != nil {
		return 0, err
	}
	return need, nil
}

func (v *ErrorValue) Decode(src api.View) (int, error) {
	code, err := src.U16(0)
	if err != nil {
		return 0, err
	}
	msg, err := src.CString(2)
	if err != nil {
		return 0, err
	}
	consumed := 2 + len(msg) + 1
	if consumed != src.Size() {
		return 0, api.NewCodecError(api.ErrMalformed, "error tlv: trailing bytes after message").
			WithContext("consumed", consumed).WithContext("size", src.Size())
	}
	v.Code = code
	v.Message = msg
	return consumed, nil
}

var _ api.TLVValue = (*ErrorValue)(nil)
