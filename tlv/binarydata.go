// Package tlv
// Author: momentics <momentics@gmail.com>
package tlv

import "github.com/5g-empower/empower-enb-agent/api"

// BinaryDataValue carries an opaque raw byte payload (spec §4.5).
type BinaryDataValue struct {
	Data []byte
}

func (v *BinaryDataValue) Type() api.TLVType { return BinaryData }

func (v *BinaryDataValue) Encode(dst api.WritableView) (int, error) {
	n := len(v.Data)
	if dst.Size() < n {
		return 0, api.NewCodecError(api.ErrBufferTooSmall, "binary_data tlv: value does not fit").
			WithContext("need", n).WithContext("have", dst.Size())
	}
	for i, b := range v.Data {
		if err := dst.PutU8(i, b); err != nil {
			return 0, err
		}
	}
	return n, nil
}

func (v *BinaryDataValue) Decode(src api.View) (int, error) {
	v.Data = src.Raw()
	return len(v.Data), nil
}

var _ api.TLVValue = (*BinaryDataValue)(nil)
