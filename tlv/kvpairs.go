// Package tlv
// Author: momentics <momentics@gmail.com>
package tlv

import "github.com/5g-empower/empower-enb-agent/api"

// KVPair is one (key, value) entry of a KeyValueStringPairsValue.
type KVPair struct {
	Key   string
	Value string
}

// KeyValueStringPairsValue carries a sequence of NUL-terminated
// (key, value) string pairs (spec §4.5). Encode is two-pass: sum the
// required bytes first and fail BufferTooSmall before writing anything.
type KeyValueStringPairsValue struct {
	Pairs []KVPair
}

func (v *KeyValueStringPairsValue) Type() api.TLVType { return KeyValueStringPairs }

func (v *KeyValueStringPairsValue) requiredSize() int {
	n := 0
	for _, p := range v.Pairs {
		n += len(p.Key) + 1 + len(p.Value) + 1
	}
	return n
}

func (v *KeyValueStringPairsValue) Encode(dst api.WritableView) (int, error) {
	need := v.requiredSize()
	if dst.Size() < need {
		return 0, api.NewCodecError(api.ErrBufferTooSmall, "key_value_string_pairs tlv: value does not fit").
			WithContext("need", need).WithContext("have", dst.Size())
	}
	offset := 0
	for _, p := range v.Pairs {
		if err := dst.PutCString(offset, p.Key); err != nil {
			return 0, err
		}
		offset += len(p.Key) + 1
		if err := dst.PutCString(offset, p.Value); err != nil {
			return 0, err
		}
		offset += len(p.Value) + 1
	}
	return offset, nil
}

func (v *KeyValueStringPairsValue) Decode(src api.View) (int, error) {
	var pairs []KVPair
	offset := 0
	for offset < src.Size() {
		key, err := src.CString(offset)
		if err != nil {
			return 0, err
		}
		offset += len(key) + 1
		val, err := src.CString(offset)
		if err != nil {
			return 0, err
		}
		offset += len(val) + 1
		pairs = append(pairs, KVPair{Key: key, Value: val})
	}
	if offset != src.Size() {
		return 0, api.NewCodecError(api.ErrMalformed, "key_value_string_pairs tlv: trailing bytes").
			WithContext("consumed", offset).WithContext("size", src.Size())
	}
	v.Pairs = pairs
	return offset, nil
}

var _ api.TLVValue = (*KeyValueStringPairsValue)(nil)
