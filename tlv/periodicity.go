// Package tlv
// Author: momentics <momentics@gmail.com>
package tlv

import "github.com/5g-empower/empower-enb-agent/api"

// PeriodicityValue carries a single millisecond interval (spec §4.5).
type PeriodicityValue struct {
	Milliseconds uint32
}

const periodicitySize = 4

func (v *PeriodicityValue) Type() api.TLVType { return Periodicity }

func (v *PeriodicityValue) Encode(dst api.WritableView) (int, error) {
	if dst.Size() < periodicitySize {
		return 0, api.NewCodecError(api.ErrBufferTooSmall, "periodicity tlv: value does not fit").
			WithContext("need", periodicitySize).WithContext("have", dst.Size())
	}
	if err := dst.PutU32(0, v.Milliseconds); err != nil {
		return 0, err
	}
	return periodicitySize, nil
}

func (v *PeriodicityValue) Decode(src api.View) (int, error) {
	if src.Size() != periodicitySize {
		return 0, api.NewCodecError(api.ErrMalformed, "periodicity tlv: expected fixed-size value").
			WithContext("expected", periodicitySize).WithContext("size", src.Size())
	}
	ms, err := src.U32(0)
	if err != nil {
		return 0, err
	}
	v.Milliseconds = ms
	return periodicitySize, nil
}

var _ api.TLVValue = (*PeriodicityValue)(nil)
