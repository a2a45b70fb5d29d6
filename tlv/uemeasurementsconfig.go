// Package tlv
// Author: momentics <momentics@gmail.com>
package tlv

import "github.com/5g-empower/empower-enb-agent/api"

// UEMeasurementsConfigValue configures a UE measurement job (spec §4.5:
// 0:2 rnti; 2:1 meas_id; 3:1 interval; 4:1 amount).
type UEMeasurementsConfigValue struct {
	RNTI     uint16
	MeasID   uint8
	Interval uint8
	Amount   uint8
}

const ueMeasurementsConfigSize = 5

func (v *UEMeasurementsConfigValue) Type() api.TLVType { return UEMeasurementsConfig }

func (v *UEMeasurementsConfigValue) Encode(dst api.WritableView) (int, error) {
	if dst.Size() < ueMeasurementsConfigSize {
		return 0, api.NewCodecError(api.ErrBufferTooSmall, "ue_measurements_config tlv: value does not fit").
			WithContext("need", ueMeasurementsConfigSize).WithContext("have", dst.Size())
	}
	if err := dst.PutU16(0, v.RNTI); err != nil {
		return 0, err
	}
	if err := dst.PutU8(2, v.MeasID); err != nil {
		return 0, err
	}
	if err := dst.PutU8(3, v.Interval); err != nil {
		return 0, err
	}
	if err := dst.PutU8(4, v.Amount); err != nil {
		return 0, err
	}
	return ueMeasurementsConfigSize, nil
}

func (v *UEMeasurementsConfigValue) Decode(src api.View) (int, error) {
	if src.Size() != ueMeasurementsConfigSize {
		return 0, api.NewCodecError(api.ErrMalformed, "ue_measurements_config tlv: expected fixed-size value").
			WithContext("expected", ueMeasurementsConfigSize).WithContext("size", src.Size())
	}
	rnti, err := src.U16(0)
	if err != nil {
		return 0, err
	}
	measID, err := src.U8(2)
	if err != nil {
		return 0, err
	}
	interval, err := src.U8(3)
	if err != nil {
		return 0, err
	}
	amount, err := src.U8(4)
	if err != nil {
		return 0, err
	}
	v.RNTI, v.MeasID, v.Interval, v.Amount = rnti, measID, interval, amount
	return ueMeasurementsConfigSize, nil
}

var _ api.TLVValue = (*UEMeasurementsConfigValue)(nil)
