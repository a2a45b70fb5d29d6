// Package tlv
// Author: momentics <momentics@gmail.com>
package tlv

import "github.com/5g-empower/empower-enb-agent/api"

// UEMeasurementIDValue identifies a running measurement job by RNTI and
// measurement id (spec §4.5: 0:2 rnti; 2:1 meas_id).
type UEMeasurementIDValue struct {
	RNTI   uint16
	MeasID uint8
}

const ueMeasurementIDSize = 3

func (v *UEMeasurementIDValue) Type() api.TLVType { return UEMeasurementID }

func (v *UEMeasurementIDValue) Encode(dst api.WritableView) (int, error) {
	if dst.Size() < ueMeasurementIDSize {
		return 0, api.NewCodecError(api.ErrBufferTooSmall, "ue_measurement_id tlv: value does not fit").
			WithContext("need", ueMeasurementIDSize).WithContext("have", dst.Size())
	}
	if err := dst.PutU16(0, v.RNTI); err != nil {
		return 0, err
	}
	if err := dst.PutU8(2, v.MeasID); err != nil {
		return 0, err
	}
	return ueMeasurementIDSize, nil
}

func (v *UEMeasurementIDValue) Decode(src api.View) (int, error) {
	if src.Size() != ueMeasurementIDSize {
		return 0, api.NewCodecError(api.ErrMalformed, "ue_measurement_id tlv: expected fixed-size value").
			WithContext("expected", ueMeasurementIDSize).WithContext("size", src.Size())
	}
	rnti, err := src.U16(0)
	if err != nil {
		return 0, err
	}
	measID, err := src.U8(2)
	if err != nil {
		return 0, err
	}
	v.RNTI, v.MeasID = rnti, measID
	return ueMeasurementIDSize, nil
}

var _ api.TLVValue = (*UEMeasurementIDValue)(nil)
