// Package tlv
// Author: momentics <momentics@gmail.com>
package tlv

import "github.com/5g-empower/empower-enb-agent/api"

// UEMeasurementReportValue reports one measurement sample (spec §4.5:
// 0:2 rnti; 2:1 meas_id; 3:1 rsrp; 4:1 rsrq).
type UEMeasurementReportValue struct {
	RNTI   uint16
	MeasID uint8
	RSRP   uint8
	RSRQ   uint8
}

const ueMeasurementReportSize = 5

func (v *UEMeasurementReportValue) Type() api.TLVType { return UEMeasurementReport }

func (v *UEMeasurementReportValue) Encode(dst api.WritableView) (int, error) {
	if dst.Size() < ueMeasurementReportSize {
		return 0, api.NewCodecError(api.ErrBufferTooSmall, "ue_measurement_report tlv: value does not fit").
			WithContext("need", ueMeasurementReportSize).WithContext("have", dst.Size())
	}
	if err := dst.PutU16(0, v.RNTI); err != nil {
		return 0, err
	}
	if err := dst.PutU8(2, v.MeasID); err != nil {
		return 0, err
	}
	if err := dst.PutU8(3, v.RSRP); err != nil {
		return 0, err
	}
	if err := dst.PutU8(4, v.RSRQ); err != nil {
		return 0, err
	}
	return ueMeasurementReportSize, nil
}

func (v *UEMeasurementReportValue) Decode(src api.View) (int, error) {
	if src.Size() != ueMeasurementReportSize {
		return 0, api.NewCodecError(api.ErrMalformed, "ue_measurement_report tlv: expected fixed-size value").
			WithContext("expected", ueMeasurementReportSize).WithContext("size", src.Size())
	}
	rnti, err := src.U16(0)
	if err != nil {
		return 0, err
	}
	measID, err := src.U8(2)
	if err != nil {
		return 0, err
	}
	rsrp, err := src.U8(3)
	if err != nil {
		return 0, err
	}
	rsrq, err := src.U8(4)
	if err != nil {
		return 0, err
	}
	v.RNTI, v.MeasID, v.RSRP, v.RSRQ = rnti, measID, rsrp, rsrq
	return ueMeasurementReportSize, nil
}

var _ api.TLVValue = (*UEMeasurementReportValue)(nil)
