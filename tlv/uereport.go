// Package tlv
// Author: momentics <momentics@gmail.com>
package tlv

import "github.com/5g-empower/empower-enb-agent/api"

// UEReportValue is the richer of the two UE_REPORT shapes the reference
// repository's divergent tlvs.hh/tlvs.cpp pairs disagreed on (spec §9
// Q1). This module adopts it as canonical (0:8 imsi; 8:4 tmsi; 12:2
// rnti; 14:1 status; 15:2 pci).
type UEReportValue struct {
	IMSI   uint64
	TMSI   uint32
	RNTI   uint16
	Status uint8
	PCI    uint16
}

const ueReportSize = 17

func (v *UEReportValue) Type() api.TLVType { return UEReport }

func (v *UEReportValue) Encode(dst api.WritableView) (int, error) {
	if dst.Size() < ueReportSize {
		return 0, api.NewCodecError(api.ErrBufferTooSmall, "ue_report tlv: value does not fit").
			WithContext("need", ueReportSize).WithContext("have", dst.Size())
	}
	if err := dst.PutU64(0, v.IMSI); err != nil {
		return 0, err
	}
	if err := dst.PutU32(8, v.TMSI); err != nil {
		return 0, err
	}
	if err := dst.PutU16(12, v.RNTI); err != nil {
		return 0, err
	}
	if err := dst.PutU8(14, v.Status); err != nil {
		return 0, err
	}
	if err := dst.PutU16(15, v.PCI); err != nil {
		return 0, err
	}
	return ueReportSize, nil
}

func (v *UEReportValue) Decode(src api.View) (int, error) {
	if src.Size() != ueReportSize {
		return 0, api.NewCodecError(api.ErrMalformed, "ue_report tlv: expected fixed-size value").
			WithContext("expected", ueReportSize).WithContext("size", src.Size())
	}
	imsi, err := src.U64(0)
	if err != nil {
		return 0, err
	}
	tmsi, err := src.U32(8)
	if err != nil {
		return 0, err
	}
	rnti, err := src.U16(12)
	if err != nil {
		return 0, err
	}
	status, err := src.U8(14)
	if err != nil {
		return 0, err
	}
	pci, err := src.U16(15)
	if err != nil {
		return 0, err
	}
	v.IMSI, v.TMSI, v.RNTI, v.Status, v.PCI = imsi, tmsi, rnti, status, pci
	return ueReportSize, nil
}

var _ api.TLVValue = (*UEReportValue)(nil)
