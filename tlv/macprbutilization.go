// Package tlv
// Author: momentics <momentics@gmail.com>
package tlv

import "github.com/5g-empower/empower-enb-agent/api"

// MACPRBUtilizationReportValue reports MAC-layer PRB utilization
// counters (spec §4.5: 0:2 n_prb; 2:4 dl_counters; 6:4 ul_counters;
// 10:2 pci).
type MACPRBUtilizationReportValue struct {
	NPRB       uint16
	DLCounters uint32
	ULCounters uint32
	PCI        uint16
}

const macPRBUtilizationReportSize = 12

func (v *MACPRBUtilizationReportValue) Type() api.TLVType { return MACPRBUtilizationReport }

func (v *MACPRBUtilizationReportValue) Encode(dst api.WritableView) (int, error) {
	if dst.Size() < macPRBUtilizationReportSize {
		return 0, api.NewCodecError(api.ErrBufferTooSmall, "mac_prb_utilization_report tlv: value does not fit").
			WithContext("need", macPRBUtilizationReportSize).WithContext("have", dst.Size())
	}
	if err := dst.PutU16(0, v.NPRB); err != nil {
		return 0, err
	}
	if err := dst.PutU32(2, v.DLCounters); err != nil {
		return 0, err
	}
	if err := dst.PutU32(6, v.ULCounters); err != nil {
		return 0, err
	}
	if err := dst.PutU16(10, v.PCI); err != nil {
		return 0, err
	}
	return macPRBUtilizationReportSize, nil
}

func (v *MACPRBUtilizationReportValue) Decode(src api.View) (int, error) {
	if src.Size() != macPRBUtilizationReportSize {
		return 0, api.NewCodecError(api.ErrMalformed, "mac_prb_utilization_report tlv: expected fixed-size value").
			WithContext("expected", macPRBUtilizationReportSize).WithContext("size", src.Size())
	}
	nprb, err := src.U16(0)
	if err != nil {
		return 0, err
	}
	dl, err := src.U32(2)
	if err != nil {
		return 0, err
	}
	ul, err := src.U32(6)
	if err != nil {
		return 0, err
	}
	pci, err := src.U16(10)
	if err != nil {
		return 0, err
	}
	v.NPRB, v.DLCounters, v.ULCounters, v.PCI = nprb, dl, ul, pci
	return macPRBUtilizationReportSize, nil
}

var _ api.TLVValue = (*MACPRBUtilizationReportValue)(nil)
