// Package tlv
// Author: momentics <momentics@gmail.com>
package tlv

import "github.com/5g-empower/empower-enb-agent/api"

// CellValue describes one cell's radio identity (spec §4.5:
// 0:2 pci; 2:4 dl_earfcn; 6:4 ul_earfcn; 10:1 n_prb). The business
// meaning of these fields belongs to the cell-configuration entity
// class, out of scope here; only the wire shape is specified.
type CellValue struct {
	PCI      uint16
	DLEarfcn uint32
	ULEarfcn uint32
	NPRB     uint8
}

const cellSize = 11

func (v *CellValue) Type() api.TLVType { return Cell }

func (v *CellValue) Encode(dst api.WritableView) (int, error) {
	if dst.Size() < cellSize {
		return 0, api.NewCodecError(api.ErrBufferTooSmall, "cell tlv: value does not fit").
			WithContext("need", cellSize).WithContext("have", dst.Size())
	}
	if err := dst.PutU16(0, v.PCI); err != nil {
		return 0, err
	}
	if err := dst.PutU32(2, v.DLEarfcn); err != nil {
		return 0, err
	}
	if err := dst.PutU32(6, v.ULEarfcn); err != nil {
		return 0, err
	}
	if err := dst.PutU8(10, v.NPRB); err != nil {
		return 0, err
	}
	return cellSize, nil
}

func (v *CellValue) Decode(src api.View) (int, error) {
	if src.Size() != cellSize {
		return 0, api.NewCodecError(api.ErrMalformed, "cell tlv: expected fixed-size value").
			WithContext("expected", cellSize).WithContext("size", src.Size())
	}
	pci, err := src.U16(0)
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
	nprb, err := src.U8(10)
	if err != nil {
		return 0, err
	}
	v.PCI, v.DLEarfcn, v.ULEarfcn, v.NPRB = pci, dl, ul, nprb
	return cellSize, nil
}

var _ api.TLVValue = (*CellValue)(nil)
