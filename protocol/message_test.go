package protocol_test

import (
	"testing"

	"github.com/5g-empower/empower-enb-agent/api"
	"github.com/5g-empower/empower-enb-agent/buffer"
	"github.com/5g-empower/empower-enb-agent/protocol"
	"github.com/5g-empower/empower-enb-agent/tlv"
)

func TestMessageEncodeDecodeSingleTLV(t *testing.T) {
	v := buffer.NewOwning(128)
	enc, err := protocol.NewMessageEncoder(v)
	if err != nil {
		t.Fatalf("NewMessageEncoder: %v", err)
	}
	if err := enc.Header().MessageClass(api.RequestGet); err != nil {
		t.Fatalf("MessageClass: %v", err)
	}
	if err := enc.Header().EntityClass(api.EchoService); err != nil {
		t.Fatalf("EntityClass: %v", err)
	}
	if _, err := enc.Add(&tlv.BinaryDataValue{Data: []byte("ping")}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := enc.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	data, err := enc.Data()
	if err != nil {
		t.Fatalf("Data: %v", err)
	}

	dec, err := protocol.NewMessageDecoder(data)
	if err != nil {
		t.Fatalf("NewMessageDecoder: %v", err)
	}
	isReq, err := dec.IsRequest()
	if err != nil || !isReq {
		t.Errorf("IsRequest = %v, %v; want true", isReq, err)
	}
	if typ := dec.NextType(); typ != tlv.BinaryData {
		t.Fatalf("NextType = %v, want BinaryData", typ)
	}
	got := &tlv.BinaryDataValue{}
	if err := dec.Get(got); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got.Data) != "ping" {
		t.Errorf("Data = %q, want %q", got.Data, "ping")
	}
	if typ := dec.NextType(); typ != api.TLVNone {
		t.Errorf("NextType after last TLV = %v, want TLVNone", typ)
	}
}

func TestMessageEncodeDecodeMultipleTLVs(t *testing.T) {
	v := buffer.NewOwning(256)
	enc, _ := protocol.NewMessageEncoder(v)
	_ = enc.Header().MessageClass(api.ResponseSuccess)
	if _, err := enc.Add(&tlv.CellValue{PCI: 5, DLEarfcn: 100, ULEarfcn: 200, NPRB: 50}); err != nil {
		t.Fatalf("Add cell: %v", err)
	}
	if _, err := enc.Add(&tlv.PeriodicityValue{Milliseconds: 1000}); err != nil {
		t.Fatalf("Add periodicity: %v", err)
	}
	if err := enc.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	data, _ := enc.Data()

	dec, err := protocol.NewMessageDecoder(data)
	if err != nil {
		t.Fatalf("NewMessageDecoder: %v", err)
	}
	isSuccess, err := dec.IsSuccess()
	if err != nil || !isSuccess {
		t.Errorf("IsSuccess = %v, %v; want true", isSuccess, err)
	}

	var cell tlv.CellValue
	if err := dec.Get(&cell); err != nil {
		t.Fatalf("Get cell: %v", err)
	}
	if cell.PCI != 5 || cell.NPRB != 50 {
		t.Errorf("cell = %+v", cell)
	}
	var per tlv.PeriodicityValue
	if err := dec.Get(&per); err != nil {
		t.Fatalf("Get periodicity: %v", err)
	}
	if per.Milliseconds != 1000 {
		t.Errorf("periodicity = %+v", per)
	}
}

func TestMessageDecoderRejectsTypeMismatch(t *testing.T) {
	v := buffer.NewOwning(128)
	enc, _ := protocol.NewMessageEncoder(v)
	_ = enc.Header().MessageClass(api.RequestGet)
	if _, err := enc.Add(&tlv.PeriodicityValue{Milliseconds: 50}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	_ = enc.End()
	data, _ := enc.Data()

	dec, _ := protocol.NewMessageDecoder(data)
	var cell tlv.CellValue
	if err := dec.Get(&cell); err == nil {
		t.Fatal("expected TypeMismatch decoding a cell TLV where a periodicity TLV was written")
	}
}

func TestMessageEncoderRejectsAddAfterEnd(t *testing.T) {
	v := buffer.NewOwning(64)
	enc, _ := protocol.NewMessageEncoder(v)
	_ = enc.Header().MessageClass(api.RequestGet)
	_ = enc.End()
	if _, err := enc.Add(&tlv.PeriodicityValue{Milliseconds: 1}); err == nil {
		t.Fatal("expected error adding a TLV after End")
	}
}

func TestMessageDecoderRejectsCorruptLength(t *testing.T) {
	v := buffer.NewOwning(128)
	enc, _ := protocol.NewMessageEncoder(v)
	_ = enc.Header().MessageClass(api.RequestGet)
	if _, err := enc.Add(&tlv.PeriodicityValue{Milliseconds: 7}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	_ = enc.End()
	data, _ := enc.Data()

	// Corrupt the first TLV's length field to claim more bytes than remain.
	if err := data.PutU16(protocol.CommonHeaderSize+2, 0xFFFF); err != nil {
		t.Fatalf("corrupt length: %v", err)
	}

	dec, _ := protocol.NewMessageDecoder(data)
	var per tlv.PeriodicityValue
	if err := dec.Get(&per); err == nil {
		t.Fatal("expected Malformed decoding a TLV whose declared length overruns the buffer")
	}
}
