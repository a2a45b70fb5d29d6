package protocol_test

import (
	"testing"

	"github.com/5g-empower/empower-enb-agent/api"
	"github.com/5g-empower/empower-enb-agent/buffer"
	"github.com/5g-empower/empower-enb-agent/protocol"
)

func TestHeaderEncodeDecodeRoundTrip(t *testing.T) {
	v := buffer.NewOwning(protocol.CommonHeaderSize + protocol.TLVHeaderSize)
	enc, err := protocol.NewHeaderEncoder(v)
	if err != nil {
		t.Fatalf("NewHeaderEncoder: %v", err)
	}
	if err := enc.MessageClass(api.RequestGet); err != nil {
		t.Fatalf("MessageClass: %v", err)
	}
	if err := enc.EntityClass(api.EchoService); err != nil {
		t.Fatalf("EntityClass: %v", err)
	}
	if err := enc.ElementID(0xDEADBEEFCAFEBABE); err != nil {
		t.Fatalf("ElementID: %v", err)
	}
	if err := enc.Sequence(7); err != nil {
		t.Fatalf("Sequence: %v", err)
	}
	if err := enc.TransactionID(99); err != nil {
		t.Fatalf("TransactionID: %v", err)
	}
	if err := enc.TotalLength(uint32(protocol.CommonHeaderSize)); err != nil {
		t.Fatalf("TotalLength: %v", err)
	}

	dec, err := protocol.NewHeaderDecoder(v)
	if err != nil {
		t.Fatalf("NewHeaderDecoder: %v", err)
	}
	if ver, _ := dec.Version(); ver != protocol.ProtocolVersion {
		t.Errorf("Version = %d, want %d", ver, protocol.ProtocolVersion)
	}
	mc, err := dec.MessageClass()
	if err != nil || mc != api.RequestGet {
		t.Errorf("MessageClass = %v, %v; want REQUEST_GET", mc, err)
	}
	ec, err := dec.EntityClass()
	if err != nil || ec != api.EchoService {
		t.Errorf("EntityClass = %v, %v; want EchoService", ec, err)
	}
	eid, err := dec.ElementID()
	if err != nil || eid != 0xDEADBEEFCAFEBABE {
		t.Errorf("ElementID = %x, %v", eid, err)
	}
	seq, err := dec.Sequence()
	if err != nil || seq != 7 {
		t.Errorf("Sequence = %d, %v", seq, err)
	}
	txn, err := dec.TransactionID()
	if err != nil || txn != 99 {
		t.Errorf("TransactionID = %d, %v", txn, err)
	}
	isResp, err := dec.IsResponse()
	if err != nil || isResp {
		t.Errorf("IsResponse = %v, %v; want false", isResp, err)
	}
}

func TestMessageClassPreservesEntityClassBits(t *testing.T) {
	v := buffer.NewOwning(protocol.MinDecoderSize)
	enc, _ := protocol.NewHeaderEncoder(v)
	if err := enc.EntityClass(api.CapabilitiesService); err != nil {
		t.Fatalf("EntityClass: %v", err)
	}
	if err := enc.MessageClass(api.ResponseFailure); err != nil {
		t.Fatalf("MessageClass: %v", err)
	}
	dec, err := protocol.NewHeaderDecoder(v)
	if err != nil {
		t.Fatalf("NewHeaderDecoder: %v", err)
	}
	ec, err := dec.EntityClass()
	if err != nil || ec != api.CapabilitiesService {
		t.Errorf("EntityClass after MessageClass write = %v, %v", ec, err)
	}
	mc, err := dec.MessageClass()
	if err != nil || mc != api.ResponseFailure {
		t.Errorf("MessageClass = %v, %v; want RESPONSE_FAILURE", mc, err)
	}
	isResp, _ := dec.IsResponse()
	if !isResp {
		t.Error("IsResponse = false, want true for a response class")
	}
}

func TestEntityClassRejectsOutOfRange(t *testing.T) {
	v := buffer.NewOwning(protocol.CommonHeaderSize)
	enc, _ := protocol.NewHeaderEncoder(v)
	if err := enc.EntityClass(api.MaxEntityClass + 1); err == nil {
		t.Fatal("expected error for entity class exceeding 14-bit range")
	}
}

func TestMessageClassRejectsInvalid(t *testing.T) {
	v := buffer.NewOwning(protocol.CommonHeaderSize)
	enc, _ := protocol.NewHeaderEncoder(v)
	if err := enc.MessageClass(api.MessageClassInvalid); err == nil {
		t.Fatal("expected error encoding MessageClassInvalid")
	}
}

func TestHeaderDecoderRejectsShortView(t *testing.T) {
	v := buffer.NewOwning(protocol.MinDecoderSize - 1)
	if _, err := protocol.NewHeaderDecoder(v); err == nil {
		t.Fatal("expected error decoding header from undersized view")
	}
}

func TestHeaderDecoderRejectsWrongVersion(t *testing.T) {
	v := buffer.NewOwning(protocol.MinDecoderSize)
	_ = v.PutU8(0, protocol.ProtocolVersion+1)
	if _, err := protocol.NewHeaderDecoder(v); err == nil {
		t.Fatal("expected error decoding header with mismatched version")
	}
}
