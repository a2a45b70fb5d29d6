package tcp_test

import (
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/5g-empower/empower-enb-agent/api"
	"github.com/5g-empower/empower-enb-agent/buffer"
	"github.com/5g-empower/empower-enb-agent/protocol"
	"github.com/5g-empower/empower-enb-agent/tlv"
	"github.com/5g-empower/empower-enb-agent/transport/tcp"
)

func buildFrame(t *testing.T, mc api.MessageClass, ec api.EntityClass, val api.TLVValue) api.WritableView {
	t.Helper()
	v := buffer.NewOwning(256)
	enc, err := protocol.NewMessageEncoder(v)
	if err != nil {
		t.Fatalf("NewMessageEncoder: %v", err)
	}
	if err := enc.Header().MessageClass(mc); err != nil {
		t.Fatalf("MessageClass: %v", err)
	}
	if err := enc.Header().EntityClass(ec); err != nil {
		t.Fatalf("EntityClass: %v", err)
	}
	if val != nil {
		if _, err := enc.Add(val); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if err := enc.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	data, err := enc.Data()
	if err != nil {
		t.Fatalf("Data: %v", err)
	}
	return data
}

func TestFramerRoundTripOverLoopback(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	addr := ln.Addr().(*net.TCPAddr)
	_ = ln.Close()

	server := tcp.New("127.0.0.1", addr.Port)
	if err := server.OpenListening(); err != nil {
		t.Fatalf("OpenListening: %v", err)
	}
	defer server.Close()

	client := tcp.New("127.0.0.1", addr.Port)
	done := make(chan error, 1)
	go func() {
		_, err := client.OpenClient()
		done <- err
	}()

	if err := server.AcceptIfNeeded(); err != nil {
		t.Fatalf("AcceptIfNeeded: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("OpenClient: %v", err)
	}
	defer client.Close()

	frame := buildFrame(t, api.RequestGet, api.EchoService, &tlv.BinaryDataValue{Data: []byte("hi")})
	if _, err := client.WriteMessage(frame); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}

	rxBuf := buffer.NewOwning(256)
	got, err := server.ReadMessage(rxBuf)
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if got.Empty() {
		t.Fatal("ReadMessage returned empty view for a valid frame")
	}
	dec, err := protocol.NewMessageDecoder(got)
	if err != nil {
		t.Fatalf("NewMessageDecoder: %v", err)
	}
	var bd tlv.BinaryDataValue
	if err := dec.Get(&bd); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(bd.Data) != "hi" {
		t.Errorf("Data = %q, want %q", bd.Data, "hi")
	}
}

func TestFramerReadMessageOnClosedPeerReturnsEmptyView(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	addr := ln.Addr().(*net.TCPAddr)
	_ = ln.Close()

	server := tcp.New("127.0.0.1", addr.Port)
	if err := server.OpenListening(); err != nil {
		t.Fatalf("OpenListening: %v", err)
	}
	defer server.Close()

	go func() {
		conn, err := net.DialTimeout("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(addr.Port)), time.Second)
		if err != nil {
			return
		}
		_ = conn.Close()
	}()

	if err := server.AcceptIfNeeded(); err != nil {
		t.Fatalf("AcceptIfNeeded: %v", err)
	}
	rxBuf := buffer.NewOwning(64)
	got, err := server.ReadMessage(rxBuf)
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if !got.Empty() {
		t.Error("ReadMessage on a peer that closed immediately should return an empty view")
	}
}
