package buffer_test

import (
	"testing"

	"github.com/5g-empower/empower-enb-agent/buffer"
)

func TestParseIPv4(t *testing.T) {
	cases := []struct {
		in      string
		wantErr bool
	}{
		{"192.168.1.1", false},
		{"0.0.0.0", false},
		{"255.255.255.255", false},
		{"1.2.3", true},
		{"1.2.3.4.5", true},
		{"1.2.3.256", true},
		{"1.2.3.1234", true},
		{"1..3.4", true},
	}
	for _, c := range cases {
		_, err := buffer.ParseIPv4(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("ParseIPv4(%q) error = %v, wantErr %v", c.in, err, c.wantErr)
		}
	}
}

func TestCIDRMask(t *testing.T) {
	if buffer.CIDRMask(0) != 0 {
		t.Error("CIDRMask(0) should be 0")
	}
	if buffer.CIDRMask(32) != 0xFFFFFFFF {
		t.Error("CIDRMask(32) should be 0xFFFFFFFF")
	}
	if buffer.CIDRMask(40) != 0xFFFFFFFF {
		t.Error("CIDRMask(>=32) should clamp to 0xFFFFFFFF")
	}
	if got := buffer.CIDRMask(24); got != 0xFFFFFF00 {
		t.Errorf("CIDRMask(24) = %#x, want 0xFFFFFF00", got)
	}
}

func TestNetwork(t *testing.T) {
	addr, err := buffer.ParseIPv4("10.20.30.40")
	if err != nil {
		t.Fatalf("ParseIPv4: %v", err)
	}
	net := buffer.Network(addr, 24)
	want, _ := buffer.ParseIPv4("10.20.30.0")
	if net != want {
		t.Errorf("Network(/24) = %v, want %v", net, want)
	}
}

func TestParseMAC(t *testing.T) {
	cases := []struct {
		in      string
		wantErr bool
	}{
		{"aa:bb:cc:dd:ee:ff", false},
		{"aa-bb-cc-dd-ee-ff", false},
		{"aa:bb-cc:dd:ee:ff", true},
		{"aa:bb:cc:dd:ee", true},
		{"aabbccddeeff", true},
	}
	for _, c := range cases {
		_, err := buffer.ParseMAC(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("ParseMAC(%q) error = %v, wantErr %v", c.in, err, c.wantErr)
		}
	}
}

func TestMACStringRoundTrip(t *testing.T) {
	m, err := buffer.ParseMAC("AA:BB:CC:DD:EE:FF")
	if err != nil {
		t.Fatalf("ParseMAC: %v", err)
	}
	if got := buffer.MACString(m); got != "aa:bb:cc:dd:ee:ff" {
		t.Errorf("MACString = %q, want %q", got, "aa:bb:cc:dd:ee:ff")
	}
}
