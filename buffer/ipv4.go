// Package buffer
// Author: momentics <momentics@gmail.com>

package buffer

import (
	"strconv"
	"strings"

	"github.com/5g-empower/empower-enb-agent/api"
)

// ParseIPv4 parses a dotted-quad string into an api.IPv4Addr. It fails on
// an empty part, a part with more than 3 digits, a part value above 255,
// or a wrong number of parts.
func ParseIPv4(s string) (api.IPv4Addr, error) {
	var addr api.IPv4Addr
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return addr, api.NewCodecError(api.ErrMalformed, "ipv4: expected 4 dotted parts").WithContext("value", s)
	}
	for i, p := range parts {
		if len(p) == 0 {
			return addr, api.NewCodecError(api.ErrMalformed, "ipv4: empty octet").WithContext("value", s)
		}
		if len(p) > 3 {
			return addr, api.NewCodecError(api.ErrMalformed, "ipv4: octet too long").WithContext("value", s)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return addr, api.NewCodecError(api.ErrMalformed, "ipv4: non-numeric octet").WithContext("value", s)
		}
		if n < 0 || n > 255 {
			return addr, api.NewCodecError(api.ErrMalformed, "ipv4: octet out of range").WithContext("value", s)
		}
		addr[i] = byte(n)
	}
	return addr, nil
}

// IPv4FromUint32 builds an api.IPv4Addr from a 32-bit integer, MSB first.
func IPv4FromUint32(v uint32) api.IPv4Addr {
	return api.IPv4Addr{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// IPv4ToUint32 converts an api.IPv4Addr to its 32-bit integer form, MSB first.
func IPv4ToUint32(a api.IPv4Addr) uint32 {
	return uint32(a[0])<<24 | uint32(a[1])<<16 | uint32(a[2])<<8 | uint32(a[3])
}

// CIDRMask returns the network mask for prefix length n (clamped to
// [0,32] semantics: n=0 -> 0, n>=32 -> 0xFFFFFFFF).
func CIDRMask(n int) uint32 {
	if n <= 0 {
		return 0
	}
	if n >= 32 {
		return 0xFFFFFFFF
	}
	return ^uint32(0) << (32 - n)
}

// Network returns the network portion of addr under a /n CIDR mask.
func Network(addr api.IPv4Addr, n int) api.IPv4Addr {
	return IPv4FromUint32(IPv4ToUint32(addr) & CIDRMask(n))
}
