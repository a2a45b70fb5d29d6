// Package buffer
// Author: momentics <momentics@gmail.com>

package buffer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/5g-empower/empower-enb-agent/api"
)

// ParseMAC parses a 6-octet hardware address from hex text separated by
// ':' or '-'. Separators must be consistent; mixing them is an error.
func ParseMAC(s string) (api.MACAddr, error) {
	var mac api.MACAddr
	hasColon := strings.ContainsRune(s, ':')
	hasDash := strings.ContainsRune(s, '-')
	var sep byte
	switch {
	case hasColon && hasDash:
		return mac, api.NewCodecError(api.ErrMalformed, "mac: mixed separators").WithContext("value", s)
	case hasColon:
		sep = ':'
	case hasDash:
		sep = '-'
	default:
		return mac, api.NewCodecError(api.ErrMalformed, "mac: missing separator").WithContext("value", s)
	}
	parts := strings.Split(s, string(sep))
	if len(parts) != 6 {
		return mac, api.NewCodecError(api.ErrMalformed, "mac: expected 6 octets").WithContext("value", s)
	}
	for i, p := range parts {
		if len(p) == 0 || len(p) > 2 {
			return mac, api.NewCodecError(api.ErrMalformed, "mac: bad octet length").WithContext("value", s)
		}
		n, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return mac, api.NewCodecError(api.ErrMalformed, "mac: non-hex octet").WithContext("value", s)
		}
		mac[i] = byte(n)
	}
	return mac, nil
}

// MACString renders the address as lower-case colon-separated hex.
func MACString(m api.MACAddr) string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", m[0], m[1], m[2], m[3], m[4], m[5])
}
