package types

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrInvalidMACAddress is returned when a MAC address cannot be parsed.
var ErrInvalidMACAddress = errors.New("invalid MAC address")

// MACAddress is a 48-bit IEEE MAC address in colon-separated hex notation
// (e.g. "00:1a:2b:3c:4d:5e"). The empty string means no address.
type MACAddress string

// ParseMACAddress parses s and returns it in canonical lower-case
// colon-separated form. Hyphen and dot notations are accepted.
func ParseMACAddress(s string) (MACAddress, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	hw, err := net.ParseMAC(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidMACAddress, s)
	}
	if len(hw) != 6 {
		return "", fmt.Errorf("%w: %q is not 48 bits", ErrInvalidMACAddress, s)
	}
	return MACAddress(hw.String()), nil
}

// String returns the address text.
func (m MACAddress) String() string { return string(m) }

// Valid reports whether m is empty or a canonical 48-bit MAC address.
func (m MACAddress) Valid() bool {
	p, err := ParseMACAddress(string(m))
	return err == nil && p == m
}
