package types

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"
)

// IP errors.
var (
	ErrInvalidIPAddress = errors.New("invalid IP address")
	ErrInvalidIPPrefix  = errors.New("invalid IP prefix")
)

// IPAddress is an IPv4 or IPv6 address in its canonical textual form.
// The empty string means no address.
type IPAddress string

// IPv4Address is an IPv4 address in dotted-decimal form.
type IPv4Address string

// IPv6Address is an IPv6 address in RFC 5952 form.
type IPv6Address string

// IPPrefix is an IPv4 or IPv6 prefix in "address/length" form.
type IPPrefix string

// IPv6Prefix is an IPv6 prefix in "address/length" form.
type IPv6Prefix string

func parseAddr(s string) (netip.Addr, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Addr{}, false, nil
	}
	a, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false, fmt.Errorf("%w: %q", ErrInvalidIPAddress, s)
	}
	return a.Unmap(), true, nil
}

func parsePrefix(s string) (netip.Prefix, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Prefix{}, false, nil
	}
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return netip.Prefix{}, false, fmt.Errorf("%w: %q", ErrInvalidIPPrefix, s)
	}
	return p, true, nil
}

// ParseIPAddress parses an IPv4 or IPv6 address.
func ParseIPAddress(s string) (IPAddress, error) {
	a, ok, err := parseAddr(s)
	if err != nil || !ok {
		return "", err
	}
	return IPAddress(a.String()), nil
}

// ParseIPv4Address parses an IPv4 address.
func ParseIPv4Address(s string) (IPv4Address, error) {
	a, ok, err := parseAddr(s)
	if err != nil || !ok {
		return "", err
	}
	if !a.Is4() {
		return "", fmt.Errorf("%w: %q is not IPv4", ErrInvalidIPAddress, s)
	}
	return IPv4Address(a.String()), nil
}

// ParseIPv6Address parses an IPv6 address.
func ParseIPv6Address(s string) (IPv6Address, error) {
	a, ok, err := parseAddr(s)
	if err != nil || !ok {
		return "", err
	}
	if !a.Is6() {
		return "", fmt.Errorf("%w: %q is not IPv6", ErrInvalidIPAddress, s)
	}
	return IPv6Address(a.String()), nil
}

// ParseIPPrefix parses an IPv4 or IPv6 prefix.
func ParseIPPrefix(s string) (IPPrefix, error) {
	p, ok, err := parsePrefix(s)
	if err != nil || !ok {
		return "", err
	}
	return IPPrefix(p.String()), nil
}

// ParseIPv6Prefix parses an IPv6 prefix.
func ParseIPv6Prefix(s string) (IPv6Prefix, error) {
	p, ok, err := parsePrefix(s)
	if err != nil || !ok {
		return "", err
	}
	if !p.Addr().Is6() {
		return "", fmt.Errorf("%w: %q is not IPv6", ErrInvalidIPPrefix, s)
	}
	return IPv6Prefix(p.String()), nil
}

func (a IPAddress) String() string   { return string(a) }
func (a IPv4Address) String() string { return string(a) }
func (a IPv6Address) String() string { return string(a) }
func (p IPPrefix) String() string    { return string(p) }
func (p IPv6Prefix) String() string  { return string(p) }

// Valid reports whether a is empty or a canonical address.
func (a IPAddress) Valid() bool {
	p, err := ParseIPAddress(string(a))
	return err == nil && p == a
}

// Valid reports whether a is empty or a canonical IPv4 address.
func (a IPv4Address) Valid() bool {
	p, err := ParseIPv4Address(string(a))
	return err == nil && p == a
}

// Valid reports whether a is empty or a canonical IPv6 address.
func (a IPv6Address) Valid() bool {
	p, err := ParseIPv6Address(string(a))
	return err == nil && p == a
}

// Valid reports whether p is empty or a canonical prefix.
func (p IPPrefix) Valid() bool {
	q, err := ParseIPPrefix(string(p))
	return err == nil && q == p
}

// Valid reports whether p is empty or a canonical IPv6 prefix.
func (p IPv6Prefix) Valid() bool {
	q, err := ParseIPv6Prefix(string(p))
	return err == nil && q == p
}
