package types

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// HexBinary is a byte sequence encoded as hexadecimal text.
type HexBinary []byte

// ParseHexBinary decodes a hexadecimal string. Colons are ignored so
// DUID-style notations are accepted.
func ParseHexBinary(s string) (HexBinary, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ":", "")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hexBinary %q: %w", s, err)
	}
	return HexBinary(b), nil
}

// String returns the lower-case hex encoding.
func (h HexBinary) String() string { return hex.EncodeToString(h) }

// MarshalText implements encoding.TextMarshaler.
func (h HexBinary) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HexBinary) UnmarshalText(b []byte) error {
	v, err := ParseHexBinary(string(b))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// Base64 is a byte sequence encoded as standard base64 text.
type Base64 []byte

// ParseBase64 decodes a standard base64 string.
func ParseBase64(s string) (Base64, error) {
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	return Base64(b), nil
}

// String returns the base64 encoding.
func (b Base64) String() string { return base64.StdEncoding.EncodeToString(b) }

// MarshalText implements encoding.TextMarshaler.
func (b Base64) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Base64) UnmarshalText(text []byte) error {
	v, err := ParseBase64(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
