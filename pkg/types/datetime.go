package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateTime is returned when a dateTime value cannot be parsed.
var ErrInvalidDateTime = errors.New("invalid dateTime")

// UnknownTime is the CWMP sentinel for an unknown point in time.
const UnknownTime = "0001-01-01T00:00:00Z"

// DateTime is a CWMP dateTime value (RFC 3339, UTC). The zero value is the
// unknown time.
type DateTime struct {
	t time.Time
}

// NewDateTime returns t as a DateTime normalised to UTC.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t: t.UTC().Round(0)}
}

// ParseDateTime parses an RFC 3339 timestamp. Values without a zone are
// interpreted as UTC.
func ParseDateTime(s string) (DateTime, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == UnknownTime {
		return DateTime{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return NewDateTime(t), nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05.999999999", s); err == nil {
		return NewDateTime(t), nil
	}
	return DateTime{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
}

// Time returns the underlying time.
func (d DateTime) Time() time.Time { return d.t }

// IsUnknown reports whether d is the CWMP unknown time.
func (d DateTime) IsUnknown() bool {
	return d.t.IsZero()
}

// String returns the RFC 3339 form, or UnknownTime.
func (d DateTime) String() string {
	if d.IsUnknown() {
		return UnknownTime
	}
	return d.t.Format(time.RFC3339Nano)
}

// MarshalText implements encoding.TextMarshaler.
func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DateTime) UnmarshalText(b []byte) error {
	v, err := ParseDateTime(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalBinary encodes d as its text form. Binary codecs such as CBOR use it.
func (d DateTime) MarshalBinary() ([]byte, error) {
	return d.MarshalText()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *DateTime) UnmarshalBinary(b []byte) error {
	return d.UnmarshalText(b)
}
