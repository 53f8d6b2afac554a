package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMACAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    MACAddress
		wantErr bool
	}{
		{"colon upper", "00:1A:2B:3C:4D:5E", "00:1a:2b:3c:4d:5e", false},
		{"hyphen", "00-1a-2b-3c-4d-5e", "00:1a:2b:3c:4d:5e", false},
		{"empty", "", "", false},
		{"eui64 rejected", "00:1a:2b:ff:fe:3c:4d:5e", "", true},
		{"garbage", "not-a-mac", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMACAddress(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMACAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}

	assert.False(t, MACAddress("00:1A:2B:3C:4D:5E").Valid(), "upper case is not canonical")
}

func TestParseIPAddresses(t *testing.T) {
	v4, err := ParseIPv4Address("192.168.1.1")
	require.NoError(t, err)
	assert.Equal(t, IPv4Address("192.168.1.1"), v4)

	_, err = ParseIPv4Address("2001:db8::1")
	assert.ErrorIs(t, err, ErrInvalidIPAddress)

	v6, err := ParseIPv6Address("2001:0DB8:0000:0000:0000:0000:0000:0001")
	require.NoError(t, err)
	assert.Equal(t, IPv6Address("2001:db8::1"), v6)

	addr, err := ParseIPAddress("::ffff:10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, IPAddress("10.0.0.1"), addr)

	assert.True(t, IPAddress("").Valid())
	assert.False(t, IPAddress("300.1.1.1").Valid())
}

func TestParsePrefixes(t *testing.T) {
	p, err := ParseIPv6Prefix("2001:DB8::/32")
	require.NoError(t, err)
	assert.Equal(t, IPv6Prefix("2001:db8::/32"), p)

	_, err = ParseIPv6Prefix("10.0.0.0/8")
	assert.ErrorIs(t, err, ErrInvalidIPPrefix)

	q, err := ParseIPPrefix("10.0.0.0/8")
	require.NoError(t, err)
	assert.True(t, q.Valid())

	_, err = ParseIPPrefix("10.0.0.0")
	assert.ErrorIs(t, err, ErrInvalidIPPrefix)
}

func TestDateTime(t *testing.T) {
	t.Run("UnknownTime", func(t *testing.T) {
		var d DateTime
		assert.True(t, d.IsUnknown())
		assert.Equal(t, UnknownTime, d.String())

		parsed, err := ParseDateTime(UnknownTime)
		require.NoError(t, err)
		assert.True(t, parsed.IsUnknown())
	})

	t.Run("TextRoundTrip", func(t *testing.T) {
		want := NewDateTime(time.Date(2024, 3, 1, 12, 30, 0, 0, time.FixedZone("CET", 3600)))
		text, err := want.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01T11:30:00Z", string(text))

		var got DateTime
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, want, got)
	})

	t.Run("NoZone", func(t *testing.T) {
		d, err := ParseDateTime("2024-03-01T11:30:00")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01T11:30:00Z", d.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseDateTime("yesterday")
		assert.ErrorIs(t, err, ErrInvalidDateTime)
	})
}

func TestBinaryTypes(t *testing.T) {
	h, err := ParseHexBinary("00:01:00:01:2a:3b")
	require.NoError(t, err)
	assert.Equal(t, HexBinary{0x00, 0x01, 0x00, 0x01, 0x2a, 0x3b}, h)
	assert.Equal(t, "000100012a3b", h.String())

	_, err = ParseHexBinary("zz")
	assert.Error(t, err)

	b := Base64("hello")
	text, err := b.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", string(text))

	var back Base64
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, b, back)
}

func TestStatsCounterDelta(t *testing.T) {
	assert.Equal(t, uint32(10), StatsCounter32(15).Delta(5))
	assert.Equal(t, uint32(6), StatsCounter32(1).Delta(0xFFFFFFFB))
	assert.Equal(t, uint64(2), StatsCounter64(0).Delta(0xFFFFFFFFFFFFFFFE))
}

func TestParseUUID(t *testing.T) {
	u, err := ParseUUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", u.String())

	_, err = ParseUUID("nope")
	assert.Error(t, err)
}
