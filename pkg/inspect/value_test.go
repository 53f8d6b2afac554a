package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/objects/tr181"
	"github.com/cwmp-model/cwmp-go/pkg/objects/tr262"
	"github.com/cwmp-model/cwmp-go/pkg/types"
)

func param(t *testing.T, obj model.Object, name string) *model.ParameterMetadata {
	t.Helper()
	p, ok := obj.ObjectMetadata().Parameter(name)
	require.True(t, ok, "no parameter %s", name)
	return p
}

func TestTextAndValue(t *testing.T) {
	iface := tr181.NewEthernetInterface().
		WithEnable(true).
		WithMaxBitRate(-1).
		WithMACAddress(types.MACAddress("02:00:5e:00:53:01")).
		WithLowerLayers("Device.Ethernet.Link.1", "Device.Ethernet.Link.2").
		WithDuplexMode(tr181.EthernetInterfaceDuplexModeFull)

	tests := []struct {
		name string
		text string
		ok   bool
	}{
		{"Enable", "true", true},
		{"MaxBitRate", "-1", true},
		{"MACAddress", "02:00:5e:00:53:01", true},
		{"LowerLayers", "Device.Ethernet.Link.1,Device.Ethernet.Link.2", true},
		{"DuplexMode", "Full", true},
		{"Alias", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := Text(iface, param(t, iface, tt.name))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.text, text)
		})
	}

	v, ok := Value(iface, param(t, iface, "MaxBitRate"))
	require.True(t, ok)
	assert.Equal(t, int64(-1), v)

	_, ok = Value(iface, param(t, iface, "Upstream"))
	assert.False(t, ok)
}

func TestSetText(t *testing.T) {
	tests := []struct {
		name  string
		obj   model.Object
		param string
		in    string
		want  string
		err   bool
	}{
		{name: "bool numeric form", obj: tr181.NewDNSClient(), param: "Enable", in: "1", want: "true"},
		{name: "bool rejects yes", obj: tr181.NewDNSClient(), param: "Enable", in: "yes", err: true},
		{name: "enum", obj: tr181.NewDNSClient(), param: "Status", in: "Error", want: "Error"},
		{name: "enum rejects unknown", obj: tr181.NewDNSClient(), param: "Status", in: "Broken", err: true},
		{name: "unsignedInt", obj: tr181.NewMemoryStatus(), param: "Total", in: "131072", want: "131072"},
		{name: "unsignedInt rejects negative", obj: tr181.NewMemoryStatus(), param: "Total", in: "-1", err: true},
		{name: "unsignedInt rejects overflow", obj: tr181.NewMemoryStatus(), param: "Total", in: "4294967296", err: true},
		{name: "int", obj: tr181.NewEthernetInterface(), param: "MaxBitRate", in: "-1", want: "-1"},
		{name: "counter64", obj: tr181.NewEthernetInterfaceStats(), param: "BytesSent", in: "18446744073709551615", want: "18446744073709551615"},
		{name: "counter32 overflow", obj: tr181.NewEthernetInterfaceStats(), param: "ErrorsSent", in: "4294967296", err: true},
		{name: "mac canonicalised", obj: tr181.NewEthernetInterface(), param: "MACAddress", in: "02-00-5E-00-53-01", want: "02:00:5e:00:53:01"},
		{name: "mac rejects junk", obj: tr181.NewEthernetInterface(), param: "MACAddress", in: "zz", err: true},
		{name: "ip canonicalised", obj: tr181.NewDNSClientServer(), param: "DNSServer", in: "2001:DB8::0:53", want: "2001:db8::53"},
		{name: "list", obj: tr181.NewEthernetInterface(), param: "LowerLayers", in: "a, b", want: "a,b"},
		{name: "empty list", obj: tr181.NewEthernetInterface(), param: "LowerLayers", in: "", want: ""},
		{name: "dateTime", obj: tr262.NewPerfMgmtConfig(), param: "PeriodicUploadTime", in: "2024-03-01T12:30:00+01:00", want: "2024-03-01T11:30:00Z"},
		{name: "dateTime rejects junk", obj: tr262.NewPerfMgmtConfig(), param: "PeriodicUploadTime", in: "yesterday", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := param(t, tt.obj, tt.param)
			_, _, err := setText(tt.obj, p, tt.in)
			if tt.err {
				assert.ErrorIs(t, err, ErrInvalidValue)
				return
			}
			require.NoError(t, err)
			got, ok := Text(tt.obj, p)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetTextReturnsPrevious(t *testing.T) {
	c := tr181.NewDNSClient()
	p := param(t, c, "Enable")

	old, had, err := setText(c, p, "true")
	require.NoError(t, err)
	assert.True(t, had)
	assert.Equal(t, "false", old)

	s := param(t, c, "ServerNumberOfEntries")
	_, had, err = setText(c, s, "0")
	require.NoError(t, err)
	assert.False(t, had)
}
