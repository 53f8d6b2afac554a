package wire

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/objects/tr181"
	"github.com/cwmp-model/cwmp-go/pkg/objects/tr262"
	"github.com/cwmp-model/cwmp-go/pkg/types"
)

func testClient() *tr181.DNSClient {
	return tr181.NewDNSClient().
		WithEnable(true).
		WithStatus(tr181.DNSClientStatusEnabled).
		WithServerNumberOfEntries(2).
		AddServer(tr181.NewDNSClientServer().
			WithEnable(true).
			WithAlias("cpe-1").
			WithDNSServer(types.IPAddress("192.0.2.53")).
			WithType(tr181.DNSClientServerTypeDHCPv4)).
		AddServer(tr181.NewDNSClientServer().
			WithAlias("cpe-2").
			WithDNSServer(types.IPAddress("2001:db8::53")))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{"xml", FormatXML, false},
		{"CBOR", FormatCBOR, false},
		{" json ", FormatJSON, false},
		{"yaml", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, strings.ToLower(strings.TrimSpace(tt.in)), got.String())
		})
	}
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("dump/client.cbor")
	require.NoError(t, err)
	assert.Equal(t, FormatCBOR, f)

	_, err = FormatOf("client")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestMarshalXML_MemoryStatus(t *testing.T) {
	m := tr181.NewMemoryStatus().WithTotal(131072).WithFree(65536)

	data, err := Marshal(FormatXML, m)
	require.NoError(t, err)

	want := "<MemoryStatus>\n  <Total>131072</Total>\n  <Free>65536</Free>\n</MemoryStatus>\n"
	assert.Equal(t, want, string(data))
}

func TestMarshalXML_OmitsAbsent(t *testing.T) {
	data, err := Marshal(FormatXML, tr181.NewMemoryStatus().WithFree(1))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "Total")
	assert.Contains(t, string(data), "<Free>1</Free>")
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatXML, FormatCBOR, FormatJSON} {
		t.Run(f.String(), func(t *testing.T) {
			in := testClient()

			data, err := Marshal(f, in)
			require.NoError(t, err)

			out := &tr181.DNSClient{}
			require.NoError(t, Unmarshal(f, data, out))
			assert.Equal(t, in, out)
		})
	}
}

func TestRoundTrip_DateTime(t *testing.T) {
	at := types.NewDateTime(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC))
	in := tr262.NewPerfMgmtConfig().
		WithURL("https://pm.example.net/upload").
		WithPeriodicUploadInterval(900).
		WithPeriodicUploadTime(at)

	for _, f := range []Format{FormatXML, FormatCBOR, FormatJSON} {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Marshal(f, in)
			require.NoError(t, err)

			out := &tr262.PerfMgmtConfig{}
			require.NoError(t, Unmarshal(f, data, out))
			got, ok := out.GetPeriodicUploadTime()
			require.True(t, ok)
			assert.True(t, at.Time().Equal(got.Time()))
			assert.Equal(t, in, out)
		})
	}
}

func TestUnmarshalXML_RootMismatch(t *testing.T) {
	err := Unmarshal(FormatXML, []byte("<Server><Enable>true</Enable></Server>"), &tr181.DNSClient{})
	assert.ErrorIs(t, err, ErrRootMismatch)
}

func TestUnmarshal_Malformed(t *testing.T) {
	for _, f := range []Format{FormatXML, FormatCBOR, FormatJSON} {
		t.Run(f.String(), func(t *testing.T) {
			err := Unmarshal(f, []byte{0xff, '<', '{'}, &tr181.DNSClient{})
			assert.Error(t, err)
		})
	}
}

func TestUnknownFormat(t *testing.T) {
	_, err := Marshal(Format(42), tr181.NewDNSClient())
	assert.ErrorIs(t, err, ErrUnknownFormat)

	err = Unmarshal(Format(42), nil, tr181.NewDNSClient())
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDecode(t *testing.T) {
	data, err := Marshal(FormatJSON, testClient())
	require.NoError(t, err)

	obj, err := Decode(FormatJSON, "Device.DNS.Client", data)
	require.NoError(t, err)

	c, ok := obj.(*tr181.DNSClient)
	require.True(t, ok)
	assert.Len(t, c.GetServer(), 2)

	_, err = Decode(FormatJSON, "Device.Nope", data)
	assert.True(t, errors.Is(err, model.ErrUnknownObject))
}

func TestDecode_NestedDefaults(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{
			name:   "xml",
			format: FormatXML,
			data:   `<PerfMgmt><Config><URL>https://pm.example.net/upload</URL></Config></PerfMgmt>`,
		},
		{
			name:   "json",
			format: FormatJSON,
			data:   `{"Config":[{"URL":"https://pm.example.net/upload"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := Decode(tt.format, "FAP.PerfMgmt", []byte(tt.data))
			require.NoError(t, err)

			pm := obj.(*tr262.PerfMgmt)
			require.Len(t, pm.GetConfig(), 1)
			cfg := pm.GetConfig()[0]

			url, ok := cfg.GetURL()
			require.True(t, ok)
			assert.Equal(t, "https://pm.example.net/upload", url)

			enable, ok := cfg.GetEnable()
			require.True(t, ok, "defaulted parameter must be present after decode")
			assert.False(t, enable)
		})
	}
}

func TestDecode_NestedDefaultsKeepDecodedValues(t *testing.T) {
	data := `<Client><Server><Alias>cpe-1</Alias><Type>DHCPv4</Type></Server><Server><Alias>cpe-2</Alias></Server></Client>`

	obj, err := Decode(FormatXML, "Device.DNS.Client", []byte(data))
	require.NoError(t, err)

	servers := obj.(*tr181.DNSClient).GetServer()
	require.Len(t, servers, 2)

	want, _ := tr181.NewDNSClientServer().GetType()
	first, _ := servers[0].GetType()
	second, ok := servers[1].GetType()
	assert.Equal(t, tr181.DNSClientServerTypeDHCPv4, first)
	require.True(t, ok)
	assert.Equal(t, want, second)
}

func TestDecode_ConcretePath(t *testing.T) {
	data, err := Marshal(FormatCBOR, tr181.NewDNSClientServer().WithAlias("a"))
	require.NoError(t, err)

	obj, err := Decode(FormatCBOR, "Device.DNS.Client.Server.3", data)
	require.NoError(t, err)
	assert.Equal(t, "Device.DNS.Client.Server.{i}", obj.ObjectMetadata().Path)
}

func TestClone(t *testing.T) {
	in := testClient()

	out, err := Clone(in)
	require.NoError(t, err)
	require.True(t, Equal(in, out))

	c := out.(*tr181.DNSClient)
	c.GetServer()[0].SetAlias("changed")
	alias, _ := in.GetServer()[0].GetAlias()
	assert.Equal(t, "cpe-1", alias)
	assert.False(t, Equal(in, out))
}
