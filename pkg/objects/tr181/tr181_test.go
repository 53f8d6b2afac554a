package tr181

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-model/cwmp-go/pkg/model"
)

func TestDefaults(t *testing.T) {
	c := NewDNSClient()

	enable, ok := c.GetEnable()
	require.True(t, ok, "defaulted parameter must be present after construction")
	assert.False(t, enable)

	_, ok = c.GetStatus()
	assert.False(t, ok)

	srv := NewDNSClientServer()
	typ, ok := srv.GetType()
	require.True(t, ok)
	assert.Equal(t, DNSClientServerTypeStatic, typ)
}

func TestBuilderChaining(t *testing.T) {
	c := NewDNSClient()

	same := c.WithEnable(true).WithStatus(DNSClientStatusEnabled)
	assert.Same(t, c, same)

	c.WithEnable(false).WithEnable(true)
	enable, _ := c.GetEnable()
	assert.True(t, enable, "last With wins")

	srv := NewDNSClientServer()
	assert.Same(t, c, c.AddServer(srv))
	assert.Same(t, srv, c.GetServer()[0])
}

func TestTableGetterNeverNil(t *testing.T) {
	c := NewDNSClient()
	assert.Nil(t, c.Server)

	servers := c.GetServer()
	assert.NotNil(t, servers)
	assert.Empty(t, servers)

	ps := NewProcessStatus()
	assert.NotNil(t, ps.GetProcess())
}

func TestSingletonGetterConstructs(t *testing.T) {
	info := NewDeviceInfo()
	assert.Nil(t, info.MemoryStatus)

	ms := info.GetMemoryStatus()
	require.NotNil(t, ms)
	assert.Same(t, ms, info.GetMemoryStatus())
}

func TestListParameters(t *testing.T) {
	iface := NewEthernetInterface()
	assert.Nil(t, iface.GetLowerLayers())

	iface.WithLowerLayers("Device.Ethernet.Link.1", "Device.Ethernet.Link.2")
	assert.Equal(t, []string{"Device.Ethernet.Link.1", "Device.Ethernet.Link.2"}, iface.GetLowerLayers())

	iface.SetLowerLayers(nil)
	assert.Nil(t, iface.LowerLayers)
}

func TestMemoryStatusXML(t *testing.T) {
	m := NewMemoryStatus().WithTotal(131072).WithFree(65536)

	data, err := xml.Marshal(m)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, "<Total>131072</Total>")
	assert.Contains(t, s, "<Free>65536</Free>")
	assert.Less(t, strings.Index(s, "<Total>"), strings.Index(s, "<Free>"))
}

func TestElementNamesVerbatim(t *testing.T) {
	al := NewIEEE1905AL().WithIEEE1905ID("00:11:22:33:44:55")

	data, err := xml.Marshal(al)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<IEEE1905Id>00:11:22:33:44:55</IEEE1905Id>")

	p, ok := al.ObjectMetadata().Parameter("IEEE1905Id")
	require.True(t, ok)
	assert.Equal(t, "IEEE1905ID", p.Field)
}

func TestMetadata(t *testing.T) {
	meta := NewDNSClientServer().ObjectMetadata()
	assert.Equal(t, "Device.DNS.Client.Server.{i}", meta.Path)
	assert.Equal(t, Model, meta.Model)
	assert.True(t, meta.IsTable())
	assert.Equal(t, model.AccessReadWrite, meta.Access)

	status, ok := meta.Parameter("Status")
	require.True(t, ok)
	assert.Equal(t, []string{"Disabled", "Enabled", "Error"}, status.Enum)
	assert.Equal(t, "Disabled", status.Default)

	q, ok := model.Lookup("Device.QoS.Queue.3")
	require.True(t, ok)
	tc, ok := q.Parameter("TrafficClasses")
	require.True(t, ok)
	assert.NotEmpty(t, tc.Review)
	assert.False(t, tc.List)
}
