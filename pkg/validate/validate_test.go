package validate

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-model/cwmp-go/pkg/inspect"
	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/objects"
	"github.com/cwmp-model/cwmp-go/pkg/objects/tr181"
	"github.com/cwmp-model/cwmp-go/pkg/objects/tr262"
	"github.com/cwmp-model/cwmp-go/pkg/types"
)

func codes(r *Report) []string {
	out := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		out[i] = v.Code
	}
	return out
}

func TestValidate_PopulatedObjectsAreValid(t *testing.T) {
	for _, meta := range objects.Objects("") {
		t.Run(meta.Path, func(t *testing.T) {
			obj, err := model.New(meta.Path)
			require.NoError(t, err)
			require.NoError(t, inspect.Populate(obj))

			r := Validate(obj)
			assert.True(t, r.OK(), "%v", r.Violations)
			assert.NoError(t, r.Err())
		})
	}
}

func TestValidate_PerfMgmtCompositeUnique(t *testing.T) {
	at := types.NewDateTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	config := func(user string) *tr262.PerfMgmtConfig {
		return tr262.NewPerfMgmtConfig().
			WithURL("https://pm.example.net/upload").
			WithPeriodicUploadInterval(900).
			WithPeriodicUploadTime(at).
			WithUsername(user)
	}

	pm := tr262.NewPerfMgmt().
		AddConfig(config("alice")).
		AddConfig(config("bob")).
		WithConfigNumberOfEntries(2)

	r := Validate(pm)
	require.Len(t, r.Violations, 1)
	v := r.Violations[0]
	assert.Equal(t, CodeUnique, v.Code)
	assert.Equal(t, "FAP.PerfMgmt.Config.2", v.Path)
	assert.Contains(t, v.Message, "URL, PeriodicUploadInterval, PeriodicUploadTime")
	assert.Contains(t, v.Message, "instance 1")

	pm.GetConfig()[1].WithPeriodicUploadInterval(300)
	assert.True(t, Validate(pm).OK())
}

func TestValidate_UniqueSkipsPartialKeys(t *testing.T) {
	client := tr181.NewDNSClient().
		AddServer(tr181.NewDNSClientServer()).
		AddServer(tr181.NewDNSClientServer()).
		WithServerNumberOfEntries(2)

	assert.True(t, Validate(client).OK())

	client.GetServer()[0].WithAlias("cpe-1")
	client.GetServer()[1].WithAlias("cpe-1")
	r := Validate(client)
	require.Len(t, r.ByCode(CodeUnique), 1)
	assert.Equal(t, "Device.DNS.Client.Server.2", r.ByCode(CodeUnique)[0].Path)
}

func TestValidate_Entries(t *testing.T) {
	client := tr181.NewDNSClient().
		AddServer(tr181.NewDNSClientServer()).
		WithServerNumberOfEntries(3)

	r := Validate(client)
	require.Len(t, r.Violations, 1)
	assert.Equal(t, CodeEntries, r.Violations[0].Code)
	assert.Equal(t, "Device.DNS.Client.ServerNumberOfEntries", r.Violations[0].Path)
}

func TestValidate_NegativeEntries(t *testing.T) {
	r := Validate(tr262.NewPerfMgmt().WithConfigNumberOfEntries(-5))

	assert.ElementsMatch(t, []string{CodeRange, CodeEntries}, codes(r))
	ranged := r.ByCode(CodeRange)
	require.Len(t, ranged, 1)
	assert.Equal(t, "FAP.PerfMgmt.ConfigNumberOfEntries", ranged[0].Path)
}

func TestValidate_Parameters(t *testing.T) {
	tests := []struct {
		name string
		obj  model.Object
		path string
		code string
	}{
		{
			name: "string too long",
			obj:  tr181.NewDNSClientServer().WithAlias(strings.Repeat("a", 65)),
			path: "Device.DNS.Client.Server.1.Alias",
			code: CodeLength,
		},
		{
			name: "string too short",
			obj:  tr181.NewDeviceInfo().WithManufacturerOUI("00"),
			path: "Device.DeviceInfo.ManufacturerOUI",
			code: CodeLength,
		},
		{
			name: "below minimum",
			obj:  tr262.NewPerfMgmtConfig().WithPeriodicUploadInterval(0),
			path: "FAP.PerfMgmt.Config.1.PeriodicUploadInterval",
			code: CodeRange,
		},
		{
			name: "above maximum",
			obj:  tr262.NewGPS().WithLockedLatitude(90000001),
			path: "FAP.GPS.LockedLatitude",
			code: CodeRange,
		},
		{
			name: "negative unsignedInt",
			obj:  tr181.NewMemoryStatus().WithTotal(-5),
			path: "Device.DeviceInfo.MemoryStatus.Total",
			code: CodeRange,
		},
		{
			name: "unsignedInt overflow",
			obj:  tr181.NewMemoryStatus().WithFree(math.MaxUint32 + 1),
			path: "Device.DeviceInfo.MemoryStatus.Free",
			code: CodeRange,
		},
		{
			name: "int overflow",
			obj:  tr181.NewEthernetInterface().WithMaxBitRate(math.MaxInt32 + 1),
			path: "Device.Ethernet.Interface.1.MaxBitRate",
			code: CodeRange,
		},
		{
			name: "outside enumeration",
			obj: &tr181.DNSClientServer{
				Status: model.Ptr(tr181.DNSClientServerStatus("Broken")),
			},
			path: "Device.DNS.Client.Server.1.Status",
			code: CodeEnum,
		},
		{
			name: "malformed address",
			obj:  tr181.NewDNSClientServer().WithDNSServer(types.IPAddress("not-an-ip")),
			path: "Device.DNS.Client.Server.1.DNSServer",
			code: CodeFormat,
		},
		{
			name: "malformed MAC",
			obj:  tr181.NewIEEE1905AL().WithIEEE1905ID("zz:zz"),
			path: "Device.IEEE1905.AL.IEEE1905Id",
			code: CodeFormat,
		},
		{
			name: "too few list items",
			obj:  tr181.NewPriorityCodePoint().WithPCPEncoding("8P0D", "7P1D"),
			path: "Device.Bridging.Bridge.1.Port.1.PriorityCodePoint.PCPEncoding",
			code: CodeItems,
		},
		{
			name: "list item too long",
			obj: tr181.NewPriorityCodePoint().WithPCPEncoding(
				"8P0D", "7P1D", "6P2D", strings.Repeat("x", 32)),
			path: "Device.Bridging.Bridge.1.Port.1.PriorityCodePoint.PCPEncoding[3]",
			code: CodeLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Validate(tt.obj, 1, 1)
			require.Len(t, r.Violations, 1, "%v", r.Violations)
			assert.Equal(t, tt.code, r.Violations[0].Code)
			assert.Equal(t, tt.path, r.Violations[0].Path)
		})
	}
}

func TestValidate_UnboundedMaxLength(t *testing.T) {
	pcp := tr181.NewPriorityCodePoint().
		WithPCPDecoding(strings.Repeat("8P0D", 100), "7P1D", "6P2D", "5P3D")

	assert.True(t, Validate(pcp, 1, 1).OK())
}

func TestReportErr(t *testing.T) {
	r := &Report{}
	assert.NoError(t, r.Err())

	r.add(CodeRange, "A.B", "first")
	r.add(CodeEnum, "A.C", "second")

	err := r.Err()
	require.Error(t, err)
	assert.Equal(t, "A.B: first\nA.C: second", err.Error())

	var v Violation
	require.True(t, errors.As(err, &v))
	assert.Equal(t, CodeRange, v.Code)
	assert.Equal(t, []string{CodeRange, CodeEnum}, codes(r))
}

func TestCheckUpdate(t *testing.T) {
	before := tr181.NewDNSClient().
		AddServer(tr181.NewDNSClientServer().WithAlias("cpe-1"))

	t.Run("writable change allowed", func(t *testing.T) {
		after := tr181.NewDNSClient().
			AddServer(tr181.NewDNSClientServer().WithAlias("cpe-2"))
		assert.True(t, CheckUpdate(before, after).OK())
	})

	t.Run("read-only change flagged", func(t *testing.T) {
		after := tr181.NewDNSClient().
			AddServer(tr181.NewDNSClientServer().WithAlias("cpe-1").WithStatus(tr181.DNSClientServerStatusEnabled))

		r := CheckUpdate(before, after)
		require.Len(t, r.Violations, 1)
		assert.Equal(t, CodeReadOnly, r.Violations[0].Code)
		assert.Equal(t, "Device.DNS.Client.Server.1.Status", r.Violations[0].Path)
	})

	t.Run("read-only set on existing object", func(t *testing.T) {
		after := tr181.NewDNSClient().
			WithStatus(tr181.DNSClientStatusEnabled).
			AddServer(tr181.NewDNSClientServer().WithAlias("cpe-1"))

		r := CheckUpdate(before, after)
		require.Len(t, r.Violations, 1)
		assert.Equal(t, "Device.DNS.Client.Status", r.Violations[0].Path)
	})

	t.Run("new instance not compared", func(t *testing.T) {
		after := tr181.NewDNSClient().
			AddServer(tr181.NewDNSClientServer().WithAlias("cpe-1")).
			AddServer(tr181.NewDNSClientServer().WithAlias("cpe-2"))
		assert.True(t, CheckUpdate(before, after).OK())
	})

	t.Run("read-only removal flagged", func(t *testing.T) {
		after := tr181.NewDNSClient().
			AddServer(&tr181.DNSClientServer{Alias: model.Ptr("cpe-1"), Enable: model.Ptr(false), Type: model.Ptr(tr181.DNSClientServerTypeStatic)})

		r := CheckUpdate(before, after)
		require.Len(t, r.Violations, 1)
		assert.Equal(t, "Device.DNS.Client.Server.1.Status", r.Violations[0].Path)
		assert.Contains(t, r.Violations[0].Message, "removed")
	})

	t.Run("different types", func(t *testing.T) {
		r := CheckUpdate(before, tr181.NewDeviceInfo())
		require.Len(t, r.Violations, 1)
		assert.Equal(t, CodeTypeMatch, r.Violations[0].Code)
	})
}
