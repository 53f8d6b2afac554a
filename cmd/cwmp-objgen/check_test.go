package main

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-model/cwmp-go/pkg/specparse"
)

func TestCheckModel_Valid(t *testing.T) {
	notes, err := CheckModel(dnsModel())
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestCheckModel_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *specparse.RawModel)
		want   string
	}{
		{
			name: "unknown child object",
			mutate: func(m *specparse.RawModel) {
				m.Objects[0].Children[0].Object = "Device.DNS.Client.Missing.{i}"
			},
			want: "unknown object",
		},
		{
			name: "unique key names unknown parameter",
			mutate: func(m *specparse.RawModel) {
				m.Objects[1].Unique = [][]string{{"Nope"}}
			},
			want: "unknown parameter Nope",
		},
		{
			name: "counter is not a parameter",
			mutate: func(m *specparse.RawModel) {
				m.Objects[0].Children[0].NumberOfEntries = "Count"
			},
			want: "numberOfEntries Count",
		},
		{
			name: "default outside enumeration",
			mutate: func(m *specparse.RawModel) {
				m.Objects[1].Parameters[2].Default = "Manual"
			},
			want: "not an enumeration value",
		},
		{
			name: "boolean default does not parse",
			mutate: func(m *specparse.RawModel) {
				m.Objects[0].Parameters[0].Default = "maybe"
			},
			want: "not a boolean",
		},
		{
			name: "enumeration on integer",
			mutate: func(m *specparse.RawModel) {
				m.Objects[0].Parameters[2].Enum = []string{"1", "2"}
			},
			want: "enumeration on unsignedInt",
		},
		{
			name: "unknown type",
			mutate: func(m *specparse.RawModel) {
				m.Objects[0].Parameters[0].Type = "float"
			},
			want: "unknown data type",
		},
		{
			name: "duplicate type name",
			mutate: func(m *specparse.RawModel) {
				m.Objects[1].GoName = "DNSClient"
			},
			want: "already used",
		},
		{
			name: "unique keys on singleton",
			mutate: func(m *specparse.RawModel) {
				m.Objects[0].Unique = [][]string{{"Enable"}}
			},
			want: "single-instance",
		},
		{
			name: "object outside root",
			mutate: func(m *specparse.RawModel) {
				m.Objects[0].Path = "InternetGatewayDevice.DNS.Client"
			},
			want: "outside model root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := dnsModel()
			tt.mutate(m)
			_, err := CheckModel(m)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCheckModel_ReviewNotes(t *testing.T) {
	m := dnsModel()
	m.Objects[1].Parameters = append(m.Objects[1].Parameters,
		specparse.RawParameterDef{Name: "TrafficClasses", Type: "unsignedInt", Review: "typed scalar, documented as list"},
		specparse.RawParameterDef{Name: "Decoding", Type: "string", List: true, MaxLength: -1},
	)

	notes, err := CheckModel(m)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "Device.DNS.Client.Server.{i}.TrafficClasses", notes[0].Path)
	assert.Equal(t, "typed scalar, documented as list", notes[0].Note)
	assert.Contains(t, notes[1].Note, "negative maxLength")
}

// TestCheckModel_Definitions runs the checks over the committed YAML tree.
func TestCheckModel_Definitions(t *testing.T) {
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok)
	dir := filepath.Join(filepath.Dir(thisFile), "..", "..", "docs", "objects")

	models, err := specparse.LoadModels(dir)
	require.NoError(t, err)
	require.Len(t, models, 6)

	var reviewed []string
	for _, m := range models {
		notes, err := CheckModel(m)
		require.NoError(t, err, m.Def.Name)
		for _, n := range notes {
			reviewed = append(reviewed, n.Path)
		}
		for _, def := range m.Objects {
			_, err := GenerateObject(m, def)
			assert.NoError(t, err, def.Path)
		}
	}

	joined := strings.Join(reviewed, "\n")
	assert.Contains(t, joined, "Device.QoS.Queue.{i}.TrafficClasses")
	assert.Contains(t, joined, "FAPService.{i}.CellConfig.LTE.RAN.PHY.MBSFN.SFConfigList.{i}.SubFrameAllocations")
	assert.Contains(t, joined, "Device.Bridging.Bridge.{i}.Port.{i}.PriorityCodePoint.PCPDecoding")
}
