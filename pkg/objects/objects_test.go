package objects_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-model/cwmp-go/pkg/inspect"
	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/objects"
	"github.com/cwmp-model/cwmp-go/pkg/wire"
)

func TestModels(t *testing.T) {
	var names []string
	for _, m := range objects.Models() {
		names = append(names, m.Name)
		assert.NotEmpty(t, m.Version, m.Name)
	}
	assert.Equal(t, []string{"TR-098", "TR-104", "TR-135", "TR-181", "TR-196", "TR-262"}, names)
}

func TestRegistryConsistency(t *testing.T) {
	all := objects.Objects("")
	require.Len(t, all, 25)

	for _, meta := range all {
		t.Run(meta.Path, func(t *testing.T) {
			obj, err := model.New(meta.Path)
			require.NoError(t, err)
			assert.Same(t, meta, obj.ObjectMetadata())
			segs := model.Segments(meta.Path)
			if meta.IsTable() {
				segs = segs[:len(segs)-1]
			}
			assert.Equal(t, segs[len(segs)-1], meta.Name)

			for _, c := range meta.Children {
				child, ok := model.Lookup(c.Path)
				require.True(t, ok, "child %s is not registered", c.Path)
				assert.Equal(t, c.Table, child.IsTable())
				assert.Equal(t, meta.Path+"."+c.Name+tableSuffix(c.Table), c.Path)
				if c.NumberOfEntries != "" {
					p, ok := meta.Parameter(c.NumberOfEntries)
					require.True(t, ok, "missing %s", c.NumberOfEntries)
					assert.True(t, p.Type.IsInteger())
				}
			}

			for _, key := range meta.Unique {
				for _, name := range key {
					_, ok := meta.Parameter(name)
					assert.True(t, ok, "unique key names unknown parameter %s", name)
				}
			}
		})
	}
}

func tableSuffix(table bool) string {
	if table {
		return "." + model.Placeholder
	}
	return ""
}

func TestObjectsByModel(t *testing.T) {
	tr262 := objects.Objects("tr-262")
	require.Len(t, tr262, 3)
	assert.Equal(t, "FAP.GPS", tr262[0].Path)

	assert.Empty(t, objects.Objects("TR-999"))
}

func TestFind(t *testing.T) {
	found := objects.Find("Device.DNS.Client.Server.2")
	require.Len(t, found, 1)
	assert.Equal(t, "Device.DNS.Client.Server.{i}", found[0].Path)

	found = objects.Find("Device.DNS")
	assert.Len(t, found, 2)

	found = objects.Find("Device.DeviceInf")
	assert.Empty(t, found)
}

func TestRoots(t *testing.T) {
	var paths []string
	for _, m := range objects.Roots("TR-262") {
		paths = append(paths, m.Path)
	}
	assert.Equal(t, []string{"FAP.GPS", "FAP.PerfMgmt"}, paths)

	for _, m := range objects.Roots("") {
		assert.NotEqual(t, "Device.DNS.Client.Server.{i}", m.Path)
	}
}

// Every registered object, filled with in-bounds values, survives each
// codec field for field.
func TestRoundTripAllObjects(t *testing.T) {
	for _, meta := range objects.Objects("") {
		for _, f := range []wire.Format{wire.FormatXML, wire.FormatCBOR, wire.FormatJSON} {
			t.Run(meta.Path+"/"+f.String(), func(t *testing.T) {
				in, err := model.New(meta.Path)
				require.NoError(t, err)
				require.NoError(t, inspect.Populate(in))

				data, err := wire.Marshal(f, in)
				require.NoError(t, err)

				out := reflect.New(reflect.TypeOf(in).Elem()).Interface().(model.Object)
				require.NoError(t, wire.Unmarshal(f, data, out))

				assert.Equal(t, in, out)
				assert.Equal(t, inspect.Flatten(in), inspect.Flatten(out))
			})
		}
	}
}
