package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/objects"
)

func TestPopulateAllObjects(t *testing.T) {
	for _, meta := range objects.Objects("") {
		t.Run(meta.Path, func(t *testing.T) {
			obj, err := model.New(meta.Path)
			require.NoError(t, err)
			require.NoError(t, Populate(obj))

			err = WalkObjects(obj, nil, func(n Node) error {
				m := n.Meta()
				for _, p := range m.Parameters {
					_, ok := Text(n.Object, p)
					assert.True(t, ok, "%s.%s not populated", n.Path, p.Name)
				}
				for _, c := range m.Children {
					if c.Table {
						assert.Len(t, Instances(n.Object, c), 1, "%s.%s", n.Path, c.Name)
					} else {
						_, ok := Child(n.Object, c)
						assert.True(t, ok, "%s.%s", n.Path, c.Name)
					}
					if c.NumberOfEntries == "" {
						continue
					}
					p, _ := m.Parameter(c.NumberOfEntries)
					text, _ := Text(n.Object, p)
					assert.Equal(t, "1", text, "%s.%s", n.Path, c.NumberOfEntries)
				}
				return nil
			})
			require.NoError(t, err)
		})
	}
}

func TestSampleText(t *testing.T) {
	tests := []struct {
		name string
		meta *model.ParameterMetadata
		want string
	}{
		{
			name: "enum picks first value",
			meta: &model.ParameterMetadata{Name: "Mode", Type: model.DataTypeString, Enum: []string{"Auto", "Manual"}},
			want: "Auto",
		},
		{
			name: "string truncated to max length",
			meta: &model.ParameterMetadata{Name: "Description", Type: model.DataTypeString, MaxLength: 4},
			want: "desc",
		},
		{
			name: "string padded to min length",
			meta: &model.ParameterMetadata{Name: "Id", Type: model.DataTypeString, MinLength: 4},
			want: "idxx",
		},
		{
			name: "int uses lower bound",
			meta: &model.ParameterMetadata{Name: "MaxBitRate", Type: model.DataTypeInt, MinValue: int64(-1)},
			want: "-1",
		},
		{
			name: "int below one uses upper bound",
			meta: &model.ParameterMetadata{Name: "Offset", Type: model.DataTypeInt, MaxValue: int64(-5)},
			want: "-5",
		},
		{
			name: "unbounded int",
			meta: &model.ParameterMetadata{Name: "Count", Type: model.DataTypeUnsignedInt},
			want: "1",
		},
		{
			name: "unsigned lower bound",
			meta: &model.ParameterMetadata{Name: "Interval", Type: model.DataTypeUnsignedLong, MinValue: uint64(30)},
			want: "30",
		},
		{
			name: "hexBinary honours min length",
			meta: &model.ParameterMetadata{Name: "Key", Type: model.DataTypeHexBinary, MinLength: 3},
			want: "010203",
		},
		{
			name: "list repeats to min items",
			meta: &model.ParameterMetadata{Name: "Servers", Type: model.DataTypeIPv6Address, List: true, MinItems: 2},
			want: "2001:db8::1,2001:db8::1",
		},
		{
			name: "list without bounds has one item",
			meta: &model.ParameterMetadata{Name: "Flags", Type: model.DataTypeBoolean, List: true},
			want: "true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SampleText(tt.meta))
		})
	}
}

func TestToInt64Clamps(t *testing.T) {
	n, ok := toInt64(uint64(1) << 63)
	require.True(t, ok)
	assert.Equal(t, int64(1<<63-1), n)

	_, ok = toInt64(nil)
	assert.False(t, ok)
}
