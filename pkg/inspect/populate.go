package inspect

import (
	"encoding/hex"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/types"
)

// Populate fills every parameter of obj with an in-bounds sample value,
// creates every singleton child and one instance per table, recursively.
// NumberOfEntries parameters agree with the created tables.
func Populate(obj model.Object) error {
	meta := obj.ObjectMetadata()

	for _, p := range meta.Parameters {
		if _, _, err := setText(obj, p, SampleText(p)); err != nil {
			return fmt.Errorf("%s: %w", meta.Path, err)
		}
	}

	for _, c := range meta.Children {
		child, err := model.New(c.Path)
		if err != nil {
			return err
		}
		if err := Populate(child); err != nil {
			return err
		}

		f, err := field(obj, c.Field)
		if err != nil {
			return err
		}
		v := reflect.ValueOf(child)
		if c.Table {
			f.Set(reflect.Append(reflect.MakeSlice(f.Type(), 0, 1), v))
		} else {
			f.Set(v)
		}

		if c.NumberOfEntries == "" {
			continue
		}
		if pm, ok := meta.Parameter(c.NumberOfEntries); ok {
			if _, _, err := setText(obj, pm, "1"); err != nil {
				return fmt.Errorf("%s: %w", meta.Path, err)
			}
		}
	}
	return nil
}

// SampleText returns a textual value that satisfies the parameter's
// declared type, enumeration and bounds.
func SampleText(p *model.ParameterMetadata) string {
	if !p.List {
		return sampleScalar(p)
	}
	n := max(p.MinItems, 1)
	if p.MaxItems > 0 {
		n = min(n, p.MaxItems)
	}
	items := make([]string, n)
	for k := range items {
		items[k] = sampleScalar(p)
	}
	return strings.Join(items, ",")
}

func sampleScalar(p *model.ParameterMetadata) string {
	switch p.Type {
	case model.DataTypeString:
		if len(p.Enum) > 0 {
			return p.Enum[0]
		}
		return fitLength(strings.ToLower(p.Name), p.MinLength, p.MaxLength)
	case model.DataTypeInt, model.DataTypeLong, model.DataTypeUnsignedInt, model.DataTypeUnsignedLong:
		return strconv.FormatInt(sampleInt(p), 10)
	case model.DataTypeStatsCounter32, model.DataTypeStatsCounter64:
		return "1"
	case model.DataTypeBoolean:
		return "true"
	case model.DataTypeDateTime:
		return "2024-01-01T00:00:00Z"
	case model.DataTypeBase64:
		return types.Base64(sampleBytes(p)).String()
	case model.DataTypeHexBinary:
		return hex.EncodeToString(sampleBytes(p))
	case model.DataTypeMACAddress:
		return "02:00:5e:00:53:01"
	case model.DataTypeIPAddress, model.DataTypeIPv4Address:
		return "192.0.2.1"
	case model.DataTypeIPv6Address:
		return "2001:db8::1"
	case model.DataTypeIPPrefix:
		return "192.0.2.0/24"
	case model.DataTypeIPv6Prefix:
		return "2001:db8::/64"
	case model.DataTypeUUID:
		return "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	default:
		return ""
	}
}

func sampleInt(p *model.ParameterMetadata) int64 {
	if lo, ok := toInt64(p.MinValue); ok {
		return lo
	}
	if hi, ok := toInt64(p.MaxValue); ok && hi < 1 {
		return hi
	}
	return 1
}

func sampleBytes(p *model.ParameterMetadata) []byte {
	n := max(p.MinLength, 1)
	if p.MaxLength > 0 {
		n = min(n, p.MaxLength)
	}
	b := make([]byte, n)
	for k := range b {
		b[k] = byte(k + 1)
	}
	return b
}

func fitLength(s string, minLen, maxLen int) string {
	for len(s) < minLen {
		s += "x"
	}
	if maxLen > 0 && len(s) > maxLen {
		s = s[:maxLen]
	}
	return s
}

// toInt64 converts a metadata bound to int64. Unsigned bounds above
// math.MaxInt64 are clamped.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return math.MaxInt64, true
		}
		return int64(n), true
	default:
		return 0, false
	}
}
