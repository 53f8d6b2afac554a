package inspect

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/types"
)

// ErrInvalidValue is returned when a textual value does not parse for the
// parameter's declared type or is outside its enumeration.
var ErrInvalidValue = errors.New("invalid value")

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

// field returns the struct field named by a parameter or child.
func field(obj model.Object, name string) (reflect.Value, error) {
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, fmt.Errorf("%T is not a non-nil pointer", obj)
	}
	f := v.Elem().FieldByName(name)
	if !f.IsValid() {
		return reflect.Value{}, fmt.Errorf("%T has no field %s", obj, name)
	}
	return f, nil
}

// Value returns the Go value of a parameter (the pointer target for
// scalars, the slice for lists and byte sequences) and whether it is set.
func Value(obj model.Object, p *model.ParameterMetadata) (any, bool) {
	f, err := field(obj, p.Field)
	if err != nil {
		return nil, false
	}
	switch f.Kind() {
	case reflect.Pointer:
		if f.IsNil() {
			return nil, false
		}
		return f.Elem().Interface(), true
	case reflect.Slice:
		if f.IsNil() {
			return nil, false
		}
		return f.Interface(), true
	default:
		return f.Interface(), true
	}
}

// Text returns the CWMP text form of a parameter and whether it is set.
// List items are comma-joined.
func Text(obj model.Object, p *model.ParameterMetadata) (string, bool) {
	f, err := field(obj, p.Field)
	if err != nil {
		return "", false
	}
	return formatField(p, f)
}

func formatField(p *model.ParameterMetadata, f reflect.Value) (string, bool) {
	switch {
	case p.List:
		if f.IsNil() {
			return "", false
		}
		items := make([]string, f.Len())
		for i := range items {
			items[i] = formatScalar(f.Index(i))
		}
		return strings.Join(items, ","), true
	case f.Kind() == reflect.Pointer:
		if f.IsNil() {
			return "", false
		}
		return formatScalar(f.Elem()), true
	case f.Kind() == reflect.Slice:
		if f.IsNil() {
			return "", false
		}
		return formatScalar(f), true
	default:
		return formatScalar(f), true
	}
}

func formatScalar(v reflect.Value) string {
	if v.Type().Implements(stringerType) {
		return v.Interface().(fmt.Stringer).String()
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	default:
		return fmt.Sprint(v.Interface())
	}
}

// setText parses text for the parameter's type and stores it in obj.
// It returns the previous text form and whether a value was present.
func setText(obj model.Object, p *model.ParameterMetadata, text string) (string, bool, error) {
	f, err := field(obj, p.Field)
	if err != nil {
		return "", false, err
	}
	old, had := formatField(p, f)
	v, err := parseField(p, f.Type(), text)
	if err != nil {
		return old, had, err
	}
	f.Set(v)
	return old, had, nil
}

func parseField(p *model.ParameterMetadata, ft reflect.Type, text string) (reflect.Value, error) {
	switch {
	case p.List:
		out := reflect.MakeSlice(ft, 0, 0)
		if strings.TrimSpace(text) == "" {
			return out, nil
		}
		for _, item := range strings.Split(text, ",") {
			ev, err := parseScalar(p, ft.Elem(), strings.TrimSpace(item))
			if err != nil {
				return reflect.Value{}, err
			}
			out = reflect.Append(out, ev)
		}
		return out, nil
	case ft.Kind() == reflect.Pointer:
		ev, err := parseScalar(p, ft.Elem(), text)
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(ft.Elem())
		ptr.Elem().Set(ev)
		return ptr, nil
	default:
		return parseScalar(p, ft, text)
	}
}

func parseScalar(p *model.ParameterMetadata, t reflect.Type, text string) (reflect.Value, error) {
	var (
		v   any
		err error
	)
	switch p.Type {
	case model.DataTypeString:
		if !p.HasEnum(text) {
			return reflect.Value{}, fmt.Errorf("%w: %s: %q is not one of %s",
				ErrInvalidValue, p.Name, text, strings.Join(p.Enum, ", "))
		}
		v = text
	case model.DataTypeInt:
		v, err = strconv.ParseInt(text, 10, 32)
	case model.DataTypeLong:
		v, err = strconv.ParseInt(text, 10, 64)
	case model.DataTypeUnsignedInt, model.DataTypeStatsCounter32:
		v, err = strconv.ParseUint(text, 10, 32)
	case model.DataTypeUnsignedLong, model.DataTypeStatsCounter64:
		v, err = strconv.ParseUint(text, 10, 64)
	case model.DataTypeBoolean:
		v, err = parseBool(text)
	case model.DataTypeDateTime:
		v, err = types.ParseDateTime(text)
	case model.DataTypeBase64:
		v, err = types.ParseBase64(text)
	case model.DataTypeHexBinary:
		v, err = types.ParseHexBinary(text)
	case model.DataTypeMACAddress:
		v, err = types.ParseMACAddress(text)
	case model.DataTypeIPAddress:
		v, err = types.ParseIPAddress(text)
	case model.DataTypeIPv4Address:
		v, err = types.ParseIPv4Address(text)
	case model.DataTypeIPv6Address:
		v, err = types.ParseIPv6Address(text)
	case model.DataTypeIPPrefix:
		v, err = types.ParseIPPrefix(text)
	case model.DataTypeIPv6Prefix:
		v, err = types.ParseIPv6Prefix(text)
	case model.DataTypeUUID:
		v, err = types.ParseUUID(text)
	default:
		err = fmt.Errorf("unsupported type %s", p.Type)
	}
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, p.Name, err)
	}

	rv := reflect.ValueOf(v)
	if !rv.Type().ConvertibleTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: %s: cannot store %s in %s", ErrInvalidValue, p.Name, rv.Type(), t)
	}
	return rv.Convert(t), nil
}

// parseBool accepts the xsd:boolean lexical forms.
func parseBool(s string) (bool, error) {
	switch s {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%q is not a boolean", s)
	}
}
