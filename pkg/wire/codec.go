package wire

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/cwmp-model/cwmp-go/pkg/inspect"
	"github.com/cwmp-model/cwmp-go/pkg/model"
)

// Codec errors.
var (
	ErrUnknownFormat = errors.New("unknown format")
	ErrRootMismatch  = errors.New("root element does not match object")
)

// Format identifies a serialisation format.
type Format uint8

const (
	FormatXML Format = iota + 1
	FormatCBOR
	FormatJSON
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatCBOR:
		return "cbor"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

// ParseFormat parses a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xml":
		return FormatXML, nil
	case "cbor":
		return FormatCBOR, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatOf derives the format from a file name extension.
func FormatOf(name string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: no extension on %s", ErrUnknownFormat, name)
	}
	return ParseFormat(ext)
}

// encMode is the CBOR encoder mode for objects.
// Configured for deterministic encoding.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for objects.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCoreDeterministic,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Unknown elements are skipped so newer schema revisions still decode.
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes obj in the given format.
func Marshal(f Format, obj model.Object) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, f, obj); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes obj to w in the given format.
func Encode(w io.Writer, f Format, obj model.Object) error {
	switch f {
	case FormatXML:
		enc := xml.NewEncoder(w)
		enc.Indent("", "  ")
		start := xml.StartElement{Name: xml.Name{Local: obj.ObjectMetadata().Name}}
		if err := enc.EncodeElement(obj, start); err != nil {
			return fmt.Errorf("failed to encode %s as xml: %w", obj.ObjectMetadata().Path, err)
		}
		if err := enc.Close(); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case FormatCBOR:
		if err := encMode.NewEncoder(w).Encode(obj); err != nil {
			return fmt.Errorf("failed to encode %s as cbor: %w", obj.ObjectMetadata().Path, err)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode %s as json: %w", obj.ObjectMetadata().Path, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Unmarshal decodes data in the given format into obj. For XML the root
// element must carry the object's schema name.
func Unmarshal(f Format, data []byte, obj model.Object) error {
	switch f {
	case FormatXML:
		return unmarshalXML(data, obj)
	case FormatCBOR:
		if err := decMode.Unmarshal(data, obj); err != nil {
			return fmt.Errorf("failed to decode %s from cbor: %w", obj.ObjectMetadata().Path, err)
		}
		return nil
	case FormatJSON:
		if err := json.Unmarshal(data, obj); err != nil {
			return fmt.Errorf("failed to decode %s from json: %w", obj.ObjectMetadata().Path, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

func unmarshalXML(data []byte, obj model.Object) error {
	meta := obj.ObjectMetadata()
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode %s from xml: %w", meta.Path, err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != meta.Name {
			return fmt.Errorf("%w: got <%s>, want <%s>", ErrRootMismatch, start.Name.Local, meta.Name)
		}
		if err := dec.DecodeElement(obj, &start); err != nil {
			return fmt.Errorf("failed to decode %s from xml: %w", meta.Path, err)
		}
		return nil
	}
}

// Decode instantiates the object registered for path and decodes data
// into it. Schema defaults are overwritten by values present in data;
// defaulted parameters absent from data keep their default on the root
// and on every decoded child object and table instance.
func Decode(f Format, path string, data []byte) (model.Object, error) {
	obj, err := model.New(path)
	if err != nil {
		return nil, err
	}
	if err := Unmarshal(f, data, obj); err != nil {
		return nil, err
	}
	if err := applyDefaults(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// applyDefaults copies defaulted values from a fresh instance into every
// object of the tree where the decoder left them absent. Decoders allocate
// nested objects as zero values, bypassing their constructors.
func applyDefaults(root model.Object) error {
	return inspect.WalkObjects(root, nil, func(n inspect.Node) error {
		meta := n.Meta()
		var fresh reflect.Value
		for _, p := range meta.Parameters {
			if p.Default == "" {
				continue
			}
			dst := reflect.ValueOf(n.Object).Elem().FieldByName(p.Field)
			if !dst.IsValid() || !dst.IsNil() {
				continue
			}
			if !fresh.IsValid() {
				obj, err := model.New(meta.Path)
				if err != nil {
					return fmt.Errorf("failed to apply defaults to %s: %w", n.Path, err)
				}
				fresh = reflect.ValueOf(obj).Elem()
			}
			dst.Set(fresh.FieldByName(p.Field))
		}
		return nil
	})
}

// Clone creates a deep copy of an object by re-encoding it as CBOR.
func Clone(obj model.Object) (model.Object, error) {
	data, err := encMode.Marshal(obj)
	if err != nil {
		return nil, err
	}
	out, ok := reflect.New(reflect.TypeOf(obj).Elem()).Interface().(model.Object)
	if !ok {
		return nil, fmt.Errorf("cannot clone %T", obj)
	}
	if err := decMode.Unmarshal(data, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Equal compares two objects by their CBOR encoding.
func Equal(a, b model.Object) bool {
	dataA, errA := encMode.Marshal(a)
	dataB, errB := encMode.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(dataA, dataB)
}
