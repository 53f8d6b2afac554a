package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/specparse"
)

const (
	modelImport = "github.com/cwmp-model/cwmp-go/pkg/model"
	typesImport = "github.com/cwmp-model/cwmp-go/pkg/types"
)

// Parameter accessor shapes.
const (
	kindScalar = "scalar"
	kindBytes  = "bytes"
	kindList   = "list"
)

// objectData holds pre-computed data for the object templates.
type objectData struct {
	Package     string
	Model       string
	Path        string
	Name        string
	Type        string
	Recv        string
	MetaVar     string
	Access      string
	Description string
	Enums       []enumData
	Params      []paramData
	Children    []childData
	Defaults    []defaultData
	Unique      [][]string
}

type enumData struct {
	Type   string
	Path   string
	Values []enumValueData
}

type enumValueData struct {
	Const string
	Value string
}

type paramData struct {
	Name        string
	Field       string
	Kind        string
	ElemType    string // Go type of one value
	FieldType   string // Go type of the struct field
	DataType    string
	List        bool
	Access      string
	Notify      string
	Unit        string
	MinLength   int
	MaxLength   int
	MinExpr     string
	MaxExpr     string
	MinItems    int
	MaxItems    int
	Enum        []string
	Default     string
	Review      string
	Description string
}

type childData struct {
	Name            string
	Field           string
	Singular        string
	Path            string
	Type            string
	Table           bool
	NumberOfEntries string
}

type defaultData struct {
	Field string
	Expr  string
}

// registryData holds data for the registry template.
type registryData struct {
	Package string
	Model   string
	Version string
	Objects []registryEntry
}

type registryEntry struct {
	MetaVar string
	Type    string
}

// GenerateObject renders the Go source for one object definition.
func GenerateObject(m *specparse.RawModel, def *specparse.RawObjectDef) (string, error) {
	data, err := buildObjectData(m, def)
	if err != nil {
		return "", err
	}

	var body strings.Builder
	renderTemplate(&body, "enums", data)
	renderTemplate(&body, "objectStruct", data)
	renderTemplate(&body, "metadata", data)
	renderTemplate(&body, "constructor", data)
	renderTemplate(&body, "accessors", data)
	renderTemplate(&body, "children", data)

	var b strings.Builder
	b.WriteString("// Code generated by cwmp-objgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", data.Package)
	b.WriteString(importDecl(data.usesTypes()))
	b.WriteString(body.String())

	return b.String(), nil
}

// usesTypes reports whether the object refers to pkg/types.
func (d *objectData) usesTypes() bool {
	for _, p := range d.Params {
		if strings.HasPrefix(p.ElemType, "types.") {
			return true
		}
	}
	for _, def := range d.Defaults {
		if strings.Contains(def.Expr, "types.") {
			return true
		}
	}
	return false
}

// importDecl renders the import declaration the way goimports leaves it,
// so regenerating does not rewrite committed files.
func importDecl(usesTypes bool) string {
	if !usesTypes {
		return fmt.Sprintf("import %q\n\n", modelImport)
	}
	return fmt.Sprintf("import (\n\t%q\n\t%q\n)\n\n", modelImport, typesImport)
}

// GenerateRegistry renders registry_gen.go, which registers every object of
// the model with the metadata registry.
func GenerateRegistry(m *specparse.RawModel) (string, error) {
	data := registryData{
		Package: m.Def.PackageName(),
		Model:   m.Def.Name,
		Version: m.Def.Version,
	}
	for _, def := range m.Objects {
		data.Objects = append(data.Objects, registryEntry{
			MetaVar: metaVar(def.TypeName()),
			Type:    def.TypeName(),
		})
	}

	var b strings.Builder
	renderTemplate(&b, "registry", data)
	return b.String(), nil
}

func buildObjectData(m *specparse.RawModel, def *specparse.RawObjectDef) (*objectData, error) {
	access, err := model.ParseAccess(def.Access)
	if err != nil {
		return nil, err
	}

	typeName := def.TypeName()
	data := &objectData{
		Package:     m.Def.PackageName(),
		Model:       m.Def.Name,
		Path:        def.Path,
		Name:        def.Name(),
		Type:        typeName,
		Recv:        recvName(typeName),
		MetaVar:     metaVar(typeName),
		Access:      accessConst(access),
		Description: def.Description,
		Unique:      def.Unique,
	}

	for i := range def.Parameters {
		p := &def.Parameters[i]
		pd, err := buildParamData(typeName, p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}

		if len(p.Enum) > 0 {
			e := enumData{Type: pd.ElemType, Path: def.Path + "." + p.Name}
			for _, v := range p.Enum {
				e.Values = append(e.Values, enumValueData{
					Const: pd.ElemType + specparse.EnumConstSuffix(v),
					Value: v,
				})
			}
			data.Enums = append(data.Enums, e)
		}

		if p.Default != nil {
			dt, _ := model.ParseDataType(p.Type)
			expr, err := defaultExpr(p, dt, pd.ElemType)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", p.Name, err)
			}
			data.Defaults = append(data.Defaults, defaultData{Field: pd.Field, Expr: expr})
		}

		data.Params = append(data.Params, pd)
	}

	for _, c := range def.Children {
		child, ok := m.Object(c.Object)
		if !ok {
			return nil, fmt.Errorf("child %s references unknown object %s", c.Name, c.Object)
		}
		data.Children = append(data.Children, childData{
			Name:            c.Name,
			Field:           c.FieldName(),
			Singular:        c.SingularName(),
			Path:            c.Object,
			Type:            child.TypeName(),
			Table:           child.IsTable(),
			NumberOfEntries: c.NumberOfEntries,
		})
	}

	return data, nil
}

func buildParamData(typeName string, p *specparse.RawParameterDef) (paramData, error) {
	dt, err := model.ParseDataType(p.Type)
	if err != nil {
		return paramData{}, err
	}
	access, err := model.ParseAccess(p.Access)
	if err != nil {
		return paramData{}, err
	}
	notify, err := model.ParseNotify(p.Notify)
	if err != nil {
		return paramData{}, err
	}

	pd := paramData{
		Name:        p.Name,
		Field:       p.FieldName(),
		DataType:    dataTypeConst(dt),
		List:        p.List,
		Access:      accessConst(access),
		Unit:        p.Unit,
		MinLength:   p.MinLength,
		MaxLength:   p.MaxLength,
		MinItems:    p.MinItems,
		MaxItems:    p.MaxItems,
		Enum:        p.Enum,
		Review:      p.Review,
		Description: p.Description,
	}
	if notify != model.NotifyNone {
		pd.Notify = notifyConst(notify)
	}
	if p.Default != nil {
		pd.Default = defaultText(p.Default)
	}
	if p.Min != nil {
		if pd.MinExpr, err = boundExpr(dt, p.Min); err != nil {
			return paramData{}, err
		}
	}
	if p.Max != nil {
		if pd.MaxExpr, err = boundExpr(dt, p.Max); err != nil {
			return paramData{}, err
		}
	}

	pd.ElemType = goValueType(dt)
	if len(p.Enum) > 0 {
		pd.ElemType = typeName + p.FieldName()
	}

	switch {
	case p.List:
		pd.Kind = kindList
		pd.FieldType = "[]" + pd.ElemType
	case dt.IsBinary():
		pd.Kind = kindBytes
		pd.FieldType = pd.ElemType
	default:
		pd.Kind = kindScalar
		pd.FieldType = "*" + pd.ElemType
	}
	return pd, nil
}

// goValueType maps a schema data type to the Go type of one value.
func goValueType(dt model.DataType) string {
	switch dt {
	case model.DataTypeString:
		return "string"
	case model.DataTypeInt, model.DataTypeUnsignedInt, model.DataTypeLong:
		return "int64"
	case model.DataTypeUnsignedLong:
		return "uint64"
	case model.DataTypeBoolean:
		return "bool"
	default:
		// Named types live in pkg/types under their schema name.
		name := dt.String()
		return "types." + strings.ToUpper(name[:1]) + name[1:]
	}
}

// boundExpr renders a numeric bound as a typed Go literal.
func boundExpr(dt model.DataType, v any) (string, error) {
	n, ok := v.(int)
	if !ok {
		return "", fmt.Errorf("bound %v is not an integer", v)
	}
	if dt == model.DataTypeUnsignedLong {
		if n < 0 {
			return "", fmt.Errorf("negative bound %d on unsignedLong", n)
		}
		return fmt.Sprintf("uint64(%d)", n), nil
	}
	return fmt.Sprintf("int64(%d)", n), nil
}

// defaultExpr renders the constructor expression for a parameter default.
// enumType is the Go enumeration type, empty when only validating.
func defaultExpr(p *specparse.RawParameterDef, dt model.DataType, enumType string) (string, error) {
	text := defaultText(p.Default)
	if p.List {
		return "", fmt.Errorf("defaults on list parameters are not supported")
	}

	switch dt {
	case model.DataTypeString:
		if len(p.Enum) > 0 {
			found := false
			for _, e := range p.Enum {
				found = found || e == text
			}
			if !found {
				return "", fmt.Errorf("default %q is not an enumeration value", text)
			}
			return fmt.Sprintf("model.Ptr(%s%s)", enumType, specparse.EnumConstSuffix(text)), nil
		}
		return fmt.Sprintf("model.Ptr(%q)", text), nil
	case model.DataTypeBoolean:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return "", fmt.Errorf("default %q is not a boolean", text)
		}
		return fmt.Sprintf("model.Ptr(%t)", b), nil
	case model.DataTypeInt, model.DataTypeUnsignedInt, model.DataTypeLong:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil || (dt.IsUnsigned() && n < 0) {
			return "", fmt.Errorf("default %q is not a valid %s", text, dt)
		}
		return fmt.Sprintf("model.Ptr(int64(%d))", n), nil
	case model.DataTypeUnsignedLong:
		n, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return "", fmt.Errorf("default %q is not a valid %s", text, dt)
		}
		return fmt.Sprintf("model.Ptr(uint64(%d))", n), nil
	default:
		return "", fmt.Errorf("defaults on %s parameters are not supported", dt)
	}
}

func accessConst(a model.Access) string {
	if a.CanWrite() {
		return "model.AccessReadWrite"
	}
	return "model.AccessReadOnly"
}

func notifyConst(n model.Notify) string {
	switch n {
	case model.NotifyAlways:
		return "model.NotifyAlways"
	case model.NotifyDeniable:
		return "model.NotifyDeniable"
	case model.NotifyForced:
		return "model.NotifyForced"
	default:
		return "model.NotifyNone"
	}
}

func dataTypeConst(dt model.DataType) string {
	name := dt.String()
	return "model.DataType" + strings.ToUpper(name[:1]) + name[1:]
}

// recvName returns the receiver name for a type: its first letter in lower
// case, avoiding the setter argument name.
func recvName(typeName string) string {
	r := strings.ToLower(typeName[:1])
	if r == "v" {
		return "o"
	}
	return r
}

func metaVar(typeName string) string {
	return "meta" + typeName
}
