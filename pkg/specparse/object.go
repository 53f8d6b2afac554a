// Package specparse provides the YAML object-definition types and loaders
// for CWMP data models. cwmp-objgen reads them to generate entity types and
// the parameter index.
package specparse

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RawObjectDef represents one object definition loaded from YAML.
type RawObjectDef struct {
	Path        string            `yaml:"path"`   // "Device.DNS.Client.Server.{i}"
	GoName      string            `yaml:"goName"` // Optional: Go type name, defaults to Name
	Access      string            `yaml:"access"` // tables: "readWrite" if the ACS may add/delete
	Description string            `yaml:"description"`
	Parameters  []RawParameterDef `yaml:"parameters"`
	Children    []RawChildDef     `yaml:"children"`
	Unique      [][]string        `yaml:"unique"`
}

// RawParameterDef represents a parameter definition.
type RawParameterDef struct {
	Name        string   `yaml:"name"`
	Field       string   `yaml:"field"` // Optional: Go field name, defaults to Name
	Type        string   `yaml:"type"`  // "string", "unsignedInt", "MACAddress", ...
	List        bool     `yaml:"list"`
	Access      string   `yaml:"access"` // "readOnly", "readWrite"
	Notify      string   `yaml:"notify"` // "normal", "always", "canDeny", "forceEnabled"
	Unit        string   `yaml:"unit"`
	MinLength   int      `yaml:"minLength"`
	MaxLength   int      `yaml:"maxLength"`
	Min         any      `yaml:"min"`
	Max         any      `yaml:"max"`
	MinItems    int      `yaml:"minItems"`
	MaxItems    int      `yaml:"maxItems"`
	Enum        []string `yaml:"enum"`
	Default     any      `yaml:"default"`
	Review      string   `yaml:"review"` // suspected schema authoring error, kept verbatim
	Description string   `yaml:"description"`
}

// RawChildDef references a sub-object from its parent.
type RawChildDef struct {
	Name            string `yaml:"name"`
	Object          string `yaml:"object"`          // path of the child object definition
	Field           string `yaml:"field"`           // Optional: Go field name, defaults to Name
	Singular        string `yaml:"singular"`        // Optional: name used by Add<Singular>, defaults to Name
	NumberOfEntries string `yaml:"numberOfEntries"` // counting parameter of the parent
}

// Name returns the schema element name of the object: the last path
// segment that is not an instance placeholder.
func (d *RawObjectDef) Name() string {
	segs := strings.Split(strings.TrimSuffix(d.Path, "."), ".")
	for i := len(segs) - 1; i >= 0; i-- {
		if segs[i] != "{i}" {
			return segs[i]
		}
	}
	return ""
}

// TypeName returns the Go type name of the object.
func (d *RawObjectDef) TypeName() string {
	if d.GoName != "" {
		return d.GoName
	}
	return d.Name()
}

// IsTable returns true if the object is a multi-instance table.
func (d *RawObjectDef) IsTable() bool {
	return strings.HasSuffix(strings.TrimSuffix(d.Path, "."), ".{i}")
}

// FieldName returns the Go field name of the parameter.
func (p *RawParameterDef) FieldName() string {
	if p.Field != "" {
		return p.Field
	}
	return p.Name
}

// FieldName returns the Go field name of the child.
func (c *RawChildDef) FieldName() string {
	if c.Field != "" {
		return c.Field
	}
	return c.Name
}

// SingularName returns the name used by the table's Add method.
func (c *RawChildDef) SingularName() string {
	if c.Singular != "" {
		return c.Singular
	}
	return c.Name
}

// ParseObjectDef parses an object definition from YAML bytes.
func ParseObjectDef(data []byte) (*RawObjectDef, error) {
	var def RawObjectDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing object def: %w", err)
	}
	if def.Path == "" {
		return nil, fmt.Errorf("object definition missing path")
	}
	for i, p := range def.Parameters {
		if p.Name == "" {
			return nil, fmt.Errorf("object %s: parameter %d missing name", def.Path, i)
		}
		if p.Type == "" {
			return nil, fmt.Errorf("object %s: parameter %s missing type", def.Path, p.Name)
		}
	}
	for i, c := range def.Children {
		if c.Name == "" || c.Object == "" {
			return nil, fmt.Errorf("object %s: child %d needs name and object", def.Path, i)
		}
	}
	return &def, nil
}

// LoadObjectDef loads and parses an object definition from a file.
func LoadObjectDef(path string) (*RawObjectDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseObjectDef(data)
}
