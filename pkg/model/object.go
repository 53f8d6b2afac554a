package model

// Object is implemented by every generated data-model type.
type Object interface {
	// ObjectMetadata returns the shared schema description of the type.
	ObjectMetadata() *ObjectMetadata
}

// ChildMetadata describes a sub-object reference held by a parent.
type ChildMetadata struct {
	// Name is the schema element name of the child.
	Name string

	// Field is the Go struct field holding the child or table.
	Field string

	// Path is the child object's path template.
	Path string

	// Table indicates a multi-instance child held as an ordered slice.
	Table bool

	// NumberOfEntries names the parent parameter counting table instances.
	NumberOfEntries string
}

// ObjectMetadata describes an object type.
type ObjectMetadata struct {
	// Path is the object path template (e.g. "Device.DNS.Client.Server.{i}").
	Path string

	// Name is the schema element name of the object (last path segment).
	Name string

	// Model identifies the governing data model (e.g. "TR-181").
	Model string

	// Access defines whether the ACS may add and delete table instances.
	Access Access

	// Parameters in schema order.
	Parameters []*ParameterMetadata

	// Children in schema order.
	Children []*ChildMetadata

	// Unique lists parameter sets whose combined values identify a table row.
	Unique [][]string

	// Description is a human-readable description.
	Description string
}

// IsTable returns true for multi-instance objects.
func (m *ObjectMetadata) IsTable() bool {
	return IsTableTemplate(m.Path)
}

// Parameter returns the parameter with the given schema name.
func (m *ObjectMetadata) Parameter(name string) (*ParameterMetadata, bool) {
	for _, p := range m.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Child returns the child with the given schema name.
func (m *ObjectMetadata) Child(name string) (*ChildMetadata, bool) {
	for _, c := range m.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// ParameterNames returns the schema names of all parameters in order.
func (m *ObjectMetadata) ParameterNames() []string {
	names := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		names[i] = p.Name
	}
	return names
}
