package model

import (
	"fmt"
	"strings"
)

// Access describes whether a parameter or table may be modified by the ACS.
type Access uint8

const (
	// AccessReadOnly parameters are reported by the CPE only.
	AccessReadOnly Access = iota

	// AccessReadWrite parameters may be set by the ACS.
	AccessReadWrite
)

// CanWrite returns true if the ACS may write the value.
func (a Access) CanWrite() bool { return a == AccessReadWrite }

// String returns the access as "R" or "RW".
func (a Access) String() string {
	if a.CanWrite() {
		return "RW"
	}
	return "R"
}

// ParseAccess parses the schema access keyword ("readOnly", "readWrite").
func ParseAccess(s string) (Access, error) {
	switch s {
	case "", "readOnly":
		return AccessReadOnly, nil
	case "readWrite":
		return AccessReadWrite, nil
	default:
		return AccessReadOnly, fmt.Errorf("unknown access %q", s)
	}
}

// Notify is the active-notification policy of a parameter.
type Notify uint8

const (
	// NotifyNone means the ACS may enable notification but nothing is required.
	NotifyNone Notify = iota

	// NotifyAlways means a value change is always reported to the ACS.
	NotifyAlways

	// NotifyDeniable means the CPE may refuse an ACS request for active notification.
	NotifyDeniable

	// NotifyForced means active notification is always on and cannot be turned off.
	NotifyForced
)

// String returns the schema keyword for the policy.
func (n Notify) String() string {
	switch n {
	case NotifyAlways:
		return "always"
	case NotifyDeniable:
		return "canDeny"
	case NotifyForced:
		return "forceEnabled"
	default:
		return "normal"
	}
}

// ParseNotify parses a schema notification keyword.
func ParseNotify(s string) (Notify, error) {
	switch s {
	case "", "normal":
		return NotifyNone, nil
	case "always":
		return NotifyAlways, nil
	case "canDeny":
		return NotifyDeniable, nil
	case "forceEnabled":
		return NotifyForced, nil
	default:
		return NotifyNone, fmt.Errorf("unknown notify policy %q", s)
	}
}

// DataType is the schema type of a parameter value.
type DataType uint8

const (
	DataTypeUnknown DataType = iota
	DataTypeString
	DataTypeInt
	DataTypeUnsignedInt
	DataTypeLong
	DataTypeUnsignedLong
	DataTypeBoolean
	DataTypeDateTime
	DataTypeBase64
	DataTypeHexBinary
	DataTypeMACAddress
	DataTypeIPAddress
	DataTypeIPv4Address
	DataTypeIPv6Address
	DataTypeIPPrefix
	DataTypeIPv6Prefix
	DataTypeStatsCounter32
	DataTypeStatsCounter64
	DataTypeUUID
)

var dataTypeNames = []string{
	"unknown", "string", "int", "unsignedInt", "long", "unsignedLong",
	"boolean", "dateTime", "base64", "hexBinary", "MACAddress",
	"IPAddress", "IPv4Address", "IPv6Address", "IPPrefix", "IPv6Prefix",
	"StatsCounter32", "StatsCounter64", "UUID",
}

// String returns the schema type name.
func (d DataType) String() string {
	if int(d) < len(dataTypeNames) {
		return dataTypeNames[d]
	}
	return "unknown"
}

// ParseDataType parses a schema type name.
func ParseDataType(s string) (DataType, error) {
	for i, name := range dataTypeNames {
		if i > 0 && name == s {
			return DataType(i), nil
		}
	}
	return DataTypeUnknown, fmt.Errorf("unknown data type %q", s)
}

// XSDType returns the type announced in CWMP parameter value listings.
// Named data types are carried with their base type.
func (d DataType) XSDType() string {
	switch d {
	case DataTypeInt, DataTypeUnsignedInt, DataTypeLong, DataTypeUnsignedLong,
		DataTypeBoolean, DataTypeDateTime, DataTypeBase64, DataTypeHexBinary:
		return "xsd:" + d.String()
	case DataTypeStatsCounter32:
		return "xsd:unsignedInt"
	case DataTypeStatsCounter64:
		return "xsd:unsignedLong"
	default:
		return "xsd:string"
	}
}

// IsInteger returns true for the integer and counter types.
func (d DataType) IsInteger() bool {
	switch d {
	case DataTypeInt, DataTypeUnsignedInt, DataTypeLong, DataTypeUnsignedLong,
		DataTypeStatsCounter32, DataTypeStatsCounter64:
		return true
	default:
		return false
	}
}

// IsUnsigned returns true for types that cannot hold negative values.
func (d DataType) IsUnsigned() bool {
	switch d {
	case DataTypeUnsignedInt, DataTypeUnsignedLong, DataTypeStatsCounter32, DataTypeStatsCounter64:
		return true
	default:
		return false
	}
}

// IsBinary returns true for byte-sequence types.
func (d DataType) IsBinary() bool {
	return d == DataTypeBase64 || d == DataTypeHexBinary
}

// ParameterMetadata describes one parameter of an object.
type ParameterMetadata struct {
	// Name is the schema element name, preserved verbatim on the wire.
	Name string

	// Field is the Go struct field holding the value.
	Field string

	// Type is the schema data type.
	Type DataType

	// List indicates a list-valued parameter.
	List bool

	// Access defines whether the ACS may write the value.
	Access Access

	// Notify is the active-notification policy.
	Notify Notify

	// Unit is the unit label (e.g. "seconds", "KiB").
	Unit string

	// MinLength and MaxLength bound string length or byte count.
	// A zero MaxLength means no bound; negative values are kept as declared.
	MinLength int
	MaxLength int

	// MinValue and MaxValue bound numeric values (int64 or uint64).
	MinValue any
	MaxValue any

	// MinItems and MaxItems bound the number of list items.
	MinItems int
	MaxItems int

	// Enum lists the allowed values of an enumerated string.
	Enum []string

	// Default is the textual form of the schema default; empty when none
	// is declared. Constructors pre-populate the field with it.
	Default string

	// Review records a suspected schema authoring error to be confirmed
	// against the governing data model before changing the type.
	Review string

	// Description is a human-readable description.
	Description string
}

// HasEnum reports whether v is an allowed enumeration value.
// Parameters without an enumeration accept any value.
func (p *ParameterMetadata) HasEnum(v string) bool {
	if len(p.Enum) == 0 {
		return true
	}
	for _, e := range p.Enum {
		if e == v {
			return true
		}
	}
	return false
}

// Signature returns a compact description such as "string(256) RW".
func (p *ParameterMetadata) Signature() string {
	var sb strings.Builder
	sb.WriteString(p.Type.String())
	if p.MaxLength != 0 {
		fmt.Fprintf(&sb, "(%d)", p.MaxLength)
	}
	if p.List {
		sb.WriteString("[]")
	}
	sb.WriteByte(' ')
	sb.WriteString(p.Access.String())
	return sb.String()
}
