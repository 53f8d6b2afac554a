package model

import (
	"errors"
	"testing"
)

func TestAccess(t *testing.T) {
	tests := []struct {
		input    string
		want     Access
		canWrite bool
		str      string
	}{
		{"readOnly", AccessReadOnly, false, "R"},
		{"", AccessReadOnly, false, "R"},
		{"readWrite", AccessReadWrite, true, "RW"},
	}

	for _, tt := range tests {
		got, err := ParseAccess(tt.input)
		if err != nil {
			t.Fatalf("ParseAccess(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseAccess(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if got.CanWrite() != tt.canWrite {
			t.Errorf("%v.CanWrite() = %v, want %v", got, got.CanWrite(), tt.canWrite)
		}
		if got.String() != tt.str {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tt.str)
		}
	}

	if _, err := ParseAccess("writeOnly"); err == nil {
		t.Error("expected error for unknown access")
	}
}

func TestNotifyRoundTrip(t *testing.T) {
	for _, n := range []Notify{NotifyNone, NotifyAlways, NotifyDeniable, NotifyForced} {
		got, err := ParseNotify(n.String())
		if err != nil {
			t.Fatalf("ParseNotify(%q) failed: %v", n.String(), err)
		}
		if got != n {
			t.Errorf("ParseNotify(%q) = %v, want %v", n.String(), got, n)
		}
	}
}

func TestDataType(t *testing.T) {
	tests := []struct {
		name    string
		want    DataType
		xsd     string
		integer bool
	}{
		{"string", DataTypeString, "xsd:string", false},
		{"unsignedInt", DataTypeUnsignedInt, "xsd:unsignedInt", true},
		{"long", DataTypeLong, "xsd:long", true},
		{"boolean", DataTypeBoolean, "xsd:boolean", false},
		{"dateTime", DataTypeDateTime, "xsd:dateTime", false},
		{"hexBinary", DataTypeHexBinary, "xsd:hexBinary", false},
		{"MACAddress", DataTypeMACAddress, "xsd:string", false},
		{"IPv6Prefix", DataTypeIPv6Prefix, "xsd:string", false},
		{"StatsCounter64", DataTypeStatsCounter64, "xsd:unsignedLong", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDataType(tt.name)
			if err != nil {
				t.Fatalf("ParseDataType failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if got.String() != tt.name {
				t.Errorf("String() = %q, want %q", got.String(), tt.name)
			}
			if got.XSDType() != tt.xsd {
				t.Errorf("XSDType() = %q, want %q", got.XSDType(), tt.xsd)
			}
			if got.IsInteger() != tt.integer {
				t.Errorf("IsInteger() = %v, want %v", got.IsInteger(), tt.integer)
			}
		})
	}

	if _, err := ParseDataType("unknown"); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestParameterMetadata(t *testing.T) {
	p := &ParameterMetadata{
		Name:      "Status",
		Type:      DataTypeString,
		Access:    AccessReadOnly,
		MaxLength: 64,
		Enum:      []string{"Disabled", "Enabled", "Error"},
	}

	if !p.HasEnum("Enabled") {
		t.Error("expected Enabled to be allowed")
	}
	if p.HasEnum("Up") {
		t.Error("expected Up to be rejected")
	}
	if got := p.Signature(); got != "string(64) R" {
		t.Errorf("Signature() = %q", got)
	}

	free := &ParameterMetadata{Name: "Alias", Type: DataTypeString}
	if !free.HasEnum("anything") {
		t.Error("parameters without enumeration accept any value")
	}
}

func TestPathTemplates(t *testing.T) {
	tmpl := "STBService.{i}.AVStreams.AVStream.{i}"

	t.Run("InstanceCount", func(t *testing.T) {
		if n := InstanceCount(tmpl); n != 2 {
			t.Errorf("InstanceCount = %d, want 2", n)
		}
	})

	t.Run("Resolve", func(t *testing.T) {
		if got := Resolve(tmpl, 1, 3); got != "STBService.1.AVStreams.AVStream.3" {
			t.Errorf("Resolve = %q", got)
		}
		partial := Resolve(tmpl, 2)
		if partial != "STBService.2.AVStreams.AVStream.{i}" {
			t.Errorf("partial Resolve = %q", partial)
		}
		if IsResolved(partial) {
			t.Error("partial path reported as resolved")
		}
	})

	t.Run("TemplateOf", func(t *testing.T) {
		if got := TemplateOf("STBService.1.AVStreams.AVStream.12."); got != tmpl {
			t.Errorf("TemplateOf = %q", got)
		}
	})

	t.Run("Indices", func(t *testing.T) {
		idx, err := Indices(tmpl, "STBService.4.AVStreams.AVStream.2")
		if err != nil {
			t.Fatalf("Indices failed: %v", err)
		}
		if len(idx) != 2 || idx[0] != 4 || idx[1] != 2 {
			t.Errorf("Indices = %v", idx)
		}

		if _, err := Indices(tmpl, "STBService.0.AVStreams.AVStream.2"); !errors.Is(err, ErrBadInstance) {
			t.Errorf("expected ErrBadInstance, got %v", err)
		}
		if Matches(tmpl, "STBService.1.Components") {
			t.Error("unexpected match")
		}
	})

	t.Run("IsTableTemplate", func(t *testing.T) {
		if !IsTableTemplate("Device.QoS.Queue.{i}") {
			t.Error("expected table")
		}
		if IsTableTemplate("Device.DNS.Client") {
			t.Error("expected singleton")
		}
	})

	t.Run("Join", func(t *testing.T) {
		if got := Join("Device.", "", "DNS.Client"); got != "Device.DNS.Client" {
			t.Errorf("Join = %q", got)
		}
	})
}

type fakeObject struct{}

var fakeMeta = &ObjectMetadata{
	Path:  "Test.Fake.{i}",
	Name:  "Fake",
	Model: "TEST",
	Parameters: []*ParameterMetadata{
		{Name: "Alias", Field: "Alias", Type: DataTypeString},
	},
	Children: []*ChildMetadata{
		{Name: "Stats", Field: "Stats", Path: "Test.Fake.{i}.Stats"},
	},
	Unique: [][]string{{"Alias"}},
}

func (*fakeObject) ObjectMetadata() *ObjectMetadata { return fakeMeta }

func TestRegistry(t *testing.T) {
	Register(fakeMeta, func() Object { return &fakeObject{} })

	meta, ok := Lookup("Test.Fake.7")
	if !ok {
		t.Fatal("Lookup by concrete path failed")
	}
	if meta != fakeMeta {
		t.Error("Lookup returned different metadata")
	}
	if !meta.IsTable() {
		t.Error("expected table object")
	}
	if _, ok := meta.Parameter("Alias"); !ok {
		t.Error("Parameter(Alias) not found")
	}
	if _, ok := meta.Child("Stats"); !ok {
		t.Error("Child(Stats) not found")
	}

	obj, err := New("Test.Fake.{i}")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if obj.ObjectMetadata() != fakeMeta {
		t.Error("factory returned wrong type")
	}

	if _, err := New("Test.Missing"); !errors.Is(err, ErrUnknownObject) {
		t.Errorf("expected ErrUnknownObject, got %v", err)
	}

	found := false
	for _, m := range Registered() {
		if m == fakeMeta {
			found = true
		}
	}
	if !found {
		t.Error("Registered() does not list the fake object")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(fakeMeta, func() Object { return &fakeObject{} })
}

func TestOptionalHelpers(t *testing.T) {
	var unset *int64
	if _, ok := Get(unset); ok {
		t.Error("Get(nil) reported present")
	}

	p := Ptr(int64(0))
	v, ok := Get(p)
	if !ok || v != 0 {
		t.Errorf("Get(Ptr(0)) = %d, %v", v, ok)
	}
}
