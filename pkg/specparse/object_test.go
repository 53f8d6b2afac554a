package specparse

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// docsDir returns the absolute path to docs/objects/ relative to this test file.
func docsDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "docs", "objects")
}

func TestParseObjectDef_Table(t *testing.T) {
	yaml := `
path: Device.DNS.Client.Server.{i}
goName: DNSClientServer
access: readWrite
description: "DNS server table"
parameters:
  - name: Enable
    type: boolean
    access: readWrite
    default: false
  - name: Alias
    type: string
    access: readWrite
    maxLength: 64
  - name: Type
    type: string
    enum: [DHCPv4, DHCPv6, RouterAdvertisement, IPCP, Static]
    default: Static
unique:
  - [Alias]
`
	def, err := ParseObjectDef([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseObjectDef failed: %v", err)
	}

	if def.Name() != "Server" {
		t.Errorf("Name() = %q, want Server", def.Name())
	}
	if def.TypeName() != "DNSClientServer" {
		t.Errorf("TypeName() = %q, want DNSClientServer", def.TypeName())
	}
	if !def.IsTable() {
		t.Error("IsTable() = false, want true")
	}
	if len(def.Parameters) != 3 {
		t.Fatalf("len(parameters) = %d, want 3", len(def.Parameters))
	}
	if def.Parameters[0].Default != false {
		t.Errorf("Enable default = %v, want false", def.Parameters[0].Default)
	}
	if def.Parameters[1].MaxLength != 64 {
		t.Errorf("Alias maxLength = %d, want 64", def.Parameters[1].MaxLength)
	}
	if len(def.Parameters[2].Enum) != 5 {
		t.Errorf("len(Type enum) = %d, want 5", len(def.Parameters[2].Enum))
	}
	if len(def.Unique) != 1 || def.Unique[0][0] != "Alias" {
		t.Errorf("unique = %v, want [[Alias]]", def.Unique)
	}
}

func TestParseObjectDef_Overrides(t *testing.T) {
	yaml := `
path: Device.IEEE1905.AL
parameters:
  - name: IEEE1905Id
    field: IEEE1905ID
    type: MACAddress
children:
  - name: Interface
    object: Device.IEEE1905.AL.Interface.{i}
    singular: Iface
`
	def, err := ParseObjectDef([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseObjectDef failed: %v", err)
	}
	if def.TypeName() != "AL" {
		t.Errorf("TypeName() = %q, want AL", def.TypeName())
	}
	if def.IsTable() {
		t.Error("IsTable() = true, want false")
	}
	if got := def.Parameters[0].FieldName(); got != "IEEE1905ID" {
		t.Errorf("FieldName() = %q, want IEEE1905ID", got)
	}
	c := def.Children[0]
	if c.FieldName() != "Interface" || c.SingularName() != "Iface" {
		t.Errorf("child names = %q/%q", c.FieldName(), c.SingularName())
	}
}

func TestParseObjectDef_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing path", "parameters: []"},
		{"parameter without type", "path: A.B\nparameters:\n  - name: X\n"},
		{"child without object", "path: A.B\nchildren:\n  - name: C\n"},
		{"bad yaml", "path: [unterminated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseObjectDef([]byte(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadModelDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("model.yaml", "name: TR-262\nroot: FAP\nversion: \"1.0\"\n")
	write("perfmgmt.yaml", "path: FAP.PerfMgmt\n")
	write("gps.yaml", "path: FAP.GPS\n")

	m, err := LoadModelDir(dir)
	if err != nil {
		t.Fatalf("LoadModelDir failed: %v", err)
	}
	if m.Def.PackageName() != "tr262" {
		t.Errorf("PackageName() = %q, want tr262", m.Def.PackageName())
	}
	if len(m.Objects) != 2 {
		t.Fatalf("len(objects) = %d, want 2", len(m.Objects))
	}
	if m.Objects[0].Path != "FAP.GPS" {
		t.Errorf("objects not sorted: first = %s", m.Objects[0].Path)
	}
	if _, ok := m.Object("FAP.PerfMgmt"); !ok {
		t.Error("Object(FAP.PerfMgmt) not found")
	}
}

func TestLoadModels_RealDefinitions(t *testing.T) {
	models, err := LoadModels(docsDir(t))
	if err != nil {
		t.Fatalf("LoadModels failed: %v", err)
	}

	want := map[string]bool{
		"TR-098": false, "TR-104": false, "TR-135": false,
		"TR-181": false, "TR-196": false, "TR-262": false,
	}
	for _, m := range models {
		want[m.Def.Name] = true
		if len(m.Objects) == 0 {
			t.Errorf("model %s has no objects", m.Def.Name)
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("model %s not loaded", name)
		}
	}
}
