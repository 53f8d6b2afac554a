package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwmp-model/cwmp-go/pkg/specparse"
)

// dnsModel returns a small TR-181 model with a singleton parent and a table.
func dnsModel() *specparse.RawModel {
	return &specparse.RawModel{
		Def: &specparse.RawModelDef{Name: "TR-181", Version: "2.11", Root: "Device"},
		Objects: []*specparse.RawObjectDef{
			{
				Path:        "Device.DNS.Client",
				GoName:      "DNSClient",
				Description: "Client properties for Domain Name Service (DNS).",
				Parameters: []specparse.RawParameterDef{
					{Name: "Enable", Type: "boolean", Access: "readWrite", Default: false},
					{Name: "Status", Type: "string", Enum: []string{"Disabled", "Enabled", "Error"}},
					{Name: "ServerNumberOfEntries", Type: "unsignedInt"},
				},
				Children: []specparse.RawChildDef{
					{Name: "Server", Object: "Device.DNS.Client.Server.{i}", NumberOfEntries: "ServerNumberOfEntries"},
				},
			},
			{
				Path:   "Device.DNS.Client.Server.{i}",
				GoName: "DNSClientServer",
				Access: "readWrite",
				Parameters: []specparse.RawParameterDef{
					{Name: "Alias", Type: "string", Access: "readWrite", MaxLength: 64},
					{Name: "DNSServer", Type: "IPAddress", Access: "readWrite", Notify: "canDeny"},
					{Name: "Type", Type: "string", Enum: []string{"DHCPv4", "Static"}, Default: "Static"},
					{Name: "Weights", Type: "unsignedInt", List: true, Max: 100, MaxItems: 8},
					{Name: "DUID", Type: "hexBinary", MaxLength: 130},
					{Name: "Timeout", Type: "int", Min: -1, Default: -1, Unit: "seconds"},
				},
				Unique: [][]string{{"DNSServer"}, {"Alias"}},
			},
		},
	}
}

func generateObject(t *testing.T, m *specparse.RawModel, path string) string {
	t.Helper()
	def, ok := m.Object(path)
	if !ok {
		t.Fatalf("object %s not in model", path)
	}
	output, err := GenerateObject(m, def)
	if err != nil {
		t.Fatalf("GenerateObject failed: %v", err)
	}
	return output
}

func TestGenerateHeader(t *testing.T) {
	output := generateObject(t, dnsModel(), "Device.DNS.Client")

	mustContain(t, output, "// Code generated by cwmp-objgen. DO NOT EDIT.")
	mustContain(t, output, "package tr181")
	mustContain(t, output, `"github.com/cwmp-model/cwmp-go/pkg/model"`)
}

func TestGenerateImports(t *testing.T) {
	client := generateObject(t, dnsModel(), "Device.DNS.Client")
	mustContain(t, client, "import \"github.com/cwmp-model/cwmp-go/pkg/model\"\n")
	if strings.Contains(client, "pkg/types") {
		t.Error("object without typed values must not import pkg/types")
	}

	server := generateObject(t, dnsModel(), "Device.DNS.Client.Server.{i}")
	mustContain(t, server, "import (\n\t\"github.com/cwmp-model/cwmp-go/pkg/model\"\n\t\"github.com/cwmp-model/cwmp-go/pkg/types\"\n)")
}

// TestGeneratedTreeUpToDate regenerates every model and compares the
// result with the committed packages and parameter index.
func TestGeneratedTreeUpToDate(t *testing.T) {
	root := filepath.Join("..", "..")
	out := t.TempDir()
	manifest := filepath.Join(out, "parameter-index.yaml")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := run(logger, filepath.Join(root, "docs", "objects"), out, manifest); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	generated, err := filepath.Glob(filepath.Join(out, "*", "*_gen.go"))
	if err != nil {
		t.Fatal(err)
	}
	if len(generated) == 0 {
		t.Fatal("no files generated")
	}

	pairs := map[string]string{manifest: filepath.Join(root, "docs", "parameter-index.yaml")}
	for _, g := range generated {
		rel, _ := filepath.Rel(out, g)
		pairs[g] = filepath.Join(root, "pkg", "objects", rel)
	}

	for got, want := range pairs {
		gotData, err := os.ReadFile(got)
		if err != nil {
			t.Fatal(err)
		}
		wantData, err := os.ReadFile(want)
		if err != nil {
			t.Errorf("%s: %v", want, err)
			continue
		}
		if !bytes.Equal(gotData, wantData) {
			t.Errorf("%s is out of date; run go generate ./pkg/objects", want)
		}
	}

	committed, _ := filepath.Glob(filepath.Join(root, "pkg", "objects", "*", "*_gen.go"))
	if len(committed) != len(generated) {
		t.Errorf("committed %d generated files, generator produces %d", len(committed), len(generated))
	}
}

func TestGenerateEnum(t *testing.T) {
	output := generateObject(t, dnsModel(), "Device.DNS.Client")

	mustContain(t, output, "// DNSClientStatus is an enumerated value of Device.DNS.Client.Status.")
	mustContain(t, output, "type DNSClientStatus string")
	mustContain(t, output, `DNSClientStatusDisabled DNSClientStatus = "Disabled"`)
	mustContain(t, output, `DNSClientStatusError DNSClientStatus = "Error"`)
}

func TestGenerateStruct(t *testing.T) {
	output := generateObject(t, dnsModel(), "Device.DNS.Client")

	mustContain(t, output, "// DNSClient represents Device.DNS.Client.")
	mustContain(t, output, "// Client properties for Domain Name Service (DNS).")
	mustContain(t, output, "type DNSClient struct {")
	mustContain(t, output, "Enable *bool `xml:\"Enable,omitempty\" json:\"Enable,omitempty\"`")
	mustContain(t, output, "Status *DNSClientStatus `xml:\"Status,omitempty\"")
	mustContain(t, output, "ServerNumberOfEntries *int64 `xml:\"ServerNumberOfEntries,omitempty\"")
	mustContain(t, output, "Server []*DNSClientServer `xml:\"Server,omitempty\" json:\"Server,omitempty\"`")
}

func TestGenerateFieldTypes(t *testing.T) {
	output := generateObject(t, dnsModel(), "Device.DNS.Client.Server.{i}")

	mustContain(t, output, "DNSServer *types.IPAddress `")
	mustContain(t, output, "Weights []int64 `")
	mustContain(t, output, "DUID types.HexBinary `")
	mustContain(t, output, "Type *DNSClientServerType `")
}

func TestGenerateMetadata(t *testing.T) {
	output := generateObject(t, dnsModel(), "Device.DNS.Client.Server.{i}")

	mustContain(t, output, "var metaDNSClientServer = &model.ObjectMetadata{")
	mustContain(t, output, `Path: "Device.DNS.Client.Server.{i}",`)
	mustContain(t, output, `Name: "Server",`)
	mustContain(t, output, `Model: "TR-181",`)
	mustContain(t, output, "Access: model.AccessReadWrite,")
	mustContain(t, output, "Type: model.DataTypeIPAddress,")
	mustContain(t, output, "Notify: model.NotifyDeniable,")
	mustContain(t, output, "MaxLength: 64,")
	mustContain(t, output, "MaxLength: 130,")
	mustContain(t, output, "List: true,")
	mustContain(t, output, "MaxValue: int64(100),")
	mustContain(t, output, "MinValue: int64(-1),")
	mustContain(t, output, "MaxItems: 8,")
	mustContain(t, output, `Enum: []string{"DHCPv4", "Static"},`)
	mustContain(t, output, `Default: "Static",`)
	mustContain(t, output, `Default: "-1",`)
	mustContain(t, output, `Unit: "seconds",`)
	mustContain(t, output, `Unique: [][]string{{"DNSServer"}, {"Alias"}},`)
}

func TestGenerateChildMetadata(t *testing.T) {
	output := generateObject(t, dnsModel(), "Device.DNS.Client")

	mustContain(t, output, `{Name: "Server", Field: "Server", Path: "Device.DNS.Client.Server.{i}", Table: true, NumberOfEntries: "ServerNumberOfEntries"},`)
	mustNotContain(t, output, "Unique:")
}

func TestGenerateConstructor(t *testing.T) {
	m := dnsModel()

	client := generateObject(t, m, "Device.DNS.Client")
	mustContain(t, client, "func NewDNSClient() *DNSClient {")
	mustContain(t, client, "Enable: model.Ptr(false),")

	server := generateObject(t, m, "Device.DNS.Client.Server.{i}")
	mustContain(t, server, "Type: model.Ptr(DNSClientServerTypeStatic),")
	mustContain(t, server, "Timeout: model.Ptr(int64(-1)),")
	mustContain(t, server, "func (*DNSClientServer) ObjectMetadata() *model.ObjectMetadata {")
}

func TestGenerateConstructorWithoutDefaults(t *testing.T) {
	m := &specparse.RawModel{
		Def: &specparse.RawModelDef{Name: "TR-181", Root: "Device"},
		Objects: []*specparse.RawObjectDef{{
			Path:       "Device.DeviceInfo.MemoryStatus",
			GoName:     "MemoryStatus",
			Parameters: []specparse.RawParameterDef{{Name: "Total", Type: "unsignedInt"}},
		}},
	}
	output := generateObject(t, m, "Device.DeviceInfo.MemoryStatus")

	mustContain(t, output, "return &MemoryStatus{}")
}

func TestGenerateAccessors(t *testing.T) {
	output := generateObject(t, dnsModel(), "Device.DNS.Client.Server.{i}")

	// Scalar
	mustContain(t, output, "func (d *DNSClientServer) GetAlias() (string, bool) {")
	mustContain(t, output, "return model.Get(d.Alias)")
	mustContain(t, output, "func (d *DNSClientServer) SetAlias(v string) {")
	mustContain(t, output, "func (d *DNSClientServer) WithAlias(v string) *DNSClientServer {")

	// List
	mustContain(t, output, "func (d *DNSClientServer) GetWeights() []int64 {")
	mustContain(t, output, "func (d *DNSClientServer) WithWeights(v ...int64) *DNSClientServer {")

	// Byte sequence
	mustContain(t, output, "func (d *DNSClientServer) GetDUID() (types.HexBinary, bool) {")
	mustContain(t, output, "return d.DUID, d.DUID != nil")
}

func TestGenerateChildren(t *testing.T) {
	m := dnsModel()
	m.Objects = append(m.Objects, &specparse.RawObjectDef{
		Path:   "Device.DNS.Client.Stats",
		GoName: "DNSClientStats",
	})
	m.Objects[0].Children = append(m.Objects[0].Children, specparse.RawChildDef{
		Name: "Stats", Object: "Device.DNS.Client.Stats",
	})
	output := generateObject(t, m, "Device.DNS.Client")

	// Table
	mustContain(t, output, "func (d *DNSClient) GetServer() []*DNSClientServer {")
	mustContain(t, output, "d.Server = []*DNSClientServer{}")
	mustContain(t, output, "func (d *DNSClient) AddServer(v *DNSClientServer) *DNSClient {")
	mustContain(t, output, "d.Server = append(d.Server, v)")

	// Singleton
	mustContain(t, output, "func (d *DNSClient) GetStats() *DNSClientStats {")
	mustContain(t, output, "d.Stats = NewDNSClientStats()")
	mustContain(t, output, "func (d *DNSClient) WithStats(v *DNSClientStats) *DNSClient {")
}

func TestGenerateReviewNote(t *testing.T) {
	m := &specparse.RawModel{
		Def: &specparse.RawModelDef{Name: "TR-181", Root: "Device"},
		Objects: []*specparse.RawObjectDef{{
			Path:   "Device.QoS.Queue.{i}",
			GoName: "QoSQueue",
			Parameters: []specparse.RawParameterDef{
				{Name: "TrafficClasses", Type: "unsignedInt", Review: "list semantics, scalar type"},
			},
		}},
	}
	output := generateObject(t, m, "Device.QoS.Queue.{i}")

	mustContain(t, output, `Review: "list semantics, scalar type",`)
	mustContain(t, output, "TrafficClasses *int64 `")
}

func TestGenerateRegistry(t *testing.T) {
	output, err := GenerateRegistry(dnsModel())
	if err != nil {
		t.Fatalf("GenerateRegistry failed: %v", err)
	}

	mustContain(t, output, "// Code generated by cwmp-objgen. DO NOT EDIT.")
	mustContain(t, output, "package tr181")
	mustContain(t, output, `const Model = "TR-181"`)
	mustContain(t, output, `const Version = "2.11"`)
	mustContain(t, output, "model.Register(metaDNSClient, func() model.Object { return NewDNSClient() })")
	mustContain(t, output, "model.Register(metaDNSClientServer, func() model.Object { return NewDNSClientServer() })")
}

func TestGoValueType(t *testing.T) {
	tests := []struct {
		schema string
		want   string
	}{
		{"string", "string"},
		{"unsignedInt", "int64"},
		{"long", "int64"},
		{"unsignedLong", "uint64"},
		{"boolean", "bool"},
		{"dateTime", "types.DateTime"},
		{"base64", "types.Base64"},
		{"MACAddress", "types.MACAddress"},
		{"IPv6Prefix", "types.IPv6Prefix"},
		{"StatsCounter64", "types.StatsCounter64"},
		{"UUID", "types.UUID"},
	}
	for _, tt := range tests {
		t.Run(tt.schema, func(t *testing.T) {
			p := &specparse.RawParameterDef{Name: "X", Type: tt.schema}
			pd, err := buildParamData("T", p)
			if err != nil {
				t.Fatalf("buildParamData failed: %v", err)
			}
			if pd.ElemType != tt.want {
				t.Errorf("ElemType = %q, want %q", pd.ElemType, tt.want)
			}
		})
	}
}

func TestComment(t *testing.T) {
	short := comment("Status of the device's physical memory.")
	if short != "// Status of the device's physical memory." {
		t.Errorf("comment = %q", short)
	}

	long := comment(strings.Repeat("word ", 40))
	for _, line := range strings.Split(long, "\n") {
		if len(line) > commentWidth {
			t.Errorf("line too long (%d): %q", len(line), line)
		}
		if !strings.HasPrefix(line, "// ") {
			t.Errorf("line without comment prefix: %q", line)
		}
	}
}

func TestRecvName(t *testing.T) {
	if got := recvName("DNSClient"); got != "d" {
		t.Errorf("recvName(DNSClient) = %q", got)
	}
	if got := recvName("VoiceProfile"); got != "o" {
		t.Errorf("recvName(VoiceProfile) = %q, want o", got)
	}
}

func mustContain(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Errorf("output does not contain %q\nOutput (first 3000 chars):\n%s", substr, truncate(output, 3000))
	}
}

func mustNotContain(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Errorf("output should not contain %q", substr)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
