package commands

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-model/cwmp-go/pkg/log"
	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/objects/tr181"
	"github.com/cwmp-model/cwmp-go/pkg/objects/tr262"
	"github.com/cwmp-model/cwmp-go/pkg/types"
	"github.com/cwmp-model/cwmp-go/pkg/wire"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeDoc(t *testing.T, name string, f wire.Format, obj model.Object) string {
	t.Helper()
	data, err := wire.Marshal(f, obj)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestObjectsCmd(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&ObjectsCmd{Prefix: "Device.DNS"}).Run(&buf))
	out := buf.String()
	assert.Contains(t, out, "Device.DNS.Client ")
	assert.Contains(t, out, "Device.DNS.Client.Server.{i}")
	assert.NotContains(t, out, "Device.DeviceInfo")

	buf.Reset()
	require.NoError(t, (&ObjectsCmd{Models: true}).Run(&buf))
	assert.Contains(t, buf.String(), "TR-262")
	assert.Contains(t, buf.String(), "TR-098")

	buf.Reset()
	require.NoError(t, (&ObjectsCmd{Roots: true, Model: "TR-262"}).Run(&buf))
	assert.Contains(t, buf.String(), "FAP.PerfMgmt ")
	assert.NotContains(t, buf.String(), "FAP.PerfMgmt.Config")

	assert.Error(t, (&ObjectsCmd{Prefix: "Device.Nope"}).Run(io.Discard))
}

func TestDescribeCmd(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&DescribeCmd{Path: "Device.DNS.Client.Server.2"}).Run(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "Device.DNS.Client.Server.{i} [TR-181]"))
	assert.Contains(t, buf.String(), "enum=Disabled|Enabled|Error")

	err := (&DescribeCmd{Path: "Device.Unknown"}).Run(io.Discard)
	assert.ErrorIs(t, err, model.ErrUnknownObject)
}

func TestTemplateConvertFlatten(t *testing.T) {
	dir := t.TempDir()
	xmlPath := filepath.Join(dir, "perf.xml")
	cborPath := filepath.Join(dir, "perf.cbor")

	require.NoError(t, (&TemplateCmd{Path: "FAP.PerfMgmt", Format: "xml", Output: xmlPath}).Run(discard(), io.Discard))
	require.NoError(t, (&ConvertCmd{
		Document: Document{File: xmlPath, Object: "FAP.PerfMgmt"},
		To:       "cbor",
		Output:   cborPath,
	}).Run(discard(), io.Discard))

	var fromXML, fromCBOR bytes.Buffer
	require.NoError(t, (&FlattenCmd{Document: Document{File: xmlPath, Object: "FAP.PerfMgmt"}}).Run(&fromXML))
	require.NoError(t, (&FlattenCmd{Document: Document{File: cborPath, Object: "FAP.PerfMgmt"}}).Run(&fromCBOR))

	assert.Equal(t, fromXML.String(), fromCBOR.String())
	assert.Contains(t, fromXML.String(), "FAP.PerfMgmt.Config.1.PeriodicUploadInterval")
	assert.Contains(t, fromXML.String(), "FAP.PerfMgmt.ConfigNumberOfEntries")
}

func TestTemplateCmd_Defaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TemplateCmd{Path: "FAP.GPS", Format: "json", Defaults: true}).Run(discard(), &buf))
	assert.Contains(t, buf.String(), `"ScanOnBoot": true`)
	assert.NotContains(t, buf.String(), "LockedLatitude")

	assert.Error(t, (&TemplateCmd{Path: "FAP.GPS", Format: "yaml"}).Run(discard(), io.Discard))
}

func TestFlattenCmd_ConcreteRoot(t *testing.T) {
	srv := tr181.NewDNSClientServer().WithAlias("cpe-3")
	path := writeDoc(t, "server.json", wire.FormatJSON, srv)

	var buf bytes.Buffer
	require.NoError(t, (&FlattenCmd{
		Document: Document{File: path, Object: "Device.DNS.Client.Server.3"},
		Metadata: true,
	}).Run(&buf))
	assert.Contains(t, buf.String(), "Device.DNS.Client.Server.3.Alias")
	assert.Contains(t, buf.String(), "string(64) RW")
}

func TestValidateCmd(t *testing.T) {
	at := types.NewDateTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	dup := func(user string) *tr262.PerfMgmtConfig {
		return tr262.NewPerfMgmtConfig().
			WithURL("https://pm.example.net").
			WithPeriodicUploadInterval(60).
			WithPeriodicUploadTime(at).
			WithUsername(user)
	}
	pm := tr262.NewPerfMgmt().AddConfig(dup("a")).AddConfig(dup("b")).WithConfigNumberOfEntries(2)
	path := writeDoc(t, "perf.cbor", wire.FormatCBOR, pm)

	var buf bytes.Buffer
	err := (&ValidateCmd{Document: Document{File: path, Object: "FAP.PerfMgmt"}}).Run(discard(), &buf)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	assert.Contains(t, buf.String(), "unique_violation")
	assert.Contains(t, buf.String(), "FAP.PerfMgmt.Config.2")

	pm.GetConfig()[1].WithURL("https://backup.example.net")
	path = writeDoc(t, "perf.cbor", wire.FormatCBOR, pm)
	buf.Reset()
	require.NoError(t, (&ValidateCmd{Document: Document{File: path, Object: "FAP.PerfMgmt"}}).Run(discard(), &buf))
	assert.Equal(t, "OK\n", buf.String())
}

func TestValidateCmd_Before(t *testing.T) {
	before := writeDoc(t, "before.xml", wire.FormatXML, tr181.NewDNSClient())
	after := writeDoc(t, "after.xml", wire.FormatXML, tr181.NewDNSClient().WithStatus(tr181.DNSClientStatusEnabled))

	var buf bytes.Buffer
	err := (&ValidateCmd{
		Document: Document{File: after, Object: "Device.DNS.Client"},
		Before:   before,
		JSON:     true,
	}).Run(discard(), &buf)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	assert.Contains(t, buf.String(), `"code": "readonly_field"`)
	assert.Contains(t, buf.String(), `"path": "Device.DNS.Client.Status"`)
}

func TestDocumentFormat(t *testing.T) {
	path := writeDoc(t, "client.data", wire.FormatJSON, tr181.NewDNSClient())

	_, _, err := (&Document{File: path, Object: "Device.DNS.Client"}).load()
	assert.ErrorIs(t, err, wire.ErrUnknownFormat)

	obj, _, err := (&Document{File: path, Object: "Device.DNS.Client", Format: "json"}).load()
	require.NoError(t, err)
	assert.IsType(t, &tr181.DNSClient{}, obj)
}

func TestRootIndices(t *testing.T) {
	assert.Empty(t, rootIndices("Device.DNS.Client"))
	assert.Equal(t, []int{3}, rootIndices("Device.DNS.Client.Server.3."))
	assert.Equal(t, []int{1, 2}, rootIndices("VoiceService.{i}.VoiceProfile.2"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("warn", &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func writeLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edit.clog")
	fl, err := log.NewFileLogger(path)
	require.NoError(t, err)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	fl.Log(log.Event{Timestamp: base, SessionID: "aaaaaaaa-1111", Kind: log.KindLoad, Path: "Device.DeviceInfo", Message: "info.xml"})
	fl.Log(log.Event{
		Timestamp: base.Add(time.Second), SessionID: "aaaaaaaa-1111", Kind: log.KindValueChange,
		Path: "Device.DeviceInfo.ProvisioningCode", Object: "Device.DeviceInfo",
		NewValue: log.Value("ABC"), Notify: model.NotifyForced,
	})
	fl.Log(log.Event{
		Timestamp: base.Add(2 * time.Second), SessionID: "bbbbbbbb-2222", Kind: log.KindValueChange,
		Path: "Device.DNS.Client.Enable", Object: "Device.DNS.Client",
		OldValue: log.Value("false"), NewValue: log.Value("true"),
	})
	require.NoError(t, fl.Close())
	return path
}

func TestLogCmd(t *testing.T) {
	path := writeLog(t)

	tests := []struct {
		name     string
		cmd      LogCmd
		contains []string
		excludes []string
	}{
		{
			name:     "all",
			cmd:      LogCmd{},
			contains: []string{"LOAD", "Device.DeviceInfo.ProvisioningCode", `"false" -> "true"`},
		},
		{
			name:     "by kind",
			cmd:      LogCmd{Kind: "value"},
			contains: []string{"(absent) -> \"ABC\"", "Notify: forceEnabled"},
			excludes: []string{"LOAD"},
		},
		{
			name:     "by path",
			cmd:      LogCmd{Path: "Device.DNS"},
			contains: []string{"Device.DNS.Client.Enable"},
			excludes: []string{"ProvisioningCode"},
		},
		{
			name:     "notifiable",
			cmd:      LogCmd{Notifiable: true},
			contains: []string{"ProvisioningCode"},
			excludes: []string{"Device.DNS.Client.Enable", "LOAD"},
		},
		{
			name:     "since",
			cmd:      LogCmd{Since: time.Date(2024, 5, 1, 12, 0, 2, 0, time.UTC)},
			contains: []string{"[sess:bbbbbbbb]"},
			excludes: []string{"[sess:aaaaaaaa]"},
		},
		{
			name:     "stats",
			cmd:      LogCmd{Stats: true},
			contains: []string{"Events:     3", "Notifiable: 1", "VALUE    2", "aaaaaaaa 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.cmd
			cmd.File = path
			var buf bytes.Buffer
			require.NoError(t, cmd.Run(&buf))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestLogCmd_TruncatedTail(t *testing.T) {
	path := writeLog(t)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data[:len(data)-3], 0o644))

	var buf bytes.Buffer
	require.NoError(t, (&LogCmd{File: path}).Run(&buf))
	assert.Contains(t, buf.String(), "Device.DeviceInfo.ProvisioningCode")
	assert.NotContains(t, buf.String(), "Device.DNS.Client.Enable")
	assert.Contains(t, buf.String(), "truncated record")
}

func TestLogCmd_BadFilter(t *testing.T) {
	path := writeLog(t)
	assert.Error(t, (&LogCmd{File: path, Kind: "bogus"}).Run(io.Discard))
	assert.Error(t, (&LogCmd{File: path, Notify: "sometimes"}).Run(io.Discard))
}
