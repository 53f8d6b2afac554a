package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/cwmp-model/cwmp-go/pkg/model"
)

func logJSON(t *testing.T, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	NewSlogAdapter(slog.New(handler)).Log(event)

	if buf.Len() == 0 {
		t.Fatal("no output produced")
	}
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	return entry
}

func TestSlogAdapterLogsValueChange(t *testing.T) {
	entry := logJSON(t, Event{
		Timestamp: time.Now(),
		SessionID: "session-1",
		Kind:      KindValueChange,
		Path:      "Device.DNS.Client.Enable",
		Object:    "Device.DNS.Client",
		OldValue:  Value("false"),
		NewValue:  Value("true"),
	})

	checks := map[string]any{
		"session": "session-1",
		"kind":    "VALUE",
		"path":    "Device.DNS.Client.Enable",
		"object":  "Device.DNS.Client",
		"old":     "false",
		"new":     "true",
		"notify":  "normal",
		"level":   "DEBUG",
	}
	for k, want := range checks {
		if entry[k] != want {
			t.Errorf("%s: got %v, want %v", k, entry[k], want)
		}
	}
	if _, ok := entry["internal"]; ok {
		t.Error("internal should be omitted for ACS changes")
	}
}

func TestSlogAdapterLevels(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"notifiable change", Event{Kind: KindValueChange, Notify: model.NotifyForced}, "INFO"},
		{"error", Event{Kind: KindError, Message: "boom"}, "WARN"},
		{"load", Event{Kind: KindLoad}, "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := logJSON(t, tt.event)["level"]; got != tt.want {
				t.Errorf("level = %v, want %s", got, tt.want)
			}
		})
	}
}

func TestSlogAdapterLogsInstanceAdded(t *testing.T) {
	entry := logJSON(t, Event{Kind: KindInstanceAdded, Path: "Device.DNS.Client.Server.2", NewValue: Value("2")})
	if entry["instance"] != "2" {
		t.Errorf("instance: got %v", entry["instance"])
	}
}

func TestSlogAdapterInterfaceSatisfaction(t *testing.T) {
	var _ Logger = NewSlogAdapter(slog.Default())
}
