package log

import (
	"testing"
	"time"

	"github.com/cwmp-model/cwmp-go/pkg/model"
)

func TestEventRoundTrip(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 123456789, time.UTC)
	in := Event{
		Timestamp: ts,
		SessionID: "7b0f7c57-7b55-4b7c-9d0e-2a3f8d1f0c11",
		Kind:      KindValueChange,
		Path:      "Device.DNS.Client.Server.1.Alias",
		Object:    "Device.DNS.Client.Server.{i}",
		OldValue:  Value("old"),
		NewValue:  Value("new"),
		Notify:    model.NotifyDeniable,
		Internal:  true,
	}

	data, err := EncodeEvent(in)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	out, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !out.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v (nanoseconds must survive)", out.Timestamp, ts)
	}
	if out.SessionID != in.SessionID || out.Kind != in.Kind || out.Path != in.Path || out.Object != in.Object {
		t.Errorf("identity fields differ: %+v", out)
	}
	if out.OldValue == nil || *out.OldValue != "old" {
		t.Errorf("OldValue = %v", out.OldValue)
	}
	if out.NewValue == nil || *out.NewValue != "new" {
		t.Errorf("NewValue = %v", out.NewValue)
	}
	if out.Notify != model.NotifyDeniable || !out.Internal {
		t.Errorf("Notify/Internal = %v/%v", out.Notify, out.Internal)
	}
}

func TestEventRoundTripAbsentValues(t *testing.T) {
	data, err := EncodeEvent(Event{Timestamp: time.Now(), Kind: KindValueChange, NewValue: Value("")})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	out, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}
	if out.OldValue != nil {
		t.Errorf("OldValue = %q, want nil", *out.OldValue)
	}
	if out.NewValue == nil || *out.NewValue != "" {
		t.Errorf("empty NewValue must be kept distinct from absent, got %v", out.NewValue)
	}
}

func TestDecodeEventGarbage(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0x00}); err == nil {
		t.Error("expected error decoding garbage")
	}
}

func TestDecodeEventRejectsMalformedRecords(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "duplicate key", data: []byte{0xa2, 0x03, 0x01, 0x03, 0x02}},
		{name: "indefinite length", data: []byte{0xbf, 0x03, 0x01, 0xff}},
		{name: "invalid utf8", data: []byte{0xa1, 0x04, 0x62, 0xc3, 0x28}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeEvent(tt.data); err == nil {
				t.Error("expected decode error")
			}
		})
	}
}
