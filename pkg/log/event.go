package log

import (
	"fmt"
	"strings"
	"time"

	"github.com/cwmp-model/cwmp-go/pkg/model"
)

// Event is one entry of the change log.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the editing session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Kind classifies the event.
	Kind Kind `cbor:"3,keyasint"`

	// Path is the concrete parameter or object path the event refers to.
	Path string `cbor:"4,keyasint,omitempty"`

	// Object is the path template of the affected object type.
	Object string `cbor:"5,keyasint,omitempty"`

	// OldValue is the textual value before a change; nil if it was absent.
	OldValue *string `cbor:"6,keyasint,omitempty"`

	// NewValue is the textual value after a change; nil if it was cleared.
	NewValue *string `cbor:"7,keyasint,omitempty"`

	// Notify is the notification policy of the changed parameter.
	Notify model.Notify `cbor:"8,keyasint,omitempty"`

	// Internal marks changes made by the device itself rather than the ACS.
	Internal bool `cbor:"9,keyasint,omitempty"`

	// Message carries free text (file names, validation summaries, errors).
	Message string `cbor:"10,keyasint,omitempty"`
}

// Notifiable returns true if the event is a value change the CPE must
// report to the ACS with an active notification.
func (e Event) Notifiable() bool {
	return e.Kind == KindValueChange &&
		(e.Notify == model.NotifyAlways || e.Notify == model.NotifyForced)
}

// Kind classifies an event.
type Kind uint8

const (
	// KindValueChange indicates a parameter value was set.
	KindValueChange Kind = 0
	// KindInstanceAdded indicates a table instance was created.
	KindInstanceAdded Kind = 1
	// KindLoad indicates an object tree was loaded from a document.
	KindLoad Kind = 2
	// KindSave indicates an object tree was written to a document.
	KindSave Kind = 3
	// KindValidation indicates a validation run.
	KindValidation Kind = 4
	// KindError indicates a failed operation.
	KindError Kind = 5
)

var kindNames = []string{"VALUE", "ADD", "LOAD", "SAVE", "VALIDATE", "ERROR"}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// ParseKind parses a kind name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(name, s) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown event kind %q", s)
}

// Value returns a pointer to s for use in OldValue and NewValue.
func Value(s string) *string {
	return &s
}
