package log

import (
	"testing"
	"time"
)

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Log(Event{})
	l.Log(Event{Timestamp: time.Now(), Kind: KindError, Message: "boom"})
}

func TestNoopLoggerIsZeroValue(t *testing.T) {
	var l NoopLogger
	l.Log(Event{Kind: KindLoad})
}
