package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes change events to an slog.Logger.
// Useful for development when you want to see edits in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Errors are logged at Warn level,
// notifiable value changes at Info and everything else at Debug.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("kind", event.Kind.String()),
	}

	if event.Path != "" {
		attrs = append(attrs, slog.String("path", event.Path))
	}
	if event.Object != "" {
		attrs = append(attrs, slog.String("object", event.Object))
	}

	switch event.Kind {
	case KindValueChange:
		if event.OldValue != nil {
			attrs = append(attrs, slog.String("old", *event.OldValue))
		}
		if event.NewValue != nil {
			attrs = append(attrs, slog.String("new", *event.NewValue))
		}
		attrs = append(attrs, slog.String("notify", event.Notify.String()))
		if event.Internal {
			attrs = append(attrs, slog.Bool("internal", true))
		}
	case KindInstanceAdded:
		if event.NewValue != nil {
			attrs = append(attrs, slog.String("instance", *event.NewValue))
		}
	}

	if event.Message != "" {
		attrs = append(attrs, slog.String("msg", event.Message))
	}

	level := slog.LevelDebug
	switch {
	case event.Kind == KindError:
		level = slog.LevelWarn
	case event.Notifiable():
		level = slog.LevelInfo
	}

	a.logger.LogAttrs(context.Background(), level, "change", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
