// Package log records data-model change events.
//
// The package defines the Logger interface and the Event type for
// capturing what happens to an object tree while it is being edited:
// parameter value changes, added table instances, documents loaded and
// saved, validation runs and errors. It is separate from operational
// logging (slog); the change log is a complete machine-readable trace that
// can be replayed, filtered and audited.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	insp.SetLogger(log.NewSlogAdapter(slog.Default()))
//
//	// For audit: write to a binary file
//	fl, _ := log.NewFileLogger("session.clog")
//
//	// Both: use MultiLogger
//	insp.SetLogger(log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl))
//
// # File Format
//
// Log files are a sequence of CBOR-encoded events with integer keys, by
// convention with a .clog extension. The cwmp-inspect tool reads and
// filters them.
package log
